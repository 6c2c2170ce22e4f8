package table

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"tabcast/cell"
	"tabcast/internal/sniff"
)

// Load reads the delimited file at path, detects its charset and
// delimiter, and parses it into a Table. Defaults: the first record is
// the header, blank rows are dropped, values are auto-cast, header
// names are normalized, candidate delimiters are comma, semicolon, pipe
// and tab. Each default has an Option to switch it off.
func Load(path string, opts ...Option) (*Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	charset, text, err := sniff.DetectCharset(data, cfg.charsets)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	delim := sniff.DetectDelimiter(text, cfg.delims)

	records, err := sniff.ReadRecords(text, delim)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	if cfg.skipBlank {
		records = dropBlank(records)
	}

	t := &Table{
		path:      path,
		charset:   charset,
		delimiter: delim,
		hasHeader: cfg.hasHeader,
		autoCast:  cfg.autoCast,
		logger:    cfg.logger,
	}

	if cfg.hasHeader && len(records) > 0 {
		t.header = records[0]
		records = records[1:]

		if cfg.normalize {
			t.header = normalizeHeaders(t.header)
		}
	}

	t.rows = make([][]cell.Value, len(records))
	for i, rec := range records {
		if cfg.autoCast {
			t.rows[i] = cell.CastAll(rec)
		} else {
			t.rows[i] = cell.Raw(rec)
		}
	}

	return t, nil
}

// dropBlank removes records whose fields all trim to nothing.
func dropBlank(records [][]string) [][]string {
	out := make([][]string, 0, len(records))
	for _, rec := range records {
		if !allBlank(rec) {
			out = append(out, rec)
		}
	}

	return out
}

func allBlank(rec []string) bool {
	for _, field := range rec {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}

	return true
}
