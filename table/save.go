package table

import (
	"bytes"
	"fmt"
	"os"

	"github.com/oleg578/swiftcsv"
)

// Save writes the table back to the file it was loaded from.
func (t *Table) Save() error {
	return t.SaveTo(t.path)
}

// SaveTo writes the table to path: header first when present, then
// every row reconciled to the expected width, cells in canonical string
// form, joined with the detected delimiter under minimal quoting and
// re-encoded in the charset detected at load.
//
// The target is overwritten whole. There is no temp-file swap, so a
// failure mid-write can leave it truncated.
func (t *Table) SaveTo(path string) error {
	var buf bytes.Buffer

	w := swiftcsv.NewWriter(&buf)
	w.Comma = t.delimiter

	if t.hasHeader && len(t.header) > 0 {
		if err := w.Write(t.header); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	width := t.ColumnCount()
	fields := make([]string, width)

	for _, row := range t.rows {
		row = adjustRow(row, width)
		for i, v := range row {
			fields[i] = v.String()
		}

		if err := w.Write(fields); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	out, err := t.charset.Encode(buf.String())
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	return nil
}
