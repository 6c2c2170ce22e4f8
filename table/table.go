package table

import (
	"fmt"
	"log/slog"

	"tabcast/cell"
	"tabcast/internal/common"
	"tabcast/internal/sniff"
)

// Table is a loaded delimited file: detected charset and delimiter,
// optional header, and the mutable row store. Construct it with Load;
// filters derive new Tables from it, mutations edit it in place, and
// Save writes it back out.
type Table struct {
	path      string
	charset   sniff.Charset
	delimiter byte
	hasHeader bool
	autoCast  bool
	logger    *slog.Logger

	header []string
	rows   [][]cell.Value
}

// Path returns the file the table was loaded from (and saves to by
// default).
func (t *Table) Path() string { return t.path }

// Encoding returns the name of the charset detected at load.
func (t *Table) Encoding() string { return t.charset.Name() }

// Delimiter returns the delimiter detected at load.
func (t *Table) Delimiter() byte { return t.delimiter }

// HasHeader reports whether the first record was consumed as a header.
func (t *Table) HasHeader() bool { return t.hasHeader }

// Header returns a copy of the header names (normalized, if
// normalization was enabled at load). Nil without a header.
func (t *Table) Header() []string { return common.Clone(t.header) }

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

// Rows returns the live row store, not a copy: edits through it are
// edits to the table.
func (t *Table) Rows() [][]cell.Value { return t.rows }

// Row returns the row at index.
func (t *Table) Row(index int) ([]cell.Value, error) {
	if err := t.checkRow(index); err != nil {
		return nil, err
	}

	return t.rows[index], nil
}

// ColumnCount returns the expected row width: the header length when a
// header is present, otherwise the width of the first row, otherwise
// zero.
func (t *Table) ColumnCount() int {
	if t.hasHeader {
		return len(t.header)
	}

	if first, ok := common.First(t.rows); ok {
		return len(first)
	}

	return 0
}

// ToMaps returns every row as a header-keyed map. Rows shorter than the
// header contribute only the columns they have.
func (t *Table) ToMaps() ([]map[string]cell.Value, error) {
	if !t.hasHeader || common.IsEmpty(t.header) {
		return nil, fmt.Errorf("convert to maps: %w", ErrNoHeader)
	}

	out := make([]map[string]cell.Value, len(t.rows))
	for i, row := range t.rows {
		m := make(map[string]cell.Value, len(t.header))
		for j, h := range t.header {
			if j >= len(row) {
				break
			}
			m[h] = row[j]
		}
		out[i] = m
	}

	return out, nil
}

func (t *Table) String() string {
	return fmt.Sprintf("Table(path=%s, rows=%d, columns=%d, delimiter=%q)",
		t.path, len(t.rows), t.ColumnCount(), t.delimiter)
}

// adjustRow reconciles a row against the expected width: short rows are
// padded with empty cells, long rows lose their trailing cells, and
// exact-width rows come back untouched. Every save and mutation path
// reconciles through here.
func adjustRow(row []cell.Value, width int) []cell.Value {
	switch {
	case len(row) < width:
		out := make([]cell.Value, width)
		copy(out, row)

		return out
	case len(row) > width:
		return row[:width]
	default:
		return row
	}
}

// growRow pads row with empty cells up to width; it never truncates.
func growRow(row []cell.Value, width int) []cell.Value {
	for len(row) < width {
		row = append(row, cell.Empty())
	}

	return row
}

// checkRow validates a row index against the current store.
func (t *Table) checkRow(index int) error {
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("index %d with %d rows: %w", index, len(t.rows), ErrRowIndex)
	}

	return nil
}

// derive builds a filtered view: same file, charset, delimiter and
// configuration, new row set. The backing file is not touched.
func (t *Table) derive(rows [][]cell.Value) *Table {
	out := *t
	out.header = common.Clone(t.header)
	out.rows = rows

	return &out
}
