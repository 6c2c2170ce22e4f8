package table

import (
	"fmt"
	"slices"

	"tabcast/cell"
	"tabcast/internal/common"
)

// Mutations come in one function per update shape (positional row,
// name-keyed fields, position-keyed fields), so an update mixing name
// and position keys is unrepresentable rather than a runtime error.

// UpdateRow replaces the row at index with newRow, reconciled to the
// expected width.
func (t *Table) UpdateRow(index int, newRow []cell.Value) error {
	if err := t.checkRow(index); err != nil {
		return fmt.Errorf("update row: %w", err)
	}

	t.rows[index] = adjustRow(newRow, t.ColumnCount())

	return nil
}

// UpdateRowNamed updates only the named fields of the row at index.
// Names missing from the header are skipped with a warning, not an
// error. The row is not reconciled in this path; it is only widened as
// far as needed to hold a resolved column.
func (t *Table) UpdateRowNamed(index int, fields map[string]cell.Value) error {
	if err := t.checkRow(index); err != nil {
		return fmt.Errorf("update row: %w", err)
	}

	if !t.hasHeader {
		return fmt.Errorf("update row by name: %w", ErrNoHeader)
	}

	row := common.Clone(t.rows[index])
	for name, v := range fields {
		idx := slices.Index(t.header, name)
		if idx < 0 {
			t.logger.Warn("column not in header, field skipped",
				"column", name, "row", index)

			continue
		}

		row = growRow(row, idx+1)
		row[idx] = v
	}
	t.rows[index] = row

	return nil
}

// UpdateRowIndexed updates fields of the row at index by position.
// Positions past the current row extend it with empty cells first; the
// result is reconciled back to the expected width, so updates past that
// width are trimmed away again.
func (t *Table) UpdateRowIndexed(index int, fields map[int]cell.Value) error {
	if err := t.checkRow(index); err != nil {
		return fmt.Errorf("update row: %w", err)
	}

	row := common.Clone(t.rows[index])
	for idx, v := range fields {
		if idx < 0 {
			return fmt.Errorf("update row: column %d: %w", idx, ErrColumnIndex)
		}

		row = growRow(row, idx+1)
		row[idx] = v
	}
	t.rows[index] = adjustRow(row, t.ColumnCount())

	return nil
}

// UpdateCell sets a single cell. A positional identifier past the end
// of the row widens it, to at least the expected width, rather than
// failing, which is how a new column is introduced; nothing is
// truncated here.
func (t *Table) UpdateCell(rowIndex int, col ColumnID, v cell.Value) error {
	if err := t.checkRow(rowIndex); err != nil {
		return fmt.Errorf("update cell: %w", err)
	}

	idx, err := t.resolve(col)
	if err != nil {
		return fmt.Errorf("update cell: %w", err)
	}

	row := t.rows[rowIndex]
	if idx >= len(row) {
		width := t.ColumnCount()
		if idx+1 > width {
			width = idx + 1
		}
		row = growRow(row, width)
	}
	row[idx] = v
	t.rows[rowIndex] = row

	return nil
}

// AddRow appends a positional row, reconciled to the expected width.
func (t *Table) AddRow(newRow []cell.Value) {
	t.rows = append(t.rows, adjustRow(newRow, t.ColumnCount()))
}

// AddRowNamed appends a complete new row in header order: named fields
// land in their columns, absent fields stay empty, names outside the
// header are ignored.
func (t *Table) AddRowNamed(fields map[string]cell.Value) error {
	if !t.hasHeader {
		return fmt.Errorf("add row by name: %w", ErrNoHeader)
	}

	row := make([]cell.Value, len(t.header))
	for i, h := range t.header {
		if v, ok := fields[h]; ok {
			row[i] = v
		}
	}
	t.rows = append(t.rows, row)

	return nil
}

// AddRowIndexed appends a row built from position-keyed fields over an
// empty row of the expected width, reconciled after extension.
func (t *Table) AddRowIndexed(fields map[int]cell.Value) error {
	width := t.ColumnCount()

	row := make([]cell.Value, width)
	for idx, v := range fields {
		if idx < 0 {
			return fmt.Errorf("add row: column %d: %w", idx, ErrColumnIndex)
		}

		row = growRow(row, idx+1)
		row[idx] = v
	}
	t.rows = append(t.rows, adjustRow(row, width))

	return nil
}

// DeleteRow removes the row at index. Later rows shift down one place,
// so positional indices are only valid until the next mutation.
func (t *Table) DeleteRow(index int) error {
	if err := t.checkRow(index); err != nil {
		return fmt.Errorf("delete row: %w", err)
	}

	t.rows = slices.Delete(t.rows, index, index+1)

	return nil
}
