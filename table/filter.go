package table

import (
	"fmt"

	"tabcast/cell"
)

// Predicate decides whether a row, identified by its original position,
// is kept.
type Predicate func(row []cell.Value, index int) bool

// Condition is one clause of a multi-condition filter: either a free
// predicate (If) or a structured column comparison (Where, WhereIn,
// WhereNotIn).
type Condition struct {
	pred     Predicate
	col      ColumnID
	op       Op
	operands []cell.Value
}

// If wraps a free predicate as a condition.
func If(pred Predicate) Condition {
	return Condition{pred: pred}
}

// Where builds a structured condition from a scalar operator.
func Where(col ColumnID, op Op, operand cell.Value) Condition {
	return Condition{col: col, op: op, operands: []cell.Value{operand}}
}

// WhereIn matches rows whose cell at col equals any of the values.
func WhereIn(col ColumnID, values ...cell.Value) Condition {
	return Condition{col: col, op: OpIn, operands: values}
}

// WhereNotIn matches rows whose cell at col equals none of the values.
func WhereNotIn(col ColumnID, values ...cell.Value) Condition {
	return Condition{col: col, op: OpNotIn, operands: values}
}

// FilterRows returns a new table holding exactly the rows the predicate
// keeps, in their original relative order. The receiver is never
// mutated.
func (t *Table) FilterRows(pred Predicate) *Table {
	var rows [][]cell.Value
	for i, row := range t.rows {
		if pred(row, i) {
			rows = append(rows, row)
		}
	}

	return t.derive(rows)
}

// filterRowsErr is FilterRows for predicates that can fail; the first
// failure aborts the scan.
func (t *Table) filterRowsErr(pred func(row []cell.Value, index int) (bool, error)) (*Table, error) {
	var rows [][]cell.Value
	for i, row := range t.rows {
		keep, err := pred(row, i)
		if err != nil {
			return nil, err
		}
		if keep {
			rows = append(rows, row)
		}
	}

	return t.derive(rows), nil
}

// FilterByColumn keeps the rows whose cell at col satisfies the
// operator. The column resolves once, up front. Rows shorter than the
// resolved position never match; they are excluded, not an error.
// Membership operators (in, not in) take the whole operand list as
// their set; every other operator requires exactly one operand.
func (t *Table) FilterByColumn(col ColumnID, op Op, operands ...cell.Value) (*Table, error) {
	idx, err := t.resolve(col)
	if err != nil {
		return nil, fmt.Errorf("filter by column: %w", err)
	}

	if err := op.checkOperands(operands); err != nil {
		return nil, fmt.Errorf("filter by column %s: %w", col, err)
	}

	return t.filterRowsErr(func(row []cell.Value, _ int) (bool, error) {
		if idx >= len(row) {
			return false, nil
		}

		ok, err := op.eval(row[idx], operands)
		if err != nil {
			return false, fmt.Errorf("filter column %s: %w", col, err)
		}

		return ok, nil
	})
}

// FilterEmpty keeps the rows that have at least one non-blank cell.
func (t *Table) FilterEmpty() *Table {
	return t.FilterRows(func(row []cell.Value, _ int) bool {
		for _, v := range row {
			if !v.IsBlank() {
				return true
			}
		}

		return false
	})
}

// FilterEmptyColumn keeps the rows whose cell at col is present and
// non-blank; a row too short to reach the column counts as blank.
func (t *Table) FilterEmptyColumn(col ColumnID) (*Table, error) {
	idx, err := t.resolve(col)
	if err != nil {
		return nil, fmt.Errorf("filter empty column: %w", err)
	}

	return t.FilterRows(func(row []cell.Value, _ int) bool {
		return idx < len(row) && !row[idx].IsBlank()
	}), nil
}

// FilterMultiple AND-combines the conditions, short-circuiting per row
// at the first failing clause. Structured conditions resolve their
// column and validate their operator before any row is scanned, so a
// bad name or operator fails even on an empty table. A structured
// condition pointing past a row's width fails that row.
func (t *Table) FilterMultiple(conds ...Condition) (*Table, error) {
	type bound struct {
		cond Condition
		idx  int
	}

	resolved := make([]bound, len(conds))
	for i, c := range conds {
		b := bound{cond: c}

		if c.pred == nil {
			idx, err := t.resolve(c.col)
			if err != nil {
				return nil, fmt.Errorf("filter condition %d: %w", i, err)
			}
			if err := c.op.checkOperands(c.operands); err != nil {
				return nil, fmt.Errorf("filter condition %d: %w", i, err)
			}
			b.idx = idx
		}

		resolved[i] = b
	}

	return t.filterRowsErr(func(row []cell.Value, index int) (bool, error) {
		for _, b := range resolved {
			if b.cond.pred != nil {
				if !b.cond.pred(row, index) {
					return false, nil
				}

				continue
			}

			if b.idx >= len(row) {
				return false, nil
			}

			ok, err := b.cond.op.eval(row[b.idx], b.cond.operands)
			if err != nil {
				return false, fmt.Errorf("filter condition on %s: %w", b.cond.col, err)
			}
			if !ok {
				return false, nil
			}
		}

		return true, nil
	})
}

// IndexedRow pairs a row with its original position in the table.
type IndexedRow struct {
	Index int
	Row   []cell.Value
}

// RowsWithIndices returns the rows matching pred along with their
// original positions, without constructing a filtered table.
func (t *Table) RowsWithIndices(pred Predicate) []IndexedRow {
	var out []IndexedRow
	for i, row := range t.rows {
		if pred(row, i) {
			out = append(out, IndexedRow{Index: i, Row: row})
		}
	}

	return out
}
