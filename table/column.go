package table

import (
	"fmt"
	"strconv"

	"tabcast/internal/match"
)

// ColumnID addresses a column either by header name or by position.
// Build one with Name or Index.
type ColumnID struct {
	name   string
	index  int
	byName bool
}

// Name addresses a column by its (normalized) header name. Valid only on
// tables that have a header.
func Name(name string) ColumnID {
	return ColumnID{name: name, byName: true}
}

// Index addresses a column by zero-based position. The position is not
// checked against current row widths: it may point past them, which is
// how column-extending mutations are expressed.
func Index(index int) ColumnID {
	return ColumnID{index: index}
}

func (c ColumnID) String() string {
	if c.byName {
		return c.name
	}

	return "#" + strconv.Itoa(c.index)
}

// resolve maps the identifier to a positional index. Name identifiers
// require a header and resolve to the first exact match; index
// identifiers pass through unchecked against row bounds (the consuming
// operation validates), except that negative positions are rejected.
func (t *Table) resolve(col ColumnID) (int, error) {
	if col.byName {
		if !t.hasHeader {
			return 0, fmt.Errorf("resolve %q: %w", col.name, ErrNoHeader)
		}

		for i, h := range t.header {
			if h == col.name {
				return i, nil
			}
		}

		if hint, ok := match.Closest(col.name, t.header); ok {
			return 0, fmt.Errorf("resolve %q (closest header is %q): %w", col.name, hint, ErrUnknownColumn)
		}

		return 0, fmt.Errorf("resolve %q: %w", col.name, ErrUnknownColumn)
	}

	if col.index < 0 {
		return 0, fmt.Errorf("resolve %s: %w", col, ErrColumnIndex)
	}

	return col.index, nil
}
