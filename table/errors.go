package table

import "errors"

// Common errors returned by the table package.
var (
	// ErrNoHeader is returned when a name-based operation needs a header
	// the table does not have.
	ErrNoHeader = errors.New("table has no header")

	// ErrUnknownColumn is returned when a column name is not present in
	// the header.
	ErrUnknownColumn = errors.New("column not found")

	// ErrRowIndex is returned when a row index is out of range.
	ErrRowIndex = errors.New("row index out of range")

	// ErrColumnIndex is returned when a positional column identifier is
	// negative.
	ErrColumnIndex = errors.New("column index is negative")

	// ErrUnsupportedOperator is returned for an operator outside the
	// fixed set.
	ErrUnsupportedOperator = errors.New("unsupported filter operator")

	// ErrOperand is returned when a scalar operator is given other than
	// one operand.
	ErrOperand = errors.New("operator requires exactly one operand")
)
