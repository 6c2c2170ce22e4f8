package table

import (
	"fmt"
	"strings"

	"tabcast/cell"
)

// Op enumerates the comparison operators accepted by column filters.
type Op int

const (
	OpEqual Op = iota
	OpNotEqual
	OpGreater
	OpLess
	OpGreaterEqual
	OpLessEqual
	OpIn
	OpNotIn
	OpContains
	OpHasPrefix
	OpHasSuffix

	// OpTotal is a constant that represents the total number of operators defined
	OpTotal = int(iota)
)

var opTags = [OpTotal]string{
	"==", "!=", ">", "<", ">=", "<=",
	"in", "not in", "contains", "startswith", "endswith",
}

// String returns the operator's wire tag, e.g. ">=" or "not in".
func (op Op) String() string {
	if op < 0 || int(op) >= OpTotal {
		return fmt.Sprintf("unknown(%d)", int(op))
	}

	return opTags[op]
}

// ParseOp maps an external operator tag to its Op. Genuinely unknown
// tags are the only runtime source of ErrUnsupportedOperator; in-code
// operators are members of the closed set by construction.
func ParseOp(tag string) (Op, error) {
	for op, t := range opTags {
		if t == tag {
			return Op(op), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", tag, ErrUnsupportedOperator)
}

// wantsSet reports whether the operator treats the operand list as a
// membership set rather than a single comparison value.
func (op Op) wantsSet() bool {
	return op == OpIn || op == OpNotIn
}

// checkOperands validates operator and arity before any row is scanned.
func (op Op) checkOperands(operands []cell.Value) error {
	if op < 0 || int(op) >= OpTotal {
		return fmt.Errorf("%s: %w", op, ErrUnsupportedOperator)
	}

	if !op.wantsSet() && len(operands) != 1 {
		return fmt.Errorf("%s with %d operands: %w", op, len(operands), ErrOperand)
	}

	return nil
}

// eval applies the operator to one cell. Ordering operators surface
// cell.ErrTypeMismatch for incomparable kinds; equality and membership
// never fail; the text operators coerce both sides to their canonical
// string form.
func (op Op) eval(cv cell.Value, operands []cell.Value) (bool, error) {
	switch op {
	case OpEqual:
		return cell.Equal(cv, operands[0]), nil
	case OpNotEqual:
		return !cell.Equal(cv, operands[0]), nil
	case OpGreater, OpLess, OpGreaterEqual, OpLessEqual:
		c, err := cell.Compare(cv, operands[0])
		if err != nil {
			return false, err
		}

		switch op {
		case OpGreater:
			return c > 0, nil
		case OpLess:
			return c < 0, nil
		case OpGreaterEqual:
			return c >= 0, nil
		default:
			return c <= 0, nil
		}
	case OpIn, OpNotIn:
		found := false
		for _, v := range operands {
			if cell.Equal(cv, v) {
				found = true

				break
			}
		}

		if op == OpNotIn {
			return !found, nil
		}

		return found, nil
	case OpContains:
		return strings.Contains(cv.String(), operands[0].String()), nil
	case OpHasPrefix:
		return strings.HasPrefix(cv.String(), operands[0].String()), nil
	case OpHasSuffix:
		return strings.HasSuffix(cv.String(), operands[0].String()), nil
	default:
		return false, fmt.Errorf("%s: %w", op, ErrUnsupportedOperator)
	}
}
