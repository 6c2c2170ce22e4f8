// Package cell models a single table cell as a tagged union over the
// primitive types produced by auto-casting: integer, float, boolean,
// string, and the empty sentinel. Absence of a value is always the empty
// sentinel, never a distinct null.
//
// Comparison rules are deliberately narrow:
//   - numeric kinds (int, float, bool as 0/1) compare among themselves
//   - strings compare with strings; an empty cell equals the empty string
//   - cross-kind equality is false, cross-kind ordering is ErrTypeMismatch
package cell

import (
	"errors"
	"strconv"
	"strings"
)

// ErrTypeMismatch is returned when two values cannot be ordered.
var ErrTypeMismatch = errors.New("type mismatch in comparison")

// Value is one typed cell. The zero value is the empty sentinel.
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

// Empty returns the empty-cell sentinel.
func Empty() Value { return Value{} }

// Int returns an integer cell.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating-point cell.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Bool returns a boolean cell.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a string cell. String(s).String() == s for any s,
// including the empty string; only Cast maps "" to the empty sentinel.
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether the value is the empty sentinel.
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// IsBlank reports whether the value is the empty sentinel or an empty string.
func (v Value) IsBlank() bool {
	return v.kind == KindEmpty || (v.kind == KindString && v.s == "")
}

// Int unpacks an integer cell.
func (v Value) Int() (int64, bool) { return v.i, v.kind == KindInt }

// Float unpacks a float cell.
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }

// Bool unpacks a boolean cell.
func (v Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// String returns the canonical serialized form: empty sentinel -> "",
// integers in decimal, floats in shortest 'g' form, booleans as the
// pinned lowercase "true"/"false", strings unchanged.
func (v Value) String() string {
	switch v.kind {
	case KindEmpty:
		return ""
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	default:
		return v.s
	}
}

// num flattens a numeric kind to float64. Valid only when kind.IsNumber().
func (v Value) num() float64 {
	switch v.kind {
	case KindInt:
		return float64(v.i)
	case KindBool:
		if v.b {
			return 1
		}
		return 0
	default:
		return v.f
	}
}

// Equal reports value equality under the comparison rules. It never
// fails: incomparable kinds are simply unequal.
func Equal(a, b Value) bool {
	switch {
	case a.kind.IsNumber() && b.kind.IsNumber():
		if a.kind == KindInt && b.kind == KindInt {
			return a.i == b.i
		}
		return a.num() == b.num()
	case a.kind.IsText() && b.kind.IsText():
		return a.String() == b.String()
	default:
		return false
	}
}

// Compare orders a against b, returning <0, 0 or >0. Numeric kinds order
// numerically (exact for int/int), text kinds lexicographically; anything
// else is ErrTypeMismatch.
func Compare(a, b Value) (int, error) {
	switch {
	case a.kind.IsNumber() && b.kind.IsNumber():
		if a.kind == KindInt && b.kind == KindInt {
			switch {
			case a.i < b.i:
				return -1, nil
			case a.i > b.i:
				return 1, nil
			default:
				return 0, nil
			}
		}
		af, bf := a.num(), b.num()
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	case a.kind.IsText() && b.kind.IsText():
		return strings.Compare(a.String(), b.String()), nil
	default:
		return 0, ErrTypeMismatch
	}
}
