package cell

import (
	"strconv"
	"strings"
)

// Cast infers the typed value of a raw field. The precedence chain is
// strict: empty, integer, float, boolean, string. "1" must become the
// integer 1, never the float 1.0 or the string "1".
//
// Only the boolean test is case-insensitive; the string fallback keeps
// the trimmed original casing.
func Cast(raw string) Value {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Empty()
	}

	if isIntegerLiteral(v) {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return Int(n)
		}
	}

	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return Float(f)
	}

	switch strings.ToLower(v) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}

	return String(v)
}

// CastAll casts every field of a raw record.
func CastAll(raw []string) []Value {
	row := make([]Value, len(raw))
	for i, field := range raw {
		row[i] = Cast(field)
	}

	return row
}

// Raw wraps every field of a record as an untyped string cell,
// preserving the exact content. Used when auto-casting is disabled.
func Raw(raw []string) []Value {
	row := make([]Value, len(raw))
	for i, field := range raw {
		row[i] = String(field)
	}

	return row
}

// isIntegerLiteral reports whether s is all digits with an optional
// leading minus. "+5" and "1e3" are not integer literals; they fall
// through to the float parse.
func isIntegerLiteral(s string) bool {
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}

	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
