package cell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCastPrecedence(t *testing.T) {
	tests := []struct {
		input string
		want  Value
	}{
		// Integers before anything else: "1" is int 1, never 1.0 or "1".
		{"1", Int(1)},
		{"42", Int(42)},
		{"-7", Int(-7)},
		{"0", Int(0)},

		// Floats when the digit test fails but the parser accepts.
		{"3.14", Float(3.14)},
		{"-0.5", Float(-0.5)},
		{"1e3", Float(1000)},
		{"+5", Float(5)},
		{"2.", Float(2)},

		// Booleans, case-insensitive.
		{"true", Bool(true)},
		{"TRUE", Bool(true)},
		{"False", Bool(false)},

		// Empty after trim.
		{"", Empty()},
		{"   ", Empty()},
		{"\t", Empty()},

		// String fallback keeps the trimmed original casing.
		{"abc", String("abc")},
		{"True story", String("True story")},
		{"  spaced  ", String("spaced")},
		{"12a", String("12a")},
		{"-", String("-")},
		{"0x1A", String("0x1A")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Cast(tt.input))
		})
	}
}

func TestCastTrimsBeforeTyping(t *testing.T) {
	assert.Equal(t, Int(42), Cast("  42  "))
	assert.Equal(t, Bool(true), Cast(" true\n"))
}

func TestCastNaN(t *testing.T) {
	v := Cast("nan")
	require.Equal(t, KindFloat, v.Kind())

	f, ok := v.Float()
	require.True(t, ok)
	assert.True(t, math.IsNaN(f))
}

func TestCastAllAndRaw(t *testing.T) {
	rec := []string{"1", " x ", ""}

	assert.Equal(t, []Value{Int(1), String("x"), Empty()}, CastAll(rec))

	// Raw preserves the exact field content, whitespace included.
	assert.Equal(t, []Value{String("1"), String(" x "), String("")}, Raw(rec))
}
