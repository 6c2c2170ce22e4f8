package cell

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindEmpty Kind = iota
	KindInt
	KindFloat
	KindBool
	KindString

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsNumber reports whether the kind participates in numeric comparison.
// Booleans count as numbers (0/1), matching the casting model where a
// boolean cell can be compared against the integers it round-trips with.
func (k Kind) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindFloat, KindBool:
		return true
	}
}

// IsText reports whether the kind compares as text. Empty cells are
// interchangeable with the empty string.
func (k Kind) IsText() bool {
	switch k {
	default:
		return false
	case KindString, KindEmpty:
		return true
	}
}
