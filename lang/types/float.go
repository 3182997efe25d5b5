package types

import (
	"strconv"
)

// Float is the type of a number. As in the scripting languages the catalog
// mirrors, there is a single numeric type.
type Float float64

var (
	_ Value   = Float(0)
	_ Ordered = Float(0)
)

// String formats the number in the shortest representation that round-trips,
// without exponent for integral values (e.g. 4 and 6.5).
func (f Float) String() string {
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (f Float) Type() string { return "number" }

// Cmp implements comparison of two Float values.
func (f Float) Cmp(v Value) (int, error) {
	g := v.(Float)
	return floatCmp(f, g), nil
}

// floatCmp performs a three-valued comparison on floats, which are totally
// ordered with NaN > +Inf.
func floatCmp(x, y Float) int {
	if x > y {
		return +1
	} else if x < y {
		return -1
	} else if x == y {
		return 0
	}

	// At least one operand is NaN.
	if x == x {
		return -1 // y is NaN
	} else if y == y {
		return +1 // x is NaN
	}
	return 0 // both NaN
}
