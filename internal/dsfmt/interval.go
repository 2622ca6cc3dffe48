package dsfmt

import "math"

// Interval selects how a raw [1,2) double is mapped onto the unit interval.
type Interval uint8

const (
	// CloseOpen is [0,1).
	CloseOpen Interval = iota
	// OpenClose is (0,1].
	OpenClose
	// OpenOpen is (0,1).
	OpenOpen
	// Close1Open2 is the raw [1,2) value.
	Close1Open2
)

func (iv Interval) String() string {
	switch iv {
	case CloseOpen:
		return "[0,1)"
	case OpenClose:
		return "(0,1]"
	case OpenOpen:
		return "(0,1)"
	case Close1Open2:
		return "[1,2)"
	default:
		return "unknown"
	}
}

// convert maps raw bits holding a double in [1,2) onto the interval.
// Only the exponent-free mantissa is random, so no integer division and no
// rounding at the low end are involved.
func (iv Interval) convert(bits uint64) float64 {
	switch iv {
	case OpenClose:
		return 2.0 - math.Float64frombits(bits)
	case OpenOpen:
		return math.Float64frombits(bits|1) - 1.0
	case Close1Open2:
		return math.Float64frombits(bits)
	default:
		return math.Float64frombits(bits) - 1.0
	}
}
