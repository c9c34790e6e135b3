package numeric

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Number is any built-in integer or floating-point type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Clamp constrains value to the closed range [lo, hi].
// A value already inside the range is returned unchanged.
// Returns [ErrInvalidRange] when lo > hi.
//
//	Clamp(5, 0, 10)        // 5
//	Clamp(-5, 0, 10)       // 0
//	Clamp(3.5, 0.0, 5.0)   // 3.5
func Clamp[T Number](value, lo, hi T) (T, error) {
	if lo > hi {
		var zero T
		return zero, ErrInvalidRange
	}
	return max(lo, min(value, hi)), nil
}

// Lerp linearly interpolates between start (t == 0) and end (t == 1).
// t outside [0, 1] extrapolates along the same line. Both endpoints are
// returned exactly.
//
//	Lerp(0, 100, 0.5)   // 50
//	Lerp(0, 10, 1.5)    // 15
//	Lerp(0, 10, -0.5)   // -5
func Lerp[T Number](start, end T, t float64) float64 {
	return (1-t)*float64(start) + t*float64(end)
}

// RoundTo rounds value to the nearest multiple of precision. Ties round to
// the even multiple. Returns [ErrInvalidPrecision] when precision <= 0.
//
//	RoundTo(7, 5)           // 5
//	RoundTo(8, 5)           // 10
//	RoundTo(3.14159, 0.01)  // 3.14
func RoundTo[T Number](value, precision T) (float64, error) {
	if precision <= 0 {
		return 0, ErrInvalidPrecision
	}
	p := float64(precision)
	return math.RoundToEven(float64(value)/p) * p, nil
}

// Percentage returns value as a percentage of total on a 0-100 scale.
// Values above total give results above 100.
// Returns [ErrZeroTotal] when total is zero.
//
//	Percentage(25, 100)   // 25
//	Percentage(1, 4)      // 25
//	Percentage(150, 100)  // 150
func Percentage[T Number](value, total T) (float64, error) {
	if total == 0 {
		return 0, ErrZeroTotal
	}
	return float64(value) / float64(total) * 100, nil
}
