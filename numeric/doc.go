// Package numeric provides small generic helpers for bounding, interpolating
// and scaling numbers.
//
// Functions accept any integer or floating-point type through the [Number]
// constraint. Results that can be fractional (Lerp, RoundTo, Percentage) are
// returned as float64.
//
//	v, _ := numeric.Clamp(15, 0, 10)       // 10
//	numeric.Lerp(0, 100, 0.25)             // 25
//	r, _ := numeric.RoundTo(127, 10)       // 130
//	p, _ := numeric.Percentage(1, 4)       // 25
//
// Arguments outside a function's domain are reported as sentinel errors that
// all match [ErrInvalidArgument].
package numeric
