package numeric

import "github.com/hasbyte1/go-usefull/internal/errs"

// Sentinel errors returned by numeric operations.
//
// Use [errors.Is] for comparisons:
//
//	_, err := numeric.Percentage(50, 0)
//	if errors.Is(err, numeric.ErrZeroTotal) {
//	    // nothing to compare against
//	}
var (
	// ErrInvalidArgument is the error kind shared by every package of this
	// module. All sentinels below match it with errors.Is.
	ErrInvalidArgument = errs.ErrInvalidArgument

	// ErrInvalidRange is returned by Clamp when the lower bound is greater
	// than the upper bound.
	ErrInvalidRange = errs.Invalid("numeric: min must be less than or equal to max")

	// ErrInvalidPrecision is returned by RoundTo when precision <= 0.
	ErrInvalidPrecision = errs.Invalid("numeric: precision must be positive")

	// ErrZeroTotal is returned by Percentage when total is zero.
	ErrZeroTotal = errs.Invalid("numeric: total cannot be zero")
)
