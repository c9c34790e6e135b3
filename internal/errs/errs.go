// Package errs holds the error kind shared by every public package.
//
// Public packages re-export [ErrInvalidArgument] and declare their own
// sentinels on top of it, so callers can match either the specific
// condition or the kind:
//
//	_, err := numeric.Clamp(5, 10, 0)
//	errors.Is(err, numeric.ErrInvalidRange)    // true
//	errors.Is(err, numeric.ErrInvalidArgument) // true
package errs

import "errors"

// ErrInvalidArgument is the single error kind returned by this module.
// It is returned synchronously when an argument is outside the domain of
// the called function.
var ErrInvalidArgument = errors.New("usefull: invalid argument")

type invalidError struct {
	msg string
}

func (e *invalidError) Error() string { return e.msg }

func (e *invalidError) Unwrap() error { return ErrInvalidArgument }

// Invalid returns a sentinel for one specific invalid-argument condition.
// msg is used verbatim as the error text; the returned error unwraps to
// [ErrInvalidArgument].
func Invalid(msg string) error {
	return &invalidError{msg: msg}
}
