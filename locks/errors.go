package locks

import "errors"

var (
	// ErrInvalidLock is wrapped by the validation errors of lock bodies
	// and lock names. Nothing is sent when it is returned.
	ErrInvalidLock = errors.New("locks: invalid lock")

	// ErrMissingParameter is returned when a path parameter is empty.
	ErrMissingParameter = errors.New("locks: missing path parameter")
)
