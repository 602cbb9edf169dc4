package access

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPath is returned for path expressions that do not parse and
	// for Func paths missing the callback an operation needs. It is a
	// programming error and is never suppressed by OrDefault or IgnoreErrors.
	ErrInvalidPath = errors.New("invalid access path")

	// ErrNotResolvable is matched by every *Error: no strategy could read or
	// write the path.
	ErrNotResolvable = errors.New("path not resolvable")

	// ErrMemberNotFound is returned when a key, index or member is missing.
	ErrMemberNotFound = errors.New("member not found")

	// ErrNilValue is returned when a path walks through a nil value.
	ErrNilValue = errors.New("nil value in path")

	// ErrNotContainer is returned when a path continues past a scalar.
	ErrNotContainer = errors.New("value is not a container")

	// ErrIncompatibleValue is returned when a value cannot be stored in the
	// destination type.
	ErrIncompatibleValue = errors.New("incompatible value")

	// ErrNotAddressable is returned by Set for containers passed by value
	// that cannot be written back to the caller.
	ErrNotAddressable = errors.New("container is not addressable")

	// ErrCallback wraps errors and panics raised inside Func callbacks.
	ErrCallback = errors.New("access callback failed")
)

// Error reports a failed Get or Set. Err is the innermost cause reported by
// the last strategy that was tried.
type Error struct {
	Op       string
	Path     string
	Strategy Strategy
	Err      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("access: %s %q via %s: %v", e.Op, e.Path, e.Strategy, e.Err)
}

func (e *Error) Unwrap() []error {
	return []error{ErrNotResolvable, e.Err}
}
