package coerce

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected is returned when a value cannot be converted to the requested kind.
	ErrRejected = errors.New("value cannot be coerced")

	// ErrUnknownKind is returned when the requested kind is not one of the scalar kinds.
	ErrUnknownKind = errors.New("unknown scalar kind")
)

// Error describes a rejected conversion.
type Error struct {
	Value any
	Kind  Kind
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (%T) to %s", ErrRejected, Describe(e.Value), e.Value, e.Kind)
}

func (e *Error) Unwrap() error {
	return ErrRejected
}

func reject(value any, kind Kind) error {
	return &Error{Value: value, Kind: kind}
}
