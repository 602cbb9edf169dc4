package reflectx

import "errors"

var (
	// ErrInvalidType is returned when a nil type or an empty name is registered.
	ErrInvalidType = errors.New("invalid type registration")

	// ErrTypeConflict is returned when a name is already bound to a different type.
	ErrTypeConflict = errors.New("type name already registered")

	// ErrNotAddressable is returned when a field cannot be exposed because its
	// container is not addressable.
	ErrNotAddressable = errors.New("value is not addressable")

	// ErrAccess is returned when reading or writing an exposed field panics.
	ErrAccess = errors.New("field access failed")
)
