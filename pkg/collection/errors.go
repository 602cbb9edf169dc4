package collection

import "errors"

// ErrInvalidPath is returned when the field path does not parse.
var ErrInvalidPath = errors.New("collection: invalid field path")
