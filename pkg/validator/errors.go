package validator

import "errors"

// ErrValidationFailed is the root of every ValidationErrors value.
var ErrValidationFailed = errors.New("validation failed")
