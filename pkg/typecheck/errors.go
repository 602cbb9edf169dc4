package typecheck

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/helpers/pkg/coerce"
	"github.com/dmitrymomot/helpers/pkg/strcase"
	"github.com/dmitrymomot/helpers/pkg/validator"
)

var (
	// ErrConfiguration marks programming mistakes: malformed identifiers,
	// unknown type names, empty specs. It is never a verdict about the value.
	ErrConfiguration = errors.New("type check misconfigured")

	// ErrInvalidIdentifier is returned for identifiers that do not decode into a spec.
	ErrInvalidIdentifier = fmt.Errorf("%w: invalid identifier", ErrConfiguration)

	// ErrUnknownType is returned when a token names no scalar kind, built-in
	// predicate or registered type.
	ErrUnknownType = fmt.Errorf("%w: unknown type", ErrConfiguration)

	// ErrTypeMismatch is returned when a value matches none of the alternatives.
	ErrTypeMismatch = errors.New("type mismatch")
)

// TranslationKey is the key used for dispatch failure messages.
const TranslationKey = "validation.type"

// MessageTemplate is the template used for dispatch failure messages.
const MessageTemplate = "%{field} must be %{expected}, %{actual} given"

// TypeError reports that a value matched none of the alternatives of a spec.
type TypeError struct {
	Param     string
	Value     any
	Attempted []Entry
	Caller    string
}

func newTypeError(param string, value any, attempted []Entry, caller string) *TypeError {
	return &TypeError{
		Param:     param,
		Value:     value,
		Attempted: append([]Entry(nil), attempted...),
		Caller:    caller,
	}
}

func (e *TypeError) Error() string {
	return e.ValidationError().Error()
}

func (e *TypeError) Unwrap() error {
	return ErrTypeMismatch
}

// Tokens returns the attempted tokens in try order.
func (e *TypeError) Tokens() []Token {
	tokens := make([]Token, len(e.Attempted))
	for i, a := range e.Attempted {
		tokens[i] = a.Token
	}
	return tokens
}

// ValidationError renders the failure through the shared message template.
func (e *TypeError) ValidationError() validator.ValidationError {
	expected := make([]string, len(e.Attempted))
	for i, a := range e.Attempted {
		expected[i] = a.Human()
	}

	verr := validator.NewError(e.Param, TranslationKey, MessageTemplate, map[string]any{
		"expected": strcase.JoinOr(expected),
		"actual":   coerce.Describe(e.Value),
		"types":    expected,
	})
	if e.Caller != "" {
		verr = verr.WithCaller(e.Caller)
	}
	return verr
}

// As lets errors.As and validator.ExtractValidationErrors see a TypeError as
// validator.ValidationErrors.
func (e *TypeError) As(target any) bool {
	if p, ok := target.(*validator.ValidationErrors); ok {
		*p = validator.ValidationErrors{e.ValidationError()}
		return true
	}
	return false
}
