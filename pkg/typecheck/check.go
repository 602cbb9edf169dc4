package typecheck

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/helpers/pkg/reflectx"
	"github.com/dmitrymomot/helpers/pkg/validator"
)

// Option configures a single check.
type Option func(*options)

type options struct {
	caller   string
	registry *reflectx.Registry
}

// WithCaller labels failures with the calling context, e.g. "UserService.Create".
func WithCaller(caller string) Option {
	return func(o *options) { o.caller = caller }
}

// WithRegistry resolves type tokens against r instead of the default registry.
// Nil registries are ignored.
func WithRegistry(r *reflectx.Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{registry: reflectx.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Check validates value against the spec encoded in identifier and returns
// the value as accepted by the first matching alternative. Scalar
// alternatives return the coerced value; value itself is never modified.
//
//	v, err := typecheck.Check("limit", "10", "NullOrInt") // v == 10
//
// Malformed identifiers and unknown types return errors wrapping
// ErrConfiguration. A value matching no alternative returns a *TypeError.
func Check(param string, value any, identifier string, opts ...Option) (any, error) {
	o := buildOptions(opts)
	spec, err := parseWith(identifier, o.registry)
	if err != nil {
		return nil, err
	}
	return checkSpec(param, value, spec, o)
}

// CheckSpec is Check for an already parsed spec.
func CheckSpec(param string, value any, spec Spec, opts ...Option) (any, error) {
	return checkSpec(param, value, spec, buildOptions(opts))
}

// CheckType checks value against a single type name, which may carry the
// NotEmpty modifier.
func CheckType(param string, value any, typeName string, opts ...Option) (any, error) {
	return CheckAnyOf(param, value, []string{typeName}, opts...)
}

// CheckAnyOf checks value against an explicit list of type names, first match wins.
func CheckAnyOf(param string, value any, typeNames []string, opts ...Option) (any, error) {
	o := buildOptions(opts)
	if len(typeNames) == 0 {
		return nil, fmt.Errorf("%w: no alternatives", ErrInvalidIdentifier)
	}

	entries := make([]Entry, 0, len(typeNames))
	for _, name := range typeNames {
		entry, err := parseSegment(name, o.registry)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return checkSpec(param, value, Spec{Entries: entries}, o)
}

// Call runs a named validator such as "isNullOrInt". Names without the "is"
// prefix are rejected as configuration errors.
func Call(name, param string, value any, opts ...Option) (any, error) {
	if !strings.HasPrefix(name, validatorPrefix) || len(name) == len(validatorPrefix) {
		return nil, fmt.Errorf("%w: validator name %q must start with %q", ErrInvalidIdentifier, name, validatorPrefix)
	}
	return Check(param, value, name, opts...)
}

// Rule adapts a check to validator.Apply. It panics when identifier is
// malformed, the same way regexp.MustCompile does.
func Rule(param string, value any, identifier string, opts ...Option) validator.Rule {
	o := buildOptions(opts)
	spec, err := parseWith(identifier, o.registry)
	if err != nil {
		panic(err)
	}

	return validator.Rule{
		Check: func() bool {
			_, err := checkSpec(param, value, spec, o)
			return err == nil
		},
		Error: newTypeError(param, value, spec.Entries, o.caller).ValidationError(),
	}
}

func checkSpec(param string, value any, spec Spec, o options) (any, error) {
	if len(spec.Entries) == 0 {
		return nil, fmt.Errorf("%w: empty spec", ErrInvalidIdentifier)
	}

	for _, entry := range spec.Entries {
		accepted, ok := entry.Token.Evaluate(value)
		if !ok {
			continue
		}
		if entry.RequireNonEmpty && IsEmpty(accepted) {
			continue
		}
		return accepted, nil
	}

	return nil, newTypeError(param, value, spec.Entries, o.caller)
}
