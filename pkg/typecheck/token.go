package typecheck

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dmitrymomot/helpers/pkg/coerce"
	"github.com/dmitrymomot/helpers/pkg/reflectx"
	"github.com/dmitrymomot/helpers/pkg/strcase"
)

// TokenKind tells how a token is evaluated.
type TokenKind uint8

const (
	// ScalarToken coerces the value to a scalar kind.
	ScalarToken TokenKind = iota + 1
	// PredicateToken applies a built-in test without coercion.
	PredicateToken
	// TypeToken checks instance-of against a registered Go type.
	TypeToken
)

func (k TokenKind) String() string {
	switch k {
	case ScalarToken:
		return "scalar"
	case PredicateToken:
		return "predicate"
	case TypeToken:
		return "type"
	default:
		return "unknown"
	}
}

// Token is one resolved alternative. The zero value is not usable; tokens
// come from ResolveToken or Parse.
type Token struct {
	Name string
	Kind TokenKind

	scalar coerce.Kind
	test   func(any) bool
	typ    reflect.Type
}

var aliases = map[string]string{
	"int":    "Integer",
	"bool":   "Boolean",
	"double": "Float",
	"str":    "String",
	"func":   "Callable",
	"nil":    "Null",
}

// ResolveToken binds a type name to its evaluation strategy. Scalar kinds win
// over built-in predicates, which win over registered types. A nil registry
// means the default one.
func ResolveToken(name string, registry *reflectx.Registry) (Token, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Token{}, fmt.Errorf("%w: empty type name", ErrInvalidIdentifier)
	}
	if canonical, ok := aliases[strings.ToLower(name)]; ok {
		name = canonical
	}

	if kind, ok := coerce.ParseKind(name); ok {
		return Token{Name: kind.String(), Kind: ScalarToken, scalar: kind}, nil
	}
	if p, ok := predicates[strings.ToLower(name)]; ok {
		return Token{Name: p.name, Kind: PredicateToken, test: p.test}, nil
	}

	if registry == nil {
		registry = reflectx.Default()
	}
	if t, ok := registry.Lookup(name); ok {
		return Token{Name: name, Kind: TypeToken, typ: t}, nil
	}

	return Token{}, fmt.Errorf("%w: %q", ErrUnknownType, name)
}

// Evaluate checks value against the token. Scalar tokens return the coerced
// value; the other kinds return value unchanged.
func (t Token) Evaluate(value any) (any, bool) {
	switch t.Kind {
	case ScalarToken:
		v, err := coerce.To(value, t.scalar)
		if err != nil {
			return value, false
		}
		return v, true
	case PredicateToken:
		return value, t.test(value)
	case TypeToken:
		return value, reflectx.IsInstance(value, t.typ)
	default:
		return value, false
	}
}

// Type returns the Go type behind a TypeToken, or nil.
func (t Token) Type() reflect.Type {
	return t.typ
}

// Human returns the display name used in diagnostics.
func (t Token) Human() string {
	switch t.Kind {
	case TypeToken:
		return t.Name
	default:
		return strcase.Humanize(t.Name)
	}
}

func (t Token) String() string {
	return t.Name
}
