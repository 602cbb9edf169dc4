package typecheck

import (
	"reflect"
	"strings"

	"github.com/dmitrymomot/helpers/pkg/coerce"
)

type predicate struct {
	name string
	test func(any) bool
}

// predicates is the fixed registry of built-in kinds, keyed by lower-case name.
var predicates = map[string]predicate{}

func init() {
	for _, p := range []predicate{
		{"Array", isArray},
		{"List", isList},
		{"Map", isMap},
		{"Callable", isCallable},
		{"Null", isNull},
		{"Object", isObject},
		{"Iterable", isIterable},
		{"Countable", isIterable},
		{"Numeric", isNumeric},
		{"Scalar", isScalar},
	} {
		predicates[strings.ToLower(p.name)] = p
	}
}

func kindOf(v any) reflect.Kind {
	return reflect.ValueOf(v).Kind()
}

func isArray(v any) bool {
	switch kindOf(v) {
	case reflect.Slice, reflect.Array, reflect.Map:
		return true
	}
	return false
}

func isList(v any) bool {
	switch kindOf(v) {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func isMap(v any) bool {
	return kindOf(v) == reflect.Map
}

func isCallable(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

func isObject(v any) bool {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.Struct
}

func isIterable(v any) bool {
	switch kindOf(v) {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return true
	}
	return false
}

func isNumeric(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	case reflect.String:
		_, err := coerce.ToFloat(v)
		return err == nil
	}
	return false
}

func isScalar(v any) bool {
	switch kindOf(v) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.String, reflect.Bool:
		return true
	}
	return false
}

// IsEmpty is the emptiness test behind NotEmpty: nil, zero-length strings and
// containers, and zero values of every other type are empty. Strings are
// judged by length only, so "0" is not empty and NotEmptyStringOrInt accepts
// "0" as the string "0" rather than falling through to the integer 0.
func IsEmpty(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() == 0
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return rv.IsZero()
}
