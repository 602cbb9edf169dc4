package access

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/helpers/pkg/coerce"
)

var errorType = reflect.TypeFor[error]()

// mapKeys returns the candidate keys for looking key up in a map with key
// type kt. Interface-keyed maps try the string first, then its integer form.
func mapKeys(kt reflect.Type, key string) ([]reflect.Value, error) {
	if kt.Kind() == reflect.Interface {
		keys := []reflect.Value{reflect.ValueOf(key)}
		if n, err := coerce.ToInt(key); err == nil {
			keys = append(keys, reflect.ValueOf(n))
		}
		return keys, nil
	}

	k, err := convertValue(key, kt)
	if err != nil {
		return nil, fmt.Errorf("map key %q: %w", key, err)
	}
	return []reflect.Value{k}, nil
}

// convertValue turns value into a reflect.Value storable in a slot of type t.
// Assignable values pass through; scalar destinations go through coerce.
func convertValue(value any, t reflect.Type) (reflect.Value, error) {
	if value == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: null into %s", ErrIncompatibleValue, t)
	}

	src := reflect.ValueOf(value)
	if src.Type().AssignableTo(t) {
		return src, nil
	}

	out := reflect.New(t).Elem()
	var err error
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		var n int
		if n, err = coerce.ToInt(value); err == nil {
			if out.OverflowInt(int64(n)) {
				return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrIncompatibleValue, n, t)
			}
			out.SetInt(int64(n))
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		var n int
		if n, err = coerce.ToInt(value); err == nil {
			if n < 0 || out.OverflowUint(uint64(n)) {
				return reflect.Value{}, fmt.Errorf("%w: %d overflows %s", ErrIncompatibleValue, n, t)
			}
			out.SetUint(uint64(n))
		}
	case reflect.Float32, reflect.Float64:
		var f float64
		if f, err = coerce.ToFloat(value); err == nil {
			if out.OverflowFloat(f) {
				return reflect.Value{}, fmt.Errorf("%w: %g overflows %s", ErrIncompatibleValue, f, t)
			}
			out.SetFloat(f)
		}
	case reflect.String:
		var s string
		if s, err = coerce.ToString(value); err == nil {
			out.SetString(s)
		}
	case reflect.Bool:
		var b bool
		if b, err = coerce.ToBool(value); err == nil {
			out.SetBool(b)
		}
	default:
		if src.Kind() == t.Kind() && src.Type().ConvertibleTo(t) {
			return src.Convert(t), nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %s into %s", ErrIncompatibleValue, coerce.Describe(value), t)
	}
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrIncompatibleValue, err)
	}
	return out, nil
}

func isGetter(mt reflect.Type) bool {
	if mt.NumIn() != 0 {
		return false
	}
	switch mt.NumOut() {
	case 1:
		return true
	case 2:
		return mt.Out(1) == errorType
	}
	return false
}

func isSetter(mt reflect.Type) bool {
	if mt.NumIn() != 1 {
		return false
	}
	switch mt.NumOut() {
	case 0:
		return true
	case 1:
		return mt.Out(0) == errorType
	}
	return false
}

// callError extracts the trailing error result of a method call, if any.
func callError(out []reflect.Value) error {
	if len(out) == 0 {
		return nil
	}
	last := out[len(out)-1]
	if last.Type() != errorType || last.IsNil() {
		return nil
	}
	return last.Interface().(error)
}
