package coerce

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

var (
	intPattern   = regexp.MustCompile(`^[+-]?(0|[1-9][0-9]*)$`)
	floatPattern = regexp.MustCompile(`^[+-]?([0-9]+(\.[0-9]*)?|\.[0-9]+)([eE][+-]?[0-9]+)?$`)
)

// To converts value to the given kind. The returned value has the Go type
// matching the kind: int, float64, string or bool.
func To(value any, kind Kind) (any, error) {
	switch kind {
	case Integer:
		return ToInt(value)
	case Float:
		return ToFloat(value)
	case String:
		return ToString(value)
	case Boolean:
		return ToBool(value)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, kind)
	}
}

// ToString converts value to a string.
func ToString(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	}

	// Named string types (json.Number, custom enums) keep their text.
	if rv := reflect.ValueOf(value); rv.Kind() == reflect.String {
		return rv.String(), nil
	}

	s, err := cast.ToStringE(value)
	if err != nil {
		return "", reject(value, String)
	}
	return s, nil
}

// ToBool converts value to a bool. Falsy literals are checked before the
// truthy filter, and anything the filter does not recognise is rejected.
func ToBool(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}

	rv := reflect.ValueOf(value)
	var text string
	switch rv.Kind() {
	case reflect.String:
		text = strings.TrimSpace(rv.String())
		if text == "0" || strings.EqualFold(text, "false") {
			return false, nil
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() == 0 {
			return false, nil
		}
		text = strconv.FormatInt(rv.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if rv.Uint() == 0 {
			return false, nil
		}
		text = strconv.FormatUint(rv.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		if rv.Float() == 0 {
			return false, nil
		}
		text = strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return false, reject(value, Boolean)
	}

	switch strings.ToLower(text) {
	case "true", "1", "yes", "on":
		return true, nil
	}
	return false, reject(value, Boolean)
}

// ToInt converts value to an int using the strict integer filter.
func ToInt(value any) (int, error) {
	if b, ok := value.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, reject(value, Integer)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, reject(value, Integer)
		}
		return int(n), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n := rv.Uint()
		if n > math.MaxInt {
			return 0, reject(value, Integer)
		}
		return int(n), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
			return 0, reject(value, Integer)
		}
		if f < math.MinInt || f >= math.MaxInt {
			return 0, reject(value, Integer)
		}
		return int(f), nil
	case reflect.String:
		text := strings.TrimSpace(rv.String())
		if !intPattern.MatchString(text) {
			return 0, reject(value, Integer)
		}
		n, err := strconv.ParseInt(text, 10, strconv.IntSize)
		if err != nil {
			return 0, reject(value, Integer)
		}
		return int(n), nil
	default:
		return 0, reject(value, Integer)
	}
}

// ToFloat converts value to a float64 using the strict float filter.
func ToFloat(value any) (float64, error) {
	if b, ok := value.(bool); ok {
		if b {
			return 1, nil
		}
		return 0, reject(value, Float)
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, reject(value, Float)
		}
		return f, nil
	case reflect.String:
		text := strings.TrimSpace(rv.String())
		if !floatPattern.MatchString(text) {
			return 0, reject(value, Float)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return 0, reject(value, Float)
		}
		return f, nil
	default:
		return 0, reject(value, Float)
	}
}

// Describe renders value for diagnostics: strings are quoted, nil is "null",
// scalars print as literals and composite values print their shape.
func Describe(value any) string {
	if value == nil {
		return "null"
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String())
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return fmt.Sprint(value)
	case reflect.Slice, reflect.Array:
		return fmt.Sprintf("array(%d)", rv.Len())
	case reflect.Map:
		return fmt.Sprintf("map(%d)", rv.Len())
	case reflect.Func:
		return "callable"
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return "null"
		}
		if s, ok := value.(fmt.Stringer); ok {
			return strconv.Quote(s.String())
		}
		return "object(" + rv.Type().String() + ")"
	default:
		if s, ok := value.(fmt.Stringer); ok {
			return strconv.Quote(s.String())
		}
		return "object(" + rv.Type().String() + ")"
	}
}
