package typecheck_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/helpers/pkg/reflectx"
	"github.com/dmitrymomot/helpers/pkg/typecheck"
	"github.com/dmitrymomot/helpers/pkg/validator"
)

type Money struct {
	Amount   int
	Currency string
}

func (m Money) String() string { return fmt.Sprintf("%d %s", m.Amount, m.Currency) }

type Invoice struct {
	Money
	Number string
}

func TestCheck(t *testing.T) {
	t.Parallel()

	now := time.Now()
	id := uuid.New()

	tests := []struct {
		name       string
		value      any
		identifier string
		expected   any
	}{
		{name: "string wins when listed first", value: "5", identifier: "StringOrInt", expected: "5"},
		{name: "integer wins when listed first", value: "5", identifier: "IntOrString", expected: 5},
		{name: "null accepted", value: nil, identifier: "NullOrInt", expected: nil},
		{name: "integer from float", value: 3.0, identifier: "NullOrInt", expected: 3},
		{name: "float from string", value: "1.5", identifier: "Float", expected: 1.5},
		{name: "bool from yes", value: "yes", identifier: "isBool", expected: true},
		{name: "bool from zero", value: 0, identifier: "Bool", expected: false},
		{name: "string from integer", value: 42, identifier: "String", expected: "42"},
		{name: "zero string counts as non-empty", value: "0", identifier: "NotEmptyStringOrInt", expected: "0"},
		{name: "array predicate", value: []int{1}, identifier: "NullOrArray", expected: []int{1}},
		{name: "map is array", value: map[string]int{"a": 1}, identifier: "Array", expected: map[string]int{"a": 1}},
		{name: "numeric string", value: "1e3", identifier: "Numeric", expected: "1e3"},
		{name: "date time instance", value: now, identifier: "NullOrDateTime", expected: now},
		{name: "uuid instance", value: id, identifier: "UUID", expected: id},
		{name: "interface implementation", value: Money{1, "EUR"}, identifier: "Stringer", expected: Money{1, "EUR"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := typecheck.Check("param", tt.value, tt.identifier)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCheck_Rejections(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		value      any
		identifier string
	}{
		{name: "empty string is not a non-empty string", value: "", identifier: "NotEmptyStringOrInt"},
		{name: "empty slice", value: []string{}, identifier: "NotEmptyArray"},
		{name: "non integral float", value: 1.5, identifier: "NullOrInt"},
		{name: "leading zero", value: "007", identifier: "Int"},
		{name: "off is not truthy", value: "off", identifier: "Bool"},
		{name: "empty string is not bool", value: "", identifier: "Bool"},
		{name: "false is empty", value: "false", identifier: "NotEmptyBool"},
		{name: "struct is not integer", value: Money{}, identifier: "Int"},
		{name: "string is not date time", value: "2024-01-01", identifier: "DateTime"},
		{name: "nil is not object", value: nil, identifier: "Object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := typecheck.Check("param", tt.value, tt.identifier)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, typecheck.ErrTypeMismatch)
			assert.NotErrorIs(t, err, typecheck.ErrConfiguration)
		})
	}
}

func TestCheck_TypeError(t *testing.T) {
	t.Parallel()

	t.Run("lists every alternative and the value", func(t *testing.T) {
		_, err := typecheck.Check("limit", "ten", "NullOrInt", typecheck.WithCaller("ListUsers"))

		var typeErr *typecheck.TypeError
		require.ErrorAs(t, err, &typeErr)
		assert.Equal(t, "limit", typeErr.Param)
		assert.Equal(t, "ten", typeErr.Value)
		assert.Equal(t, "ListUsers", typeErr.Caller)
		require.Len(t, typeErr.Tokens(), 2)
		assert.Equal(t, "Null", typeErr.Tokens()[0].Name)
		assert.Equal(t, "Integer", typeErr.Tokens()[1].Name)
		assert.Equal(t, `ListUsers: limit: limit must be null or integer, "ten" given`, err.Error())
	})

	t.Run("non-empty alternatives are named", func(t *testing.T) {
		_, err := typecheck.Check("name", "", "NotEmptyString")
		require.Error(t, err)
		assert.Equal(t, `name: name must be non-empty string, "" given`, err.Error())
	})

	t.Run("extracts as validation errors", func(t *testing.T) {
		_, err := typecheck.Check("tags", 12, "NullOrArray", typecheck.WithCaller("Tagger"))

		errs := validator.ExtractValidationErrors(err)
		require.Len(t, errs, 1)
		assert.True(t, errs.Has("tags"))
		assert.Equal(t, typecheck.TranslationKey, errs[0].TranslationKey)
		assert.Equal(t, "Tagger", errs[0].Caller)
		assert.Equal(t, "null or array", errs[0].TranslationValues["expected"])
		assert.Equal(t, "12", errs[0].TranslationValues["actual"])
		assert.Equal(t, "Tagger", errs[0].TranslationValues["caller"])
		assert.True(t, validator.IsValidationError(err))
	})

	t.Run("rejected input is left untouched", func(t *testing.T) {
		input := []any{"a"}
		_, err := typecheck.Check("p", input, "Int")
		require.Error(t, err)
		assert.Equal(t, []any{"a"}, input)
	})
}

func TestCheck_Configuration(t *testing.T) {
	t.Parallel()

	_, err := typecheck.Check("p", 1, "NullOrBanana")
	require.Error(t, err)
	assert.ErrorIs(t, err, typecheck.ErrUnknownType)
	assert.ErrorIs(t, err, typecheck.ErrConfiguration)
	assert.NotErrorIs(t, err, typecheck.ErrTypeMismatch)

	_, err = typecheck.CheckSpec("p", 1, typecheck.Spec{})
	assert.ErrorIs(t, err, typecheck.ErrInvalidIdentifier)

	_, err = typecheck.CheckAnyOf("p", 1, nil)
	assert.ErrorIs(t, err, typecheck.ErrInvalidIdentifier)
}

func TestCheckType(t *testing.T) {
	t.Parallel()

	got, err := typecheck.CheckType("age", "21", "Int")
	require.NoError(t, err)
	assert.Equal(t, 21, got)

	_, err = typecheck.CheckType("age", "", "NotEmptyString")
	assert.ErrorIs(t, err, typecheck.ErrTypeMismatch)
}

func TestCheckAnyOf(t *testing.T) {
	t.Parallel()

	got, err := typecheck.CheckAnyOf("flag", "on", []string{"Null", "Bool"})
	require.NoError(t, err)
	assert.Equal(t, true, got)

	_, err = typecheck.CheckAnyOf("flag", "on", []string{"Null", "Potato"})
	assert.ErrorIs(t, err, typecheck.ErrUnknownType)
}

func TestCall(t *testing.T) {
	t.Parallel()

	got, err := typecheck.Call("isNullOrInt", "page", "3")
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	_, err = typecheck.Call("NullOrInt", "page", "3")
	assert.ErrorIs(t, err, typecheck.ErrInvalidIdentifier)

	_, err = typecheck.Call("is", "page", "3")
	assert.ErrorIs(t, err, typecheck.ErrConfiguration)
}

func TestRule(t *testing.T) {
	t.Parallel()

	t.Run("aggregates with other rules", func(t *testing.T) {
		err := validator.Apply(
			typecheck.Rule("page", "2", "NullOrInt"),
			typecheck.Rule("email", 42, "NotEmptyArray"),
			typecheck.Rule("tags", nil, "NullOrArray"),
		)
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		errs := validator.ExtractValidationErrors(err)
		assert.Equal(t, []string{"email"}, errs.Fields())
		assert.Equal(t, []string{"email must be non-empty array, 42 given"}, errs.Get("email"))
	})

	t.Run("panics on malformed identifier", func(t *testing.T) {
		assert.Panics(t, func() { typecheck.Rule("p", 1, "OrOr") })
	})
}

func TestWithRegistry(t *testing.T) {
	t.Parallel()

	r := reflectx.NewRegistry()
	require.NoError(t, r.Register("Money", reflectx.TypeOf[Money]()))

	t.Run("embedding counts as ancestry", func(t *testing.T) {
		inv := Invoice{Money: Money{Amount: 10}, Number: "A-1"}
		got, err := typecheck.Check("invoice", inv, "Money", typecheck.WithRegistry(r))
		require.NoError(t, err)
		assert.Equal(t, inv, got)
	})

	t.Run("pointer to instance", func(t *testing.T) {
		m := &Money{Amount: 1}
		got, err := typecheck.Check("m", m, "NullOrMoney", typecheck.WithRegistry(r))
		require.NoError(t, err)
		assert.Same(t, m, got)
	})

	t.Run("unknown in default registry", func(t *testing.T) {
		_, err := typecheck.Check("m", Money{}, "Money")
		assert.ErrorIs(t, err, typecheck.ErrUnknownType)
	})

}

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	var nilPtr *Money

	tests := []struct {
		name     string
		value    any
		expected bool
	}{
		{name: "nil", value: nil, expected: true},
		{name: "empty string", value: "", expected: true},
		{name: "zero string", value: "0", expected: false},
		{name: "zero int", value: 0, expected: true},
		{name: "false", value: false, expected: true},
		{name: "empty slice", value: []int{}, expected: true},
		{name: "empty map", value: map[string]any{}, expected: true},
		{name: "nil pointer", value: nilPtr, expected: true},
		{name: "zero struct", value: Money{}, expected: true},
		{name: "populated struct", value: Money{Amount: 1}, expected: false},
		{name: "text", value: "a", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, typecheck.IsEmpty(tt.value))
		})
	}
}
