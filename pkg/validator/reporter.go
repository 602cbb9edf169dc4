package validator

import (
	"fmt"
	"regexp"
)

var placeholderPattern = regexp.MustCompile(`%\{([^}]+)\}`)

// Interpolate replaces "%{name}" placeholders in template with the matching
// entries of values. Placeholders without a value are left as they are.
func Interpolate(template string, values map[string]any) string {
	if len(values) == 0 {
		return template
	}
	return placeholderPattern.ReplaceAllStringFunc(template, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// NewError builds a ValidationError whose message is template interpolated
// with values. The field name is always available as "%{field}".
func NewError(field, translationKey, template string, values map[string]any) ValidationError {
	params := make(map[string]any, len(values)+1)
	for k, v := range values {
		params[k] = v
	}
	params["field"] = field

	return ValidationError{
		Field:             field,
		Message:           Interpolate(template, params),
		TranslationKey:    translationKey,
		TranslationValues: params,
	}
}
