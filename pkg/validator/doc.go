// Package validator holds the error model shared by every check in the
// module, plus a tiny rule runner.
//
// A ValidationError describes one failed check: the field, a human-readable
// message, a translation key with its parameters, and an optional caller label
// naming the function that ran the check. ValidationErrors aggregates them and
// implements error, unwrapping to ErrValidationFailed.
//
// # Messages
//
// Messages are built from templates with "%{name}" placeholders, the same
// syntax translation files use, so the parameters stored in TranslationValues
// can be fed straight into a translator:
//
//	e := validator.NewError("age", "validation.type",
//	    "%{field} must be %{expected}, %{actual} given",
//	    map[string]any{"expected": "integer", "actual": `"abc"`},
//	)
//	e = e.WithCaller("UserService.Create")
//	// e.Error() == `UserService.Create: age: age must be integer, "abc" given`
//
// # Rules
//
//	err := validator.Apply(
//	    typecheck.Rule("age", age, "Int"),
//	    typecheck.Rule("email", email, "NotEmptyString"),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() { ... }
//	}
package validator
