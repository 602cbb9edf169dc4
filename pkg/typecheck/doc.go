// Package typecheck checks loosely typed values against composite types
// written as identifiers, the way a validator method name reads:
//
//	isNullOrInt
//	NotEmptyStringOrInt
//	NullOrUUIDOrDateTime
//
// # Identifiers
//
// An identifier is a list of alternatives joined by "Or". "Or" only separates
// when it is followed by an upper-case letter, so names such as "Order" stay
// intact. An alternative may start with "NotEmpty", which additionally
// rejects empty values (see IsEmpty). A leading "is" is ignored.
//
// Each alternative names one of:
//
//   - a scalar kind: Integer (Int), Float (Double), String (Str), Boolean (Bool).
//     The value is coerced with package coerce and the coerced value is what
//     the check returns.
//   - a built-in predicate: Array, List, Map, Callable, Null, Object, Iterable,
//     Countable, Numeric, Scalar. No coercion happens.
//   - a type registered in a reflectx.Registry (DateTime, UUID, Stringer, ...).
//     The value must be an instance of the type, embed it, or implement it.
//
// # Order matters
//
// Alternatives are tried left to right and the first that matches wins. With
// "StringOrInt" the value "5" stays the string "5"; with "IntOrString" it
// becomes the integer 5.
//
// # Errors
//
// Configuration problems (malformed identifiers, unknown types) wrap
// ErrConfiguration and are returned before the value is looked at. A value
// matching nothing produces a *TypeError listing every attempted alternative
// and the supplied value. TypeError converts to validator.ValidationErrors, so
// it travels through validator.ExtractValidationErrors unchanged.
//
// # Usage
//
//	limit, err := typecheck.Check("limit", r.URL.Query().Get("limit"), "NullOrInt",
//	    typecheck.WithCaller("ListUsers"),
//	)
//	if errors.Is(err, typecheck.ErrTypeMismatch) {
//	    // ListUsers: limit: limit must be null or integer, "ten" given
//	}
//
// Parsed identifiers are memoised in a bounded LRU cache, so calling Check
// with a constant identifier in a hot path costs one map lookup for parsing.
package typecheck
