// Package access reads and writes members of loosely typed values by path.
//
// A Path is either an Expr, a structured expression, or a Func holding
// callbacks. Expressions are made of bracketed segments ("[a][b]") and bare
// identifiers joined by dots ("user.email", "items[0].id").
//
// The container decides how a bare expression is read. On a struct it is
// split on dots and brackets. On a map, slice or array it is one key, so
// "user.name" names the entry "user.name" of a map; write "[user][name]" to
// descend. Expressions that start with "[" are always split.
//
// # Strategies
//
// Each call resolves through the first applicable strategy:
//
//  1. Override: a Func path calls its Get or Set callback. Errors and panics
//     raised by the callback are wrapped in ErrCallback.
//  2. Accessor: maps are indexed by key (converted to the map's key type),
//     slices and arrays by position, and structs by accessor method
//     (GetName, Name, IsName, HasName; SetName for writes) or by exported
//     field. Fields match by name, json tag, or naming convention, so
//     "first_name" finds FirstName. Methods are tried before fields: a type
//     with a String method resolves "string" through the method even when a
//     field is tagged json:"string".
//  3. Reflection: with WithReflection, struct containers that the accessor
//     strategy could not resolve are retried with unexported fields visible,
//     including those of embedded structs.
//
// # Failures
//
// A path that resolves nowhere returns an *Error wrapping ErrNotResolvable
// and the innermost cause. OrDefault and IgnoreErrors turn that into a
// default value for Get and a no-op for Set. Malformed paths return
// ErrInvalidPath regardless of options.
//
//	email, err := access.Get(user, access.Expr("email"))
//	nick, _ := access.Get(user, access.Expr("nickname"), access.OrDefault("anonymous"))
//	err = access.Set(&doc, access.Expr("[meta][owner]"), "ops")
package access
