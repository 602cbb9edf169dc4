// Package reflectx is the reflection facility used by the type checker and
// the property accessor.
//
// It covers three things:
//
//   - A Registry mapping type names ("DateTime", "UUID", "Stringer") to
//     reflect.Type values. Names are case-insensitive. The default registry is
//     built lazily on first use and ships with common standard-library types
//     plus uuid.UUID from github.com/google/uuid.
//   - Instance checks that treat embedded structs as ancestors: a value whose
//     struct embeds Base is an instance of Base, and a value is an instance of
//     an interface when its type implements it.
//   - Field lookup that walks the embedding chain breadth first, matching by
//     exact name, then json tag, then by identifier regardless of naming
//     convention. Lookups are memoised in a process-wide cache.
//
// Unexported fields are reachable through Expose, which hands a writable view
// of the field to a callback. The view never escapes the callback and panics
// raised while using it are returned as errors.
//
// # Usage
//
//	reflectx.Register("Money", reflectx.TypeOf[Money]())
//
//	t, ok := reflectx.Default().Lookup("money")
//	ok = reflectx.IsInstance(order.Total, t)
//
//	f, ok := reflectx.FindField(reflect.TypeOf(user), "password_hash", true)
package reflectx
