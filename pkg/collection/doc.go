// Package collection orders, groups and projects slices of heterogeneous
// items by a named field, resolved through package access. Items may be maps,
// structs, pointers to structs or any mix of them.
//
//	sorted, err := collection.SortBy(users, "profile.age", collection.Desc)
//	byRole, err := collection.GroupBy(users, "role")
//
// Items whose field does not resolve contribute nil: it sorts before every
// other value and groups under the empty key.
//
// # Ordering
//
// Compare decides the order of two field values:
//
//   - nil sorts first
//   - two booleans compare false before true
//   - two time.Time values compare chronologically
//   - two values that both pass the strict float filter of package coerce
//     compare numerically, so "9" sorts before "10"
//   - everything else compares by its string form, byte by byte
package collection
