package collection

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/dmitrymomot/helpers/pkg/access"
	"github.com/dmitrymomot/helpers/pkg/coerce"
)

// Direction is a sort direction.
type Direction int

const (
	Asc Direction = iota
	Desc
)

// ParseDirection maps "asc" or "desc" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "asc":
		return Asc, nil
	case "desc":
		return Desc, nil
	}
	return Asc, fmt.Errorf("collection: unknown direction %q", s)
}

func (d Direction) String() string {
	if d == Desc {
		return "desc"
	}
	return "asc"
}

// fields resolves path on every item. Unresolvable fields yield nil. How the
// path splits depends on each item, so a bare "v.x" is one key of a map item
// and a nested field of a struct item.
func fields[T any](items []T, path string) ([]any, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidPath)
	}

	expr := access.Expr(path)
	out := make([]any, len(items))
	for i, item := range items {
		v, err := access.Get(item, expr, access.IgnoreErrors())
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidPath, err)
		}
		out[i] = v
	}
	return out, nil
}

// SortBy returns a copy of items stably sorted by the field at path.
func SortBy[T any](items []T, path string, dir Direction) ([]T, error) {
	values, err := fields(items, path)
	if err != nil {
		return nil, err
	}

	type keyed struct {
		item T
		key  any
	}
	pairs := make([]keyed, len(items))
	for i, item := range items {
		pairs[i] = keyed{item: item, key: values[i]}
	}

	slices.SortStableFunc(pairs, func(a, b keyed) int {
		c := Compare(a.key, b.key)
		if dir == Desc {
			return -c
		}
		return c
	})

	sorted := make([]T, len(pairs))
	for i, p := range pairs {
		sorted[i] = p.item
	}
	return sorted, nil
}

// GroupBy buckets items by the string form of the field at path, keeping
// input order inside each bucket.
func GroupBy[T any](items []T, path string) (map[string][]T, error) {
	values, err := fields(items, path)
	if err != nil {
		return nil, err
	}

	groups := make(map[string][]T)
	for i, item := range items {
		k := keyString(values[i])
		groups[k] = append(groups[k], item)
	}
	return groups, nil
}

// IndexBy maps the string form of the field at path to its item. Later items
// replace earlier ones with the same key.
func IndexBy[T any](items []T, path string) (map[string]T, error) {
	values, err := fields(items, path)
	if err != nil {
		return nil, err
	}

	index := make(map[string]T, len(items))
	for i, item := range items {
		index[keyString(values[i])] = item
	}
	return index, nil
}

// Pluck returns the field at path of every item.
func Pluck[T any](items []T, path string) ([]any, error) {
	return fields(items, path)
}

// Compare orders two field values. See the package documentation for the
// rules.
func Compare(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if x, ok := a.(bool); ok {
		if y, ok := b.(bool); ok {
			return cmpBool(x, y)
		}
	}
	if x, ok := a.(time.Time); ok {
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	}
	if isNumber(a) && isNumber(b) {
		x, _ := coerce.ToFloat(a)
		y, _ := coerce.ToFloat(b)
		return cmp.Compare(x, y)
	}
	return strings.Compare(keyString(a), keyString(b))
}

func isNumber(v any) bool {
	if _, ok := v.(bool); ok {
		return false
	}
	_, err := coerce.ToFloat(v)
	return err == nil
}

func cmpBool(x, y bool) int {
	switch {
	case x == y:
		return 0
	case !x:
		return -1
	default:
		return 1
	}
}

func keyString(v any) string {
	if v == nil {
		return ""
	}
	if s, err := coerce.ToString(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}
