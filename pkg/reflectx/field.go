package reflectx

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"

	"github.com/dmitrymomot/helpers/pkg/strcase"
)

// Field is a struct field located by FindField.
type Field struct {
	reflect.StructField
	// Index is the full index path from the searched type, usable with
	// reflect.Value.FieldByIndexErr.
	Index []int
	// Owner is the struct type that declares the field.
	Owner reflect.Type
}

// Exported reports whether the field is visible outside its package.
func (f Field) Exported() bool {
	return f.StructField.IsExported()
}

type fieldKey struct {
	typ        reflect.Type
	name       string
	unexported bool
}

type fieldResult struct {
	field Field
	ok    bool
}

// fieldCache memoises FindField. Entries are immutable once stored.
type fieldCache struct {
	entries sync.Map
}

var fields = sync.OnceValue(func() *fieldCache {
	return &fieldCache{}
})

// FindField locates the field called name on t or on one of the structs it
// embeds, nearest ancestor first. Within one struct an exact name wins over a
// json tag, which wins over a convention-insensitive match ("first_name" finds
// FirstName). Unexported fields are considered only when unexported is true.
func FindField(t reflect.Type, name string, unexported bool) (Field, bool) {
	t = indirectType(t)
	if t == nil || t.Kind() != reflect.Struct || name == "" {
		return Field{}, false
	}

	key := fieldKey{typ: t, name: name, unexported: unexported}
	cache := fields()
	if cached, ok := cache.entries.Load(key); ok {
		r := cached.(fieldResult)
		return r.field, r.ok
	}

	f, ok := findField(t, name, unexported)
	cache.entries.Store(key, fieldResult{field: f, ok: ok})
	return f, ok
}

type candidate struct {
	typ   reflect.Type
	index []int
}

func findField(root reflect.Type, name string, unexported bool) (Field, bool) {
	seen := map[reflect.Type]bool{root: true}
	queue := []candidate{{typ: root}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if f, ok := matchField(cur, name, unexported); ok {
			return f, true
		}

		for i := 0; i < cur.typ.NumField(); i++ {
			sf := cur.typ.Field(i)
			if !sf.Anonymous {
				continue
			}
			ft := indirectType(sf.Type)
			if ft.Kind() != reflect.Struct || seen[ft] {
				continue
			}
			seen[ft] = true
			queue = append(queue, candidate{typ: ft, index: appendIndex(cur.index, i)})
		}
	}
	return Field{}, false
}

func matchField(c candidate, name string, unexported bool) (Field, bool) {
	matchers := []func(reflect.StructField) bool{
		func(sf reflect.StructField) bool { return sf.Name == name },
		func(sf reflect.StructField) bool { return jsonName(sf) == name },
		func(sf reflect.StructField) bool { return strcase.SameIdentifier(sf.Name, name) },
	}

	for _, match := range matchers {
		for i := 0; i < c.typ.NumField(); i++ {
			sf := c.typ.Field(i)
			if !sf.IsExported() && !unexported {
				continue
			}
			if match(sf) {
				return Field{StructField: sf, Index: appendIndex(c.index, i), Owner: c.typ}, true
			}
		}
	}
	return Field{}, false
}

func jsonName(sf reflect.StructField) string {
	tag := sf.Tag.Get("json")
	if tag == "" || tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	return name
}

func appendIndex(index []int, i int) []int {
	out := make([]int, len(index), len(index)+1)
	copy(out, index)
	return append(out, i)
}

// Expose calls fn with a view of field that can be read and written even when
// the field is unexported. The view must not be retained after fn returns.
// Panics raised inside fn are recovered and returned wrapped in ErrAccess.
func Expose(field reflect.Value, fn func(view reflect.Value) error) (err error) {
	if !field.IsValid() || !field.CanAddr() {
		return ErrNotAddressable
	}

	view := field
	if !field.CanSet() {
		view = reflect.NewAt(field.Type(), unsafe.Pointer(field.UnsafeAddr())).Elem()
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrAccess, r)
		}
	}()

	return fn(view)
}
