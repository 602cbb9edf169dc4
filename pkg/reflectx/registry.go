package reflectx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry binds type names to reflect.Type values. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]entry
}

type entry struct {
	name string
	typ  reflect.Type
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]entry)}
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r := NewRegistry()
	for name, t := range map[string]reflect.Type{
		"Time":          TypeOf[time.Time](),
		"DateTime":      TypeOf[time.Time](),
		"Duration":      TypeOf[time.Duration](),
		"Location":      TypeOf[time.Location](),
		"URL":           TypeOf[url.URL](),
		"UUID":          TypeOf[uuid.UUID](),
		"Error":         TypeOf[error](),
		"Stringer":      TypeOf[fmt.Stringer](),
		"Reader":        TypeOf[io.Reader](),
		"Writer":        TypeOf[io.Writer](),
		"Closer":        TypeOf[io.Closer](),
		"Context":       TypeOf[context.Context](),
		"JSONMarshaler": TypeOf[json.Marshaler](),
	} {
		_ = r.Register(name, t)
	}
	return r
})

// Default returns the process-wide registry, building it on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Register binds name to t in the default registry.
func Register(name string, t reflect.Type) error {
	return Default().Register(name, t)
}

// TypeOf returns the reflect.Type of T. Unlike reflect.TypeOf it works for
// interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Register binds name to t. Registering the same pair twice is a no-op;
// binding an existing name to another type fails with ErrTypeConflict.
func (r *Registry) Register(name string, t reflect.Type) error {
	name = strings.TrimSpace(name)
	if name == "" || t == nil {
		return fmt.Errorf("%w: name %q, type %v", ErrInvalidType, name, t)
	}

	key := strings.ToLower(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.types[key]; ok {
		if existing.typ == t {
			return nil
		}
		return fmt.Errorf("%w: %s is %s", ErrTypeConflict, existing.name, existing.typ)
	}
	r.types[key] = entry{name: name, typ: t}
	return nil
}

// Lookup resolves a type name, ignoring case.
func (r *Registry) Lookup(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.types[strings.ToLower(strings.TrimSpace(name))]
	return e.typ, ok
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.types))
	for _, e := range r.types {
		names = append(names, e.name)
	}
	sort.Strings(names)
	return names
}
