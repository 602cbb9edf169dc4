package access

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/dmitrymomot/helpers/pkg/logger"
	"github.com/dmitrymomot/helpers/pkg/reflectx"
)

// PropertyAccessor resolves paths against containers. It holds no per-call
// state and is safe for concurrent use.
type PropertyAccessor struct {
	logger *slog.Logger
}

// AccessorOption configures a PropertyAccessor.
type AccessorOption func(*PropertyAccessor)

// WithLogger sets the logger used for debug records about strategy
// fall-through. Nil loggers are ignored.
func WithLogger(l *slog.Logger) AccessorOption {
	return func(a *PropertyAccessor) {
		if l != nil {
			a.logger = l
		}
	}
}

// NewPropertyAccessor creates an accessor. Without WithLogger nothing is logged.
func NewPropertyAccessor(opts ...AccessorOption) *PropertyAccessor {
	a := &PropertyAccessor{logger: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	a.logger = a.logger.With(logger.Component("access"))
	return a
}

var defaultAccessor = sync.OnceValue(func() *PropertyAccessor {
	return NewPropertyAccessor()
})

// DefaultAccessor returns the process-wide accessor used by the package-level
// functions.
func DefaultAccessor() *PropertyAccessor {
	return defaultAccessor()
}

// Option tunes a single Get, Set or Resolve call.
type Option func(*options)

type options struct {
	def        any
	ignore     bool
	reflection bool
}

// OrDefault makes Get return v instead of an error when the path does not
// resolve.
func OrDefault(v any) Option {
	return func(o *options) {
		o.def = v
		o.ignore = true
	}
}

// IgnoreErrors suppresses resolution failures: Get returns nil (or the
// OrDefault value) and Set becomes a no-op. Invalid paths are still reported.
func IgnoreErrors() Option {
	return func(o *options) { o.ignore = true }
}

// WithReflection enables the fallback that reads and writes unexported
// struct fields when the accessor strategy fails. The fallback walks the
// whole path again, so getters on the leading segments run a second time.
func WithReflection() Option {
	return func(o *options) { o.reflection = true }
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolve reads path from container and reports which strategy produced the
// value. Failures are recorded in Resolution.Err and never replaced by a
// default.
func (a *PropertyAccessor) Resolve(container any, path Path, opts ...Option) Resolution {
	o := buildOptions(opts)

	switch p := path.(type) {
	case Func:
		if p.Get == nil {
			return Resolution{Err: fmt.Errorf("%w: %s has no getter", ErrInvalidPath, p)}
		}
		v, err := callGet(p, container)
		if err != nil {
			return Resolution{Strategy: StrategyOverride, Err: a.fail("get", p, StrategyOverride, err)}
		}
		return Resolution{Strategy: StrategyOverride, Value: v}

	case Expr:
		root := reflect.ValueOf(container)
		segs, err := segmentsFor(root, p)
		if err != nil {
			return Resolution{Err: err}
		}

		v, err := a.read(walker{}, root, segs)
		if err == nil {
			return Resolution{Strategy: StrategyAccessor, Value: v}
		}
		if !o.reflection || !isStruct(root) {
			return Resolution{Strategy: StrategyAccessor, Err: a.fail("get", p, StrategyAccessor, err)}
		}

		a.logger.Debug("accessor strategy failed, trying reflection", logger.Path(p.String()), logger.Error(err))
		v, err = a.read(walker{unexported: true}, root, segs)
		if err != nil {
			return Resolution{Strategy: StrategyReflection, Err: a.fail("get", p, StrategyReflection, err)}
		}
		return Resolution{Strategy: StrategyReflection, Value: v}

	case nil:
		return Resolution{Err: fmt.Errorf("%w: nil path", ErrInvalidPath)}

	default:
		return Resolution{Err: fmt.Errorf("%w: unsupported path type %T", ErrInvalidPath, path)}
	}
}

// Get reads path from container.
//
//	v, err := access.Get(doc, access.Expr("[a][b]"))
//	name, _ := access.Get(user, access.Expr("nickname"), access.OrDefault("anonymous"))
func (a *PropertyAccessor) Get(container any, path Path, opts ...Option) (any, error) {
	res := a.Resolve(container, path, opts...)
	if res.Err == nil {
		return res.Value, nil
	}
	if o := buildOptions(opts); o.ignore && !errors.Is(res.Err, ErrInvalidPath) {
		return o.def, nil
	}
	return nil, res.Err
}

// Set writes value at path inside container. Structs and arrays must be
// passed by pointer; maps and slices are modified in place. Missing
// intermediate entries of map[string]any containers are created. Sequences
// are never extended.
func (a *PropertyAccessor) Set(container any, path Path, value any, opts ...Option) error {
	o := buildOptions(opts)
	_, err := a.write(container, path, value, o)
	if err != nil && o.ignore && !errors.Is(err, ErrInvalidPath) {
		return nil
	}
	return err
}

func (a *PropertyAccessor) write(container any, path Path, value any, o options) (Strategy, error) {
	switch p := path.(type) {
	case Func:
		if p.Set == nil {
			return StrategyNone, fmt.Errorf("%w: %s has no setter", ErrInvalidPath, p)
		}
		if err := callSet(p, container, value); err != nil {
			return StrategyOverride, a.fail("set", p, StrategyOverride, err)
		}
		return StrategyOverride, nil

	case Expr:
		root := reflect.ValueOf(container)
		segs, err := segmentsFor(root, p)
		if err != nil {
			return StrategyNone, err
		}

		if err := writableRoot(root); err != nil {
			return StrategyAccessor, a.fail("set", p, StrategyAccessor, err)
		}

		err = a.store(walker{}, root, segs, value)
		if err == nil {
			return StrategyAccessor, nil
		}
		if !o.reflection || !isStruct(root) {
			return StrategyAccessor, a.fail("set", p, StrategyAccessor, err)
		}

		a.logger.Debug("accessor strategy failed, trying reflection", logger.Path(p.String()), logger.Error(err))
		if err := a.store(walker{unexported: true}, root, segs, value); err != nil {
			return StrategyReflection, a.fail("set", p, StrategyReflection, err)
		}
		return StrategyReflection, nil

	case nil:
		return StrategyNone, fmt.Errorf("%w: nil path", ErrInvalidPath)

	default:
		return StrategyNone, fmt.Errorf("%w: unsupported path type %T", ErrInvalidPath, path)
	}
}

func (a *PropertyAccessor) read(w walker, root reflect.Value, segs []Segment) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCallback, r)
		}
	}()

	out, err := w.get(root, segs)
	if err != nil {
		return nil, err
	}
	if !out.IsValid() {
		return nil, nil
	}
	return out.Interface(), nil
}

func (a *PropertyAccessor) store(w walker, root reflect.Value, segs []Segment, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCallback, r)
		}
	}()

	_, err = w.set(root, segs, value)
	return err
}

func (a *PropertyAccessor) fail(op string, p Path, s Strategy, err error) error {
	a.logger.Debug("path not resolved",
		slog.String("op", op),
		logger.Path(p.String()),
		logger.Strategy(s),
		logger.Error(err),
	)
	return &Error{Op: op, Path: p.String(), Strategy: s, Err: err}
}

// segmentsFor splits p for root. On maps, slices and arrays a bare
// expression is a single key, so "a.b" names the entry "a.b"; expressions
// starting with a bracket are parsed. Struct roots always parse.
func segmentsFor(root reflect.Value, p Expr) ([]Segment, error) {
	expr := string(p)
	if strings.HasPrefix(expr, "[") || strings.TrimSpace(expr) == "" {
		return ParsePath(expr)
	}
	switch reflectx.Indirect(root).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return []Segment{{Key: expr, Bracketed: true}}, nil
	}
	return ParsePath(expr)
}

// writableRoot rejects containers whose modification the caller could not see.
func writableRoot(root reflect.Value) error {
	switch root.Kind() {
	case reflect.Invalid:
		return ErrNilValue
	case reflect.Pointer, reflect.Map:
		if root.IsNil() {
			return ErrNilValue
		}
		return nil
	case reflect.Slice:
		return nil
	default:
		return fmt.Errorf("%w: %s passed by value", ErrNotAddressable, root.Type())
	}
}

func isStruct(root reflect.Value) bool {
	v := reflectx.Indirect(root)
	return v.IsValid() && v.Kind() == reflect.Struct
}

func callGet(p Func, container any) (v any, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCallback, r)
		}
	}()

	v, err = p.Get(container)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCallback, err)
	}
	return v, nil
}

func callSet(p Func, container, value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: panic: %v", ErrCallback, r)
		}
	}()

	if err := p.Set(container, value); err != nil {
		return fmt.Errorf("%w: %w", ErrCallback, err)
	}
	return nil
}

// Resolve reads path from container with the default accessor.
func Resolve(container any, path Path, opts ...Option) Resolution {
	return DefaultAccessor().Resolve(container, path, opts...)
}

// Get reads path from container with the default accessor.
func Get(container any, path Path, opts ...Option) (any, error) {
	return DefaultAccessor().Get(container, path, opts...)
}

// Set writes value at path inside container with the default accessor.
func Set(container any, path Path, value any, opts ...Option) error {
	return DefaultAccessor().Set(container, path, value, opts...)
}

// MustGet reads a structured path and panics when it does not resolve.
func MustGet(container any, expr string, opts ...Option) any {
	v, err := Get(container, Expr(expr), opts...)
	if err != nil {
		panic(err)
	}
	return v
}
