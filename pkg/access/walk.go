package access

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/helpers/pkg/coerce"
	"github.com/dmitrymomot/helpers/pkg/reflectx"
	"github.com/dmitrymomot/helpers/pkg/strcase"
)

// getterPrefixes are tried in order before falling back to a field.
var getterPrefixes = []string{"Get", "", "Is", "Has"}

// walker resolves structured paths. With unexported set it also reaches
// unexported struct fields through reflectx.Expose.
type walker struct {
	unexported bool
}

func (w walker) get(root reflect.Value, segs []Segment) (reflect.Value, error) {
	cur := root
	for i, seg := range segs {
		next, err := w.step(cur, seg.Key)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("at %s: %w", joinSegments(segs[:i+1]), err)
		}
		cur = next
	}
	return cur, nil
}

func (w walker) step(cur reflect.Value, key string) (reflect.Value, error) {
	v := reflectx.Indirect(cur)
	if !v.IsValid() {
		return reflect.Value{}, ErrNilValue
	}

	switch v.Kind() {
	case reflect.Map:
		keys, err := mapKeys(v.Type().Key(), key)
		if err != nil {
			return reflect.Value{}, err
		}
		for _, k := range keys {
			if val := v.MapIndex(k); val.IsValid() {
				return val, nil
			}
		}
		return reflect.Value{}, fmt.Errorf("%w: key %q", ErrMemberNotFound, key)
	case reflect.Slice, reflect.Array:
		i, err := index(v, key)
		if err != nil {
			return reflect.Value{}, err
		}
		return v.Index(i), nil
	case reflect.Struct:
		return w.member(v, key)
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotContainer, v.Type())
	}
}

// member reads key from struct v: getter methods first, then the field.
func (w walker) member(v reflect.Value, key string) (reflect.Value, error) {
	name := strcase.ToPascalCase(key)
	for _, prefix := range getterPrefixes {
		m, ok := reflectx.Method(v, prefix+name)
		if !ok || !isGetter(m.Type()) {
			continue
		}
		out := m.Call(nil)
		if len(out) == 2 {
			if err := callError(out); err != nil {
				return reflect.Value{}, fmt.Errorf("%w: %s%s: %w", ErrCallback, prefix, name, err)
			}
		}
		return out[0], nil
	}

	f, ok := reflectx.FindField(v.Type(), key, w.unexported)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s has no member %q", ErrMemberNotFound, v.Type(), key)
	}
	if f.Exported() {
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("%w: %w", ErrNilValue, err)
		}
		return fv, nil
	}

	if !v.CanAddr() {
		tmp := reflect.New(v.Type()).Elem()
		tmp.Set(v)
		v = tmp
	}
	fv, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return reflect.Value{}, fmt.Errorf("%w: %w", ErrNilValue, err)
	}

	var out reflect.Value
	err = reflectx.Expose(fv, func(view reflect.Value) error {
		out = reflect.New(view.Type()).Elem()
		out.Set(view)
		return nil
	})
	return out, err
}

// set stores value at segs below v and returns the value to write back into
// the slot v came from. Values that are not addressable (map entries, structs
// held in interfaces) are copied, modified and handed back.
func (w walker) set(v reflect.Value, segs []Segment, value any) (reflect.Value, error) {
	key := segs[0].Key
	last := len(segs) == 1

	switch v.Kind() {
	case reflect.Interface:
		inner := v.Elem()
		if v.IsNil() {
			inner = reflect.ValueOf(map[string]any{})
		}
		updated, err := w.set(inner, segs, value)
		if err != nil {
			return reflect.Value{}, err
		}
		if !updated.Type().AssignableTo(v.Type()) {
			return reflect.Value{}, fmt.Errorf("%w: %s into %s", ErrIncompatibleValue, updated.Type(), v.Type())
		}
		out := reflect.New(v.Type()).Elem()
		out.Set(updated)
		return out, nil

	case reflect.Pointer:
		if v.IsNil() {
			return reflect.Value{}, ErrNilValue
		}
		elem := v.Elem()
		updated, err := w.set(elem, segs, value)
		if err != nil {
			return reflect.Value{}, err
		}
		elem.Set(updated)
		return v, nil

	case reflect.Map:
		if v.IsNil() {
			v = reflect.MakeMap(v.Type())
		}
		keys, err := mapKeys(v.Type().Key(), key)
		if err != nil {
			return reflect.Value{}, err
		}
		k := keys[0]
		for _, candidate := range keys {
			if v.MapIndex(candidate).IsValid() {
				k = candidate
				break
			}
		}

		et := v.Type().Elem()
		if last {
			nv, err := convertValue(value, et)
			if err != nil {
				return reflect.Value{}, err
			}
			v.SetMapIndex(k, nv)
			return v, nil
		}

		child := reflect.New(et).Elem()
		if existing := v.MapIndex(k); existing.IsValid() {
			child.Set(existing)
		} else if err := prepareMissing(child, key); err != nil {
			return reflect.Value{}, err
		}
		updated, err := w.set(child, segs[1:], value)
		if err != nil {
			return reflect.Value{}, err
		}
		v.SetMapIndex(k, updated)
		return v, nil

	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Array && !v.CanAddr() {
			v = addressableCopy(v)
		}
		i, err := index(v, key)
		if err != nil {
			return reflect.Value{}, err
		}
		if err := w.store(v.Index(i), segs[1:], value); err != nil {
			return reflect.Value{}, err
		}
		return v, nil

	case reflect.Struct:
		if !v.CanAddr() {
			v = addressableCopy(v)
		}
		if err := w.setMember(v, segs, value); err != nil {
			return reflect.Value{}, err
		}
		return v, nil

	default:
		return reflect.Value{}, fmt.Errorf("%w: %s", ErrNotContainer, v.Type())
	}
}

// store writes value into dst when rest is empty, or descends into dst.
func (w walker) store(dst reflect.Value, rest []Segment, value any) error {
	if !dst.CanSet() {
		return ErrNotAddressable
	}
	if len(rest) == 0 {
		nv, err := convertValue(value, dst.Type())
		if err != nil {
			return err
		}
		dst.Set(nv)
		return nil
	}
	updated, err := w.set(dst, rest, value)
	if err != nil {
		return err
	}
	dst.Set(updated)
	return nil
}

// setMember writes into addressable struct v: a Set<Name> method for the last
// segment, otherwise the field. Intermediate segments without a field may
// descend through a getter returning a pointer, map or slice.
func (w walker) setMember(v reflect.Value, segs []Segment, value any) error {
	key := segs[0].Key
	name := strcase.ToPascalCase(key)

	if len(segs) == 1 {
		if m, ok := reflectx.Method(v, "Set"+name); ok && isSetter(m.Type()) {
			arg, err := convertValue(value, m.Type().In(0))
			if err != nil {
				return err
			}
			if err := callError(m.Call([]reflect.Value{arg})); err != nil {
				return fmt.Errorf("%w: Set%s: %w", ErrCallback, name, err)
			}
			return nil
		}
	}

	f, ok := reflectx.FindField(v.Type(), key, w.unexported)
	if !ok {
		if len(segs) > 1 {
			if ref, ok := w.reference(v, name); ok {
				_, err := w.set(ref, segs[1:], value)
				return err
			}
		}
		return fmt.Errorf("%w: %s has no member %q", ErrMemberNotFound, v.Type(), key)
	}

	fv, err := v.FieldByIndexErr(f.Index)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNilValue, err)
	}
	if fv.CanSet() {
		return w.store(fv, segs[1:], value)
	}
	return reflectx.Expose(fv, func(view reflect.Value) error {
		return w.store(view, segs[1:], value)
	})
}

// reference returns the result of a getter when it shares memory with v.
func (w walker) reference(v reflect.Value, name string) (reflect.Value, bool) {
	for _, prefix := range getterPrefixes {
		m, ok := reflectx.Method(v, prefix+name)
		if !ok || !isGetter(m.Type()) {
			continue
		}
		out := m.Call(nil)
		if len(out) == 2 && callError(out) != nil {
			return reflect.Value{}, false
		}
		switch out[0].Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice:
			if !out[0].IsNil() {
				return out[0], true
			}
		}
		return reflect.Value{}, false
	}
	return reflect.Value{}, false
}

// prepareMissing initialises an absent intermediate map entry. Untyped
// entries become map[string]any, typed maps and struct pointers are
// allocated; anything else is reported missing.
func prepareMissing(slot reflect.Value, key string) error {
	t := slot.Type()
	switch {
	case t.Kind() == reflect.Interface && t.NumMethod() == 0:
		slot.Set(reflect.ValueOf(map[string]any{}))
	case t.Kind() == reflect.Map:
		slot.Set(reflect.MakeMap(t))
	case t.Kind() == reflect.Pointer && t.Elem().Kind() == reflect.Struct:
		slot.Set(reflect.New(t.Elem()))
	default:
		return fmt.Errorf("%w: key %q", ErrMemberNotFound, key)
	}
	return nil
}

func addressableCopy(v reflect.Value) reflect.Value {
	tmp := reflect.New(v.Type()).Elem()
	tmp.Set(v)
	return tmp
}

// index parses key as a position in v. Sequences never grow.
func index(v reflect.Value, key string) (int, error) {
	i, err := coerce.ToInt(key)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q", ErrMemberNotFound, key)
	}
	if i < 0 || i >= v.Len() {
		return 0, fmt.Errorf("%w: index %d out of range [0,%d)", ErrMemberNotFound, i, v.Len())
	}
	return i, nil
}

func joinSegments(segs []Segment) string {
	var s string
	for _, seg := range segs {
		s += "[" + seg.Key + "]"
	}
	return s
}
