package reflectx

import "reflect"

// IsInstance reports whether value is an instance of t or of a type that
// embeds t. Pointers are followed, so *T counts as an instance of T. When t is
// an interface the value's dynamic type must implement it.
func IsInstance(value any, t reflect.Type) bool {
	if value == nil || t == nil {
		return false
	}

	vt := reflect.TypeOf(value)
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}

	for _, a := range Ancestors(vt) {
		if a == t {
			return true
		}
	}
	return false
}

// Ancestors returns t (dereferenced) followed by every struct type it embeds,
// nearest first. Pointer embeddings are followed.
func Ancestors(t reflect.Type) []reflect.Type {
	t = indirectType(t)
	if t == nil {
		return nil
	}

	seen := map[reflect.Type]bool{t: true}
	out := []reflect.Type{t}
	for i := 0; i < len(out); i++ {
		cur := out[i]
		if cur.Kind() != reflect.Struct {
			continue
		}
		for j := 0; j < cur.NumField(); j++ {
			f := cur.Field(j)
			if !f.Anonymous {
				continue
			}
			ft := indirectType(f.Type)
			if !seen[ft] {
				seen[ft] = true
				out = append(out, ft)
			}
		}
	}
	return out
}

// Indirect follows pointers and interfaces until it reaches a concrete value.
// The returned value is invalid when a nil is encountered.
func Indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}

// Method finds an exported method by name on v, trying the pointer method set
// when v is addressable.
func Method(v reflect.Value, name string) (reflect.Value, bool) {
	if !v.IsValid() {
		return reflect.Value{}, false
	}
	if m := v.MethodByName(name); m.IsValid() {
		return m, true
	}
	if v.Kind() != reflect.Pointer && v.CanAddr() {
		if m := v.Addr().MethodByName(name); m.IsValid() {
			return m, true
		}
	}
	return reflect.Value{}, false
}
