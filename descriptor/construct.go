package descriptor

import "reflect"

// Initializer is the constructor path for cast targets: a pointer-receiver
// InitDefaults is run right after allocation when the caller asks for it.
type Initializer interface {
	InitDefaults()
}

// NewInstance allocates a fresh addressable value of the descriptor's type.
//
// With useConstructor false the instance starts at its zero value, the
// equivalent of bypassing construction. With useConstructor true the
// type's InitDefaults method runs after allocation, if implemented; a type
// without one still allocates, the flag is a request, not a requirement.
func NewInstance(d *Descriptor, useConstructor bool) reflect.Value {
	p := reflect.New(d.Type)

	if useConstructor {
		if init, ok := p.Interface().(Initializer); ok {
			init.InitDefaults()
		}
	}

	return p.Elem()
}

// Wrap re-wraps an instance as t, taking an address for every pointer
// level t declares. Of unwraps pointer target types, so casters that
// build the element value use Wrap to hand back the type the caller
// actually named.
func Wrap(v reflect.Value, t reflect.Type) reflect.Value {
	depth := 0
	for u := t; u.Kind() == reflect.Ptr; u = u.Elem() {
		depth++
	}

	for i := 0; i < depth; i++ {
		if v.CanAddr() {
			v = v.Addr()
			continue
		}

		p := reflect.New(v.Type())
		p.Elem().Set(v)
		v = p
	}

	return v
}
