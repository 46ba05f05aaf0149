package shape

import (
	"fmt"
	"reflect"

	"shapecast/descriptor"
)

// MismatchError is the panic value raised when a source does not carry a
// captured field, or carries it with an unassignable type. It marks a
// violated caller contract, never a data error.
type MismatchError struct {
	Field  string
	Target string
	Reason string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("shape mismatch on %s: field %q %s", e.Target, e.Field, e.Reason)
}

// captured is one precomputed target slot.
type captured struct {
	name  string
	index int
}

// Caster copies exact-shape sources into one target type. Construct once,
// cast many times; a Caster is immutable and safe for concurrent use.
type Caster struct {
	target  *descriptor.Descriptor
	want    reflect.Type // the type as requested, pointer levels included
	useCtor bool
	fields  []captured
}

// New builds a Caster for the given target type, capturing its ordered
// assignable field names once. A pointer target type yields pointer
// results from Cast.
func New(target reflect.Type, useConstructor bool) (*Caster, error) {
	d, err := descriptor.Of(target)
	if err != nil {
		return nil, err
	}

	c := &Caster{target: d, want: target, useCtor: useConstructor}
	for _, f := range d.Fields {
		if !f.Assignable() {
			continue
		}
		c.fields = append(c.fields, captured{name: f.Name, index: f.Index})
	}

	return c, nil
}

// For is the generic convenience form of New.
func For[T any](useConstructor bool) (*Caster, error) {
	return New(reflect.TypeOf((*T)(nil)).Elem(), useConstructor)
}

// Cast allocates a target instance and copies every captured field from
// src by name. Panics with *MismatchError when src lacks a captured field
// or holds an unassignable value; the caller promised an exact shape.
func (c *Caster) Cast(src any) any {
	sv := reflect.ValueOf(src)
	for sv.IsValid() && (sv.Kind() == reflect.Interface || sv.Kind() == reflect.Ptr) {
		sv = sv.Elem()
	}

	dst := descriptor.NewInstance(c.target, c.useCtor)

	for _, f := range c.fields {
		v := c.lookup(sv, f.name)
		if !v.IsValid() {
			panic(&MismatchError{Field: f.name, Target: c.target.ID.String(), Reason: "is missing on the source"})
		}

		slot := dst.Field(f.index)
		if !v.Type().AssignableTo(slot.Type()) {
			panic(&MismatchError{
				Field:  f.name,
				Target: c.target.ID.String(),
				Reason: fmt.Sprintf("holds %s, want %s", v.Type(), slot.Type()),
			})
		}
		slot.Set(v)
	}

	return descriptor.Wrap(dst, c.want).Interface()
}

func (c *Caster) lookup(sv reflect.Value, name string) reflect.Value {
	if !sv.IsValid() {
		return reflect.Value{}
	}

	switch sv.Kind() {
	case reflect.Map:
		if sv.Type().Key().Kind() != reflect.String {
			return reflect.Value{}
		}

		v := sv.MapIndex(reflect.ValueOf(name).Convert(sv.Type().Key()))
		if v.IsValid() && v.Kind() == reflect.Interface {
			v = v.Elem()
		}

		return v

	case reflect.Struct:
		sf, ok := sv.Type().FieldByName(name)
		if !ok || !sf.IsExported() {
			return reflect.Value{}
		}

		return sv.FieldByIndex(sf.Index)

	default:
		return reflect.Value{}
	}
}
