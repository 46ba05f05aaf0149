package descriptor

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"shapecast/internal/common"
)

var (
	ErrNilType    = errors.New("target type is nil")
	ErrNotAStruct = errors.New("target type is not a struct")
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "shapecast/store"
	Name    string // e.g., "Order"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the package-alias-qualified form, e.g. "store.Order".
func (t TypeID) Short() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return common.PkgAlias(t.PkgPath) + "." + t.Name
}

// Field describes one declared field of a target type.
type Field struct {
	// Name is the declared Go field name.
	Name string
	// Index is the field's position within the struct.
	Index int
	// Kind classifies the declared field type.
	Kind FieldKind
	// Alias is the source-side name override from a `cast:"Name"` tag.
	Alias string
	// Dynamic marks the `cast:",dynamic"` overflow field for unmatched
	// source fields under the dynamic-assign policy.
	Dynamic bool
	// Nested is the descriptor of the field's type when Kind is FieldKindStruct.
	Nested *Descriptor

	assignable bool
}

// Assignable reports whether the caster may set this field. Unexported
// fields and fields tagged `cast:"-"` are declared but never assigned.
func (f Field) Assignable() bool { return f.assignable }

// Descriptor holds the declared field set of one struct type.
type Descriptor struct {
	Type   reflect.Type
	ID     TypeID
	Fields []Field

	byAlias map[string]int
	byName  map[string]int
	byLower map[string]int
	dynamic int // index into Fields, -1 when absent
}

var cache sync.Map // reflect.Type -> *Descriptor

// Of derives the descriptor for t, unwrapping pointers first. Descriptors
// are cached per type; repeated calls return the same instance.
func Of(t reflect.Type) (*Descriptor, error) {
	if t == nil {
		return nil, ErrNilType
	}

	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s", ErrNotAStruct, t)
	}

	if d, ok := cache.Load(t); ok {
		return d.(*Descriptor), nil
	}

	d, err := derive(t)
	if err != nil {
		return nil, err
	}

	actual, _ := cache.LoadOrStore(t, d)

	return actual.(*Descriptor), nil
}

// For is the generic convenience form of Of.
func For[T any]() (*Descriptor, error) {
	return Of(reflect.TypeOf((*T)(nil)).Elem())
}

func derive(t reflect.Type) (*Descriptor, error) {
	d := &Descriptor{
		Type:    t,
		ID:      TypeID{PkgPath: t.PkgPath(), Name: t.Name()},
		byAlias: map[string]int{},
		byName:  map[string]int{},
		byLower: map[string]int{},
		dynamic: -1,
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		alias, excluded, dynamic := parseTag(sf.Tag.Get("cast"))

		f := Field{
			Name:       sf.Name,
			Index:      i,
			Kind:       classify(sf.Type),
			Alias:      alias,
			Dynamic:    dynamic,
			assignable: sf.IsExported() && !excluded,
		}

		if dynamic {
			if sf.Type != reflect.TypeOf(map[string]any(nil)) {
				return nil, fmt.Errorf("%s.%s: dynamic overflow field must be map[string]any, is %s",
					d.ID, sf.Name, sf.Type)
			}
			if d.dynamic >= 0 {
				return nil, fmt.Errorf("%s: more than one dynamic overflow field", d.ID)
			}
			d.dynamic = i
		}

		if f.Kind == FieldKindStruct {
			nested, err := Of(sf.Type)
			if err != nil {
				return nil, err
			}
			f.Nested = nested
		}

		if f.assignable && !dynamic {
			if alias != "" {
				if prev, ok := d.byAlias[alias]; ok {
					return nil, fmt.Errorf("%s: fields %s and %s share the alias %q",
						d.ID, d.Fields[prev].Name, sf.Name, alias)
				}
				d.byAlias[alias] = i
			}

			lower := strings.ToLower(sf.Name)
			if prev, ok := d.byLower[lower]; ok {
				return nil, fmt.Errorf("%s: fields %s and %s differ only in case",
					d.ID, d.Fields[prev].Name, sf.Name)
			}

			d.byName[sf.Name] = i
			d.byLower[lower] = i
		}

		d.Fields = append(d.Fields, f)
	}

	return d, nil
}

// Match resolves a source field name to a declared assignable field,
// trying the `cast` tag alias first, then the exact name, then a
// case-insensitive match. Unexported and excluded fields never match.
func (d *Descriptor) Match(name string) (Field, bool) {
	if i, ok := d.byAlias[name]; ok {
		return d.Fields[i], true
	}

	if i, ok := d.byName[name]; ok {
		return d.Fields[i], true
	}

	if i, ok := d.byLower[strings.ToLower(name)]; ok {
		return d.Fields[i], true
	}

	return Field{}, false
}

// DynamicField returns the declared `cast:",dynamic"` overflow field, if any.
func (d *Descriptor) DynamicField() (Field, bool) {
	if d.dynamic < 0 {
		return Field{}, false
	}

	return d.Fields[d.dynamic], true
}

// parseTag splits a `cast` struct tag into its alias and options.
func parseTag(tag string) (alias string, excluded, dynamic bool) {
	if tag == "" {
		return "", false, false
	}

	name, rest, _ := strings.Cut(tag, ",")
	if name == "-" && rest == "" {
		return "", true, false
	}

	for rest != "" {
		var opt string
		opt, rest, _ = strings.Cut(rest, ",")
		if opt == "dynamic" {
			dynamic = true
		}
	}

	return name, false, dynamic
}

// classify maps a declared field type to its cast behavior. Struct types
// without exported fields (time.Time and friends) are opaque: copied
// verbatim, never recursed into.
func classify(t reflect.Type) FieldKind {
	switch t.Kind() {
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).IsExported() {
				return FieldKindStruct
			}
		}

		return FieldKindOpaque

	case reflect.Interface, reflect.Map, reflect.Slice, reflect.Array,
		reflect.Ptr, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return FieldKindOpaque

	default:
		return FieldKindScalar
	}
}
