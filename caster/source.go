package caster

import (
	"fmt"
	"reflect"
	"sort"
)

// sourceField is one named value enumerated from a source.
type sourceField struct {
	Name  string
	Value reflect.Value // invalid for nil entries
}

// enumerate lists the fields of a source value in deterministic order:
// struct sources in declared field order (exported fields only), map
// sources in sorted key order. Go maps iterate in randomized order, so
// sorting is what keeps PolicyThrow's first-offender deterministic.
func enumerate(src reflect.Value) ([]sourceField, error) {
	src = indirect(src)
	if !src.IsValid() {
		return nil, fmt.Errorf("%w: nil source", ErrNotEnumerable)
	}

	switch src.Kind() {
	case reflect.Map:
		if src.Type().Key().Kind() != reflect.String {
			return nil, fmt.Errorf("%w: map keyed by %s", ErrNotEnumerable, src.Type().Key())
		}

		keys := make([]string, 0, src.Len())
		for _, k := range src.MapKeys() {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)

		fields := make([]sourceField, 0, len(keys))
		for _, k := range keys {
			v := unwrapIface(src.MapIndex(reflect.ValueOf(k).Convert(src.Type().Key())))
			fields = append(fields, sourceField{Name: k, Value: v})
		}

		return fields, nil

	case reflect.Struct:
		t := src.Type()
		var fields []sourceField
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			fields = append(fields, sourceField{Name: t.Field(i).Name, Value: src.Field(i)})
		}

		return fields, nil

	default:
		return nil, fmt.Errorf("%w: %s", ErrNotEnumerable, src.Type())
	}
}

// sourceID names a source value for error messages.
func sourceID(src reflect.Value) string {
	src = indirect(src)
	if !src.IsValid() {
		return "<nil>"
	}

	return src.Type().String()
}

// indirect unwraps interfaces and pointers down to the concrete container
// value. Used on the source object itself, never on member values, whose
// pointer shape must survive verbatim copies.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}

	return v
}

// unwrapIface reveals the concrete value behind an interface-typed entry.
func unwrapIface(v reflect.Value) reflect.Value {
	if v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}

		return v.Elem()
	}

	return v
}
