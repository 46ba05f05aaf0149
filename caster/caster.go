package caster

import (
	"fmt"
	"log"
	"reflect"

	"shapecast/descriptor"
	"shapecast/diagnostic"
)

// Cast converts src (a map[string]any or a struct instance) into a freshly
// allocated T, field by field, recursing into nested struct-typed fields.
// T may name the struct type or a pointer to it.
//
// A cast either fully succeeds or fully fails; on error the returned T is
// the zero value and nothing built along the way escapes.
func Cast[T any](src any, opts ...Option) (T, error) {
	var zero T

	target := reflect.TypeOf((*T)(nil)).Elem()

	v, err := CastTo(src, target, NewOptions(opts...))
	if err != nil {
		return zero, err
	}

	return descriptor.Wrap(v, target).Interface().(T), nil
}

// CastTo is the reflect-typed core behind Cast. The returned value is
// element-typed even for pointer targets; Cast re-wraps it.
func CastTo(src any, target reflect.Type, o Options) (reflect.Value, error) {
	d, err := descriptor.Of(target)
	if err != nil {
		return reflect.Value{}, err
	}

	return castValue(reflect.ValueOf(src), d, o)
}

// logNotice is where degradation notices go when the caller supplied no
// sink; a degradation must stay observable somewhere.
var logNotice = func(n diagnostic.Notice) {
	log.Printf("caster: %s", n)
}

func warn(o Options, n diagnostic.Notice) {
	if o.Sink != nil {
		o.Sink.AddWarning(n.Code, n.Message, n.TypePair, n.FieldPath)
		return
	}

	logNotice(n)
}

func castValue(src reflect.Value, d *descriptor.Descriptor, o Options) (reflect.Value, error) {
	fields, err := enumerate(src)
	if err != nil {
		return reflect.Value{}, err
	}

	dst := descriptor.NewInstance(d, o.UseConstructor)

	var overflow map[string]any

	for _, sf := range fields {
		if sf.Name == "" {
			return reflect.Value{}, &MalformedSourceError{Source: sourceID(src)}
		}

		tf, ok := d.Match(sf.Name)
		if !ok {
			switch o.Policy {
			case PolicyIgnore:

			case PolicyDynamicAssign:
				if _, has := d.DynamicField(); has {
					if overflow == nil {
						overflow = map[string]any{}
					}
					overflow[sf.Name] = ifaceOrNil(sf.Value)
				} else {
					warn(o, diagnostic.Notice{
						Severity:  diagnostic.SeverityWarning,
						Code:      diagnostic.CodeDynamicAssignUnsupported,
						Message:   fmt.Sprintf("cannot attach undeclared field %q to a statically-typed target, dropping it", sf.Name),
						TypePair:  sourceID(src) + " -> " + d.ID.String(),
						FieldPath: sf.Name,
					})
				}

			default: // PolicyThrow
				return reflect.Value{}, &UnknownFieldError{
					Field:  sf.Name,
					Source: sourceID(src),
					Target: d.ID.String(),
				}
			}

			continue
		}

		slot := dst.Field(tf.Index)

		if tf.Kind == descriptor.FieldKindStruct {
			nested, err := castValue(sf.Value, tf.Nested, o)
			if err != nil {
				return reflect.Value{}, err
			}
			slot.Set(nested)

			continue
		}

		// scalar and opaque declared types copy verbatim, no conversion
		if !sf.Value.IsValid() {
			continue // nil entry leaves the zero value
		}

		if !sf.Value.Type().AssignableTo(slot.Type()) {
			return reflect.Value{}, &TypeMismatchError{
				Field:  tf.Name,
				Target: d.ID.String(),
				Value:  sf.Value.Type().String(),
				Want:   slot.Type().String(),
			}
		}
		slot.Set(sf.Value)
	}

	if overflow != nil {
		df, _ := d.DynamicField()
		dst.Field(df.Index).Set(reflect.ValueOf(overflow))
	}

	return dst, nil
}

func ifaceOrNil(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}

	return v.Interface()
}
