package relabel

import (
	"errors"
	"fmt"
	"reflect"
)

var ErrWrongInstance = errors.New("reconstructed value is not the target type")

// Error wraps a relabel failure with the stage it happened in.
type Error struct {
	Op   string // "resolve", "serialize", "rewrite", "reconstruct"
	Name string // target type name
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("relabel to %q: %s: %s", e.Name, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Cast reclassifies src as the type registered under targetName by
// rewriting the type tag of its serialized form and reconstructing an
// instance from the rewritten bytes. Reconstruction instantiates only
// types on allow, plus the target itself.
//
// The source type needs no registration (its tag never survives the
// rewrite), but targetName and every type reachable through nested struct
// fields must be registered.
func Cast(src any, targetName string, allow AllowList) (any, error) {
	want, ok := lookup(targetName)
	if !ok {
		return nil, &Error{Op: "resolve", Name: targetName, Err: fmt.Errorf("%w: %q", ErrUnknownType, targetName)}
	}

	data, err := marshal(src)
	if err != nil {
		return nil, &Error{Op: "serialize", Name: targetName, Err: err}
	}

	data, err = rewriteTag(data, targetName)
	if err != nil {
		return nil, &Error{Op: "rewrite", Name: targetName, Err: err}
	}

	v, err := unmarshal(data, allow.with(targetName))
	if err != nil {
		return nil, &Error{Op: "reconstruct", Name: targetName, Err: err}
	}

	if v.Type() != want {
		return nil, &Error{Op: "reconstruct", Name: targetName,
			Err: fmt.Errorf("%w: got %s", ErrWrongInstance, v.Type())}
	}

	return v.Interface(), nil
}

// MustRegister is Register for package init blocks; it panics on conflict.
func MustRegister[T any](name string) {
	err := RegisterType(name, reflect.TypeOf((*T)(nil)).Elem())
	if err != nil {
		panic(err)
	}
}
