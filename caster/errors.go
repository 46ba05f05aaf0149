package caster

import (
	"errors"
	"fmt"
)

var (
	ErrNotEnumerable = errors.New("source value is not a map or struct")
)

// MalformedSourceError reports a source field with an empty name. Raised
// regardless of the selected policy.
type MalformedSourceError struct {
	Source string // source type identifier
}

func (e *MalformedSourceError) Error() string {
	return fmt.Sprintf("malformed source %s: field with empty name", e.Source)
}

// UnknownFieldError is the PolicyThrow rejection: a source field has no
// declared counterpart on the target.
type UnknownFieldError struct {
	Field  string
	Source string
	Target string
}

func (e *UnknownFieldError) Error() string {
	return fmt.Sprintf("field %q of %s has no declared counterpart on %s",
		e.Field, e.Source, e.Target)
}

// TypeMismatchError reports a matched field whose source value cannot be
// assigned verbatim to the declared field type.
type TypeMismatchError struct {
	Field  string
	Target string
	Value  string // source value type
	Want   string // declared field type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q of %s: cannot assign %s to declared type %s",
		e.Field, e.Target, e.Value, e.Want)
}
