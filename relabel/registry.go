package relabel

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
)

var (
	ErrUnknownType    = errors.New("type name is not registered")
	ErrDisallowedType = errors.New("type name is not on the allow list")
	ErrDuplicateName  = errors.New("type name is already registered to a different type")
	ErrNotAStructType = errors.New("only struct types can be registered")
)

var (
	regMu   sync.RWMutex
	byName  = map[string]reflect.Type{}
	nameFor = map[reflect.Type]string{}
)

// Register records name as the envelope identifier for T. Registration is
// idempotent for the same pairing and rejects a name bound to another type.
func Register[T any](name string) error {
	return RegisterType(name, reflect.TypeOf((*T)(nil)).Elem())
}

// RegisterType is the reflect-typed form of Register.
func RegisterType(name string, t reflect.Type) error {
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %q", ErrNotAStructType, name)
	}

	regMu.Lock()
	defer regMu.Unlock()

	if prev, ok := byName[name]; ok && prev != t {
		return fmt.Errorf("%w: %q is %s", ErrDuplicateName, name, prev)
	}

	byName[name] = t
	nameFor[t] = name

	return nil
}

func lookup(name string) (reflect.Type, bool) {
	regMu.RLock()
	defer regMu.RUnlock()

	t, ok := byName[name]

	return t, ok
}

// registeredName returns the envelope identifier for t, falling back to
// the bare type name for unregistered types. Streams carrying fallback
// names reconstruct only if something registered them by that exact name.
func registeredName(t reflect.Type) string {
	regMu.RLock()
	defer regMu.RUnlock()

	if name, ok := nameFor[t]; ok {
		return name
	}

	return t.Name()
}
