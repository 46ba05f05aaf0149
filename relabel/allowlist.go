package relabel

// AllowList names the types that reconstruction may instantiate. The zero
// value permits nothing beyond the cast's own target type.
type AllowList struct {
	all   bool
	names map[string]struct{}
}

// Allow builds an explicit allow list from type names.
func Allow(names ...string) AllowList {
	a := AllowList{names: make(map[string]struct{}, len(names))}
	for _, n := range names {
		a.names[n] = struct{}{}
	}

	return a
}

// AllowAll permits every registered type. Deserializing untrusted bytes
// with an unrestricted list can instantiate anything the registry knows;
// use only when the byte source is fully trusted.
func AllowAll() AllowList {
	return AllowList{all: true}
}

// Permits reports whether name may be instantiated.
func (a AllowList) Permits(name string) bool {
	if a.all {
		return true
	}

	_, ok := a.names[name]

	return ok
}

// with returns a copy that additionally permits name. The cast target is
// always implicitly allowed.
func (a AllowList) with(name string) AllowList {
	if a.all || a.Permits(name) {
		return a
	}

	out := AllowList{names: make(map[string]struct{}, len(a.names)+1)}
	for n := range a.names {
		out.names[n] = struct{}{}
	}
	out.names[name] = struct{}{}

	return out
}
