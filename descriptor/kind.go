package descriptor

//go:generate go tool stringer -type=FieldKind -output=kind_string.go

// FieldKind classifies how a declared target field participates in a cast.
type FieldKind int

const (
	FieldKindUnknown FieldKind = iota

	FieldKindScalar // primitive value, copied verbatim
	FieldKindStruct // nested struct with its own descriptor, recursed into
	FieldKindOpaque // unresolvable declared type (interface, map, slice, pointer, external struct), copied verbatim

	// FieldKindTotal is a constant that represents the total number of kinds defined
	FieldKindTotal = int(iota)
)
