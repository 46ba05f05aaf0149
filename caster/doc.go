// Package caster implements the reflective recursive caster: field-by-field
// conversion of an arbitrary source value into a declared target type.
//
// Sources are either map[string]any values (a decoded document) or struct
// instances; targets are struct types described by package descriptor.
// Nested struct-typed fields recurse with the caller's options unchanged,
// and a configurable policy decides what happens to source fields the
// target does not declare.
//
// A cast either fully succeeds or fully fails: no partially populated
// instance ever escapes. The caster assumes finite, acyclic source graphs
// and performs no cycle detection.
package caster
