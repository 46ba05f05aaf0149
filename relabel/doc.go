// Package relabel implements the byte-level reclassification escape hatch:
// serialize a struct to a self-describing envelope, rewrite only the
// embedded length-prefixed type tag to the target's registered name, and
// reconstruct an instance from the rewritten bytes.
//
// No per-field reflection runs and nothing recurses: nested struct fields
// deserialize to whatever type their unmodified tags name, which may not
// match the new target's declared field types at all. Reconstruction only
// instantiates types on the caller's AllowList (plus the target itself);
// AllowAll lifts that restriction and is a documented hazard, opt-in only,
// for byte streams that are fully trusted.
//
// This package deliberately shares no casting code with package caster.
package relabel
