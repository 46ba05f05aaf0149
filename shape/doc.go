// Package shape implements the precompiled fast path: a caster bound to
// one target type, capturing its declared field list once and copying
// values by name with no existence check, no policy, and no recursion.
//
// The contract is the inverse of package caster's: the caller guarantees
// every source has exactly the captured shape, and a violation is a
// programming error surfaced as a panic, not a recoverable result.
package shape
