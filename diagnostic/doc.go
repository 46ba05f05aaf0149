// Package diagnostic provides structured notices emitted by the casters
// for conditions that degrade a cast without failing it.
//
// Key capabilities:
//   - Dynamic-assign degradation notices on statically-typed targets
//   - Per-notice code, type pair, and field path for programmatic handling
//   - Aggregation across nested casts with severity buckets
package diagnostic
