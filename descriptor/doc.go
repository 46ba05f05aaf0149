// Package descriptor derives and caches static field metadata for cast
// target types.
//
// Key types:
//   - TypeID: package import path + type name
//   - Descriptor: ordered declared fields of one struct type, cached per reflect.Type
//   - Field: name, kind (scalar/struct/opaque), tag overrides, nested descriptor
//
// A descriptor is derived once per type and immutable thereafter; the
// casters treat it as the single source of truth for what the target
// declares, separate from what any particular source value carries.
package descriptor
