// Package mapping defines the mapping specification model handed to the
// mapping engine, and the pure functions that build and check it.
//
// A Specification is a global Configuration plus an ordered list of
// ClassMappings. Each ClassMapping pairs a source and a destination type and
// owns an ordered list of field Rules:
//
//	Specification
//	├── Configuration      defaults, custom converters, copy-by-reference masks
//	└── ClassMapping       store.Order -> warehouse.Order
//	    ├── Rule (generic)         Status -> Status
//	    ├── Rule (custom accessor) Total -> TotalAmount, get-method "Sum"
//	    ├── Rule (map keyed)       Attrs  -> Notes, key "note"
//	    └── Rule (exclusion)       Secret -x- Secret
//
// # Field references
//
// A field reference names one side of a rule. Names may carry a single
// trailing index ("items[0]"), which ParseField strips into
// FieldReference.Index. Dotted names ("address.street") are kept verbatim
// and are interpreted by the engine as deep references.
//
// # Rule kinds
//
// The kind of a rule follows from the two field references and from whether
// the owning types are map-like (see SelectRuleKind):
//
//  1. map keyed, when either side or either owning type uses map accessors
//  2. custom accessor, when either side names its own get/set methods
//  3. generic, otherwise
//
// # Inheritance
//
// Unset class-level policy (nil *bool, empty strings, RelationshipUnset)
// falls back to the global Configuration and then to DefaultOptions; see
// ClassMapping.Effective.
package mapping
