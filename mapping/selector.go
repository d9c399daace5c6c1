package mapping

// SelectRuleKind picks the variant of a non-exclusion rule from its two
// endpoints and the map-like flags of the owning types.
//
// Map-keyed access wins over custom accessors: a map-like field with custom
// accessors is still read and written by key. Nil references have no traits.
func SelectRuleKind(src, dst *FieldReference, srcMapLike, dstMapLike bool) RuleKind {
	switch {
	case src.IsMapKeyed() || dst.IsMapKeyed() || srcMapLike || dstMapLike:
		return RuleMapKeyed
	case src.HasCustomAccessors() || dst.HasCustomAccessors():
		return RuleCustomAccessor
	default:
		return RuleGeneric
	}
}
