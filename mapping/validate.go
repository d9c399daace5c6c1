package mapping

import (
	"fmt"
	"reflect"

	"github.com/ssarabun/dozer/diagnostic"
)

var errorType = reflect.TypeFor[error]()

// Validate checks the structure of a specification and reports every defect
// it finds. It does not look inside the mapped types; field existence and
// convertibility are the engine's concern.
func Validate(spec *Specification) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if spec == nil {
		res.AddError("spec_is_nil", "specification is nil", "", "")
		return res
	}

	if spec.Configuration == nil {
		res.AddInfo("no_configuration", "no global configuration, engine defaults apply", "", "")
	} else {
		validateConfiguration(res, spec.Configuration)
	}

	type pairKey struct {
		src, dst, mapID string
	}

	seen := map[pairKey]struct{}{}

	for i, cm := range spec.ClassMappings {
		if cm == nil {
			res.AddError("class_mapping_is_nil", fmt.Sprintf("class mapping #%d is nil", i), "", "")
			continue
		}

		pair := cm.TypePair()
		validateTypes(res, pair, cm)

		if cm.Configuration != spec.Configuration {
			res.AddInfo("stale_configuration",
				"class mapping was declared before the current configuration and does not inherit from it", pair, "")
		}

		if cm.IsComplete() {
			key := pairKey{src: cm.Source.Name, dst: cm.Destination.Name, mapID: cm.MapID}
			if _, ok := seen[key]; ok {
				res.AddWarning("duplicate_class_mapping",
					fmt.Sprintf("class pair is mapped more than once with map-id %q", cm.MapID), pair, "")
			}

			seen[key] = struct{}{}
		}

		for j := range cm.Rules {
			validateRule(res, pair, cm, j)
		}
	}

	return res
}

func validateConfiguration(res *diagnostic.Diagnostics, cfg *Configuration) {
	for i, cc := range cfg.CustomConverters {
		if cc.Converter == nil {
			res.AddError("missing_converter_type", fmt.Sprintf("custom converter #%d has no converter type", i), "", "")
		}
	}

	for i, mask := range cfg.CopyByReferences {
		if mask == "" {
			res.AddError("empty_copy_by_reference_mask", fmt.Sprintf("copy-by-reference mask #%d is empty", i), "", "")
		}
	}

	for i, t := range cfg.AllowedErrors {
		if t == nil || !t.Implements(errorType) {
			res.AddError("invalid_allowed_error", fmt.Sprintf("allowed error #%d does not implement error", i), "", "")
		}
	}
}

func validateTypes(res *diagnostic.Diagnostics, pair string, cm *ClassMapping) {
	if cm.Source == nil {
		res.AddError("incomplete_class_mapping", "class mapping has no source type", pair, "")
	} else if cm.Source.Name == "" {
		res.AddError("missing_type_name", "source type has no name", pair, "")
	}

	if cm.Destination == nil {
		res.AddError("incomplete_class_mapping", "class mapping has no destination type", pair, "")
	} else if cm.Destination.Name == "" {
		res.AddError("missing_type_name", "destination type has no name", pair, "")
	}
}

func validateRule(res *diagnostic.Diagnostics, pair string, cm *ClassMapping, idx int) {
	r := &cm.Rules[idx]
	field := fmt.Sprintf("rule #%d (%s)", idx, r)

	if r.Source == nil && r.Destination == nil {
		res.AddError("missing_endpoints", "rule has neither a source nor a destination field", pair, field)
		return
	}

	for _, f := range []*FieldReference{r.Source, r.Destination} {
		if f == nil {
			continue
		}

		if f.Name == "" {
			res.AddError("empty_field_name", "field reference has an empty name", pair, field)
		}

		if f.Indexed && f.Index < 0 {
			res.AddError("negative_index", fmt.Sprintf("field %q has negative index %d", f.Name, f.Index), pair, field)
		}
	}

	switch r.Kind {
	case RuleUnresolved:
		res.AddError("unresolved_rule", "rule kind was never resolved", pair, field)
	case RuleExclusion:
		if hasMappingAttributes(r) {
			res.AddWarning("exclusion_attributes", "exclusion carries mapping attributes that are ignored", pair, field)
		}
	default:
		if want := cm.SelectRuleKind(r.Source, r.Destination); want != r.Kind {
			res.AddError("rule_kind_mismatch",
				fmt.Sprintf("rule kind is %s but its fields require %s", r.Kind, want), pair, field)
		}

		if r.CustomConverter != "" && r.CustomConverterID != "" {
			res.AddWarning("ambiguous_converter",
				"rule names both a converter type and a converter id", pair, field)
		}
	}
}

func hasMappingAttributes(r *Rule) bool {
	return r.Relationship != RelationshipUnset ||
		r.RemoveOrphans ||
		r.CopyByReference != nil ||
		r.MapID != "" ||
		r.SourceHint != nil || r.DestinationHint != nil ||
		r.SourceDeepIndexHint != nil || r.DestinationDeepIndexHint != nil ||
		r.CustomConverter != "" || r.CustomConverterID != "" || r.CustomConverterParam != ""
}
