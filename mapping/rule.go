package mapping

import (
	"strings"

	"github.com/ssarabun/dozer/internal/common"
)

// HintContainer lists the element type names of a collection field.
type HintContainer struct {
	Hints []string
}

// NewHintContainer parses a comma separated list of type names.
// Returns nil when the list is empty.
func NewHintContainer(list string) *HintContainer {
	hints := common.SplitList(list)
	if hints == nil {
		return nil
	}

	return &HintContainer{Hints: hints}
}

// String joins the hints back into their declared form.
func (h *HintContainer) String() string {
	if h == nil {
		return ""
	}

	return strings.Join(h.Hints, ",")
}

// Rule is one field-level correspondence within a ClassMapping. Kind tags
// the variant. Exclusion rules only carry Source, Destination and Direction.
type Rule struct {
	Kind RuleKind

	// Source and Destination are the two field endpoints; one may be nil.
	Source      *FieldReference
	Destination *FieldReference

	// Direction of the rule; DirectionUnset inherits the class mapping's.
	Direction Direction

	// Relationship for collection fields; RelationshipUnset inherits.
	Relationship RelationshipKind

	// RemoveOrphans deletes destination elements absent from the source.
	RemoveOrphans bool

	// CopyByReference assigns the source value without conversion.
	// nil means the engine default applies.
	CopyByReference *bool

	// MapID selects a specific class mapping for nested conversion.
	MapID string

	// Element type hints for collection fields, plain and for indexed (deep) access.
	SourceHint               *HintContainer
	DestinationHint          *HintContainer
	SourceDeepIndexHint      *HintContainer
	DestinationDeepIndexHint *HintContainer

	// CustomConverter is the canonical type name of a converter for this field.
	CustomConverter string
	// CustomConverterID references a converter instance registered with the engine.
	CustomConverterID string
	// CustomConverterParam is passed to the converter.
	CustomConverterParam string
}

// IsExclusion reports whether the rule excludes its field pair.
func (r *Rule) IsExclusion() bool {
	return r.Kind == RuleExclusion
}

// CopyByReferenceSet reports whether CopyByReference was explicitly decided.
func (r *Rule) CopyByReferenceSet() bool {
	return r.CopyByReference != nil
}

// EffectiveDirection resolves an unset rule direction against the class
// mapping's, defaulting to Bidirectional.
func (r *Rule) EffectiveDirection(cm *ClassMapping) Direction {
	if r.Direction != DirectionUnset {
		return r.Direction
	}

	if cm != nil && cm.Direction != DirectionUnset {
		return cm.Direction
	}

	return Bidirectional
}

// String renders "source -> destination" for diagnostics, using "-x-" for exclusions.
func (r *Rule) String() string {
	arrow := " -> "
	if r.IsExclusion() {
		arrow = " -x- "
	}

	return endpoint(r.Source) + arrow + endpoint(r.Destination)
}

func endpoint(f *FieldReference) string {
	if f == nil {
		return "?"
	}

	return f.String()
}
