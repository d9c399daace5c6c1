package mapping

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/internal/common"
)

//go:generate go tool stringer -type=RuleKind -trimprefix=Rule -output=rulekind_string.go

// RuleKind tags the variant of a Rule. It is decided when the builder
// resolves a rule, never at declaration time.
type RuleKind int

const (
	RuleUnresolved     RuleKind = iota // not yet resolved; never present in a built Specification
	RuleGeneric                        // conventional field access on both sides
	RuleCustomAccessor                 // explicit get/set method names on at least one side
	RuleMapKeyed                       // key-based access on at least one side
	RuleExclusion                      // the field pair is explicitly not mapped
)

// Direction controls which way a class mapping or rule is applied.
type Direction int

const (
	DirectionUnset Direction = iota // inherit from the enclosing class mapping
	Bidirectional                   // A->B and B->A
	OneWay                          // A->B only
	ReverseOneWay                   // B->A only
)

// Text forms of Direction.
const (
	directionBidirectional = "bi-directional"
	directionOneWay        = "one-way"
	directionReverseOneWay = "reverse-one-way"
)

// String returns the text form used in spec files.
func (d Direction) String() string {
	switch d {
	case DirectionUnset:
		return ""
	case Bidirectional:
		return directionBidirectional
	case OneWay:
		return directionOneWay
	case ReverseOneWay:
		return directionReverseOneWay
	default:
		return common.UnknownStr
	}
}

// AllowsForward reports whether values flow from A to B.
func (d Direction) AllowsForward() bool {
	return d != ReverseOneWay
}

// AllowsReverse reports whether values flow from B to A.
func (d Direction) AllowsReverse() bool {
	return d != OneWay
}

// ParseDirection parses the text form of a Direction. An empty string
// yields DirectionUnset.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DirectionUnset, nil
	case directionBidirectional:
		return Bidirectional, nil
	case directionOneWay:
		return OneWay, nil
	case directionReverseOneWay:
		return ReverseOneWay, nil
	default:
		return DirectionUnset, errors.Wrapf(ErrInvalidConfiguration, "unknown direction %q", s)
	}
}

// RelationshipKind decides whether collection fields are merged into the
// destination or replace it wholesale.
type RelationshipKind int

const (
	RelationshipUnset RelationshipKind = iota // inherit
	Cumulative                                // merge into the existing collection
	NonCumulative                             // replace the existing collection
)

// DefaultRelationshipKind is the policy applied when none is configured.
const DefaultRelationshipKind = Cumulative

const (
	relationshipCumulative    = "cumulative"
	relationshipNonCumulative = "non-cumulative"
)

// String returns the text form used in spec files.
func (k RelationshipKind) String() string {
	switch k {
	case RelationshipUnset:
		return ""
	case Cumulative:
		return relationshipCumulative
	case NonCumulative:
		return relationshipNonCumulative
	default:
		return common.UnknownStr
	}
}

// ParseRelationshipKind parses the text form of a RelationshipKind. An empty
// string yields RelationshipUnset.
func ParseRelationshipKind(s string) (RelationshipKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return RelationshipUnset, nil
	case relationshipCumulative:
		return Cumulative, nil
	case relationshipNonCumulative:
		return NonCumulative, nil
	default:
		return RelationshipUnset, errors.Wrapf(ErrInvalidConfiguration, "unknown relationship type %q", s)
	}
}
