package mapping

import (
	"reflect"

	"dario.cat/mergo"
)

// TypeDefinition describes one side of a ClassMapping.
type TypeDefinition struct {
	// Name is the canonical type name.
	Name string
	// Type is the resolved handle; may be nil when only the name is known.
	Type reflect.Type

	// BeanFactory names the factory used to create instances, FactoryBeanID
	// the id passed to it.
	BeanFactory   string
	FactoryBeanID string

	// MapAccessorMethod and MapMutatorMethod make the type map-like.
	MapAccessorMethod string
	MapMutatorMethod  string

	// CreationMethod names a static factory method.
	CreationMethod string

	MapNull        *bool
	MapEmptyString *bool
	Accessible     *bool
}

// IsMapLike reports whether instances are accessed by key rather than by field.
func (t *TypeDefinition) IsMapLike() bool {
	return t != nil && (t.MapAccessorMethod != "" || t.MapMutatorMethod != "")
}

// Options is the class-level policy shared by Configuration and
// ClassMapping. Zero values mean "inherit".
type Options struct {
	DateFormat     string
	BeanFactory    string
	Relationship   RelationshipKind
	MapNull        *bool
	MapEmptyString *bool
	Wildcard       *bool
	TrimStrings    *bool
	StopOnErrors   *bool
}

// DefaultOptions returns the policy applied when neither a class mapping nor
// the global configuration decides.
func DefaultOptions() Options {
	return Options{
		Relationship:   DefaultRelationshipKind,
		MapNull:        Bool(true),
		MapEmptyString: Bool(true),
		Wildcard:       Bool(true),
		TrimStrings:    Bool(false),
		StopOnErrors:   Bool(true),
	}
}

// Bool returns a pointer to v.
func Bool(v bool) *bool {
	return &v
}

// BoolValue dereferences p, returning def when p is nil.
func BoolValue(p *bool, def bool) bool {
	if p == nil {
		return def
	}

	return *p
}

// ClassMapping pairs a source and a destination type with the rules that
// map their fields.
type ClassMapping struct {
	Source      *TypeDefinition
	Destination *TypeDefinition

	Options

	// MapID disambiguates several mappings between the same two types.
	MapID string

	// Direction of the whole mapping; DirectionUnset means Bidirectional.
	Direction Direction

	// Rules in declaration order. Order breaks ties in the engine.
	Rules []Rule

	// Configuration is the global configuration that was current when this
	// mapping was declared. May be nil.
	Configuration *Configuration
}

// NewClassMapping creates an empty class mapping inheriting from cfg.
func NewClassMapping(cfg *Configuration) *ClassMapping {
	return &ClassMapping{Configuration: cfg}
}

// IsComplete reports whether both type definitions are present.
func (cm *ClassMapping) IsComplete() bool {
	return cm.Source != nil && cm.Destination != nil
}

// TypePair renders the mapping as "A->B", with "?" for a missing side.
func (cm *ClassMapping) TypePair() string {
	return typeName(cm.Source) + "->" + typeName(cm.Destination)
}

func typeName(t *TypeDefinition) string {
	if t == nil || t.Name == "" {
		return "?"
	}

	return t.Name
}

// SelectRuleKind picks the rule kind for a field pair of this mapping.
func (cm *ClassMapping) SelectRuleKind(src, dst *FieldReference) RuleKind {
	return SelectRuleKind(src, dst, cm.Source.IsMapLike(), cm.Destination.IsMapLike())
}

// AddRule appends r to the mapping's rules.
func (cm *ClassMapping) AddRule(r Rule) {
	cm.Rules = append(cm.Rules, r)
}

// Effective resolves the mapping's options against its configuration and
// DefaultOptions. Explicit values, including false, are never overridden.
func (cm *ClassMapping) Effective() (Options, error) {
	eff := cm.Options

	layers := []Options{DefaultOptions()}
	if cm.Configuration != nil {
		layers = []Options{cm.Configuration.Options, DefaultOptions()}
	}

	for _, layer := range layers {
		if err := mergo.Merge(&eff, layer, mergo.WithoutDereference); err != nil {
			return Options{}, err
		}
	}

	return eff, nil
}
