package builder

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/typeloader"
)

// fieldDraft is a field-level declaration waiting for Build.
type fieldDraft interface {
	resolve(cm *mapping.ClassMapping) (mapping.Rule, error)
}

// ClassMappingBuilder declares one class mapping and its field rules.
type ClassMappingBuilder struct {
	b        *Builder
	cm       *mapping.ClassMapping
	position int
	drafts   []fieldDraft
}

// DateFormat sets the date format for the mapping's fields.
func (m *ClassMappingBuilder) DateFormat(format string) *ClassMappingBuilder {
	m.cm.DateFormat = format
	return m
}

// MapNull decides whether nil source values are written to the destination.
func (m *ClassMappingBuilder) MapNull(v bool) *ClassMappingBuilder {
	m.cm.MapNull = mapping.Bool(v)
	return m
}

// MapEmptyString decides whether empty source strings are written to the destination.
func (m *ClassMappingBuilder) MapEmptyString(v bool) *ClassMappingBuilder {
	m.cm.MapEmptyString = mapping.Bool(v)
	return m
}

// BeanFactory sets the factory used to create destination instances.
func (m *ClassMappingBuilder) BeanFactory(name string) *ClassMappingBuilder {
	m.cm.BeanFactory = name
	return m
}

// Relationship sets how collection fields are combined.
func (m *ClassMappingBuilder) Relationship(k mapping.RelationshipKind) *ClassMappingBuilder {
	m.cm.Relationship = k
	return m
}

// Wildcard decides whether same-named fields are mapped implicitly.
func (m *ClassMappingBuilder) Wildcard(v bool) *ClassMappingBuilder {
	m.cm.Wildcard = mapping.Bool(v)
	return m
}

// TrimStrings decides whether string values are trimmed before mapping.
func (m *ClassMappingBuilder) TrimStrings(v bool) *ClassMappingBuilder {
	m.cm.TrimStrings = mapping.Bool(v)
	return m
}

// StopOnErrors decides whether a field failure aborts the whole mapping.
func (m *ClassMappingBuilder) StopOnErrors(v bool) *ClassMappingBuilder {
	m.cm.StopOnErrors = mapping.Bool(v)
	return m
}

// MapID names the mapping so rules and callers can select it.
func (m *ClassMappingBuilder) MapID(id string) *ClassMappingBuilder {
	m.cm.MapID = id
	return m
}

// Direction restricts the mapping to one direction.
func (m *ClassMappingBuilder) Direction(d mapping.Direction) *ClassMappingBuilder {
	m.cm.Direction = d
	return m
}

// SourceType sets the source type. A nil handle is recorded as a failure.
func (m *ClassMappingBuilder) SourceType(t reflect.Type) *TypeDefinitionBuilder {
	m.b.requireType(t, "source type")

	def := newTypeDefinition(t)
	m.cm.Source = def

	return &TypeDefinitionBuilder{def: def}
}

// SourceTypeName resolves name through the type loader and sets it as the source type.
func (m *ClassMappingBuilder) SourceTypeName(name string) (*TypeDefinitionBuilder, error) {
	t, err := m.b.resolveType(name, "source type")
	if err != nil {
		return nil, err
	}

	return m.SourceType(t), nil
}

// DestinationType sets the destination type. A nil handle is recorded as a failure.
func (m *ClassMappingBuilder) DestinationType(t reflect.Type) *TypeDefinitionBuilder {
	m.b.requireType(t, "destination type")

	def := newTypeDefinition(t)
	m.cm.Destination = def

	return &TypeDefinitionBuilder{def: def}
}

// DestinationTypeName resolves name through the type loader and sets it as the destination type.
func (m *ClassMappingBuilder) DestinationTypeName(name string) (*TypeDefinitionBuilder, error) {
	t, err := m.b.resolveType(name, "destination type")
	if err != nil {
		return nil, err
	}

	return m.DestinationType(t), nil
}

// NewFieldMapping declares a field mapping rule.
func (m *ClassMappingBuilder) NewFieldMapping() *FieldMappingBuilder {
	fb := &FieldMappingBuilder{b: m.b}
	m.drafts = append(m.drafts, fb)

	return fb
}

// NewFieldExclusion declares a field pair that must not be mapped.
func (m *ClassMappingBuilder) NewFieldExclusion() *FieldExclusionBuilder {
	fb := &FieldExclusionBuilder{b: m.b}
	m.drafts = append(m.drafts, fb)

	return fb
}

// build resolves the drafts in declaration order.
func (m *ClassMappingBuilder) build() ([]mapping.Rule, []error) {
	var errs []error

	rules := make([]mapping.Rule, 0, len(m.drafts))

	for i, d := range m.drafts {
		rule, err := d.resolve(m.cm)
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "class mapping #%d (%s), field #%d", m.position, m.cm.TypePair(), i))
			continue
		}

		m.b.logger.Debug("resolved rule",
			"type_pair", m.cm.TypePair(),
			"rule", rule.String(),
			"kind", rule.Kind.String())

		rules = append(rules, rule)
	}

	return rules, errs
}

func newTypeDefinition(t reflect.Type) *mapping.TypeDefinition {
	return &mapping.TypeDefinition{Name: typeloader.NameOf(t), Type: t}
}

// TypeDefinitionBuilder sets attributes of one side of a class mapping.
type TypeDefinitionBuilder struct {
	def *mapping.TypeDefinition
}

// MapGetMethod makes the type map-like, read through the named method.
func (t *TypeDefinitionBuilder) MapGetMethod(name string) *TypeDefinitionBuilder {
	t.def.MapAccessorMethod = name
	return t
}

// MapSetMethod makes the type map-like, written through the named method.
func (t *TypeDefinitionBuilder) MapSetMethod(name string) *TypeDefinitionBuilder {
	t.def.MapMutatorMethod = name
	return t
}

// BeanFactory sets the factory used to create instances of the type.
func (t *TypeDefinitionBuilder) BeanFactory(name string) *TypeDefinitionBuilder {
	t.def.BeanFactory = name
	return t
}

// FactoryBeanID sets the id passed to the bean factory.
func (t *TypeDefinitionBuilder) FactoryBeanID(id string) *TypeDefinitionBuilder {
	t.def.FactoryBeanID = id
	return t
}

// CreateMethod names the method used to instantiate the type.
func (t *TypeDefinitionBuilder) CreateMethod(name string) *TypeDefinitionBuilder {
	t.def.CreationMethod = name
	return t
}

// MapNull overrides the class-level map-null policy for this side.
func (t *TypeDefinitionBuilder) MapNull(v bool) *TypeDefinitionBuilder {
	t.def.MapNull = mapping.Bool(v)
	return t
}

// MapEmptyString overrides the class-level map-empty-string policy for this side.
func (t *TypeDefinitionBuilder) MapEmptyString(v bool) *TypeDefinitionBuilder {
	t.def.MapEmptyString = mapping.Bool(v)
	return t
}

// Accessible allows direct access to unexported fields of the type.
func (t *TypeDefinitionBuilder) Accessible(v bool) *TypeDefinitionBuilder {
	t.def.Accessible = mapping.Bool(v)
	return t
}
