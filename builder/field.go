package builder

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/typeloader"
)

// FieldMappingBuilder records a field mapping draft. The rule kind is
// chosen at Build from the endpoints and the owning class mapping.
type FieldMappingBuilder struct {
	b    *Builder
	rule mapping.Rule
}

// Source sets the source field. A trailing "[n]" addresses one element.
func (f *FieldMappingBuilder) Source(name string) (*FieldDefinitionBuilder, error) {
	return f.SourceOfType(name, "")
}

// SourceOfType sets the source field and pins its type by name.
func (f *FieldMappingBuilder) SourceOfType(name, typeName string) (*FieldDefinitionBuilder, error) {
	ref, err := f.b.parseField(name, typeName, "source field")
	if err != nil {
		return nil, err
	}

	f.rule.Source = ref

	return &FieldDefinitionBuilder{ref: ref}, nil
}

// Destination sets the destination field. A trailing "[n]" addresses one element.
func (f *FieldMappingBuilder) Destination(name string) (*FieldDefinitionBuilder, error) {
	return f.DestinationOfType(name, "")
}

// DestinationOfType sets the destination field and pins its type by name.
func (f *FieldMappingBuilder) DestinationOfType(name, typeName string) (*FieldDefinitionBuilder, error) {
	ref, err := f.b.parseField(name, typeName, "destination field")
	if err != nil {
		return nil, err
	}

	f.rule.Destination = ref

	return &FieldDefinitionBuilder{ref: ref}, nil
}

// Direction restricts the rule to one direction.
func (f *FieldMappingBuilder) Direction(d mapping.Direction) *FieldMappingBuilder {
	f.rule.Direction = d
	return f
}

// Relationship sets how collection elements are combined.
func (f *FieldMappingBuilder) Relationship(k mapping.RelationshipKind) *FieldMappingBuilder {
	f.rule.Relationship = k
	return f
}

// RemoveOrphans deletes destination elements that have no source counterpart.
func (f *FieldMappingBuilder) RemoveOrphans(v bool) *FieldMappingBuilder {
	f.rule.RemoveOrphans = v
	return f
}

// SourceHint sets the element types of the source collection, comma separated.
func (f *FieldMappingBuilder) SourceHint(list string) *FieldMappingBuilder {
	f.rule.SourceHint = mapping.NewHintContainer(list)
	return f
}

// DestinationHint sets the element types of the destination collection, comma separated.
func (f *FieldMappingBuilder) DestinationHint(list string) *FieldMappingBuilder {
	f.rule.DestinationHint = mapping.NewHintContainer(list)
	return f
}

// SourceDeepIndexHint sets the element types along an indexed source path.
func (f *FieldMappingBuilder) SourceDeepIndexHint(list string) *FieldMappingBuilder {
	f.rule.SourceDeepIndexHint = mapping.NewHintContainer(list)
	return f
}

// DestinationDeepIndexHint sets the element types along an indexed destination path.
func (f *FieldMappingBuilder) DestinationDeepIndexHint(list string) *FieldMappingBuilder {
	f.rule.DestinationDeepIndexHint = mapping.NewHintContainer(list)
	return f
}

// CopyByReference decides whether the value is assigned without conversion.
// Leaving it uncalled keeps the engine default.
func (f *FieldMappingBuilder) CopyByReference(v bool) *FieldMappingBuilder {
	f.rule.CopyByReference = mapping.Bool(v)
	return f
}

// MapID selects the class mapping used for the nested value.
func (f *FieldMappingBuilder) MapID(id string) *FieldMappingBuilder {
	f.rule.MapID = id
	return f
}

// CustomConverter sets the converter type for this field.
func (f *FieldMappingBuilder) CustomConverter(t reflect.Type) *FieldMappingBuilder {
	if f.b.requireType(t, "custom converter") {
		f.rule.CustomConverter = typeloader.NameOf(t)
	}

	return f
}

// CustomConverterName sets the converter by canonical type name. The name
// is not resolved.
func (f *FieldMappingBuilder) CustomConverterName(name string) *FieldMappingBuilder {
	f.rule.CustomConverter = name
	return f
}

// CustomConverterID references a converter instance known to the engine.
func (f *FieldMappingBuilder) CustomConverterID(id string) *FieldMappingBuilder {
	f.rule.CustomConverterID = id
	return f
}

// CustomConverterParam is passed to the converter on every call.
func (f *FieldMappingBuilder) CustomConverterParam(param string) *FieldMappingBuilder {
	f.rule.CustomConverterParam = param
	return f
}

func (f *FieldMappingBuilder) resolve(cm *mapping.ClassMapping) (mapping.Rule, error) {
	if f.rule.Source == nil && f.rule.Destination == nil {
		return mapping.Rule{}, errors.Wrap(mapping.ErrIncompleteField, "neither source nor destination field is set")
	}

	rule := f.rule
	rule.Source = cloneField(f.rule.Source)
	rule.Destination = cloneField(f.rule.Destination)
	rule.Kind = cm.SelectRuleKind(rule.Source, rule.Destination)

	return rule, nil
}

// FieldExclusionBuilder records a field pair the engine must skip.
type FieldExclusionBuilder struct {
	b           *Builder
	source      *mapping.FieldReference
	destination *mapping.FieldReference
	direction   mapping.Direction
}

// Source sets the excluded source field.
func (f *FieldExclusionBuilder) Source(name string) (*FieldExclusionBuilder, error) {
	return f.SourceOfType(name, "")
}

// SourceOfType sets the excluded source field and pins its type by name.
func (f *FieldExclusionBuilder) SourceOfType(name, typeName string) (*FieldExclusionBuilder, error) {
	ref, err := f.b.parseField(name, typeName, "excluded source field")
	if err != nil {
		return nil, err
	}

	f.source = ref

	return f, nil
}

// Destination sets the excluded destination field.
func (f *FieldExclusionBuilder) Destination(name string) (*FieldExclusionBuilder, error) {
	return f.DestinationOfType(name, "")
}

// DestinationOfType sets the excluded destination field and pins its type by name.
func (f *FieldExclusionBuilder) DestinationOfType(name, typeName string) (*FieldExclusionBuilder, error) {
	ref, err := f.b.parseField(name, typeName, "excluded destination field")
	if err != nil {
		return nil, err
	}

	f.destination = ref

	return f, nil
}

// Direction limits the exclusion to one direction.
func (f *FieldExclusionBuilder) Direction(d mapping.Direction) *FieldExclusionBuilder {
	f.direction = d
	return f
}

func (f *FieldExclusionBuilder) resolve(_ *mapping.ClassMapping) (mapping.Rule, error) {
	if f.source == nil && f.destination == nil {
		return mapping.Rule{}, errors.Wrap(mapping.ErrIncompleteField, "exclusion names no field")
	}

	return mapping.Rule{
		Kind:        mapping.RuleExclusion,
		Source:      cloneField(f.source),
		Destination: cloneField(f.destination),
		Direction:   f.direction,
	}, nil
}

// FieldDefinitionBuilder sets attributes of one field endpoint.
type FieldDefinitionBuilder struct {
	ref *mapping.FieldReference
}

// DateFormat overrides the class-level date format.
func (d *FieldDefinitionBuilder) DateFormat(format string) *FieldDefinitionBuilder {
	d.ref.DateFormat = format
	return d
}

// GetMethod reads the field through the named method.
func (d *FieldDefinitionBuilder) GetMethod(name string) *FieldDefinitionBuilder {
	d.ref.AccessorMethod = name
	return d
}

// SetMethod writes the field through the named method.
func (d *FieldDefinitionBuilder) SetMethod(name string) *FieldDefinitionBuilder {
	d.ref.MutatorMethod = name
	return d
}

// MapGetMethod reads the field by key through the named method.
func (d *FieldDefinitionBuilder) MapGetMethod(name string) *FieldDefinitionBuilder {
	d.ref.MapAccessorMethod = name
	return d
}

// MapSetMethod writes the field by key through the named method.
func (d *FieldDefinitionBuilder) MapSetMethod(name string) *FieldDefinitionBuilder {
	d.ref.MapMutatorMethod = name
	return d
}

// Key is the key used by the map get and set methods.
func (d *FieldDefinitionBuilder) Key(key string) *FieldDefinitionBuilder {
	d.ref.MapKey = key
	return d
}

// CreateMethod names the method used to instantiate the field value.
func (d *FieldDefinitionBuilder) CreateMethod(name string) *FieldDefinitionBuilder {
	d.ref.CreationMethod = name
	return d
}

// Accessible allows direct access when the field is unexported.
func (d *FieldDefinitionBuilder) Accessible(v bool) *FieldDefinitionBuilder {
	d.ref.Accessible = mapping.Bool(v)
	return d
}

// Iterate walks the field element by element.
func (d *FieldDefinitionBuilder) Iterate() *FieldDefinitionBuilder {
	d.ref.Iterate = true
	return d
}

// parseField parses a field name and records failures.
func (b *Builder) parseField(name, typeName, role string) (*mapping.FieldReference, error) {
	ref, err := mapping.ParseField(name, typeName)
	if err != nil {
		err = errors.Wrap(err, role)
		b.fail(err)

		return nil, err
	}

	return ref, nil
}

func cloneField(f *mapping.FieldReference) *mapping.FieldReference {
	if f == nil {
		return nil
	}

	c := *f
	if f.Accessible != nil {
		c.Accessible = mapping.Bool(*f.Accessible)
	}

	return &c
}
