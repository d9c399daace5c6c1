package specfile

import (
	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/builder"
	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/typeloader"
)

// CurrentVersion is written to new documents and assumed when a document
// omits its version.
const CurrentVersion = "1"

// Document is the file form of a Specification.
type Document struct {
	Version       string           `yaml:"version" toml:"version" json:"version"`
	Configuration *ConfigurationDoc `yaml:"configuration,omitempty" toml:"configuration,omitempty" json:"configuration,omitempty"`
	Mappings      []MappingDoc     `yaml:"mappings,omitempty" toml:"mappings,omitempty" json:"mappings,omitempty"`
}

// OptionsDoc is the file form of mapping.Options.
type OptionsDoc struct {
	DateFormat     string `yaml:"date-format,omitempty" toml:"date-format,omitempty" json:"date-format,omitempty"`
	BeanFactory    string `yaml:"bean-factory,omitempty" toml:"bean-factory,omitempty" json:"bean-factory,omitempty"`
	Relationship   string `yaml:"relationship-type,omitempty" toml:"relationship-type,omitempty" json:"relationship-type,omitempty"`
	MapNull        *bool  `yaml:"map-null,omitempty" toml:"map-null,omitempty" json:"map-null,omitempty"`
	MapEmptyString *bool  `yaml:"map-empty-string,omitempty" toml:"map-empty-string,omitempty" json:"map-empty-string,omitempty"`
	Wildcard       *bool  `yaml:"wildcard,omitempty" toml:"wildcard,omitempty" json:"wildcard,omitempty"`
	TrimStrings    *bool  `yaml:"trim-strings,omitempty" toml:"trim-strings,omitempty" json:"trim-strings,omitempty"`
	StopOnErrors   *bool  `yaml:"stop-on-errors,omitempty" toml:"stop-on-errors,omitempty" json:"stop-on-errors,omitempty"`
}

// ConfigurationDoc is the file form of mapping.Configuration.
type ConfigurationDoc struct {
	OptionsDoc `yaml:",inline"`

	CustomConverters []ConverterDoc `yaml:"custom-converters,omitempty" toml:"custom-converters,omitempty" json:"custom-converters,omitempty"`
	CopyByReferences []string       `yaml:"copy-by-references,omitempty" toml:"copy-by-references,omitempty" json:"copy-by-references,omitempty"`
	AllowedErrors    []string       `yaml:"allowed-errors,omitempty" toml:"allowed-errors,omitempty" json:"allowed-errors,omitempty"`
}

// ConverterDoc is the file form of mapping.CustomConverterDescription.
type ConverterDoc struct {
	Type   string `yaml:"type" toml:"type" json:"type"`
	ClassA string `yaml:"class-a,omitempty" toml:"class-a,omitempty" json:"class-a,omitempty"`
	ClassB string `yaml:"class-b,omitempty" toml:"class-b,omitempty" json:"class-b,omitempty"`
}

// TypeDoc is the file form of mapping.TypeDefinition.
type TypeDoc struct {
	Name           string `yaml:"name" toml:"name" json:"name"`
	BeanFactory    string `yaml:"bean-factory,omitempty" toml:"bean-factory,omitempty" json:"bean-factory,omitempty"`
	FactoryBeanID  string `yaml:"factory-bean-id,omitempty" toml:"factory-bean-id,omitempty" json:"factory-bean-id,omitempty"`
	MapGetMethod   string `yaml:"map-get-method,omitempty" toml:"map-get-method,omitempty" json:"map-get-method,omitempty"`
	MapSetMethod   string `yaml:"map-set-method,omitempty" toml:"map-set-method,omitempty" json:"map-set-method,omitempty"`
	CreateMethod   string `yaml:"create-method,omitempty" toml:"create-method,omitempty" json:"create-method,omitempty"`
	MapNull        *bool  `yaml:"map-null,omitempty" toml:"map-null,omitempty" json:"map-null,omitempty"`
	MapEmptyString *bool  `yaml:"map-empty-string,omitempty" toml:"map-empty-string,omitempty" json:"map-empty-string,omitempty"`
	Accessible     *bool  `yaml:"is-accessible,omitempty" toml:"is-accessible,omitempty" json:"is-accessible,omitempty"`
}

// MappingDoc is the file form of mapping.ClassMapping.
type MappingDoc struct {
	ClassA *TypeDoc `yaml:"class-a,omitempty" toml:"class-a,omitempty" json:"class-a,omitempty"`
	ClassB *TypeDoc `yaml:"class-b,omitempty" toml:"class-b,omitempty" json:"class-b,omitempty"`

	OptionsDoc `yaml:",inline"`

	MapID     string     `yaml:"map-id,omitempty" toml:"map-id,omitempty" json:"map-id,omitempty"`
	Direction string     `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Fields    []FieldDoc `yaml:"fields,omitempty" toml:"fields,omitempty" json:"fields,omitempty"`
}

// FieldDoc is the file form of a mapping.Rule. Exclusions only use A, B
// and Direction.
type FieldDoc struct {
	Exclude bool         `yaml:"exclude,omitempty" toml:"exclude,omitempty" json:"exclude,omitempty"`
	A       *FieldRefDoc `yaml:"a,omitempty" toml:"a,omitempty" json:"a,omitempty"`
	B       *FieldRefDoc `yaml:"b,omitempty" toml:"b,omitempty" json:"b,omitempty"`

	Direction       string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	Relationship    string `yaml:"relationship-type,omitempty" toml:"relationship-type,omitempty" json:"relationship-type,omitempty"`
	RemoveOrphans   bool   `yaml:"remove-orphans,omitempty" toml:"remove-orphans,omitempty" json:"remove-orphans,omitempty"`
	CopyByReference *bool  `yaml:"copy-by-reference,omitempty" toml:"copy-by-reference,omitempty" json:"copy-by-reference,omitempty"`
	MapID           string `yaml:"map-id,omitempty" toml:"map-id,omitempty" json:"map-id,omitempty"`

	AHint          string `yaml:"a-hint,omitempty" toml:"a-hint,omitempty" json:"a-hint,omitempty"`
	BHint          string `yaml:"b-hint,omitempty" toml:"b-hint,omitempty" json:"b-hint,omitempty"`
	ADeepIndexHint string `yaml:"a-deep-index-hint,omitempty" toml:"a-deep-index-hint,omitempty" json:"a-deep-index-hint,omitempty"`
	BDeepIndexHint string `yaml:"b-deep-index-hint,omitempty" toml:"b-deep-index-hint,omitempty" json:"b-deep-index-hint,omitempty"`

	CustomConverter      string `yaml:"custom-converter,omitempty" toml:"custom-converter,omitempty" json:"custom-converter,omitempty"`
	CustomConverterID    string `yaml:"custom-converter-id,omitempty" toml:"custom-converter-id,omitempty" json:"custom-converter-id,omitempty"`
	CustomConverterParam string `yaml:"custom-converter-param,omitempty" toml:"custom-converter-param,omitempty" json:"custom-converter-param,omitempty"`
}

// FieldRefDoc is the file form of a mapping.FieldReference. Name keeps the
// index suffix, e.g. "items[0]".
type FieldRefDoc struct {
	Name         string `yaml:"name" toml:"name" json:"name"`
	Type         string `yaml:"type,omitempty" toml:"type,omitempty" json:"type,omitempty"`
	DateFormat   string `yaml:"date-format,omitempty" toml:"date-format,omitempty" json:"date-format,omitempty"`
	GetMethod    string `yaml:"get-method,omitempty" toml:"get-method,omitempty" json:"get-method,omitempty"`
	SetMethod    string `yaml:"set-method,omitempty" toml:"set-method,omitempty" json:"set-method,omitempty"`
	MapGetMethod string `yaml:"map-get-method,omitempty" toml:"map-get-method,omitempty" json:"map-get-method,omitempty"`
	MapSetMethod string `yaml:"map-set-method,omitempty" toml:"map-set-method,omitempty" json:"map-set-method,omitempty"`
	Key          string `yaml:"key,omitempty" toml:"key,omitempty" json:"key,omitempty"`
	CreateMethod string `yaml:"create-method,omitempty" toml:"create-method,omitempty" json:"create-method,omitempty"`
	Accessible   *bool  `yaml:"is-accessible,omitempty" toml:"is-accessible,omitempty" json:"is-accessible,omitempty"`
	Iterate      bool   `yaml:"iterate,omitempty" toml:"iterate,omitempty" json:"iterate,omitempty"`
}

// FromSpecification converts spec into its file form. Class mappings are
// written against the specification's current configuration.
func FromSpecification(spec *mapping.Specification) *Document {
	doc := &Document{Version: CurrentVersion}
	if spec == nil {
		return doc
	}

	if cfg := spec.Configuration; cfg != nil {
		cd := &ConfigurationDoc{
			OptionsDoc:       optionsDoc(cfg.Options),
			CopyByReferences: cfg.CopyByReferences,
		}

		for _, cc := range cfg.CustomConverters {
			cd.CustomConverters = append(cd.CustomConverters, ConverterDoc{
				Type:   typeloader.NameOf(cc.Converter),
				ClassA: typeloader.NameOf(cc.ClassA),
				ClassB: typeloader.NameOf(cc.ClassB),
			})
		}

		for _, t := range cfg.AllowedErrors {
			cd.AllowedErrors = append(cd.AllowedErrors, typeloader.NameOf(t))
		}

		doc.Configuration = cd
	}

	for _, cm := range spec.ClassMappings {
		if cm == nil {
			continue
		}

		md := MappingDoc{
			ClassA:     typeDoc(cm.Source),
			ClassB:     typeDoc(cm.Destination),
			OptionsDoc: optionsDoc(cm.Options),
			MapID:      cm.MapID,
			Direction:  cm.Direction.String(),
		}

		for i := range cm.Rules {
			md.Fields = append(md.Fields, fieldDoc(&cm.Rules[i]))
		}

		doc.Mappings = append(doc.Mappings, md)
	}

	return doc
}

func optionsDoc(o mapping.Options) OptionsDoc {
	return OptionsDoc{
		DateFormat:     o.DateFormat,
		BeanFactory:    o.BeanFactory,
		Relationship:   o.Relationship.String(),
		MapNull:        o.MapNull,
		MapEmptyString: o.MapEmptyString,
		Wildcard:       o.Wildcard,
		TrimStrings:    o.TrimStrings,
		StopOnErrors:   o.StopOnErrors,
	}
}

func typeDoc(t *mapping.TypeDefinition) *TypeDoc {
	if t == nil {
		return nil
	}

	name := t.Name
	if name == "" {
		name = typeloader.NameOf(t.Type)
	}

	return &TypeDoc{
		Name:           name,
		BeanFactory:    t.BeanFactory,
		FactoryBeanID:  t.FactoryBeanID,
		MapGetMethod:   t.MapAccessorMethod,
		MapSetMethod:   t.MapMutatorMethod,
		CreateMethod:   t.CreationMethod,
		MapNull:        t.MapNull,
		MapEmptyString: t.MapEmptyString,
		Accessible:     t.Accessible,
	}
}

func fieldDoc(r *mapping.Rule) FieldDoc {
	fd := FieldDoc{
		Exclude:   r.IsExclusion(),
		A:         fieldRefDoc(r.Source),
		B:         fieldRefDoc(r.Destination),
		Direction: r.Direction.String(),
	}

	if r.IsExclusion() {
		return fd
	}

	fd.Relationship = r.Relationship.String()
	fd.RemoveOrphans = r.RemoveOrphans
	fd.CopyByReference = r.CopyByReference
	fd.MapID = r.MapID
	fd.AHint = r.SourceHint.String()
	fd.BHint = r.DestinationHint.String()
	fd.ADeepIndexHint = r.SourceDeepIndexHint.String()
	fd.BDeepIndexHint = r.DestinationDeepIndexHint.String()
	fd.CustomConverter = r.CustomConverter
	fd.CustomConverterID = r.CustomConverterID
	fd.CustomConverterParam = r.CustomConverterParam

	return fd
}

func fieldRefDoc(f *mapping.FieldReference) *FieldRefDoc {
	if f == nil {
		return nil
	}

	return &FieldRefDoc{
		Name:         f.String(),
		Type:         f.DeclaredType,
		DateFormat:   f.DateFormat,
		GetMethod:    f.AccessorMethod,
		SetMethod:    f.MutatorMethod,
		MapGetMethod: f.MapAccessorMethod,
		MapSetMethod: f.MapMutatorMethod,
		Key:          f.MapKey,
		CreateMethod: f.CreationMethod,
		Accessible:   f.Accessible,
		Iterate:      f.Iterate,
	}
}

// Specification replays the document through a builder configured with
// opts and builds it. Unknown enum text fails before anything is declared.
// Every other defect is reported by Build.
func (d *Document) Specification(opts ...builder.Option) (*mapping.Specification, error) {
	b := builder.NewSpecification(opts...)

	if d.Configuration != nil {
		if err := d.Configuration.declare(b.Configuration()); err != nil {
			return nil, errors.Wrap(err, "configuration")
		}
	}

	for i := range d.Mappings {
		if err := d.Mappings[i].declare(b.NewClassMapping()); err != nil {
			return nil, errors.Wrapf(err, "mapping #%d", i)
		}
	}

	return b.Build()
}

func (c *ConfigurationDoc) declare(cb *builder.ConfigurationBuilder) error {
	rel, err := mapping.ParseRelationshipKind(c.Relationship)
	if err != nil {
		return err
	}

	if c.DateFormat != "" {
		cb.DateFormat(c.DateFormat)
	}

	if c.BeanFactory != "" {
		cb.BeanFactory(c.BeanFactory)
	}

	if rel != mapping.RelationshipUnset {
		cb.Relationship(rel)
	}

	setBool(c.MapNull, cb.MapNull)
	setBool(c.MapEmptyString, cb.MapEmptyString)
	setBool(c.Wildcard, cb.Wildcard)
	setBool(c.TrimStrings, cb.TrimStrings)
	setBool(c.StopOnErrors, cb.StopOnErrors)

	for _, cc := range c.CustomConverters {
		conv, err := cb.CustomConverterByName(cc.Type)
		if err != nil {
			continue
		}

		if cc.ClassA != "" {
			_, _ = conv.ClassAByName(cc.ClassA)
		}

		if cc.ClassB != "" {
			_, _ = conv.ClassBByName(cc.ClassB)
		}
	}

	for _, mask := range c.CopyByReferences {
		cb.CopyByReference(mask)
	}

	for _, name := range c.AllowedErrors {
		// recorded by the builder and reported by Build
		_ = cb.AllowedErrorByName(name)
	}

	return nil
}

func (m *MappingDoc) declare(cm *builder.ClassMappingBuilder) error {
	rel, err := mapping.ParseRelationshipKind(m.Relationship)
	if err != nil {
		return err
	}

	dir, err := mapping.ParseDirection(m.Direction)
	if err != nil {
		return err
	}

	cm.DateFormat(m.DateFormat).
		BeanFactory(m.BeanFactory).
		Relationship(rel).
		MapID(m.MapID).
		Direction(dir)

	setBool(m.MapNull, cm.MapNull)
	setBool(m.MapEmptyString, cm.MapEmptyString)
	setBool(m.Wildcard, cm.Wildcard)
	setBool(m.TrimStrings, cm.TrimStrings)
	setBool(m.StopOnErrors, cm.StopOnErrors)

	if m.ClassA != nil {
		if td, err := cm.SourceTypeName(m.ClassA.Name); err == nil {
			m.ClassA.apply(td)
		}
	}

	if m.ClassB != nil {
		if td, err := cm.DestinationTypeName(m.ClassB.Name); err == nil {
			m.ClassB.apply(td)
		}
	}

	for i := range m.Fields {
		if err := m.Fields[i].declare(cm); err != nil {
			return errors.Wrapf(err, "field #%d", i)
		}
	}

	return nil
}

func (t *TypeDoc) apply(td *builder.TypeDefinitionBuilder) {
	td.BeanFactory(t.BeanFactory).
		FactoryBeanID(t.FactoryBeanID).
		MapGetMethod(t.MapGetMethod).
		MapSetMethod(t.MapSetMethod).
		CreateMethod(t.CreateMethod)

	setBool(t.MapNull, td.MapNull)
	setBool(t.MapEmptyString, td.MapEmptyString)
	setBool(t.Accessible, td.Accessible)
}

func (f *FieldDoc) declare(cm *builder.ClassMappingBuilder) error {
	dir, err := mapping.ParseDirection(f.Direction)
	if err != nil {
		return err
	}

	if f.Exclude {
		ex := cm.NewFieldExclusion().Direction(dir)

		if f.A != nil {
			_, _ = ex.SourceOfType(f.A.Name, f.A.Type)
		}

		if f.B != nil {
			_, _ = ex.DestinationOfType(f.B.Name, f.B.Type)
		}

		return nil
	}

	rel, err := mapping.ParseRelationshipKind(f.Relationship)
	if err != nil {
		return err
	}

	fm := cm.NewFieldMapping().
		Direction(dir).
		Relationship(rel).
		RemoveOrphans(f.RemoveOrphans).
		MapID(f.MapID).
		SourceHint(f.AHint).
		DestinationHint(f.BHint).
		SourceDeepIndexHint(f.ADeepIndexHint).
		DestinationDeepIndexHint(f.BDeepIndexHint).
		CustomConverterName(f.CustomConverter).
		CustomConverterID(f.CustomConverterID).
		CustomConverterParam(f.CustomConverterParam)

	setBool(f.CopyByReference, fm.CopyByReference)

	if f.A != nil {
		if fd, err := fm.SourceOfType(f.A.Name, f.A.Type); err == nil {
			f.A.apply(fd)
		}
	}

	if f.B != nil {
		if fd, err := fm.DestinationOfType(f.B.Name, f.B.Type); err == nil {
			f.B.apply(fd)
		}
	}

	return nil
}

func (r *FieldRefDoc) apply(fd *builder.FieldDefinitionBuilder) {
	fd.DateFormat(r.DateFormat).
		GetMethod(r.GetMethod).
		SetMethod(r.SetMethod).
		MapGetMethod(r.MapGetMethod).
		MapSetMethod(r.MapSetMethod).
		Key(r.Key).
		CreateMethod(r.CreateMethod)

	setBool(r.Accessible, fd.Accessible)

	if r.Iterate {
		fd.Iterate()
	}
}

// setBool calls set only for explicitly present values.
func setBool[T any](v *bool, set func(bool) T) {
	if v != nil {
		set(*v)
	}
}
