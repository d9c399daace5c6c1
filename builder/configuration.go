package builder

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/mapping"
)

var errorType = reflect.TypeFor[error]()

// ConfigurationBuilder sets the global defaults of a specification.
type ConfigurationBuilder struct {
	b   *Builder
	cfg *mapping.Configuration
}

// StopOnErrors decides whether a field failure aborts the whole mapping.
func (c *ConfigurationBuilder) StopOnErrors(v bool) *ConfigurationBuilder {
	c.cfg.StopOnErrors = mapping.Bool(v)
	return c
}

// DateFormat sets the default date format.
func (c *ConfigurationBuilder) DateFormat(format string) *ConfigurationBuilder {
	c.cfg.DateFormat = format
	return c
}

// Wildcard decides whether same-named fields are mapped implicitly.
func (c *ConfigurationBuilder) Wildcard(v bool) *ConfigurationBuilder {
	c.cfg.Wildcard = mapping.Bool(v)
	return c
}

// TrimStrings decides whether string values are trimmed before mapping.
func (c *ConfigurationBuilder) TrimStrings(v bool) *ConfigurationBuilder {
	c.cfg.TrimStrings = mapping.Bool(v)
	return c
}

// MapNull decides whether nil source values are written to the destination.
func (c *ConfigurationBuilder) MapNull(v bool) *ConfigurationBuilder {
	c.cfg.MapNull = mapping.Bool(v)
	return c
}

// MapEmptyString decides whether empty source strings are written to the destination.
func (c *ConfigurationBuilder) MapEmptyString(v bool) *ConfigurationBuilder {
	c.cfg.MapEmptyString = mapping.Bool(v)
	return c
}

// Relationship sets the default collection relationship. RelationshipUnset
// selects mapping.DefaultRelationshipKind.
func (c *ConfigurationBuilder) Relationship(k mapping.RelationshipKind) *ConfigurationBuilder {
	if k == mapping.RelationshipUnset {
		k = mapping.DefaultRelationshipKind
	}

	c.cfg.Relationship = k

	return c
}

// BeanFactory sets the default factory for destination instances.
func (c *ConfigurationBuilder) BeanFactory(name string) *ConfigurationBuilder {
	c.cfg.BeanFactory = name
	return c
}

// CopyByReference adds a type name mask whose values are assigned without
// conversion. "*" matches any run of characters.
func (c *ConfigurationBuilder) CopyByReference(mask string) *ConfigurationBuilder {
	c.cfg.CopyByReferences = append(c.cfg.CopyByReferences, mask)
	return c
}

// CustomConverter registers a converter type. Narrow it to a class pair
// with the returned builder.
func (c *ConfigurationBuilder) CustomConverter(t reflect.Type) *CustomConverterBuilder {
	c.b.requireType(t, "custom converter")

	c.cfg.CustomConverters = append(c.cfg.CustomConverters, mapping.CustomConverterDescription{Converter: t})

	return &CustomConverterBuilder{b: c.b, cfg: c.cfg, index: len(c.cfg.CustomConverters) - 1}
}

// CustomConverterByName resolves name and registers it as a converter type.
func (c *ConfigurationBuilder) CustomConverterByName(name string) (*CustomConverterBuilder, error) {
	t, err := c.b.resolveType(name, "custom converter")
	if err != nil {
		return nil, err
	}

	return c.CustomConverter(t), nil
}

// AllowedError registers an error type the engine propagates unwrapped.
// t must implement error.
func (c *ConfigurationBuilder) AllowedError(t reflect.Type) error {
	var err error

	switch {
	case t == nil:
		err = errors.Wrap(mapping.ErrInvalidConfiguration, "allowed error: nil type")
	case !t.Implements(errorType):
		err = errors.Wrapf(mapping.ErrInvalidConfiguration, "allowed error %s does not implement error", t)
	}

	if err != nil {
		c.b.fail(err)
		return err
	}

	c.cfg.AllowedErrors = append(c.cfg.AllowedErrors, t)

	return nil
}

// AllowedErrorByName resolves name and registers it as an allowed error.
func (c *ConfigurationBuilder) AllowedErrorByName(name string) error {
	t, err := c.b.resolveType(name, "allowed error")
	if err != nil {
		return err
	}

	return c.AllowedError(t)
}

// CustomConverterBuilder narrows a registered converter to a class pair.
type CustomConverterBuilder struct {
	b     *Builder
	cfg   *mapping.Configuration
	index int
}

func (cc *CustomConverterBuilder) description() *mapping.CustomConverterDescription {
	return &cc.cfg.CustomConverters[cc.index]
}

// ClassA sets the first class of the pair.
func (cc *CustomConverterBuilder) ClassA(t reflect.Type) *CustomConverterBuilder {
	cc.b.requireType(t, "converter class A")
	cc.description().ClassA = t

	return cc
}

// ClassB sets the second class of the pair.
func (cc *CustomConverterBuilder) ClassB(t reflect.Type) *CustomConverterBuilder {
	cc.b.requireType(t, "converter class B")
	cc.description().ClassB = t

	return cc
}

// ClassAByName resolves name and sets it as the first class.
func (cc *CustomConverterBuilder) ClassAByName(name string) (*CustomConverterBuilder, error) {
	t, err := cc.b.resolveType(name, "converter class A")
	if err != nil {
		return nil, err
	}

	return cc.ClassA(t), nil
}

// ClassBByName resolves name and sets it as the second class.
func (cc *CustomConverterBuilder) ClassBByName(name string) (*CustomConverterBuilder, error) {
	t, err := cc.b.resolveType(name, "converter class B")
	if err != nil {
		return nil, err
	}

	return cc.ClassB(t), nil
}
