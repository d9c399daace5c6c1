package builder

import (
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/mapping"
	"github.com/ssarabun/dozer/typeloader"
)

// Option configures a Builder.
type Option func(*Builder)

// WithTypeLoader sets the loader used for name-based declarations.
// The default is a typeloader.Registry holding only the builtin types.
func WithTypeLoader(l typeloader.Loader) Option {
	return func(b *Builder) {
		if l != nil {
			b.loader = l
		}
	}
}

// WithLogger sets the logger used for debug output. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithStrictValidation makes Build run mapping.Validate and fail on any
// error diagnostic, including class mappings without a source or
// destination type.
func WithStrictValidation() Option {
	return func(b *Builder) {
		b.strict = true
	}
}

// Builder accumulates declarations for one Specification.
type Builder struct {
	// cfg is the current configuration; nil until Configuration is called.
	cfg      *mapping.Configuration
	mappings []*ClassMappingBuilder
	loader   typeloader.Loader
	logger   *slog.Logger
	strict   bool

	// declaration-time failures, reported again by Build
	errs []error
}

// NewSpecification creates a builder for a new, empty specification.
func NewSpecification(opts ...Option) *Builder {
	b := &Builder{
		loader: typeloader.NewRegistry(),
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Configuration starts a new global configuration and makes it current.
// Class mappings declared earlier keep the configuration they were bound to.
func (b *Builder) Configuration() *ConfigurationBuilder {
	cfg := mapping.NewConfiguration()
	b.cfg = cfg

	return &ConfigurationBuilder{b: b, cfg: cfg}
}

// NewClassMapping declares a class mapping bound to the current configuration.
func (b *Builder) NewClassMapping() *ClassMappingBuilder {
	cm := mapping.NewClassMapping(b.cfg)
	mb := &ClassMappingBuilder{b: b, cm: cm, position: len(b.mappings)}
	b.mappings = append(b.mappings, mb)

	return mb
}

// Build resolves every field draft into a rule and assembles a new
// specification from the declarations made so far. Later declarations never
// reach a specification already returned. On any failure it returns nil and
// a *BuildError listing every defect found.
func (b *Builder) Build() (*mapping.Specification, error) {
	errs := append([]error(nil), b.errs...)

	configs := map[*mapping.Configuration]*mapping.Configuration{}
	spec := &mapping.Specification{Configuration: cloneConfiguration(b.cfg, configs)}

	for _, mb := range b.mappings {
		rules, ruleErrs := mb.build()
		errs = append(errs, ruleErrs...)

		cm := cloneClassMapping(mb.cm, configs)
		for _, r := range rules {
			cm.AddRule(r)
		}

		spec.ClassMappings = append(spec.ClassMappings, cm)
	}

	if b.strict {
		if err := mapping.Validate(spec).Error(); err != nil {
			errs = append(errs, errors.Mark(err, mapping.ErrInvalidSpecification))
		}
	}

	if len(errs) > 0 {
		b.logger.Debug("specification build failed", "errors", len(errs))
		return nil, &BuildError{Errors: errs}
	}

	b.logger.Debug("specification built",
		"class_mappings", len(spec.ClassMappings),
		"rules", spec.RuleCount())

	return spec, nil
}

// cloneConfiguration copies cfg once per build; seen keeps mappings that
// shared a configuration sharing its copy.
func cloneConfiguration(cfg *mapping.Configuration, seen map[*mapping.Configuration]*mapping.Configuration) *mapping.Configuration {
	if cfg == nil {
		return nil
	}

	if c, ok := seen[cfg]; ok {
		return c
	}

	c := *cfg
	c.CustomConverters = slices.Clone(cfg.CustomConverters)
	c.CopyByReferences = slices.Clone(cfg.CopyByReferences)
	c.AllowedErrors = slices.Clone(cfg.AllowedErrors)
	seen[cfg] = &c

	return &c
}

// cloneClassMapping copies the declared class mapping without its rules.
func cloneClassMapping(cm *mapping.ClassMapping, configs map[*mapping.Configuration]*mapping.Configuration) *mapping.ClassMapping {
	c := *cm
	c.Source = cloneTypeDefinition(cm.Source)
	c.Destination = cloneTypeDefinition(cm.Destination)
	c.Configuration = cloneConfiguration(cm.Configuration, configs)
	c.Rules = nil

	return &c
}

func cloneTypeDefinition(t *mapping.TypeDefinition) *mapping.TypeDefinition {
	if t == nil {
		return nil
	}

	c := *t

	return &c
}

// resolveType loads name through the type loader. Failures are recorded
// and marked with mapping.ErrTypeResolution.
func (b *Builder) resolveType(name, role string) (reflect.Type, error) {
	t, err := b.loader.Load(name)
	if err != nil {
		err = errors.Mark(errors.Wrapf(err, "resolve %s %q", role, name), mapping.ErrTypeResolution)
		b.fail(err)

		return nil, err
	}

	return t, nil
}

// requireType records a failure for a nil type handle.
func (b *Builder) requireType(t reflect.Type, role string) bool {
	if t != nil {
		return true
	}

	b.fail(errors.Wrapf(mapping.ErrTypeResolution, "%s: nil type", role))

	return false
}

func (b *Builder) fail(err error) {
	b.logger.Debug("declaration failed", "error", err)
	b.errs = append(b.errs, err)
}

// BuildError lists every defect found while building a specification.
type BuildError struct {
	Errors []error
}

// Error joins the individual messages.
func (e *BuildError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}

	return fmt.Sprintf("build failed with %d error(s): %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap returns the individual errors.
func (e *BuildError) Unwrap() []error {
	return e.Errors
}

// Is reports whether any individual error matches target.
func (e *BuildError) Is(target error) bool {
	for _, err := range e.Errors {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
