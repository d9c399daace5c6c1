package mapping

import (
	"reflect"
	"strings"
)

// CustomConverterDescription registers a converter type, optionally narrowed
// to a pair of classes. A description without classes only applies when a
// rule references it explicitly.
type CustomConverterDescription struct {
	Converter reflect.Type
	ClassA    reflect.Type
	ClassB    reflect.Type
}

// AppliesTo reports whether the converter handles the (a, b) pair in either
// direction. Unset classes match anything; a description with no classes at
// all never applies implicitly.
func (d *CustomConverterDescription) AppliesTo(a, b reflect.Type) bool {
	if d.ClassA == nil && d.ClassB == nil {
		return false
	}

	return (matchType(d.ClassA, a) && matchType(d.ClassB, b)) ||
		(matchType(d.ClassA, b) && matchType(d.ClassB, a))
}

func matchType(want, got reflect.Type) bool {
	return want == nil || want == got
}

// Configuration holds the process-wide defaults of a Specification.
type Configuration struct {
	Options

	// CustomConverters in registration order.
	CustomConverters []CustomConverterDescription

	// CopyByReferences are type name masks; "*" matches any run of characters.
	CopyByReferences []string

	// AllowedErrors are error types the engine propagates instead of wrapping.
	AllowedErrors []reflect.Type
}

// NewConfiguration creates an empty configuration.
func NewConfiguration() *Configuration {
	return &Configuration{}
}

// ConvertersFor returns the converters that apply to the (a, b) pair, in
// registration order.
func (c *Configuration) ConvertersFor(a, b reflect.Type) []CustomConverterDescription {
	var out []CustomConverterDescription

	for _, d := range c.CustomConverters {
		if d.AppliesTo(a, b) {
			out = append(out, d)
		}
	}

	return out
}

// IsCopyByReference reports whether typeName matches any copy-by-reference mask.
func (c *Configuration) IsCopyByReference(typeName string) bool {
	for _, mask := range c.CopyByReferences {
		if matchMask(mask, typeName) {
			return true
		}
	}

	return false
}

// IsAllowedError reports whether t is one of the allowed error types.
func (c *Configuration) IsAllowedError(t reflect.Type) bool {
	for _, allowed := range c.AllowedErrors {
		if allowed == t {
			return true
		}
	}

	return false
}

// matchMask matches s against mask where '*' stands for any (possibly empty)
// sequence of characters, including '/' and '.'.
func matchMask(mask, s string) bool {
	parts := strings.Split(mask, "*")
	if len(parts) == 1 {
		return mask == s
	}

	if !strings.HasPrefix(s, parts[0]) {
		return false
	}

	s = s[len(parts[0]):]

	for _, part := range parts[1 : len(parts)-1] {
		idx := strings.Index(s, part)
		if idx < 0 {
			return false
		}

		s = s[idx+len(part):]
	}

	return strings.HasSuffix(s, parts[len(parts)-1])
}
