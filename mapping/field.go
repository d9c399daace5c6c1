package mapping

import (
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ssarabun/dozer/internal/common"
)

// FieldReference identifies one side (source or destination) of a field rule.
type FieldReference struct {
	// Name of the field. Never contains an index suffix.
	Name string

	// DeclaredType optionally pins the field's type by name.
	DeclaredType string

	// Indexed is true when the reference addresses one element of the field,
	// Index gives the position.
	Indexed bool
	Index   int

	// DateFormat overrides the class-level date format for this field.
	DateFormat string

	// AccessorMethod and MutatorMethod replace conventional field access.
	AccessorMethod string
	MutatorMethod  string

	// MapAccessorMethod and MapMutatorMethod access the field by MapKey.
	MapAccessorMethod string
	MapMutatorMethod  string
	MapKey            string

	// CreationMethod names the factory method used to instantiate the field value.
	CreationMethod string

	// Accessible forces (or forbids) direct access to unexported fields; nil inherits.
	Accessible *bool

	// Iterate marks the field as a collection to be walked element by element.
	Iterate bool
}

// IsMapKeyed reports whether the field is accessed through map get/set methods.
func (f *FieldReference) IsMapKeyed() bool {
	return f != nil && (f.MapAccessorMethod != "" || f.MapMutatorMethod != "")
}

// HasCustomAccessors reports whether the field declares its own get or set method.
func (f *FieldReference) HasCustomAccessors() bool {
	return f != nil && (f.AccessorMethod != "" || f.MutatorMethod != "")
}

// String renders the reference the way it was declared, e.g. "items[3]".
func (f *FieldReference) String() string {
	if f == nil {
		return ""
	}

	if f.Indexed {
		return f.Name + "[" + strconv.Itoa(f.Index) + "]"
	}

	return f.Name
}

// ParseField builds a FieldReference from a raw field name and an optional
// type name. A single trailing "[<digits>]" suffix is stripped into Index.
func ParseField(raw, typeName string) (*FieldReference, error) {
	if common.IsBlank(raw) {
		return nil, errors.Wrap(ErrInvalidFieldName, "field name can not be empty")
	}

	name := strings.TrimSpace(raw)
	field := &FieldReference{Name: name}

	if base, digits, ok := splitIndex(name); ok {
		index, err := strconv.Atoi(digits)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidFieldName, "index of %q: %v", name, err)
		}

		field.Name = base
		field.Indexed = true
		field.Index = index
	}

	if typeName = strings.TrimSpace(typeName); typeName != "" {
		field.DeclaredType = typeName
	}

	return field, nil
}

// splitIndex splits "base[digits]" into its parts. base must be non-empty
// and digits must be all ASCII digits.
func splitIndex(name string) (base, digits string, ok bool) {
	if !strings.HasSuffix(name, "]") {
		return "", "", false
	}

	open := strings.LastIndexByte(name, '[')
	if open <= 0 {
		return "", "", false
	}

	digits = name[open+1 : len(name)-1]
	if digits == "" {
		return "", "", false
	}

	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", "", false
		}
	}

	return name[:open], digits, true
}
