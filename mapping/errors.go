package mapping

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidFieldName is returned for empty or blank field names.
	ErrInvalidFieldName = errors.New("invalid field name")

	// ErrIncompleteField is returned when a field rule has neither a source
	// nor a destination field at build time.
	ErrIncompleteField = errors.New("incomplete field mapping")

	// ErrTypeResolution marks failures to resolve a type name.
	ErrTypeResolution = errors.New("type resolution failed")

	// ErrInvalidConfiguration is returned for configuration values that can
	// never be valid, such as an allowed error type that is not an error.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidSpecification marks structural validation failures reported
	// by a strict build.
	ErrInvalidSpecification = errors.New("invalid specification")
)
