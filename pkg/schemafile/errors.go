package schemafile

import "errors"

var (
	// ErrInvalidDocument is returned when the document cannot be decoded or has no schemas.
	ErrInvalidDocument = errors.New("invalid schema document")

	// ErrInvalidRule is returned for malformed rule entries or constraint parameters.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrUnknownKey is returned for rule keys that are not constraints or rule options.
	ErrUnknownKey = errors.New("unknown rule key")

	// ErrUnknownTransform is returned when before names an unregistered transform.
	ErrUnknownTransform = errors.New("unknown transform")

	// ErrUnknownCustom is returned when custom names an unregistered function.
	ErrUnknownCustom = errors.New("unknown custom validator")

	// ErrUnknownParent is returned when extends names a schema not declared earlier.
	ErrUnknownParent = errors.New("unknown parent schema")

	// ErrDuplicateSchema is returned when two schemas share a name.
	ErrDuplicateSchema = errors.New("duplicate schema name")
)
