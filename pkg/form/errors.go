package form

import "errors"

var (
	// ErrUnknownField is returned when a value or validation operation names
	// a field outside the form's configuration.
	ErrUnknownField = errors.New("form: unknown field")

	// ErrDuplicateField is returned by New when two fields share a name.
	ErrDuplicateField = errors.New("form: duplicate field name")

	// ErrFieldNameMissing is returned by New when a field has an empty name.
	ErrFieldNameMissing = errors.New("form: field name is required")

	// ErrRequiredInValidators marks a required-kind entry inside a field's
	// validator list. Required-ness belongs on the Required flag; validation
	// halts with this fault instead of masking the misconfiguration as a
	// field failure.
	ErrRequiredInValidators = errors.New("form: required kind is not allowed in a validator list, use the Required flag")
)
