package output

import "errors"

var (
	// ErrUnknownField is returned by FieldValue for a field name the
	// record's type does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrEmptyField is returned by FieldValue when the field exists but
	// holds no value.
	ErrEmptyField = errors.New("field is empty")
)
