package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID          = errors.New("invalid cipher id")
	ErrDuplicateID        = errors.New("duplicate cipher id")
	ErrEmptyName          = errors.New("name is required")
	ErrInvalidType        = errors.New("invalid cipher type")
	ErrUnknownType        = errors.New("unknown cipher type")
	ErrInvalidCipherValue = errors.New("invalid encrypted value")
	ErrEmptyCiphers       = errors.New("cipher list cannot be empty")
)
