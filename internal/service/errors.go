package service

import "errors"

var (
	// ErrInvalidDataProvided wraps validation failures of service input.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnknownCipherType is returned in strict mode for records whose
	// type this build cannot hydrate.
	ErrUnknownCipherType = errors.New("unknown cipher type")

	ErrValidationNoCiphersProvided = errors.New("no ciphers provided")
	ErrValidationNoCipherID        = errors.New("no cipher ID was given")
)
