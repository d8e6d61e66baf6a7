package domain

import "errors"

// Configuration errors. Retrying will not help until the caller wires the
// missing collaborator.
var (
	// ErrPlatformUtilsNotConfigured is returned by Cipher.Decrypt when a
	// login carries a URI but no PlatformUtils was supplied to resolve
	// its domain.
	ErrPlatformUtilsNotConfigured = errors.New("platform utils service is not configured")

	// ErrCryptoServiceNotConfigured is returned when an encrypted value has
	// to be decrypted but no CryptoService was supplied.
	ErrCryptoServiceNotConfigured = errors.New("crypto service is not configured")
)

// ErrPayloadTypeMismatch is returned when Cipher.Payload was reassigned to a
// variant that does not match Cipher.Type.
var ErrPayloadTypeMismatch = errors.New("cipher payload does not match cipher type")
