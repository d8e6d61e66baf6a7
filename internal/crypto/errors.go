package crypto

import "errors"

var (
	// ErrInvalidCipherString is returned when an encoded value does not
	// follow the "<encType>.<payload>" layout.
	ErrInvalidCipherString = errors.New("invalid cipher string")

	// ErrUnsupportedEncType is returned for an encType this build cannot decrypt.
	ErrUnsupportedEncType = errors.New("unsupported encryption type")

	// ErrKeyNotFound is returned when no key is registered for the requested scope.
	ErrKeyNotFound = errors.New("no key for decryption scope")

	// ErrDecryptionFailed is returned when the ciphertext cannot be opened
	// with the selected key.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKey is returned for keys that are not 256 bits long.
	ErrInvalidKey = errors.New("invalid key length")
)
