package domain

//go:generate mockgen -source=interfaces.go -destination=../mock/domain_mock.go -package=mock

import "context"

// CryptoService decrypts encoded cipher strings.
// orgID selects the organization key; nil selects the personal vault key.
// Implementations must be safe for concurrent use.
type CryptoService interface {
	// DecryptToUtf8 decrypts enc and returns the plaintext as a string.
	// Returns an error on a missing key, malformed input or a failed
	// authentication check.
	DecryptToUtf8(ctx context.Context, enc *EncString, orgID *string) (string, error)
}

// PlatformUtils exposes the host-platform helpers the projection needs.
type PlatformUtils interface {
	// GetDomain returns the display domain of uri, or "" if it has none.
	GetDomain(uri string) string
}
