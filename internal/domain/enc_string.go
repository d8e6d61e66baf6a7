package domain

import (
	"context"
	"fmt"
)

// EncString is a single encrypted scalar value of a vault record.
//
// The encoded form is opaque to this package; parsing and decryption belong
// to the CryptoService. An EncString built from a value that was not yet
// encrypted is "pending": it holds plaintext awaiting encryption by the
// caller and decrypts to itself.
type EncString struct {
	encryptedString string
	pending         bool
}

// NewEncString wraps an already encoded cipher string.
func NewEncString(encryptedString string) *EncString {
	return &EncString{encryptedString: encryptedString}
}

// NewPendingEncString wraps plaintext that still has to be encrypted.
func NewPendingEncString(plain string) *EncString {
	return &EncString{encryptedString: plain, pending: true}
}

// newEncString is the hydration helper: empty source values stay absent.
func newEncString(value string, alreadyEncrypted bool) *EncString {
	if value == "" {
		return nil
	}
	if alreadyEncrypted {
		return NewEncString(value)
	}
	return NewPendingEncString(value)
}

// EncryptedString returns the encoded value as it was received.
func (e *EncString) EncryptedString() string {
	if e == nil {
		return ""
	}
	return e.encryptedString
}

// IsPending reports whether the value is plaintext awaiting encryption.
func (e *EncString) IsPending() bool {
	return e != nil && e.pending
}

func (e *EncString) String() string {
	return e.EncryptedString()
}

// Decrypt returns the plaintext of e using the key selected by orgID.
// A nil EncString decrypts to "" without calling crypto.
func (e *EncString) Decrypt(ctx context.Context, crypto CryptoService, orgID *string) (string, error) {
	if e == nil {
		return "", nil
	}
	if e.pending {
		return e.encryptedString, nil
	}
	if crypto == nil {
		return "", ErrCryptoServiceNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return crypto.DecryptToUtf8(ctx, e, orgID)
}

// encField binds one encrypted source to the plain destination it
// decrypts into.
type encField struct {
	name string
	src  *EncString
	dst  *string
}

// decryptFields decrypts every field in the given order, one at a time.
// The first failure aborts the walk; destinations written so far belong to a
// value the caller discards.
func decryptFields(ctx context.Context, crypto CryptoService, orgID *string, fields ...encField) error {
	for _, f := range fields {
		plain, err := f.src.Decrypt(ctx, crypto, orgID)
		if err != nil {
			return fmt.Errorf("decrypt %s: %w", f.name, err)
		}
		*f.dst = plain
	}
	return nil
}
