package domain

import "github.com/MKhiriev/cipher-keeper/models"

// Payload is the type-specific part of a Cipher. The set of implementations
// is closed: *Login, *Card, *Identity and *SecureNote.
type Payload interface {
	// Type returns the cipher type this payload belongs to.
	Type() models.CipherType

	isPayload()
}

func (*Login) Type() models.CipherType      { return models.CipherTypeLogin }
func (*Card) Type() models.CipherType       { return models.CipherTypeCard }
func (*Identity) Type() models.CipherType   { return models.CipherTypeIdentity }
func (*SecureNote) Type() models.CipherType { return models.CipherTypeSecureNote }

func (*Login) isPayload()      {}
func (*Card) isPayload()       {}
func (*Identity) isPayload()   {}
func (*SecureNote) isPayload() {}

// newPayload builds the single payload variant selected by obj.Type.
// It returns nil for types this build does not know.
func newPayload(obj *models.CipherData, alreadyEncrypted bool) Payload {
	switch obj.Type {
	case models.CipherTypeLogin:
		return NewLogin(obj.Login, alreadyEncrypted)
	case models.CipherTypeSecureNote:
		return NewSecureNote(obj.SecureNote)
	case models.CipherTypeCard:
		return NewCard(obj.Card, alreadyEncrypted)
	case models.CipherTypeIdentity:
		return NewIdentity(obj.Identity, alreadyEncrypted)
	default:
		return nil
	}
}
