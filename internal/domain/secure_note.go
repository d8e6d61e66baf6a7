package domain

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// SecureNote is the secure note payload. It holds no encrypted values; the
// note text lives in Cipher.Notes.
type SecureNote struct {
	NoteType models.SecureNoteType
}

func NewSecureNote(obj *models.SecureNoteData) *SecureNote {
	if obj == nil {
		return &SecureNote{}
	}
	return &SecureNote{NoteType: obj.Type}
}

func (n *SecureNote) Decrypt(ctx context.Context, _ CryptoService, _ *string) (*models.SecureNoteView, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &models.SecureNoteView{Type: n.NoteType}, nil
}
