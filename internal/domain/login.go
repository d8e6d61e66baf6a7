package domain

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// Login is the encrypted login payload.
type Login struct {
	URI      *EncString
	Username *EncString
	Password *EncString
	Totp     *EncString
}

// NewLogin hydrates a Login from its transfer object. A nil obj yields an
// empty Login.
func NewLogin(obj *models.LoginData, alreadyEncrypted bool) *Login {
	if obj == nil {
		return &Login{}
	}

	return &Login{
		URI:      newEncString(obj.URI, alreadyEncrypted),
		Username: newEncString(obj.Username, alreadyEncrypted),
		Password: newEncString(obj.Password, alreadyEncrypted),
		Totp:     newEncString(obj.Totp, alreadyEncrypted),
	}
}

// Decrypt returns the plain login. Domain is left empty; resolving it is
// the cipher's job.
func (l *Login) Decrypt(ctx context.Context, crypto CryptoService, orgID *string) (*models.LoginView, error) {
	view := &models.LoginView{}
	err := decryptFields(ctx, crypto, orgID,
		encField{"uri", l.URI, &view.URI},
		encField{"username", l.Username, &view.Username},
		encField{"password", l.Password, &view.Password},
		encField{"totp", l.Totp, &view.Totp},
	)
	if err != nil {
		return nil, err
	}

	return view, nil
}
