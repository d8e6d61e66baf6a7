package domain

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// Card is the encrypted payment card payload.
type Card struct {
	CardholderName *EncString
	Brand          *EncString
	Number         *EncString
	ExpMonth       *EncString
	ExpYear        *EncString
	Code           *EncString
}

// NewCard hydrates a Card from its transfer object. A nil obj yields an
// empty Card.
func NewCard(obj *models.CardData, alreadyEncrypted bool) *Card {
	if obj == nil {
		return &Card{}
	}

	return &Card{
		CardholderName: newEncString(obj.CardholderName, alreadyEncrypted),
		Brand:          newEncString(obj.Brand, alreadyEncrypted),
		Number:         newEncString(obj.Number, alreadyEncrypted),
		ExpMonth:       newEncString(obj.ExpMonth, alreadyEncrypted),
		ExpYear:        newEncString(obj.ExpYear, alreadyEncrypted),
		Code:           newEncString(obj.Code, alreadyEncrypted),
	}
}

func (c *Card) Decrypt(ctx context.Context, crypto CryptoService, orgID *string) (*models.CardView, error) {
	view := &models.CardView{}
	err := decryptFields(ctx, crypto, orgID,
		encField{"cardholder name", c.CardholderName, &view.CardholderName},
		encField{"brand", c.Brand, &view.Brand},
		encField{"number", c.Number, &view.Number},
		encField{"exp month", c.ExpMonth, &view.ExpMonth},
		encField{"exp year", c.ExpYear, &view.ExpYear},
		encField{"code", c.Code, &view.Code},
	)
	if err != nil {
		return nil, err
	}

	return view, nil
}
