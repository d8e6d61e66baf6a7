package domain

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// Identity is the encrypted identity payload.
type Identity struct {
	Title          *EncString
	FirstName      *EncString
	MiddleName     *EncString
	LastName       *EncString
	Address1       *EncString
	Address2       *EncString
	Address3       *EncString
	City           *EncString
	State          *EncString
	PostalCode     *EncString
	Country        *EncString
	Company        *EncString
	Email          *EncString
	Phone          *EncString
	SSN            *EncString
	Username       *EncString
	PassportNumber *EncString
	LicenseNumber  *EncString
}

// NewIdentity hydrates an Identity from its transfer object. A nil obj
// yields an empty Identity.
func NewIdentity(obj *models.IdentityData, alreadyEncrypted bool) *Identity {
	if obj == nil {
		return &Identity{}
	}

	enc := func(v string) *EncString { return newEncString(v, alreadyEncrypted) }

	return &Identity{
		Title:          enc(obj.Title),
		FirstName:      enc(obj.FirstName),
		MiddleName:     enc(obj.MiddleName),
		LastName:       enc(obj.LastName),
		Address1:       enc(obj.Address1),
		Address2:       enc(obj.Address2),
		Address3:       enc(obj.Address3),
		City:           enc(obj.City),
		State:          enc(obj.State),
		PostalCode:     enc(obj.PostalCode),
		Country:        enc(obj.Country),
		Company:        enc(obj.Company),
		Email:          enc(obj.Email),
		Phone:          enc(obj.Phone),
		SSN:            enc(obj.SSN),
		Username:       enc(obj.Username),
		PassportNumber: enc(obj.PassportNumber),
		LicenseNumber:  enc(obj.LicenseNumber),
	}
}

func (i *Identity) Decrypt(ctx context.Context, crypto CryptoService, orgID *string) (*models.IdentityView, error) {
	view := &models.IdentityView{}
	err := decryptFields(ctx, crypto, orgID,
		encField{"title", i.Title, &view.Title},
		encField{"first name", i.FirstName, &view.FirstName},
		encField{"middle name", i.MiddleName, &view.MiddleName},
		encField{"last name", i.LastName, &view.LastName},
		encField{"address1", i.Address1, &view.Address1},
		encField{"address2", i.Address2, &view.Address2},
		encField{"address3", i.Address3, &view.Address3},
		encField{"city", i.City, &view.City},
		encField{"state", i.State, &view.State},
		encField{"postal code", i.PostalCode, &view.PostalCode},
		encField{"country", i.Country, &view.Country},
		encField{"company", i.Company, &view.Company},
		encField{"email", i.Email, &view.Email},
		encField{"phone", i.Phone, &view.Phone},
		encField{"ssn", i.SSN, &view.SSN},
		encField{"username", i.Username, &view.Username},
		encField{"passport number", i.PassportNumber, &view.PassportNumber},
		encField{"license number", i.LicenseNumber, &view.LicenseNumber},
	)
	if err != nil {
		return nil, err
	}

	return view, nil
}
