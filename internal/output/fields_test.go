package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func loginView() *models.CipherView {
	return &models.CipherView{
		ID:   ptr("id-1"),
		Name: "GitHub",
		Type: models.CipherTypeLogin,
		Login: &models.LoginView{
			URI:      "https://github.com/login",
			Username: "octocat",
			Password: "hunter2",
			Domain:   "github.com",
		},
		Notes:    "work account",
		SubTitle: ptr("octocat"),
		Fields: []models.FieldView{
			{Type: models.FieldTypeHidden, Name: "Recovery", Value: "r-123"},
			{Type: models.FieldTypeText, Name: "Team", Value: ""},
		},
	}
}

func cardView() *models.CipherView {
	return &models.CipherView{
		ID:   ptr("id-2"),
		Name: "Visa",
		Type: models.CipherTypeCard,
		Card: &models.CardView{
			CardholderName: "Ada Lovelace",
			Brand:          "Visa",
			Number:         "4111111111111111",
			ExpMonth:       "04",
			ExpYear:        "2030",
			Code:           "123",
		},
		SubTitle: ptr("Visa, *1111"),
	}
}

func TestFieldValue(t *testing.T) {
	tests := []struct {
		name    string
		view    *models.CipherView
		field   string
		want    string
		wantErr error
	}{
		{name: "password", view: loginView(), field: "password", want: "hunter2"},
		{name: "case insensitive", view: loginView(), field: " Username ", want: "octocat"},
		{name: "custom hidden field", view: loginView(), field: "field:recovery", want: "r-123"},
		{name: "custom field empty", view: loginView(), field: "field:team", wantErr: ErrEmptyField},
		{name: "totp empty", view: loginView(), field: "totp", wantErr: ErrEmptyField},
		{name: "card field on login", view: loginView(), field: "number", wantErr: ErrUnknownField},
		{name: "card number", view: cardView(), field: "number", want: "4111111111111111"},
		{name: "card expiry", view: cardView(), field: "expiry", want: "04/2030"},
		{name: "notes", view: loginView(), field: "notes", want: "work account"},
		{name: "name", view: cardView(), field: "name", want: "Visa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FieldValue(tt.view, tt.field)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t,
		[]string{"name", "username", "password", "uri", "notes", "field:recovery"},
		FieldNames(loginView()))
}

func TestFieldValue_Identity(t *testing.T) {
	view := &models.CipherView{
		Name: "Me",
		Type: models.CipherTypeIdentity,
		Identity: &models.IdentityView{
			FirstName: "Ada",
			Email:     "ada@example.com",
			Address1:  "1 Main St",
			Address3:  "Apt 2",
		},
	}

	email, err := FieldValue(view, "email")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", email)

	address, err := FieldValue(view, "address")
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Apt 2", address)
}

func TestDefaultCopyField(t *testing.T) {
	assert.Equal(t, "password", DefaultCopyField(loginView()))
	assert.Equal(t, "number", DefaultCopyField(cardView()))
	assert.Equal(t, "email", DefaultCopyField(&models.CipherView{Identity: &models.IdentityView{}}))
	assert.Equal(t, "notes", DefaultCopyField(&models.CipherView{Type: models.CipherTypeSecureNote, SecureNote: &models.SecureNoteView{}}))
	assert.Equal(t, "notes", DefaultCopyField(&models.CipherView{Type: models.CipherType(99)}))
}

func TestExpiry(t *testing.T) {
	assert.Equal(t, "", expiry("", ""))
	assert.Equal(t, "2030", expiry("", "2030"))
	assert.Equal(t, "04", expiry("04", ""))
	assert.Equal(t, "04/2030", expiry("04", "2030"))
}
