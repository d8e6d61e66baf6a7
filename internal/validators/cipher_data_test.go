// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-keeper/models"
)

func ptr[T any](v T) *T { return &v }

func validCipherData() models.CipherData {
	return models.CipherData{
		ID:   ptr("c-1"),
		Name: "7.bmFtZQ==",
		Type: models.CipherTypeLogin,
		Login: &models.LoginData{
			Username: "7.dXNlcg==",
			Password: "7.cGFzcw==",
		},
		Fields: []models.FieldData{{Type: models.FieldTypeHidden, Name: "7.cGlu", Value: "7.MTIzNA=="}},
	}
}

func TestNewCipherDataValidator(t *testing.T) {
	v := NewCipherDataValidator()
	require.NotNil(t, v)
	assert.IsType(t, &CipherDataValidator{}, v)
}

func TestCipherDataValidator_Single(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *models.CipherData)
		fields  []string
		wantErr error
	}{
		{name: "valid", mutate: func(*models.CipherData) {}},
		{name: "nil id is allowed", mutate: func(d *models.CipherData) { d.ID = nil }},
		{name: "empty id", mutate: func(d *models.CipherData) { d.ID = ptr("") }, wantErr: ErrInvalidID},
		{name: "empty name", mutate: func(d *models.CipherData) { d.Name = "" }, wantErr: ErrEmptyName},
		{name: "zero type", mutate: func(d *models.CipherData) { d.Type = 0 }, wantErr: ErrInvalidType},
		{name: "unknown type passes by default", mutate: func(d *models.CipherData) { d.Type = 99 }},
		{
			name:    "unknown type rejected with known_type",
			mutate:  func(d *models.CipherData) { d.Type = 99 },
			fields:  []string{FieldKnownType},
			wantErr: ErrUnknownType,
		},
		{
			name:    "plaintext password",
			mutate:  func(d *models.CipherData) { d.Login.Password = "hunter2" },
			wantErr: ErrInvalidCipherValue,
		},
		{
			name:    "plaintext field value",
			mutate:  func(d *models.CipherData) { d.Fields[0].Value = "1234" },
			wantErr: ErrInvalidCipherValue,
		},
		{
			name: "scoped to name only",
			mutate: func(d *models.CipherData) {
				d.Login.Password = "hunter2"
			},
			fields: []string{FieldName},
		},
		{name: "unknown field", mutate: func(*models.CipherData) {}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewCipherDataValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := validCipherData()
			tt.mutate(&data)

			err := v.Validate(context.Background(), data, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}

			// pointer form behaves the same
			errPtr := v.Validate(context.Background(), &data, tt.fields...)
			assert.Equal(t, err, errPtr)
		})
	}
}

func TestCipherDataValidator_ReportsFirstBadValue(t *testing.T) {
	data := validCipherData()
	data.Login.Username = "plain-user"
	data.Login.Password = "plain-pass"

	err := NewCipherDataValidator().Validate(context.Background(), data)
	require.ErrorIs(t, err, ErrInvalidCipherValue)
	assert.Contains(t, err.Error(), "login.username")
}

func TestCipherDataValidator_Batch(t *testing.T) {
	v := NewCipherDataValidator()
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		second := validCipherData()
		second.ID = ptr("c-2")
		third := validCipherData()
		third.ID = nil
		fourth := validCipherData()
		fourth.ID = nil

		assert.NoError(t, v.Validate(ctx, []models.CipherData{validCipherData(), second, third, fourth}))
	})

	t.Run("empty", func(t *testing.T) {
		assert.ErrorIs(t, v.Validate(ctx, []models.CipherData{}), ErrEmptyCiphers)
	})

	t.Run("duplicate ids", func(t *testing.T) {
		err := v.Validate(ctx, []models.CipherData{validCipherData(), validCipherData()})
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Contains(t, err.Error(), "item 1")
	})

	t.Run("invalid item is indexed", func(t *testing.T) {
		bad := validCipherData()
		bad.ID = ptr("c-2")
		bad.Name = ""

		err := v.Validate(ctx, []models.CipherData{validCipherData(), bad})
		require.ErrorIs(t, err, ErrEmptyName)
		assert.Contains(t, err.Error(), "item 1")
	})
}

func TestCipherDataValidator_UnsupportedType(t *testing.T) {
	v := NewCipherDataValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), (*models.CipherData)(nil)), ErrUnsupportedType)
}
