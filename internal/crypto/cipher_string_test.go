// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/cipher-keeper/internal/crypto"
	"github.com/MKhiriev/cipher-keeper/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*crypto.CipherStringService, crypto.KeyChainService) {
	t.Helper()
	keyChain := crypto.NewKeyChainService()
	svc := crypto.NewCipherStringService(keyChain)

	userKey, err := keyChain.GenerateKey()
	require.NoError(t, err)
	svc.SetUserKey(userKey)

	return svc, keyChain
}

func TestCipherStringService_RoundTrip_UserScope(t *testing.T) {
	svc, _ := newService(t)

	enc, err := svc.Encrypt("hello", nil)
	require.NoError(t, err)
	assert.False(t, enc.IsPending())
	assert.NotContains(t, enc.EncryptedString(), "hello")

	encType, _, err := crypto.ParseCipherString(enc.EncryptedString())
	require.NoError(t, err)
	assert.Equal(t, crypto.EncTypeAESGCM256B64, encType)

	plain, err := svc.DecryptToUtf8(context.Background(), enc, nil)
	require.NoError(t, err)
	assert.Equal(t, "hello", plain)
}

func TestCipherStringService_OrgScope(t *testing.T) {
	svc, keyChain := newService(t)

	orgKey, err := keyChain.GenerateKey()
	require.NoError(t, err)
	orgID := "org-1"
	svc.SetOrgKey(orgID, orgKey)

	enc, err := svc.Encrypt("org secret", &orgID)
	require.NoError(t, err)

	plain, err := svc.DecryptToUtf8(context.Background(), enc, &orgID)
	require.NoError(t, err)
	assert.Equal(t, "org secret", plain)

	// the personal key must not open organization data
	_, err = svc.DecryptToUtf8(context.Background(), enc, nil)
	assert.ErrorIs(t, err, crypto.ErrDecryptionFailed)
}

func TestCipherStringService_UnknownOrg(t *testing.T) {
	svc, _ := newService(t)
	orgID := "missing"

	_, err := svc.Encrypt("x", &orgID)
	assert.ErrorIs(t, err, crypto.ErrKeyNotFound)

	_, err = svc.DecryptToUtf8(context.Background(), domain.NewEncString("7.AAAA"), &orgID)
	assert.ErrorIs(t, err, crypto.ErrKeyNotFound)
}

func TestCipherStringService_NoUserKey(t *testing.T) {
	svc := crypto.NewCipherStringService(crypto.NewKeyChainService())

	_, err := svc.DecryptToUtf8(context.Background(), domain.NewEncString("7.AAAA"), nil)
	assert.ErrorIs(t, err, crypto.ErrKeyNotFound)
}

func TestCipherStringService_BadInput(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		value   string
		wantErr error
	}{
		{name: "no header", value: "AAAA", wantErr: crypto.ErrInvalidCipherString},
		{name: "empty payload", value: "7.", wantErr: crypto.ErrInvalidCipherString},
		{name: "non numeric header", value: "x.AAAA", wantErr: crypto.ErrInvalidCipherString},
		{name: "unsupported type", value: "2.AAAA", wantErr: crypto.ErrUnsupportedEncType},
		{name: "short payload", value: "7.AAAA", wantErr: crypto.ErrInvalidCipherString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.DecryptToUtf8(ctx, domain.NewEncString(tt.value), nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCipherStringService_CanceledContext(t *testing.T) {
	svc, _ := newService(t)
	enc, err := svc.Encrypt("x", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = svc.DecryptToUtf8(ctx, enc, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFormatCipherString(t *testing.T) {
	assert.Equal(t, "7.abc", crypto.FormatCipherString(crypto.EncTypeAESGCM256B64, "abc"))
}
