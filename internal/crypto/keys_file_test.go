package crypto_test

import (
	"context"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-keeper/internal/crypto"
)

func ptr[T any](v T) *T { return &v }

func writeKeysFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "org-keys.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadKeysFile(t *testing.T) {
	keyChain := crypto.NewKeyChainService()
	orgKey, err := keyChain.GenerateKey()
	require.NoError(t, err)

	path := writeKeysFile(t, `{"org-1": "`+base64.StdEncoding.EncodeToString(orgKey)+`"}`)

	keys, err := crypto.LoadKeysFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"org-1": orgKey}, keys)

	svc := crypto.NewCipherStringService(keyChain)
	svc.SetOrgKeys(keys)

	enc, err := svc.Encrypt("shared secret", ptr("org-1"))
	require.NoError(t, err)
	plain, err := svc.DecryptToUtf8(context.Background(), enc, ptr("org-1"))
	require.NoError(t, err)
	assert.Equal(t, "shared secret", plain)
}

func TestLoadKeysFile_Errors(t *testing.T) {
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	valid := base64.StdEncoding.EncodeToString([]byte(strings.Repeat("k", 32)))

	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{name: "not json", content: `org-1=abc`},
		{name: "not an object", content: `["abc"]`},
		{name: "bad base64", content: `{"org-1": "***"}`},
		{name: "short key", content: `{"org-1": "` + short + `"}`, wantErr: crypto.ErrInvalidKey},
		{name: "empty org id", content: `{"": "` + valid + `"}`, wantErr: crypto.ErrInvalidKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			keys, err := crypto.LoadKeysFile(writeKeysFile(t, tt.content))
			assert.Nil(t, keys)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestLoadKeysFile_Missing(t *testing.T) {
	_, err := crypto.LoadKeysFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSaveKeysFile_RoundTrip(t *testing.T) {
	keyChain := crypto.NewKeyChainService()
	key, err := keyChain.GenerateKey()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "org-keys.json")
	require.NoError(t, crypto.SaveKeysFile(path, map[string][]byte{"org-1": key}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	keys, err := crypto.LoadKeysFile(path)
	require.NoError(t, err)
	assert.Equal(t, map[string][]byte{"org-1": key}, keys)
}

func TestSaveKeysFile_RejectsBadEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "org-keys.json")

	assert.ErrorIs(t, crypto.SaveKeysFile(path, map[string][]byte{"org-1": []byte("short")}), crypto.ErrInvalidKey)
	assert.ErrorIs(t, crypto.SaveKeysFile(path, map[string][]byte{"": make([]byte, 32)}), crypto.ErrInvalidKey)

	_, err := os.Stat(path)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
