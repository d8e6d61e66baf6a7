package crypto

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// LoadKeysFile reads a JSON object mapping organization ids to
// base64-encoded 256-bit keys:
//
//	{"3f2a...": "q83vEjRWeJAS..."}
func LoadKeysFile(path string) (map[string][]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read keys file: %w", err)
	}

	var encoded map[string]string
	if err = json.Unmarshal(raw, &encoded); err != nil {
		return nil, fmt.Errorf("decode keys file: %w", err)
	}

	keys := make(map[string][]byte, len(encoded))
	for orgID, b64 := range encoded {
		if orgID == "" {
			return nil, fmt.Errorf("keys file: %w: empty organization id", ErrInvalidKey)
		}
		key, err := base64.StdEncoding.DecodeString(b64)
		if err != nil {
			return nil, fmt.Errorf("keys file: organization %s: %w", orgID, err)
		}
		if len(key) != keyLength {
			return nil, fmt.Errorf("keys file: organization %s: %w: %d", orgID, ErrInvalidKey, len(key))
		}
		keys[orgID] = key
	}

	return keys, nil
}

// SaveKeysFile writes keys in the LoadKeysFile format. The file is created
// with owner-only permissions and replaced if it exists.
func SaveKeysFile(path string, keys map[string][]byte) error {
	encoded := make(map[string]string, len(keys))
	for orgID, key := range keys {
		if orgID == "" || len(key) != keyLength {
			return fmt.Errorf("keys file: organization %q: %w", orgID, ErrInvalidKey)
		}
		encoded[orgID] = base64.StdEncoding.EncodeToString(key)
	}

	raw, err := json.MarshalIndent(encoded, "", "  ")
	if err != nil {
		return fmt.Errorf("encode keys file: %w", err)
	}

	if err = os.WriteFile(path, append(raw, '\n'), 0o600); err != nil {
		return fmt.Errorf("write keys file: %w", err)
	}
	return nil
}

// SetOrgKeys installs every key of keys, as returned by LoadKeysFile.
func (s *CipherStringService) SetOrgKeys(keys map[string][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for orgID, key := range keys {
		s.orgKeys[orgID] = key
	}
}
