package crypto

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/cipher-keeper/internal/domain"
)

// EncType identifies the algorithm an encoded cipher string was produced with.
type EncType int

// EncTypeAESGCM256B64 is AES-256-GCM over base64(nonce || ciphertext).
const EncTypeAESGCM256B64 EncType = 7

// CipherStringService implements [domain.CryptoService] on top of a
// [KeyChainService]. It keeps the personal vault key and one key per
// organization and picks the key by decryption scope.
//
// Encoded values look like "7.<base64(nonce || ciphertext)>".
type CipherStringService struct {
	keyChain KeyChainService

	mu      sync.RWMutex
	userKey []byte
	orgKeys map[string][]byte
}

// NewCipherStringService returns a service with no keys loaded.
func NewCipherStringService(keyChain KeyChainService) *CipherStringService {
	return &CipherStringService{
		keyChain: keyChain,
		orgKeys:  make(map[string][]byte),
	}
}

// SetUserKey installs the personal vault key used when no organization
// scope is given.
func (s *CipherStringService) SetUserKey(key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userKey = key
}

// SetOrgKey installs the key of a single organization.
func (s *CipherStringService) SetOrgKey(orgID string, key []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orgKeys[orgID] = key
}

// DecryptToUtf8 implements [domain.CryptoService].
func (s *CipherStringService) DecryptToUtf8(ctx context.Context, enc *domain.EncString, orgID *string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	encType, payload, err := ParseCipherString(enc.EncryptedString())
	if err != nil {
		return "", err
	}
	if encType != EncTypeAESGCM256B64 {
		return "", fmt.Errorf("%w: %d", ErrUnsupportedEncType, encType)
	}

	key, err := s.keyFor(orgID)
	if err != nil {
		return "", err
	}

	return s.keyChain.DecryptString(payload, key)
}

// Encrypt produces an encoded EncString for plain under the key of orgID.
// The vault encrypt command uses it; the domain model never encrypts.
func (s *CipherStringService) Encrypt(plain string, orgID *string) (*domain.EncString, error) {
	key, err := s.keyFor(orgID)
	if err != nil {
		return nil, err
	}

	payload, err := s.keyChain.EncryptString(plain, key)
	if err != nil {
		return nil, err
	}

	return domain.NewEncString(FormatCipherString(EncTypeAESGCM256B64, payload)), nil
}

func (s *CipherStringService) keyFor(orgID *string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if orgID == nil {
		if s.userKey == nil {
			return nil, fmt.Errorf("%w: user", ErrKeyNotFound)
		}
		return s.userKey, nil
	}

	key, ok := s.orgKeys[*orgID]
	if !ok {
		return nil, fmt.Errorf("%w: organization %s", ErrKeyNotFound, *orgID)
	}
	return key, nil
}

// ParseCipherString splits an encoded value into its encType and payload.
func ParseCipherString(value string) (EncType, string, error) {
	header, payload, found := strings.Cut(value, ".")
	if !found || payload == "" {
		return 0, "", ErrInvalidCipherString
	}

	n, err := strconv.Atoi(header)
	if err != nil {
		return 0, "", fmt.Errorf("%w: bad encryption type %q", ErrInvalidCipherString, header)
	}

	return EncType(n), payload, nil
}

// FormatCipherString is the inverse of ParseCipherString.
func FormatCipherString(encType EncType, payload string) string {
	return strconv.Itoa(int(encType)) + "." + payload
}
