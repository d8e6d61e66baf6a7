package domain_test

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/MKhiriev/cipher-keeper/internal/domain"
)

var errBadCiphertext = errors.New("bad ciphertext")

// fakeCrypto "decrypts" values of the form "enc:<plain>" and records every
// call in order, together with the scope it was called with.
type fakeCrypto struct {
	mu       sync.Mutex
	calls    []string
	scopes   []*string
	failOn   string
	inFlight int
	maxSeen  int
}

func (f *fakeCrypto) DecryptToUtf8(ctx context.Context, enc *domain.EncString, orgID *string) (string, error) {
	f.mu.Lock()
	f.inFlight++
	if f.inFlight > f.maxSeen {
		f.maxSeen = f.inFlight
	}
	f.calls = append(f.calls, enc.EncryptedString())
	f.scopes = append(f.scopes, orgID)
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	value := enc.EncryptedString()
	if f.failOn != "" && value == f.failOn {
		return "", errBadCiphertext
	}
	plain, ok := strings.CutPrefix(value, "enc:")
	if !ok {
		return "", errBadCiphertext
	}
	return plain, nil
}

type fakePlatform struct {
	uris []string
}

func (p *fakePlatform) GetDomain(uri string) string {
	p.uris = append(p.uris, uri)
	return "domain-of(" + uri + ")"
}

func ptr[T any](v T) *T { return &v }
