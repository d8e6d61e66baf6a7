package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// CipherRepository persists vault records exactly as received. It never
// sees plaintext.
type CipherRepository interface {
	// Save inserts ciphers in a single transaction. Records without an id
	// get a new one; zero timestamps are set to the current time. The
	// returned slice carries the stored values in input order.
	Save(ctx context.Context, ciphers []models.StoredCipher) ([]models.StoredCipher, error)

	// Get returns the record with the given id or [ErrCipherNotFound].
	Get(ctx context.Context, id string) (models.StoredCipher, error)

	// GetAll returns the records matching filter ordered by creation time.
	GetAll(ctx context.Context, filter models.CipherFilter) ([]models.StoredCipher, error)

	// Delete removes the record with the given id or returns [ErrCipherNotFound].
	Delete(ctx context.Context, id string) error
}

// ErrorClassificator maps a driver error to an [ErrorClassification].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// IDGenerator produces new record identifiers.
type IDGenerator interface {
	Generate() string
}
