package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// VaultService stores encrypted records and hands out their decrypted
// projections.
type VaultService interface {
	// Import stores records exactly as received and returns their ids in
	// input order.
	Import(ctx context.Context, data []models.CipherData) ([]string, error)

	// GetView decrypts a single record.
	GetView(ctx context.Context, id string) (*models.CipherView, error)

	// ListViews decrypts every record matching filter. Views come back in
	// storage order regardless of how decryption was scheduled.
	ListViews(ctx context.Context, filter models.CipherFilter) ([]*models.CipherView, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) error
}

// VaultServiceWrapper defines middleware composition for VaultService.
// Implementations wrap an existing VaultService to add behavior such as
// logging or validating.
type VaultServiceWrapper interface {
	Wrap(VaultService) VaultService // returns a decorated VaultService applying additional behavior
}
