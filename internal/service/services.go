package service

import (
	"github.com/MKhiriev/cipher-keeper/internal/config"
	"github.com/MKhiriev/cipher-keeper/internal/domain"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/store"
)

type Services struct {
	VaultService VaultService
}

func NewServices(repositories *store.Repositories, crypto domain.CryptoService, platform domain.PlatformUtils, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	vault := NewVaultService(repositories.CipherRepository, crypto, platform, VaultOptions{
		DecryptConcurrency: cfg.Workers.DecryptConcurrency,
		StrictTypes:        cfg.App.StrictTypes,
	}, logger)

	return &Services{
		VaultService: NewVaultValidationService(cfg.App.StrictTypes).Wrap(vault),
	}
}
