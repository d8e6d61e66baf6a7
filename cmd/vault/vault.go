package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cipher-keeper/internal/adapter"
	"github.com/MKhiriev/cipher-keeper/internal/config"
	"github.com/MKhiriev/cipher-keeper/internal/crypto"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/platform"
	"github.com/MKhiriev/cipher-keeper/internal/service"
	"github.com/MKhiriev/cipher-keeper/internal/store"
)

// openVault builds the services for the configured mode. The returned
// close function releases the database, if one was opened.
func openVault(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*service.Services, func(), error) {
	if cfg.Client.IsRemote() {
		remote, err := adapter.NewHTTPVaultAdapter(cfg.Client, log)
		if err != nil {
			return nil, nil, fmt.Errorf("create remote adapter: %w", err)
		}
		log.Debug().Str("remote", cfg.Client.RemoteAddress).Msg("using remote vault")

		return &service.Services{VaultService: service.NewVaultValidationService(cfg.App.StrictTypes).Wrap(remote)}, func() {}, nil
	}

	if err := cfg.ValidateLocalVault(); err != nil {
		return nil, nil, err
	}

	cipherStrings, err := unlock(cfg.App)
	if err != nil {
		return nil, nil, err
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Err(err).Msg("error closing database")
		}
	}

	if err = db.Migrate(ctx); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("migrate database: %w", err)
	}

	services := service.NewServices(store.NewRepositories(db), cipherStrings, platform.NewDomainResolver(), *cfg, log)
	return services, closeDB, nil
}

// unlock derives the personal vault key and loads organization keys.
func unlock(cfg config.App) (*crypto.CipherStringService, error) {
	if err := cfg.ValidateKeyMaterial(); err != nil {
		return nil, err
	}
	salt, err := cfg.Salt()
	if err != nil {
		return nil, err
	}

	keyChain := crypto.NewKeyChainService()
	cipherStrings := crypto.NewCipherStringService(keyChain)
	cipherStrings.SetUserKey(keyChain.DeriveKey(cfg.MasterPassword, salt))

	if cfg.OrgKeysFile != "" {
		keys, err := crypto.LoadKeysFile(cfg.OrgKeysFile)
		if err != nil {
			return nil, fmt.Errorf("load organization keys: %w", err)
		}
		cipherStrings.SetOrgKeys(keys)
	}

	return cipherStrings, nil
}
