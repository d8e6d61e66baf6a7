// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/base64"
	"fmt"
)

const minKDFSaltLength = 16

// validate checks the merged [StructuredConfig] at startup. The database
// and key material are checked later by [StructuredConfig.ValidateLocalVault],
// only for commands that open the local vault.
//
// In remote mode ([Client.IsRemote]) only the client group is checked.
func (cfg *StructuredConfig) validate() error {
	if cfg.Client.IsRemote() {
		if cfg.Client.RequestTimeout <= 0 {
			return fmt.Errorf("%w: request timeout must be positive", ErrInvalidClientConfigs)
		}
		return nil
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.AuthEnabled() && (cfg.Server.TokenIssuer == "" || cfg.Server.TokenDuration <= 0) {
		return fmt.Errorf("%w: token issuer and duration are required with a sign key", ErrInvalidServerConfigs)
	}

	if cfg.Workers.DecryptConcurrency < 1 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// ValidateLocalVault checks what opening the local vault needs: a DSN and
// the key material.
func (cfg *StructuredConfig) ValidateLocalVault() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}
	return cfg.App.ValidateKeyMaterial()
}

// ValidateKeyMaterial checks the master password and the KDF salt.
func (a App) ValidateKeyMaterial() error {
	if a.MasterPassword == "" {
		return fmt.Errorf("%w: master password is required", ErrInvalidAppConfigs)
	}
	_, err := a.Salt()
	return err
}

// Salt decodes the base64 KDF salt.
func (a App) Salt() ([]byte, error) {
	salt, err := base64.StdEncoding.DecodeString(a.KDFSalt)
	if err != nil {
		return nil, fmt.Errorf("%w: kdf salt is not base64: %w", ErrInvalidAppConfigs, err)
	}
	if len(salt) < minKDFSaltLength {
		return nil, fmt.Errorf("%w: kdf salt must be at least %d bytes", ErrInvalidAppConfigs, minKDFSaltLength)
	}
	return salt, nil
}
