// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/cipher-keeper/internal/domain"
	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/store"
	"github.com/MKhiriev/cipher-keeper/models"
)

// VaultOptions tunes a vault service.
type VaultOptions struct {
	// DecryptConcurrency caps the number of records decrypted at the same
	// time by ListViews. Values below 1 mean 1.
	DecryptConcurrency int

	// StrictTypes rejects records whose type is not known instead of
	// keeping them without a payload.
	StrictTypes bool
}

type vaultService struct {
	cipherRepository store.CipherRepository
	crypto           domain.CryptoService
	platform         domain.PlatformUtils
	opts             VaultOptions

	logger *logger.Logger
}

func NewVaultService(cipherRepository store.CipherRepository, crypto domain.CryptoService, platform domain.PlatformUtils, opts VaultOptions, logger *logger.Logger) VaultService {
	if opts.DecryptConcurrency < 1 {
		opts.DecryptConcurrency = 1
	}

	return &vaultService{
		cipherRepository: cipherRepository,
		crypto:           crypto,
		platform:         platform,
		opts:             opts,
		logger:           logger,
	}
}

func (v *vaultService) Import(ctx context.Context, data []models.CipherData) ([]string, error) {
	log := logger.FromContext(ctx)

	toSave := make([]models.StoredCipher, 0, len(data))
	for i, d := range data {
		if v.opts.StrictTypes && !d.Type.IsKnown() {
			return nil, fmt.Errorf("item %d: %w: %d", i, ErrUnknownCipherType, d.Type)
		}
		if !d.Type.IsKnown() {
			log.Warn().
				Str("func", "vaultService.Import").
				Int("item", i).
				Int("type", int(d.Type)).
				Msg("importing cipher of unknown type without payload")
		}
		toSave = append(toSave, models.StoredCipher{Data: d})
	}

	saved, err := v.cipherRepository.Save(ctx, toSave)
	if err != nil {
		return nil, fmt.Errorf("save imported ciphers: %w", err)
	}

	ids := make([]string, 0, len(saved))
	for _, s := range saved {
		ids = append(ids, *s.Data.ID)
	}

	log.Info().Str("func", "vaultService.Import").Int("count", len(ids)).Msg("ciphers imported")
	return ids, nil
}

func (v *vaultService) GetView(ctx context.Context, id string) (*models.CipherView, error) {
	stored, err := v.cipherRepository.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if v.opts.StrictTypes && !stored.Data.Type.IsKnown() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCipherType, stored.Data.Type)
	}

	view, err := v.decrypt(ctx, stored)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "vaultService.GetView").
			Str("id", id).
			Msg("failed to decrypt cipher")
		return nil, err
	}

	return view, nil
}

// ListViews fans decryption out over at most DecryptConcurrency goroutines.
// Each record is still decrypted field by field in a fixed order; only
// records run in parallel. The first failure cancels the rest.
func (v *vaultService) ListViews(ctx context.Context, filter models.CipherFilter) ([]*models.CipherView, error) {
	log := logger.FromContext(ctx)

	stored, err := v.cipherRepository.GetAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	if v.opts.StrictTypes {
		known := make([]models.StoredCipher, 0, len(stored))
		for _, s := range stored {
			if s.Data.Type.IsKnown() {
				known = append(known, s)
				continue
			}
			log.Warn().
				Str("func", "vaultService.ListViews").
				Str("id", cipherID(s)).
				Int("type", int(s.Data.Type)).
				Msg("skipping cipher of unknown type")
		}
		stored = known
	}

	views := make([]*models.CipherView, len(stored))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(v.opts.DecryptConcurrency)

	for i, s := range stored {
		g.Go(func() error {
			view, err := v.decrypt(gctx, s)
			if err != nil {
				return fmt.Errorf("cipher %s: %w", cipherID(s), err)
			}
			views[i] = view
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Err(err).Str("func", "vaultService.ListViews").Msg("failed to decrypt ciphers")
		return nil, err
	}

	return views, nil
}

func (v *vaultService) Delete(ctx context.Context, id string) error {
	if err := v.cipherRepository.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "vaultService.Delete").Str("id", id).Msg("cipher deleted")
	return nil
}

// decrypt hydrates a stored record as already encrypted and projects it.
func (v *vaultService) decrypt(ctx context.Context, stored models.StoredCipher) (*models.CipherView, error) {
	cipher := domain.NewCipher(&stored.Data, true, stored.LocalData)
	return cipher.Decrypt(ctx, v.crypto, v.platform)
}

func cipherID(s models.StoredCipher) string {
	if s.Data.ID == nil {
		return ""
	}
	return *s.Data.ID
}
