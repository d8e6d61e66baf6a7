package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/internal/validators"
	"github.com/MKhiriev/cipher-keeper/models"
)

// VaultValidationService checks input before it reaches the wrapped
// VaultService. With strictTypes, records of unknown type are rejected on
// import and dropped from lists, which also holds in remote mode where the
// serving side may not be strict.
type VaultValidationService struct {
	inner       VaultService
	validator   validators.Validator
	strictTypes bool
}

func NewVaultValidationService(strictTypes bool) VaultServiceWrapper {
	return &VaultValidationService{
		validator:   validators.NewCipherDataValidator(),
		strictTypes: strictTypes,
	}
}

func (v *VaultValidationService) importFields() []string {
	if !v.strictTypes {
		return nil
	}
	return []string{
		validators.FieldID,
		validators.FieldName,
		validators.FieldType,
		validators.FieldKnownType,
		validators.FieldEncryptedValues,
	}
}

func (v *VaultValidationService) Import(ctx context.Context, data []models.CipherData) ([]string, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoCiphersProvided)
	}

	if err := v.validator.Validate(ctx, data, v.importFields()...); err != nil {
		if errors.Is(err, validators.ErrUnknownType) {
			return nil, fmt.Errorf("%w: %w", ErrUnknownCipherType, err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Import(ctx, data)
}

func (v *VaultValidationService) GetView(ctx context.Context, id string) (*models.CipherView, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoCipherID)
	}
	return v.inner.GetView(ctx, id)
}

func (v *VaultValidationService) ListViews(ctx context.Context, filter models.CipherFilter) ([]*models.CipherView, error) {
	views, err := v.inner.ListViews(ctx, filter)
	if err != nil || !v.strictTypes {
		return views, err
	}

	known := views[:0]
	for _, view := range views {
		if view.Type.IsKnown() {
			known = append(known, view)
			continue
		}
		logger.FromContext(ctx).Warn().
			Str("func", "VaultValidationService.ListViews").
			Int("type", int(view.Type)).
			Msg("dropping cipher of unknown type")
	}
	return known, nil
}

func (v *VaultValidationService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrValidationNoCipherID)
	}
	return v.inner.Delete(ctx, id)
}

func (v *VaultValidationService) Wrap(wrapped VaultService) VaultService {
	v.inner = wrapped
	return v
}
