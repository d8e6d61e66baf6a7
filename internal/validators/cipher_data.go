package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/cipher-keeper/internal/crypto"
	"github.com/MKhiriev/cipher-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldID targets the optional record identifier.
	FieldID = "id"

	// FieldName targets the encrypted display name.
	FieldName = "name"

	// FieldType targets the type discriminant. Any positive value passes.
	FieldType = "type"

	// FieldKnownType additionally requires a type this build can hydrate.
	FieldKnownType = "known_type"

	// FieldEncryptedValues targets every encrypted value of the record,
	// which must be empty or a well-formed cipher string.
	FieldEncryptedValues = "encrypted_values"
)

// CipherDataValidator implements the Validator interface for
// models.CipherData and batches of it.
type CipherDataValidator struct {
}

// NewCipherDataValidator constructs a new CipherDataValidator
// and returns it as the Validator interface.
func NewCipherDataValidator() Validator {
	return &CipherDataValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.CipherData / *models.CipherData
//   - []models.CipherData: must be non-empty, ids must be unique and
//     every item must pass the single-record rules.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// FieldID, FieldName, FieldType and FieldEncryptedValues are checked.
func (v *CipherDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CipherData:
		return v.validateCipherData(ctx, value, fields...)
	case *models.CipherData:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCipherData(ctx, *value, fields...)
	case []models.CipherData:
		return v.validateBatch(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CipherDataValidator) validateBatch(ctx context.Context, batch []models.CipherData, fields ...string) error {
	if len(batch) == 0 {
		return ErrEmptyCiphers
	}

	seen := make(map[string]struct{}, len(batch))
	for i, data := range batch {
		if err := v.validateCipherData(ctx, data, fields...); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}

		if data.ID == nil {
			continue
		}
		if _, dup := seen[*data.ID]; dup {
			return fmt.Errorf("item %d: %w: %s", i, ErrDuplicateID, *data.ID)
		}
		seen[*data.ID] = struct{}{}
	}

	return nil
}

// validateCipherData returns the first encountered validation error or nil.
func (v *CipherDataValidator) validateCipherData(_ context.Context, data models.CipherData, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldName, FieldType, FieldEncryptedValues}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if data.ID != nil && *data.ID == "" {
				return ErrInvalidID
			}
		case FieldName:
			if data.Name == "" {
				return ErrEmptyName
			}
		case FieldType:
			if data.Type <= 0 {
				return ErrInvalidType
			}
		case FieldKnownType:
			if !data.Type.IsKnown() {
				return fmt.Errorf("%w: %d", ErrUnknownType, data.Type)
			}
		case FieldEncryptedValues:
			if err := validateEncryptedValues(data); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateEncryptedValues checks the layout only; keys are not needed.
// Values are checked in record order so the first bad one is reported.
func validateEncryptedValues(data models.CipherData) error {
	for _, v := range encryptedValues(data) {
		if v.value == "" {
			continue
		}
		if _, _, err := crypto.ParseCipherString(v.value); err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidCipherValue, v.name)
		}
	}
	return nil
}

type namedValue struct {
	name  string
	value string
}

func encryptedValues(data models.CipherData) []namedValue {
	values := []namedValue{
		{"name", data.Name},
		{"notes", data.Notes},
	}

	if l := data.Login; l != nil {
		values = append(values,
			namedValue{"login.uri", l.URI},
			namedValue{"login.username", l.Username},
			namedValue{"login.password", l.Password},
			namedValue{"login.totp", l.Totp},
		)
	}
	if c := data.Card; c != nil {
		values = append(values,
			namedValue{"card.cardholderName", c.CardholderName},
			namedValue{"card.brand", c.Brand},
			namedValue{"card.number", c.Number},
			namedValue{"card.expMonth", c.ExpMonth},
			namedValue{"card.expYear", c.ExpYear},
			namedValue{"card.code", c.Code},
		)
	}
	if id := data.Identity; id != nil {
		values = append(values,
			namedValue{"identity.title", id.Title},
			namedValue{"identity.firstName", id.FirstName},
			namedValue{"identity.middleName", id.MiddleName},
			namedValue{"identity.lastName", id.LastName},
			namedValue{"identity.address1", id.Address1},
			namedValue{"identity.address2", id.Address2},
			namedValue{"identity.address3", id.Address3},
			namedValue{"identity.city", id.City},
			namedValue{"identity.state", id.State},
			namedValue{"identity.postalCode", id.PostalCode},
			namedValue{"identity.country", id.Country},
			namedValue{"identity.company", id.Company},
			namedValue{"identity.email", id.Email},
			namedValue{"identity.phone", id.Phone},
			namedValue{"identity.ssn", id.SSN},
			namedValue{"identity.username", id.Username},
			namedValue{"identity.passportNumber", id.PassportNumber},
			namedValue{"identity.licenseNumber", id.LicenseNumber},
		)
	}
	for i, a := range data.Attachments {
		values = append(values, namedValue{fmt.Sprintf("attachments[%d].fileName", i), a.FileName})
	}
	for i, f := range data.Fields {
		values = append(values,
			namedValue{fmt.Sprintf("fields[%d].name", i), f.Name},
			namedValue{fmt.Sprintf("fields[%d].value", i), f.Value},
		)
	}

	return values
}
