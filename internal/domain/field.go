package domain

import (
	"context"

	"github.com/MKhiriev/cipher-keeper/models"
)

// Field is an encrypted custom name/value pair.
type Field struct {
	Type  models.FieldType
	Name  *EncString
	Value *EncString
}

func NewField(obj models.FieldData, alreadyEncrypted bool) *Field {
	return &Field{
		Type:  obj.Type,
		Name:  newEncString(obj.Name, alreadyEncrypted),
		Value: newEncString(obj.Value, alreadyEncrypted),
	}
}

func (f *Field) Decrypt(ctx context.Context, crypto CryptoService, orgID *string) (models.FieldView, error) {
	view := models.FieldView{Type: f.Type}
	err := decryptFields(ctx, crypto, orgID,
		encField{"name", f.Name, &view.Name},
		encField{"value", f.Value, &view.Value},
	)
	if err != nil {
		return models.FieldView{}, err
	}

	return view, nil
}
