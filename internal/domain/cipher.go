// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package domain

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/cipher-keeper/models"
)

// Cipher is a single encrypted vault record.
//
// Payload is either nil (unknown Type) or the one variant whose Type()
// equals Type. Attachments and Fields are three-state: nil means the source
// had none, an empty slice means the source had an explicitly empty list.
type Cipher struct {
	ID             *string
	OrganizationID *string
	FolderID       *string

	Name  *EncString
	Notes *EncString

	Type                models.CipherType
	Favorite            bool
	Edit                bool
	OrganizationUseTotp bool

	// LocalData is an opaque device-local bag. It is never encrypted and is
	// passed into the projection unchanged.
	LocalData map[string]any

	Payload Payload

	Attachments   []*Attachment
	Fields        []*Field
	CollectionIDs []string
}

// NewCipher hydrates a Cipher from a transfer object.
//
// A nil obj yields an empty Cipher, usable as a placeholder before data
// arrives. alreadyEncrypted marks the encrypted scalars of obj as trusted
// ciphertext; otherwise they are kept as plaintext awaiting encryption.
// Identifiers are always copied as plain values. NewCipher never decrypts.
func NewCipher(obj *models.CipherData, alreadyEncrypted bool, localData map[string]any) *Cipher {
	c := &Cipher{}
	if obj == nil {
		return c
	}

	c.ID = obj.ID
	c.OrganizationID = obj.OrganizationID
	c.FolderID = obj.FolderID
	c.Name = newEncString(obj.Name, alreadyEncrypted)
	c.Notes = newEncString(obj.Notes, alreadyEncrypted)

	c.Type = obj.Type
	c.Favorite = obj.Favorite
	c.OrganizationUseTotp = obj.OrganizationUseTotp
	c.Edit = obj.Edit
	c.CollectionIDs = obj.CollectionIDs
	c.LocalData = localData

	c.Payload = newPayload(obj, alreadyEncrypted)

	if obj.Attachments != nil {
		c.Attachments = make([]*Attachment, 0, len(obj.Attachments))
		for _, a := range obj.Attachments {
			c.Attachments = append(c.Attachments, NewAttachment(a, alreadyEncrypted))
		}
	}

	if obj.Fields != nil {
		c.Fields = make([]*Field, 0, len(obj.Fields))
		for _, f := range obj.Fields {
			c.Fields = append(c.Fields, NewField(f, alreadyEncrypted))
		}
	}

	return c
}

// Login returns the login payload, or nil if the cipher is not a login.
func (c *Cipher) Login() *Login {
	l, _ := c.Payload.(*Login)
	return l
}

// Card returns the card payload, or nil if the cipher is not a card.
func (c *Cipher) Card() *Card {
	card, _ := c.Payload.(*Card)
	return card
}

// Identity returns the identity payload, or nil if the cipher is not an identity.
func (c *Cipher) Identity() *Identity {
	i, _ := c.Payload.(*Identity)
	return i
}

// SecureNote returns the secure note payload, or nil if the cipher is not a
// secure note.
func (c *Cipher) SecureNote() *SecureNote {
	n, _ := c.Payload.(*SecureNote)
	return n
}

// Decrypt builds the plain projection of c.
//
// Every nested decryption uses c.OrganizationID as its scope and runs one at
// a time in a fixed order: name, notes, payload, then each attachment and
// each field in source order. The first failure aborts the whole call and
// no projection is returned. platform is only required for logins with a
// URI; its absence then yields ErrPlatformUtilsNotConfigured.
//
// c is not modified.
func (c *Cipher) Decrypt(ctx context.Context, crypto CryptoService, platform PlatformUtils) (*models.CipherView, error) {
	if c.Payload != nil && c.Payload.Type() != c.Type {
		return nil, fmt.Errorf("%w: type %d, payload %d", ErrPayloadTypeMismatch, c.Type, c.Payload.Type())
	}

	orgID := c.OrganizationID
	view := &models.CipherView{
		ID:                  c.ID,
		OrganizationID:      c.OrganizationID,
		FolderID:            c.FolderID,
		Favorite:            c.Favorite,
		Edit:                c.Edit,
		OrganizationUseTotp: c.OrganizationUseTotp,
		Type:                c.Type,
		LocalData:           maps.Clone(c.LocalData),
		CollectionIDs:       slices.Clone(c.CollectionIDs),
	}

	err := decryptFields(ctx, crypto, orgID,
		encField{"name", c.Name, &view.Name},
		encField{"notes", c.Notes, &view.Notes},
	)
	if err != nil {
		return nil, err
	}

	if err = c.decryptPayload(ctx, crypto, platform, view); err != nil {
		return nil, err
	}

	view.Attachments, err = decryptInOrder(ctx, c.Attachments, func(ctx context.Context, a *Attachment) (models.AttachmentView, error) {
		return a.Decrypt(ctx, crypto, orgID)
	})
	if err != nil {
		return nil, fmt.Errorf("decrypt attachments: %w", err)
	}

	view.Fields, err = decryptInOrder(ctx, c.Fields, func(ctx context.Context, f *Field) (models.FieldView, error) {
		return f.Decrypt(ctx, crypto, orgID)
	})
	if err != nil {
		return nil, fmt.Errorf("decrypt fields: %w", err)
	}

	return view, nil
}

// decryptPayload decrypts the populated variant into its slot of view and
// derives the subtitle from it.
func (c *Cipher) decryptPayload(ctx context.Context, crypto CryptoService, platform PlatformUtils, view *models.CipherView) error {
	orgID := c.OrganizationID

	switch p := c.Payload.(type) {
	case *Login:
		login, err := p.Decrypt(ctx, crypto, orgID)
		if err != nil {
			return fmt.Errorf("decrypt login: %w", err)
		}
		if login.URI != "" {
			if platform == nil {
				return ErrPlatformUtilsNotConfigured
			}
			login.Domain = platform.GetDomain(login.URI)
		}
		view.Login = login
		subTitle := login.Username
		view.SubTitle = &subTitle

	case *SecureNote:
		note, err := p.Decrypt(ctx, crypto, orgID)
		if err != nil {
			return fmt.Errorf("decrypt secure note: %w", err)
		}
		view.SecureNote = note

	case *Card:
		card, err := p.Decrypt(ctx, crypto, orgID)
		if err != nil {
			return fmt.Errorf("decrypt card: %w", err)
		}
		view.Card = card
		subTitle := CardSubTitle(card.Brand, card.Number)
		view.SubTitle = &subTitle

	case *Identity:
		identity, err := p.Decrypt(ctx, crypto, orgID)
		if err != nil {
			return fmt.Errorf("decrypt identity: %w", err)
		}
		view.Identity = identity
		subTitle := IdentitySubTitle(identity.FirstName, identity.LastName)
		view.SubTitle = &subTitle
	}

	return nil
}

// decryptInOrder decrypts items one after another and returns the results in
// the same order. A nil input yields nil and an empty input yields an empty
// slice. Items are never decrypted concurrently.
func decryptInOrder[T, V any](ctx context.Context, items []T, decrypt func(context.Context, T) (V, error)) ([]V, error) {
	if items == nil {
		return nil, nil
	}

	out := make([]V, 0, len(items))
	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		v, err := decrypt(ctx, item)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		out = append(out, v)
	}

	return out, nil
}
