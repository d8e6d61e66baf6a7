// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CipherData is the transfer object of a single vault record as it is
// received from a sync response or read back from local storage.
//
// Encrypted values are carried as encoded cipher strings. Identifiers,
// flags and the type discriminant are plain. Attachments and Fields keep
// the difference between "absent" (nil) and "empty" (non-nil, zero length):
// encoding/json decodes `null` or a missing key to nil and `[]` to an empty
// slice, and both states survive a re-encode.
type CipherData struct {
	// ID is the unique identifier of the record. Nil for a record that
	// was never persisted.
	ID *string `json:"id,omitempty"`

	// OrganizationID selects the organization key used for decryption.
	// Nil means the record belongs to the personal vault.
	OrganizationID *string `json:"organizationId,omitempty"`

	// FolderID is an optional logical container for the record.
	FolderID *string `json:"folderId,omitempty"`

	// Name is the encrypted display name.
	Name string `json:"name,omitempty"`

	// Notes is the encrypted free-form annotation.
	Notes string `json:"notes,omitempty"`

	// Type selects which payload below is meaningful.
	Type CipherType `json:"type"`

	Favorite            bool `json:"favorite"`
	OrganizationUseTotp bool `json:"organizationUseTotp"`
	Edit                bool `json:"edit"`

	// CollectionIDs lists the organization collections the record belongs to.
	CollectionIDs []string `json:"collectionIds,omitempty"`

	Login      *LoginData      `json:"login,omitempty"`
	Card       *CardData       `json:"card,omitempty"`
	Identity   *IdentityData   `json:"identity,omitempty"`
	SecureNote *SecureNoteData `json:"secureNote,omitempty"`

	Attachments []AttachmentData `json:"attachments"`
	Fields      []FieldData      `json:"fields"`
}

// LoginData holds the encrypted login payload.
type LoginData struct {
	URI      string `json:"uri,omitempty"`
	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`
	Totp     string `json:"totp,omitempty"`
}

// CardData holds the encrypted payment card payload.
type CardData struct {
	CardholderName string `json:"cardholderName,omitempty"`
	Brand          string `json:"brand,omitempty"`
	Number         string `json:"number,omitempty"`
	ExpMonth       string `json:"expMonth,omitempty"`
	ExpYear        string `json:"expYear,omitempty"`
	Code           string `json:"code,omitempty"`
}

// IdentityData holds the encrypted identity payload.
type IdentityData struct {
	Title          string `json:"title,omitempty"`
	FirstName      string `json:"firstName,omitempty"`
	MiddleName     string `json:"middleName,omitempty"`
	LastName       string `json:"lastName,omitempty"`
	Address1       string `json:"address1,omitempty"`
	Address2       string `json:"address2,omitempty"`
	Address3       string `json:"address3,omitempty"`
	City           string `json:"city,omitempty"`
	State          string `json:"state,omitempty"`
	PostalCode     string `json:"postalCode,omitempty"`
	Country        string `json:"country,omitempty"`
	Company        string `json:"company,omitempty"`
	Email          string `json:"email,omitempty"`
	Phone          string `json:"phone,omitempty"`
	SSN            string `json:"ssn,omitempty"`
	Username       string `json:"username,omitempty"`
	PassportNumber string `json:"passportNumber,omitempty"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
}

// SecureNoteData holds the secure note payload. The note text itself is
// stored in CipherData.Notes.
type SecureNoteData struct {
	Type SecureNoteType `json:"type"`
}

// AttachmentData describes a file attached to a record. Only the file name
// is encrypted; the blob lives behind URL.
type AttachmentData struct {
	ID       string `json:"id"`
	URL      string `json:"url,omitempty"`
	FileName string `json:"fileName,omitempty"`
	Size     string `json:"size,omitempty"`
	SizeName string `json:"sizeName,omitempty"`
}

// FieldData is a user-defined name/value pair attached to a record.
type FieldData struct {
	Type  FieldType `json:"type"`
	Name  string    `json:"name,omitempty"`
	Value string    `json:"value,omitempty"`
}
