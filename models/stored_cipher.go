package models

import "time"

// StoredCipher is the persistence model for a vault record.
// Data is kept exactly as received; the database never sees plaintext.
type StoredCipher struct {
	// Data is the transfer object, serialized to JSON in the `data` column.
	// Data.ID always equals the row id.
	Data CipherData

	// LocalData is the device-local bag (e.g. last-used timestamps) that is
	// never encrypted and never synced.
	LocalData map[string]any

	CreatedAt time.Time
	RevisedAt time.Time
}

// CipherFilter narrows GetAll queries. Zero value selects everything.
type CipherFilter struct {
	FolderID       *string
	OrganizationID *string
	Type           *CipherType
}

// TableName returns the name of the database table
// associated with the StoredCipher model.
func (s *StoredCipher) TableName() string {
	return "ciphers"
}
