package store

import "github.com/MKhiriev/cipher-keeper/internal/utils"

// Repositories groups every repository backed by one [*DB].
type Repositories struct {
	CipherRepository CipherRepository
}

// NewRepositories wires all repositories to db. Record ids are UUIDv7.
func NewRepositories(db *DB) *Repositories {
	return &Repositories{
		CipherRepository: NewCipherRepository(db, utils.NewRecordIDGenerator()),
	}
}
