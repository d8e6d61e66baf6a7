package utils

import "github.com/google/uuid"

// RecordIDGenerator hands out time-ordered record ids, so ids assigned in
// one import sort in input order.
type RecordIDGenerator struct{}

func NewRecordIDGenerator() *RecordIDGenerator {
	return &RecordIDGenerator{}
}

// Generate returns a UUIDv7. It falls back to a random UUIDv4 only if the
// clock-based generator fails.
func (g *RecordIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
