package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/models"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type seqIDs struct{ n int }

func (s *seqIDs) Generate() string {
	s.n++
	return fmt.Sprintf("gen-%d", s.n)
}

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func newTestRepo(t *testing.T, dialect Dialect) (*cipherRepository, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock := newTestDB(t)

	repo := NewCipherRepository(NewDB(conn, dialect, logger.Nop()), &seqIDs{}).(*cipherRepository)
	repo.now = func() time.Time { return fixedNow }
	repo.backoff = 0

	return repo, mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

func ptr[T any](v T) *T { return &v }

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

func loginData(id *string) models.CipherData {
	return models.CipherData{
		ID:    id,
		Name:  "7.bmFtZQ==",
		Type:  models.CipherTypeLogin,
		Login: &models.LoginData{Username: "7.dXNlcg=="},
	}
}
