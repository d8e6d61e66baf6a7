package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/cipher-keeper/models"
)

const ciphersTable = "ciphers"

var cipherColumns = []string{
	"id",
	"organization_id",
	"folder_id",
	"type",
	"data",
	"local_data",
	"created_at",
	"revised_at",
}

// cipherRow is the column-level shape of a stored record.
type cipherRow struct {
	ID             string
	OrganizationID sql.NullString
	FolderID       sql.NullString
	Type           int
	Data           string
	LocalData      sql.NullString
	CreatedAt      time.Time
	RevisedAt      time.Time
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func toCipherRow(c models.StoredCipher) (cipherRow, error) {
	data, err := json.Marshal(c.Data)
	if err != nil {
		return cipherRow{}, fmt.Errorf("%w: data: %w", ErrEncodingCipher, err)
	}

	row := cipherRow{
		ID:             *c.Data.ID,
		OrganizationID: nullString(c.Data.OrganizationID),
		FolderID:       nullString(c.Data.FolderID),
		Type:           int(c.Data.Type),
		Data:           string(data),
		CreatedAt:      c.CreatedAt,
		RevisedAt:      c.RevisedAt,
	}

	// nil bag stays NULL so an absent bag is not read back as an empty one
	if c.LocalData != nil {
		localData, err := json.Marshal(c.LocalData)
		if err != nil {
			return cipherRow{}, fmt.Errorf("%w: local data: %w", ErrEncodingCipher, err)
		}
		row.LocalData = sql.NullString{String: string(localData), Valid: true}
	}

	return row, nil
}

func (r cipherRow) toStoredCipher() (models.StoredCipher, error) {
	var c models.StoredCipher
	if err := json.Unmarshal([]byte(r.Data), &c.Data); err != nil {
		return models.StoredCipher{}, fmt.Errorf("%w: data of %s: %w", ErrEncodingCipher, r.ID, err)
	}

	if r.LocalData.Valid {
		if err := json.Unmarshal([]byte(r.LocalData.String), &c.LocalData); err != nil {
			return models.StoredCipher{}, fmt.Errorf("%w: local data of %s: %w", ErrEncodingCipher, r.ID, err)
		}
	}

	id := r.ID
	c.Data.ID = &id
	c.CreatedAt = r.CreatedAt
	c.RevisedAt = r.RevisedAt

	return c, nil
}

func scanCipherRow(s rowScanner) (cipherRow, error) {
	var r cipherRow
	err := s.Scan(
		&r.ID,
		&r.OrganizationID,
		&r.FolderID,
		&r.Type,
		&r.Data,
		&r.LocalData,
		&r.CreatedAt,
		&r.RevisedAt,
	)
	return r, err
}

func buildInsertCipherQuery(b squirrel.StatementBuilderType, r cipherRow) (string, []any, error) {
	query, args, err := b.Insert(ciphersTable).
		Columns(cipherColumns...).
		Values(r.ID, r.OrganizationID, r.FolderID, r.Type, r.Data, r.LocalData, r.CreatedAt, r.RevisedAt).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildGetCipherQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Select(cipherColumns...).
		From(ciphersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildGetAllCiphersQuery applies only the filter fields that are set.
func buildGetAllCiphersQuery(b squirrel.StatementBuilderType, filter models.CipherFilter) (string, []any, error) {
	q := b.Select(cipherColumns...).From(ciphersTable)

	if filter.OrganizationID != nil {
		q = q.Where(squirrel.Eq{"organization_id": *filter.OrganizationID})
	}
	if filter.FolderID != nil {
		q = q.Where(squirrel.Eq{"folder_id": *filter.FolderID})
	}
	if filter.Type != nil {
		q = q.Where(squirrel.Eq{"type": int(*filter.Type)})
	}

	query, args, err := q.OrderBy("created_at", "id").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteCipherQuery(b squirrel.StatementBuilderType, id string) (string, []any, error) {
	query, args, err := b.Delete(ciphersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
