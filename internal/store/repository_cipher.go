package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/cipher-keeper/internal/logger"
	"github.com/MKhiriev/cipher-keeper/models"
)

const (
	defaultSaveAttempts = 3
	defaultRetryBackoff = 50 * time.Millisecond
)

// cipherRepository is the database/sql implementation of [CipherRepository].
// It works against both PostgreSQL and SQLite; the dialect only changes the
// placeholder format and the error classifier carried by [*DB].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced.
type cipherRepository struct {
	*DB
	ids IDGenerator
	now func() time.Time

	maxAttempts int
	backoff     time.Duration
}

// NewCipherRepository constructs a [CipherRepository] backed by db. New
// record ids are produced by ids.
func NewCipherRepository(db *DB, ids IDGenerator) CipherRepository {
	return &cipherRepository{
		DB:          db,
		ids:         ids,
		now:         time.Now,
		maxAttempts: defaultSaveAttempts,
		backoff:     defaultRetryBackoff,
	}
}

// Save implements [CipherRepository]. The whole batch is inserted in one
// transaction; transient failures retry the transaction.
func (r *cipherRepository) Save(ctx context.Context, ciphers []models.StoredCipher) ([]models.StoredCipher, error) {
	log := logger.FromContext(ctx)

	saved := make([]models.StoredCipher, 0, len(ciphers))
	rows := make([]cipherRow, 0, len(ciphers))
	now := r.now().UTC()

	for _, c := range ciphers {
		if c.Data.ID == nil || *c.Data.ID == "" {
			id := r.ids.Generate()
			c.Data.ID = &id
		}
		if c.CreatedAt.IsZero() {
			c.CreatedAt = now
		}
		if c.RevisedAt.IsZero() {
			c.RevisedAt = c.CreatedAt
		}

		row, err := toCipherRow(c)
		if err != nil {
			log.Err(err).
				Str("func", "cipherRepository.Save").
				Str("id", *c.Data.ID).
				Msg("failed to encode cipher")
			return nil, err
		}

		saved = append(saved, c)
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return saved, nil
	}

	err := r.withRetry(ctx, "cipherRepository.Save", func() error {
		return r.insertAll(ctx, rows)
	})
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.Save").
			Int("count", len(rows)).
			Msg("failed to save ciphers")
		return nil, err
	}

	log.Debug().
		Str("func", "cipherRepository.Save").
		Int("count", len(rows)).
		Msg("ciphers saved")

	return saved, nil
}

func (r *cipherRepository) insertAll(ctx context.Context, rows []cipherRow) error {
	tx, err := r.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	for i, row := range rows {
		query, args, err := buildInsertCipherQuery(r.builder, row)
		if err != nil {
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if r.errorClassificator.Classify(err) == UniqueViolation {
				return fmt.Errorf("%w: %s", ErrCipherAlreadyExists, row.ID)
			}
			return fmt.Errorf("%w: item %d: %w", ErrExecutingStatement, i, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// withRetry runs op up to maxAttempts times while the driver reports a
// transient failure, waiting a linearly growing backoff between attempts.
func (r *cipherRepository) withRetry(ctx context.Context, funcName string, op func() error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = op()
		if err == nil || r.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().
			Err(err).
			Str("func", funcName).
			Int("attempt", attempt).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * r.backoff):
		}
	}
	return err
}

// Get implements [CipherRepository].
func (r *cipherRepository) Get(ctx context.Context, id string) (models.StoredCipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetCipherQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.Get").Str("id", id).Msg("failed to create query")
		return models.StoredCipher{}, err
	}

	row, err := scanCipherRow(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredCipher{}, fmt.Errorf("%w: %s", ErrCipherNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.Get").Str("id", id).Msg("failed to scan cipher row")
		return models.StoredCipher{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return row.toStoredCipher()
}

// GetAll implements [CipherRepository]. An empty result is an empty,
// non-nil slice.
func (r *cipherRepository) GetAll(ctx context.Context, filter models.CipherFilter) ([]models.StoredCipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetAllCiphersQuery(r.builder, filter)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.GetAll").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.GetAll").Msg("failed to execute query for getting ciphers")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.StoredCipher, 0, 50)

	for rows.Next() {
		row, scanErr := scanCipherRow(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "cipherRepository.GetAll").Msg("failed to scan cipher row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		c, err := row.toStoredCipher()
		if err != nil {
			log.Err(err).Str("func", "cipherRepository.GetAll").Str("id", row.ID).Msg("failed to decode cipher")
			return nil, err
		}

		results = append(results, c)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "cipherRepository.GetAll").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}

// Delete implements [CipherRepository].
func (r *cipherRepository) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteCipherQuery(r.builder, id)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.Delete").Str("id", id).Msg("failed to create query")
		return err
	}

	res, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.Delete").Str("id", id).Msg("failed to delete cipher")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrCipherNotFound, id)
	}

	log.Debug().Str("func", "cipherRepository.Delete").Str("id", id).Msg("cipher deleted")
	return nil
}
