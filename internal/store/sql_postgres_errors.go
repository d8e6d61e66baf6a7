package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells the cipher repository what to do with a failed
// statement: retry the transaction, report a duplicate id, or give up.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognized errors.
	NonRetryable ErrorClassification = iota

	// Retryable errors are transient; the whole save transaction is rerun.
	Retryable

	// UniqueViolation means a cipher with the same id is already stored.
	UniqueViolation
)

// PostgresErrorClassifier classifies *pgconn.PgError values from the pgx
// driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return NonRetryable
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClassification].
// Connection exceptions (class 08), transaction rollbacks (class 40, which
// covers serialization failures and deadlocks), "cannot connect now" and
// "too many connections" are retried. 23505 is a duplicate record id.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	switch {
	case code == pgerrcode.UniqueViolation:
		return UniqueViolation
	case pgerrcode.IsConnectionException(code),
		pgerrcode.IsTransactionRollback(code),
		code == pgerrcode.CannotConnectNow,
		code == pgerrcode.TooManyConnections:
		return Retryable
	default:
		return NonRetryable
	}
}
