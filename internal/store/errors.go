package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrCipherNotFound is returned when a lookup or delete targets a record
	// id that does not exist.
	ErrCipherNotFound = errors.New("cipher was not found")

	// ErrCipherAlreadyExists is returned when a save collides with an
	// existing record id.
	ErrCipherAlreadyExists = errors.New("cipher already exists")

	// ErrUnsupportedDSN is returned when a DSN names neither a SQLite file
	// nor a PostgreSQL URL.
	ErrUnsupportedDSN = errors.New("unsupported database dsn")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan cipher row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan cipher rows")

	// ErrEncodingCipher is returned when a record cannot be serialized to
	// or deserialized from its JSON columns.
	ErrEncodingCipher = errors.New("failed to encode cipher")
)
