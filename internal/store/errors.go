package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a lookup, update or delete targets an
	// id that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoteRejected is returned when the database refuses a row because it
	// violates a column constraint (length, NOT NULL, CHECK).
	ErrNoteRejected = errors.New("note was rejected by storage")

	// ErrNoteNotSaved is returned when an INSERT completes without returning
	// the stored row.
	ErrNoteNotSaved = errors.New("note was not saved")
)

// Configuration errors returned by [NewStorages].
var (
	ErrUnknownDriver = errors.New("unknown database driver")
	ErrEmptyDSN      = errors.New("empty database DSN")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrPreparingStatement is returned when a SQL statement cannot be prepared.
	ErrPreparingStatement = errors.New("failed to prepare statement")

	// ErrExecutingStatement is returned when a prepared statement fails.
	ErrExecutingStatement = errors.New("failed to execute prepared statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)
