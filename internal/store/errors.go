package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when a statement targets a note ID that
	// does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrLikeNotFound is returned when no like row exists for a
	// (note, session) pair.
	ErrLikeNotFound = errors.New("like was not found")

	// ErrLikeAlreadyExists is returned when inserting a like that violates
	// the (note_id, session_id) uniqueness constraint.
	ErrLikeAlreadyExists = errors.New("like already exists")

	// ErrKeyNotFound is returned by the local key/value store for absent keys.
	ErrKeyNotFound = errors.New("key was not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or a statement
	// with a RETURNING clause fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrNilDatabase is returned when a storage is built without a connection.
	ErrNilDatabase = errors.New("database connection is nil")
)
