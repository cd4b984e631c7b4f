package store

import "errors"

// ErrTimerConfigNotFound is returned when no document was saved for the
// requested account.
var ErrTimerConfigNotFound = errors.New("timer config was not found")

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT/UPDATE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrDecodingDocument is returned when a stored document is not valid
	// JSON.
	ErrDecodingDocument = errors.New("failed to decode config document")
)
