package store

import "errors"

// Low-level database operation errors. Repository methods wrap them so
// callers can match with [errors.Is].
var (
	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("error executing sql statement")

	// ErrEmptyKey is returned when a metadata key is blank.
	ErrEmptyKey = errors.New("metadata key is empty")
)
