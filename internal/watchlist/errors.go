package watchlist

import "errors"

var (
	// ErrNotFound indicates the requested item doesn't exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate indicates a unique constraint violation.
	ErrDuplicate = errors.New("duplicate entry")
)
