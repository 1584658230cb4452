package sqlgen

import "errors"

// Domain-specific errors for the sqlgen package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
	ErrEmptySQL      = errors.New("generated SQL is empty")
	ErrNotReadQuery  = errors.New("query is not a read-only statement")
)
