package repository

import "errors"

// Repository-level errors.
var (
	ErrFailedToEmbed  = errors.New("failed to generate embedding")
	ErrFailedToStore  = errors.New("failed to store training item")
	ErrFailedToSearch = errors.New("failed to search knowledge base")
	ErrFailedToQuery  = errors.New("failed to execute query")
)
