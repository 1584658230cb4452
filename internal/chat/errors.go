package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyQuestion = errors.New("question is empty")
)
