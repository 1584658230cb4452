package chat

import (
	"context"

	"financial-assistant/internal/model"
)

// UseCase defines the business logic interface for the chat domain.
type UseCase interface {
	// Ask runs one conversation turn: classify the question, dispatch to
	// exactly one handler, and translate the answer back if needed.
	//
	// Handler failures never surface as errors; the output always carries a
	// populated answer (possibly a fixed apology). An error is returned only
	// for contract violations such as an empty question.
	Ask(ctx context.Context, sc model.Scope, input AskInput) (AskOutput, error)
}
