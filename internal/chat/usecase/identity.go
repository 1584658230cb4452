package usecase

import (
	"context"

	"financial-assistant/internal/chat"
)

// answerIdentity returns the fixed self-description. No external calls.
func (uc *implUseCase) answerIdentity(ctx context.Context, state chat.TurnState) chat.TurnState {
	state.FinalAnswer = chat.IdentityAnswer
	return state
}
