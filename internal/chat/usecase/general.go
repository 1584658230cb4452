package usecase

import (
	"context"

	"financial-assistant/internal/chat"
)

// answerGeneral handles market/economic questions via the online search
// provider. Network errors and non-success responses are treated identically:
// the fixed online-source apology.
func (uc *implUseCase) answerGeneral(ctx context.Context, state chat.TurnState) chat.TurnState {
	answer, err := uc.search.Search(ctx, state.ProcessedQuestion)
	if err != nil {
		uc.l.Warnf(ctx, "general: online search failed: %v", err)
		state.FinalAnswer = chat.MsgSearchUnavailable
		return state
	}

	state.FinalAnswer = answer
	return state
}
