package usecase

import (
	"context"

	"financial-assistant/internal/chat"
)

// answerInvalid handles rejected queries and classification failures. When
// the classifier itself failed, the user sees an apology rather than a
// refusal, since the question may have been perfectly valid.
func (uc *implUseCase) answerInvalid(ctx context.Context, state chat.TurnState) chat.TurnState {
	if state.ClassifyFailed {
		state.FinalAnswer = chat.MsgAssistantUnavailable
		return state
	}

	state.FinalAnswer = chat.RejectionAnswer
	return state
}
