package usecase

import (
	"context"
	"fmt"

	"financial-assistant/internal/chat"
)

// answerSmallTalk handles greetings and casual conversation with a single
// conversational-tone LLM call.
func (uc *implUseCase) answerSmallTalk(ctx context.Context, state chat.TurnState) chat.TurnState {
	answer, err := uc.llm.Generate(ctx, fmt.Sprintf(chat.PromptSmallTalk, state.ProcessedQuestion))
	if err != nil {
		uc.l.Warnf(ctx, "smalltalk: LLM failed: %v", err)
		state.FinalAnswer = chat.MsgAssistantUnavailable
		return state
	}

	state.FinalAnswer = answer
	return state
}
