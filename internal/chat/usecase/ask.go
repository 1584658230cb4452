package usecase

import (
	"context"
	"strings"

	"financial-assistant/internal/chat"
	"financial-assistant/internal/model"
)

// Ask runs the routing graph for one conversation turn:
//
//	classify → exactly one handler → finalize
//
// The category switch is total: every category has exactly one branch, and
// every branch converges on finalize. No handler failure escapes as an error.
func (uc *implUseCase) Ask(ctx context.Context, sc model.Scope, input chat.AskInput) (chat.AskOutput, error) {
	if strings.TrimSpace(input.Question) == "" {
		return chat.AskOutput{}, chat.ErrEmptyQuestion
	}

	uc.l.Infof(ctx, "Ask: user=%s question=%q", sc.UserID, input.Question)

	state := chat.TurnState{OriginalQuestion: input.Question}
	state = uc.classify(ctx, state, input.History)

	switch state.Category {
	case chat.CategoryPortfolio:
		state = uc.answerPortfolio(ctx, state)
	case chat.CategoryGeneral:
		state = uc.answerGeneral(ctx, state)
	case chat.CategorySmallTalk:
		state = uc.answerSmallTalk(ctx, state)
	case chat.CategoryIdentity:
		state = uc.answerIdentity(ctx, state)
	default:
		// CategoryInvalid and anything unexpected.
		state = uc.answerInvalid(ctx, state)
	}

	state = uc.finalize(ctx, state)

	uc.l.Infof(ctx, "Ask: category=%s translated=%v answered", state.Category, state.Translated)

	return chat.AskOutput{
		Answer:       state.FinalAnswer,
		GeneratedSQL: state.GeneratedSQL,
		Results:      state.Results,
	}, nil
}
