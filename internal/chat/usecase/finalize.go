package usecase

import (
	"context"
	"fmt"
	"strings"

	"financial-assistant/internal/chat"
)

// finalize translates the answer back to Arabic when the input required
// translation. For untranslated turns it is a strict no-op: no model call,
// answer byte-identical.
func (uc *implUseCase) finalize(ctx context.Context, state chat.TurnState) chat.TurnState {
	if !state.Translated || state.FinalAnswer == "" {
		return state
	}

	translated, err := uc.llm.Generate(ctx,
		fmt.Sprintf(chat.PromptTranslateToArabic, state.FinalAnswer))
	if err != nil {
		// Better an English answer than none.
		uc.l.Warnf(ctx, "finalize: back-translation failed: %v", err)
		return state
	}

	state.FinalAnswer = strings.TrimSpace(translated)
	return state
}
