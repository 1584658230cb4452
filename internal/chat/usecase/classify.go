package usecase

import (
	"context"
	"fmt"
	"strings"

	"financial-assistant/internal/chat"
	"financial-assistant/internal/model"
)

// classify detects the input language, translates Arabic input to English,
// and assigns a category. Any LLM failure maps to the invalid branch so that
// a classification failure never crashes the turn.
func (uc *implUseCase) classify(ctx context.Context, state chat.TurnState, history []model.Message) chat.TurnState {
	state.ProcessedQuestion = state.OriginalQuestion

	if containsArabic(state.OriginalQuestion) {
		state.Translated = true

		translated, err := uc.llm.Generate(ctx,
			fmt.Sprintf(chat.PromptTranslateToEnglish, state.OriginalQuestion))
		if err != nil {
			uc.l.Warnf(ctx, "classify: translation failed: %v", err)
			state.ClassifyFailed = true
			state.Category = chat.CategoryInvalid
			return state
		}
		state.ProcessedQuestion = strings.TrimSpace(translated)
		uc.l.Infof(ctx, "classify: translated to %q", state.ProcessedQuestion)
	}

	prompt := fmt.Sprintf(chat.PromptClassify,
		historyContext(history), state.ProcessedQuestion)

	raw, err := uc.llm.Generate(ctx, prompt)
	if err != nil {
		uc.l.Warnf(ctx, "classify: classification failed: %v", err)
		state.ClassifyFailed = true
		state.Category = chat.CategoryInvalid
		return state
	}

	state.Category = chat.ParseCategory(raw)
	uc.l.Infof(ctx, "classify: %q -> %s", strings.TrimSpace(raw), state.Category)
	return state
}

// historyContext renders recent conversation history for the classification
// prompt. Empty history yields an empty string so the prompt stays unchanged.
func historyContext(history []model.Message) string {
	if len(history) == 0 {
		return ""
	}

	start := 0
	if len(history) > chat.MaxHistoryInPrompt {
		start = len(history) - chat.MaxHistoryInPrompt
	}

	var b strings.Builder
	b.WriteString(chat.PromptHistoryPrefix)
	for _, msg := range history[start:] {
		b.WriteString(fmt.Sprintf("%s: %s\n", msg.Role, msg.Content))
	}
	b.WriteString("\n")
	return b.String()
}

// containsArabic reports whether the text contains characters in the Arabic
// script block (U+0600..U+06FF).
func containsArabic(text string) bool {
	for _, r := range text {
		if r >= 0x0600 && r <= 0x06FF {
			return true
		}
	}
	return false
}
