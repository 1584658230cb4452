package usecase

import (
	"context"
	"fmt"
	"strings"

	"financial-assistant/internal/sqlgen"
)

// Explain produces a natural-language explanation of a query result.
func (uc *implUseCase) Explain(ctx context.Context, input sqlgen.ExplainInput) (string, error) {
	resultText := truncateText(input.Results.String(), MaxCharsPerResult)

	prompt := fmt.Sprintf(PromptExplain, input.Question, input.SQL, resultText)
	answer, err := uc.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("LLM failed: %w", err)
	}

	answer = strings.TrimSpace(answer)
	if answer == "" {
		return "", fmt.Errorf("empty LLM response")
	}

	return answer, nil
}

// truncateText safely truncates text to maxLen runes.
func truncateText(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	return string(runes[:maxLen]) + "... [truncated]"
}
