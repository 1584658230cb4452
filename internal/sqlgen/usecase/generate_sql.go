package usecase

import (
	"context"
	"fmt"
	"strings"

	"financial-assistant/internal/sqlgen"
	"financial-assistant/internal/sqlgen/repository"
)

// GenerateSQL translates a natural-language question into SQL, grounded on
// knowledge retrieved from the vector store.
func (uc *implUseCase) GenerateSQL(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", sqlgen.ErrEmptyQuestion
	}

	uc.l.Infof(ctx, "GenerateSQL: question=%q", question)

	// Step 1: Retrieve relevant knowledge
	retrieved, err := uc.vectorRepo.SearchSimilar(ctx, repository.SearchSimilarOptions{
		Question: question,
		Limit:    MaxContextItems,
	})
	if err != nil {
		return "", fmt.Errorf("failed to search knowledge base: %w", err)
	}

	// Step 2: Build context block
	var contextBuilder strings.Builder
	if len(retrieved) > 0 {
		contextBuilder.WriteString(ContextHeader)
		for _, item := range retrieved {
			switch item.Kind {
			case sqlgen.KindDocumentation:
				contextBuilder.WriteString(ContextDocPrefix)
				contextBuilder.WriteString(truncateText(item.Documentation, MaxCharsPerContext))
				contextBuilder.WriteString("\n\n")
			case sqlgen.KindQuestionSQL:
				contextBuilder.WriteString(fmt.Sprintf(ContextPairPattern,
					truncateText(item.Question, MaxCharsPerContext), item.SQL))
				contextBuilder.WriteString("\n")
			}
		}
	}

	// Step 3: Call LLM
	prompt := fmt.Sprintf(PromptGenerateSQL, contextBuilder.String(), question)
	raw, err := uc.llm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("LLM failed: %w", err)
	}

	query := extractSQL(raw)
	if query == "" {
		return "", sqlgen.ErrEmptySQL
	}

	uc.l.Infof(ctx, "GenerateSQL: generated %q", query)
	return query, nil
}

// extractSQL strips markdown fences and surrounding prose the model may add
// despite instructions.
func extractSQL(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```sql")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.Index(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	return s
}
