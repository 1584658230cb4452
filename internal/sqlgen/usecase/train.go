package usecase

import (
	"context"

	"financial-assistant/internal/sqlgen"
)

// Train embeds and stores training items in the knowledge base. Items that
// fail validation or storage are skipped with a warning; the count of stored
// items is returned.
func (uc *implUseCase) Train(ctx context.Context, items []sqlgen.TrainingItem) (int, error) {
	stored := 0

	for i, item := range items {
		if !validTrainingItem(item) {
			uc.l.Warnf(ctx, "Train: skipping invalid item %d (kind=%s)", i, item.Kind)
			continue
		}

		if err := uc.vectorRepo.StoreTrainingItem(ctx, item); err != nil {
			uc.l.Warnf(ctx, "Train: failed to store item %d: %v", i, err)
			continue
		}
		stored++
	}

	uc.l.Infof(ctx, "Train: stored %d/%d items", stored, len(items))
	return stored, nil
}

func validTrainingItem(item sqlgen.TrainingItem) bool {
	switch item.Kind {
	case sqlgen.KindQuestionSQL:
		return item.Question != "" && item.SQL != ""
	case sqlgen.KindDocumentation:
		return item.Documentation != ""
	default:
		return false
	}
}
