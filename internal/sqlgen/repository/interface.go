package repository

import (
	"context"

	"financial-assistant/internal/model"
	"financial-assistant/internal/sqlgen"
)

// VectorRepository stores and retrieves knowledge-base entries by semantic
// similarity.
type VectorRepository interface {
	// EnsureCollection creates the backing collection if it does not exist.
	EnsureCollection(ctx context.Context) error

	// StoreTrainingItem embeds and upserts a knowledge-base entry.
	StoreTrainingItem(ctx context.Context, item sqlgen.TrainingItem) error

	// SearchSimilar returns the entries most relevant to the question.
	SearchSimilar(ctx context.Context, opt SearchSimilarOptions) ([]RetrievedItem, error)
}

// DataRepository executes read-only queries against the portfolio database.
type DataRepository interface {
	// RunQuery executes the query and returns its tabular result.
	RunQuery(ctx context.Context, query string) (model.ResultSet, error)
}

// SearchSimilarOptions are options for VectorRepository.SearchSimilar.
type SearchSimilarOptions struct {
	Question string
	Limit    int
}

// RetrievedItem is a knowledge-base entry returned by semantic search.
type RetrievedItem struct {
	Kind          sqlgen.TrainingKind
	Question      string
	SQL           string
	Documentation string
	Score         float64
}
