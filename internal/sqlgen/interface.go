package sqlgen

import (
	"context"

	"financial-assistant/internal/model"
)

// UseCase defines the business logic interface for the SQL generation domain:
// translating natural-language questions into read-only SQL over the portfolio
// database, executing them, and explaining the results.
type UseCase interface {
	// GenerateSQL translates a natural-language question into a SQL query,
	// grounded on retrieved schema documentation and prior question-SQL pairs.
	GenerateSQL(ctx context.Context, question string) (string, error)

	// RunSQL executes a read-only query and returns the tabular result.
	// Queries that are not a single read statement are rejected.
	RunSQL(ctx context.Context, query string) (model.ResultSet, error)

	// Explain produces a natural-language explanation of a query result.
	Explain(ctx context.Context, input ExplainInput) (string, error)

	// Train embeds and stores training items in the knowledge base.
	// Returns the number of items stored.
	Train(ctx context.Context, items []TrainingItem) (int, error)
}
