package sqlgen

import "financial-assistant/internal/model"

// TrainingKind discriminates knowledge-base entries.
type TrainingKind string

const (
	// KindQuestionSQL is a question paired with the SQL that answers it.
	KindQuestionSQL TrainingKind = "question_sql"
	// KindDocumentation is free-form schema or business documentation.
	KindDocumentation TrainingKind = "documentation"
)

// TrainingItem is a single knowledge-base entry used to ground SQL generation.
type TrainingItem struct {
	Kind          TrainingKind
	Question      string // set for KindQuestionSQL
	SQL           string // set for KindQuestionSQL
	Documentation string // set for KindDocumentation
}

// ExplainInput is the input for result explanation.
type ExplainInput struct {
	Question string
	SQL      string
	Results  model.ResultSet
}
