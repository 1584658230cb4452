package chat

import (
	"strings"

	"financial-assistant/internal/model"
)

// Category is the validated classification of a user question. Classification
// text from the model is untrusted input: use ParseCategory, never a cast.
type Category string

const (
	CategoryPortfolio Category = "portfolio" // personal holdings, returns, P&L (database-backed)
	CategoryGeneral   Category = "general"   // market/economic questions (web search)
	CategorySmallTalk Category = "smalltalk" // greetings, casual conversation
	CategoryIdentity  Category = "identity"  // questions about the assistant itself
	CategoryInvalid   Category = "invalid"   // offensive, gibberish, out of context
)

// ParseCategory normalizes a raw model label and validates it against the
// closed category set. Anything that does not match exactly after
// normalization falls back to CategoryInvalid.
func ParseCategory(raw string) Category {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimRight(s, ".!?:;")
	s = strings.Trim(s, `"'`)
	s = strings.TrimSpace(s)

	switch Category(s) {
	case CategoryPortfolio, CategoryGeneral, CategorySmallTalk, CategoryIdentity, CategoryInvalid:
		return Category(s)
	default:
		return CategoryInvalid
	}
}

// TurnState is the per-question state threaded through the routing graph.
// Each stage consumes a state value and returns a new one; nothing is shared
// across turns.
type TurnState struct {
	OriginalQuestion  string
	ProcessedQuestion string
	Translated        bool // input was Arabic and was translated to English
	Category          Category
	ClassifyFailed    bool // LLM failure during detection/classification

	GeneratedSQL string           // portfolio path only
	Results      *model.ResultSet // portfolio path only
	FinalAnswer  string
}

// AskInput is the input for a single conversation turn.
type AskInput struct {
	Question string
	History  []model.Message // prior turns, newest last
}

// AskOutput is the result of a conversation turn.
type AskOutput struct {
	Answer       string
	GeneratedSQL string
	Results      *model.ResultSet
}
