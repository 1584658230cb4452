package usecase

const (
	MaxContextItems    = 5    // Top-K knowledge entries retrieved per question
	MaxCharsPerResult  = 2000 // Truncate result text before explanation prompt
	MaxCharsPerContext = 800  // Truncate each knowledge entry in the prompt
)

// Prompts
const (
	PromptGenerateSQL = `You are an expert PostgreSQL analyst for a financial portfolio database.

%s
Task: Write a single read-only SQL query (SELECT or WITH) that answers the question below.
- Use only tables and columns mentioned in the context.
- Respond with ONLY the SQL query, no explanation, no markdown.

Question: "%s"
SQL:`

	PromptExplain = `You are a financial assistant. A user asked: "%s"

The following SQL query was executed:
%s

It returned this result:
%s

Explain the result to the user in clear, concise, professional language. Do not mention SQL.`

	ContextHeader      = "Context (relevant schema documentation and prior queries):\n\n"
	ContextDocPrefix   = "-- Documentation --\n"
	ContextPairPattern = "-- Known question: %s --\n%s\n"
)
