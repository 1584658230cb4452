package chat

// Classification
const (
	PromptClassify = `You are a query classifier. Your job is to assign a user's financial query to ONE of the following categories:
- portfolio: The user is asking about their personal portfolio, holdings, returns, P&L, or any data that would be in a database.
- general: The user is asking a general financial question, about markets, stocks, or economic concepts that requires web search.
- smalltalk: The user is engaging in casual conversation, greetings, or jokes.
- identity: The user is asking about you, the AI assistant.
- invalid: The query is offensive, gibberish, or completely out of context.

Respond with ONLY the category name.
%sUser Query: "%s"
Category:`

	PromptHistoryPrefix = "Recent conversation:\n"

	// MaxHistoryInPrompt caps how many prior messages the classifier sees.
	MaxHistoryInPrompt = 6
)

// Translation
const (
	PromptTranslateToEnglish = `Translate the following financial query to professional English. Respond with only the translation: '%s'`
	PromptTranslateToArabic  = `Translate the following financial response to professional Arabic. Respond with only the translation: '%s'`
)

// Handlers
const (
	PromptSmallTalk = `You are a friendly financial assistant. Provide a brief, conversational response to: '%s'`

	// IdentityAnswer is the fixed self-description; no model call is made.
	IdentityAnswer = "I am a multi-agent AI financial assistant, designed to help you analyze portfolio data and research market insights using specialized agents."

	// RejectionAnswer is the fixed refusal for invalid queries.
	RejectionAnswer = "I can only answer questions related to finance and your portfolio. Please ask a relevant question."
)

// Fixed user-facing failure messages. Handlers are total: any internal failure
// becomes one of these, never an error to the caller.
const (
	MsgPortfolioUnavailable = "I'm sorry, I had trouble accessing the portfolio data. The query might be too complex or the data may not be available."
	MsgNoData               = "I ran a query but found no data for your request."
	MsgSearchUnavailable    = "Sorry, I couldn't access my online information source right now."
	MsgAssistantUnavailable = "I'm sorry, I'm having trouble understanding requests right now. Please try again in a moment."
)
