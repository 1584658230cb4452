package perplexity

import "time"

const (
	DefaultBaseURL = "https://api.perplexity.ai"
	DefaultModel   = "llama-3-sonar-large-32k-online"
	DefaultTimeout = 60 * time.Second
)

// SystemPrompt frames every online search request.
const SystemPrompt = "You are a helpful financial assistant. Answer precisely and factually."
