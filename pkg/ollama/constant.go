package ollama

const (
	DefaultModel      = "llama3"
	DefaultEmbedModel = "nomic-embed-text"
)
