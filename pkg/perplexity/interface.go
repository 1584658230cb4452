package perplexity

import "context"

// ISearch defines the interface for the Perplexity online-answer client.
// Implementations are safe for concurrent use.
type ISearch interface {
	// Search asks the online model the given question and returns its answer.
	Search(ctx context.Context, question string) (string, error)

	// Model returns the model being used.
	Model() string
}

// New creates a new Perplexity client with the given configuration.
func New(cfg Config) (ISearch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newPerplexityImpl(cfg), nil
}
