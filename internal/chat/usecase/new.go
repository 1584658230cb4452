package usecase

import (
	"financial-assistant/internal/sqlgen"
	pkgLog "financial-assistant/pkg/log"
	"financial-assistant/pkg/ollama"
	"financial-assistant/pkg/perplexity"
)

type implUseCase struct {
	l      pkgLog.Logger
	llm    *ollama.Client
	sqlGen sqlgen.UseCase
	search perplexity.ISearch
}

// New creates a new chat UseCase instance. All collaborators are injected so
// tests can substitute fakes.
func New(
	l pkgLog.Logger,
	llm *ollama.Client,
	sqlGen sqlgen.UseCase,
	search perplexity.ISearch,
) *implUseCase {
	return &implUseCase{
		l:      l,
		llm:    llm,
		sqlGen: sqlGen,
		search: search,
	}
}
