package usecase

import (
	"financial-assistant/internal/sqlgen/repository"
	pkgLog "financial-assistant/pkg/log"
	"financial-assistant/pkg/ollama"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        *ollama.Client
	vectorRepo repository.VectorRepository
	dataRepo   repository.DataRepository
}

// New creates a new sqlgen UseCase instance.
func New(
	l pkgLog.Logger,
	llm *ollama.Client,
	vectorRepo repository.VectorRepository,
	dataRepo repository.DataRepository,
) *implUseCase {
	return &implUseCase{
		l:          l,
		llm:        llm,
		vectorRepo: vectorRepo,
		dataRepo:   dataRepo,
	}
}
