package qdrant

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"financial-assistant/internal/sqlgen/repository"
	pkgLog "financial-assistant/pkg/log"
	"financial-assistant/pkg/ollama"
	pkgQdrant "financial-assistant/pkg/qdrant"
)

const (
	embedCacheSize = 512
	embedCacheTTL  = 30 * time.Minute
)

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       *ollama.Client
	collectionName string
	vectorSize     int
	l              pkgLog.Logger

	// embedCache avoids re-embedding repeated questions within a session.
	embedCache *expirable.LRU[string, []float32]
}

// New creates a new Qdrant-backed knowledge repository.
func New(client *pkgQdrant.Client, embedder *ollama.Client, collectionName string, vectorSize int, l pkgLog.Logger) repository.VectorRepository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
		embedCache:     expirable.NewLRU[string, []float32](embedCacheSize, nil, embedCacheTTL),
	}
}
