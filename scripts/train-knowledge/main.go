package main

import (
	"context"
	"fmt"
	"os"

	"financial-assistant/config"
	"financial-assistant/internal/sqlgen"
	sqlgenQdrant "financial-assistant/internal/sqlgen/repository/qdrant"
	"financial-assistant/pkg/log"
	"financial-assistant/pkg/ollama"
	pkgQdrant "financial-assistant/pkg/qdrant"
)

// Seeds the vector knowledge base with the built-in schema documentation and
// question-SQL pairs. Safe to re-run: point IDs are derived from content, so
// existing items are overwritten in place.
func main() {
	// Load config
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize Logger
	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	// Initialize clients
	llm := ollama.NewClient(cfg.Ollama.URL).
		WithModel(cfg.Ollama.Model).
		WithEmbedModel(cfg.Ollama.EmbedModel)

	qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
	vectorRepo := sqlgenQdrant.New(qdrantClient, llm, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)

	if err := vectorRepo.EnsureCollection(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to ensure collection: %v", err)
	}

	items := sqlgen.DefaultTrainingSet()
	stored := 0
	for _, item := range items {
		if err := vectorRepo.StoreTrainingItem(ctx, item); err != nil {
			logger.Warnf(ctx, "Failed to store training item: %v", err)
			continue
		}
		stored++
	}

	logger.Infof(ctx, "Stored %d/%d training items in %q", stored, len(items), cfg.Qdrant.CollectionName)
}
