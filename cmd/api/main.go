package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"financial-assistant/config"
	_ "financial-assistant/docs" // Swagger docs
	chatHTTP "financial-assistant/internal/chat/delivery/http"
	chatUC "financial-assistant/internal/chat/usecase"
	"financial-assistant/internal/httpserver"
	"financial-assistant/internal/sqlgen"
	sqlgenPostgre "financial-assistant/internal/sqlgen/repository/postgre"
	sqlgenQdrant "financial-assistant/internal/sqlgen/repository/qdrant"
	sqlgenUC "financial-assistant/internal/sqlgen/usecase"
	"financial-assistant/pkg/log"
	"financial-assistant/pkg/ollama"
	"financial-assistant/pkg/perplexity"
	"financial-assistant/pkg/qdrant"
)

// @title       Financial Assistant API
// @description Conversational financial assistant with portfolio analytics, online market research, and Arabic support.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Financial Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Ollama URL: %s", cfg.Ollama.URL)

	// 3. Shared clients
	llm := ollama.NewClient(cfg.Ollama.URL).
		WithModel(cfg.Ollama.Model).
		WithEmbedModel(cfg.Ollama.EmbedModel)

	search, err := perplexity.New(perplexity.Config{
		APIKey: cfg.Perplexity.APIKey,
		Model:  cfg.Perplexity.Model,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Perplexity client: ", err)
		return
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		logger.Error(ctx, "Failed to open Postgres connection: ", err)
		return
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		logger.Warnf(ctx, "Postgres not reachable yet (continuing): %v", err)
	}

	qdrantClient := qdrant.NewClient(cfg.Qdrant.URL)

	// 4. SQL generation domain
	vectorRepo := sqlgenQdrant.New(qdrantClient, llm, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, logger)
	dataRepo := sqlgenPostgre.New(db, logger)
	sqlGen := sqlgenUC.New(logger, llm, vectorRepo, dataRepo)

	if err := vectorRepo.EnsureCollection(ctx); err != nil {
		logger.Warnf(ctx, "Failed to ensure knowledge collection (continuing): %v", err)
	} else if stored, trainErr := sqlGen.Train(ctx, sqlgen.DefaultTrainingSet()); trainErr != nil {
		logger.Warnf(ctx, "Failed to seed training knowledge (continuing): %v", trainErr)
	} else {
		logger.Infof(ctx, "Knowledge base seeded with %d training items", stored)
	}

	// 5. Chat domain
	chatUseCase := chatUC.New(logger, llm, sqlGen, search)
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatHandler:     chatHandler,
		RateLimitPerMin: cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
