package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Financial assistant specifics
	Ollama     OllamaConfig
	Perplexity PerplexityConfig
	Postgres   PostgresConfig
	Qdrant     QdrantConfig
	Chat       ChatConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OllamaConfig configures the local LLM server used for classification,
// translation, SQL generation, and embeddings.
type OllamaConfig struct {
	URL        string
	Model      string
	EmbedModel string
}

// PerplexityConfig configures the online-answer (web search) provider.
type PerplexityConfig struct {
	APIKey string
	Model  string
}

// PostgresConfig configures the portfolio database connection.
type PostgresConfig struct {
	Host     string
	Port     int
	DBName   string
	User     string
	Password string
	SSLMode  string
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

// ChatConfig holds chat-endpoint specific settings.
type ChatConfig struct {
	RateLimitPerMin int
}

// DSN builds the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		p.Host, p.Port, p.DBName, p.User, p.Password, p.SSLMode)
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Ollama
	cfg.Ollama.URL = viper.GetString("ollama.url")
	cfg.Ollama.Model = viper.GetString("ollama.model")
	cfg.Ollama.EmbedModel = viper.GetString("ollama.embed_model")
	if ollamaURL := viper.GetString("ollama_api_url"); ollamaURL != "" {
		cfg.Ollama.URL = ollamaURL
	}
	if ollamaModel := viper.GetString("ollama_model"); ollamaModel != "" {
		cfg.Ollama.Model = ollamaModel
	}

	// Perplexity
	cfg.Perplexity.APIKey = viper.GetString("perplexity.api_key")
	cfg.Perplexity.Model = viper.GetString("perplexity.model")
	if pplxKey := viper.GetString("perplexity_api_key"); pplxKey != "" {
		cfg.Perplexity.APIKey = pplxKey
	}

	// Postgres
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.DBName = viper.GetString("postgres.db_name")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.SSLMode = viper.GetString("postgres.ssl_mode")
	if dbHost := viper.GetString("db_host"); dbHost != "" {
		cfg.Postgres.Host = dbHost
	}
	if dbPassword := viper.GetString("db_password"); dbPassword != "" {
		cfg.Postgres.Password = dbPassword
	}

	// Qdrant
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if qdrantURL := viper.GetString("qdrant_url"); qdrantURL != "" {
		cfg.Qdrant.URL = qdrantURL
	}

	// Chat
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("ollama.url", "http://localhost:11434")
	viper.SetDefault("ollama.model", "llama3")
	viper.SetDefault("ollama.embed_model", "nomic-embed-text")
	viper.SetDefault("perplexity.model", "llama-3-sonar-large-32k-online")
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.ssl_mode", "disable")
	viper.SetDefault("qdrant.url", "http://localhost:6333")
	viper.SetDefault("qdrant.collection_name", "finance_knowledge")
	viper.SetDefault("qdrant.vector_size", 768)
	viper.SetDefault("chat.rate_limit_per_min", 60)
}
