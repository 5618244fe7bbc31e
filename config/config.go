package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string // default: 8080

	// Database
	PostgresDSN string

	// Cache
	RedisAddr string

	// Text-generation providers
	DeepSeek ProviderConfig
	OpenAI   ProviderConfig

	// Email
	ResendAPIKey string
	EmailFrom    string // default: "TextCraft <no-reply@textcraft.ai>"

	// Observability
	OTELExporterType     string // "stdout" or "otlp"
	OTELExporterEndpoint string // default: "localhost:4317"
}

// ProviderConfig holds one provider's endpoint and sampling defaults. A missing
// APIKey is not a load error: it surfaces as a configuration error on the first
// request routed to that provider.
type ProviderConfig struct {
	APIKey           string
	BaseURL          string
	Model            string
	Temperature      float64
	MaxTokens        int
	TopP             float64
	FrequencyPenalty float64
	PresencePenalty  float64
}

func Load() (*Config, error) {
	// Load .env file if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
		DeepSeek: ProviderConfig{
			APIKey:           os.Getenv("DEEPSEEK_API_KEY"),
			BaseURL:          getEnv("DEEPSEEK_BASE_URL", "https://api.deepseek.com"),
			Model:            getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
			Temperature:      getEnvFloat("DEEPSEEK_TEMPERATURE", 0.0),
			MaxTokens:        getEnvInt("DEEPSEEK_MAX_TOKENS", 4096),
			TopP:             getEnvFloat("DEEPSEEK_TOP_P", 0.8),
			FrequencyPenalty: getEnvFloat("DEEPSEEK_FREQUENCY_PENALTY", 0.2),
			PresencePenalty:  getEnvFloat("DEEPSEEK_PRESENCE_PENALTY", 0.1),
		},
		OpenAI: ProviderConfig{
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com"),
			Model:       getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
			Temperature: getEnvFloat("OPENAI_TEMPERATURE", 0.7),
			MaxTokens:   getEnvInt("OPENAI_MAX_TOKENS", 500),
		},
		ResendAPIKey:         os.Getenv("RESEND_API_KEY"),
		EmailFrom:            getEnv("EMAIL_FROM", "TextCraft <no-reply@textcraft.ai>"),
		OTELExporterType:     getEnv("OTEL_EXPORTER_TYPE", "stdout"),
		OTELExporterEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
	}

	// Validation
	if cfg.PostgresDSN == "" {
		return nil, fmt.Errorf("POSTGRES_DSN is required")
	}
	if cfg.RedisAddr == "" {
		return nil, fmt.Errorf("REDIS_ADDR is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return n
}
