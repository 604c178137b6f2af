package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	// LLM provider (OpenRouter, OpenAI-compatible)
	LLMAPIKey         string
	LLMBaseURL        string
	LLMModel          string
	LLMAppTitle       string
	LLMReferer        string
	LLMTimeoutSeconds int

	// Optional backing stores; empty means in-process defaults.
	DatabaseURL string
	RedisURL    string

	ChatHistoryLimit int

	JWTSecret            string
	JWTIssuer            string
	JWTTTLMinutes        int
	OperatorEmail        string
	OperatorPasswordHash string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:                 getEnv("PORT", "8080"),
		LLMAPIKey:            getEnv("LLM_API_KEY", os.Getenv("OPENROUTER_API_KEY")),
		LLMBaseURL:           getEnv("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMModel:             getEnv("LLM_MODEL", "google/gemini-2.5-flash"),
		LLMAppTitle:          getEnv("OPENROUTER_APP_TITLE", "SwiftStream Logistics"),
		LLMReferer:           os.Getenv("OPENROUTER_REFERER"),
		LLMTimeoutSeconds:    getEnvInt("LLM_TIMEOUT_SECONDS", 60),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		ChatHistoryLimit:     getEnvInt("CHAT_HISTORY_LIMIT", 20),
		JWTSecret:            os.Getenv("JWT_SECRET"),
		JWTIssuer:            getEnv("JWT_ISSUER", "swiftstream-console"),
		JWTTTLMinutes:        getEnvInt("JWT_TTL_MINUTES", 60),
		OperatorEmail:        os.Getenv("OPERATOR_EMAIL"),
		OperatorPasswordHash: os.Getenv("OPERATOR_PASSWORD_HASH"),
	}
	return cfg
}

// placeholderJWTSecret is the well-known development value; it never enables the console.
const placeholderJWTSecret = "dev-secret-change"

// ConsoleEnabled reports whether operator endpoints can be served. It needs a
// shipment store, an operator and a JWT secret set explicitly for this deployment.
func (c Config) ConsoleEnabled() bool {
	return c.DatabaseURL != "" && c.OperatorEmail != "" && c.OperatorPasswordHash != "" && c.JWTSecretSet()
}

// JWTSecretSet reports whether JWT_SECRET holds a real secret.
func (c Config) JWTSecretSet() bool {
	return c.JWTSecret != "" && c.JWTSecret != placeholderJWTSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
