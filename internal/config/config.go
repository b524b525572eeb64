// Package config centralises configuration parsing for the prediction API.
package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the prediction API.
type Config struct {
	HTTPAddress     string
	ModelPath       string // Path to the weights artifact; empty selects the heuristic predictor.
	AllowedOrigins  []string
	ShutdownTimeout time.Duration
}

// Load reads a local .env file when present, then environment variables,
// applying defaults suitable for local dev.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		ModelPath:       getEnv("MODEL_PATH", ""),
		AllowedOrigins:  splitAndTrim(getEnv("ALLOWED_ORIGINS", "*")),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
