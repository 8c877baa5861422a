package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"luminatext/internal/app/upload"
)

// Config holds the environment-driven service configuration.
type Config struct {
	Port        string
	Environment string
	MongoURI    string
	OpenAIKey   string
	MaxFileSize int64
}

// LoadEnv loads environment variables from a .env file if one exists.
// Variables set system-wide win; a missing file is not an error.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// FromEnv reads and validates the service configuration. It fails fast on a
// missing provider credential or store URI so a misconfigured deploy dies at
// startup rather than on the first upload.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:        getEnvOrDefault("PORT", "8000"),
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),
		MongoURI:    getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017/luminatext"),
		OpenAIKey:   strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		MaxFileSize: upload.DefaultMaxFileSize,
	}

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY environment variable must be set")
	}
	if !strings.HasPrefix(cfg.OpenAIKey, "sk-") {
		return nil, fmt.Errorf("invalid OPENAI_API_KEY format: must start with 'sk-'")
	}

	if raw := os.Getenv("MAX_FILE_SIZE"); raw != "" {
		size, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || size <= 0 {
			return nil, fmt.Errorf("invalid MAX_FILE_SIZE value: %q", raw)
		}
		cfg.MaxFileSize = size
	}

	return cfg, nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
