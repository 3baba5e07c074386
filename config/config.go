package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerPort string
	ServerHost string

	// Completion API configuration
	OpenRouterAPIKey string
	OpenRouterAPIURL string
	Model            string
	AppReferer       string
	AppTitle         string
	RequestTimeout   time.Duration

	// Redis configuration (rate limiting)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// CORS configuration
	AllowedOrigins []string
}

const (
	defaultOpenRouterURL  = "https://openrouter.ai/api/v1/chat/completions"
	defaultModel          = "meta-llama/llama-3-70b-instruct:free"
	defaultRequestTimeout = 30 * time.Second
)

// LoadConfig creates a new Config instance from environment variables.
// The completion API credential is required; there is no default value.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		ServerHost: getEnv("SERVER_HOST", "0.0.0.0"),

		OpenRouterAPIURL: getEnv("OPENROUTER_API_URL", defaultOpenRouterURL),
		Model:            getEnv("OPENROUTER_MODEL", defaultModel),
		AppReferer:       getEnv("APP_REFERER", "https://flavorgen.app"),
		AppTitle:         getEnv("APP_TITLE", "AI Recipe Generator"),
		RequestTimeout:   defaultRequestTimeout,

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisURL:      os.Getenv("REDIS_URL"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	if timeoutStr := os.Getenv("REQUEST_TIMEOUT_SECONDS"); timeoutStr != "" {
		secs, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REQUEST_TIMEOUT_SECONDS value %q: %w", timeoutStr, err)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(o); trimmed != "" {
				cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
			}
		}
	} else {
		cfg.AllowedOrigins = []string{"http://localhost:5173"}
	}

	apiKey, err := loadAPIKey()
	if err != nil {
		return nil, err
	}
	cfg.OpenRouterAPIKey = apiKey

	// Validate the configuration
	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadAPIKey resolves the completion API credential from the environment or a
// secret file. A missing credential is a startup error, never a silent default.
func loadAPIKey() (string, error) {
	if apiKey := os.Getenv("OPENROUTER_API_KEY"); apiKey != "" {
		return apiKey, nil
	}

	apiKeyFile := os.Getenv("OPENROUTER_API_KEY_FILE")
	if apiKeyFile == "" {
		return "", fmt.Errorf("OPENROUTER_API_KEY or OPENROUTER_API_KEY_FILE must be set")
	}

	apiKeyBytes, err := os.ReadFile(apiKeyFile)
	if err != nil {
		return "", fmt.Errorf("failed to read API key file: %w", err)
	}

	apiKey := strings.TrimSpace(string(apiKeyBytes))
	if apiKey == "" {
		return "", fmt.Errorf("API key file is empty")
	}

	return apiKey, nil
}

// getEnv returns the value of the environment variable or a fallback. Only
// used for non-secret values; credentials never get defaults.
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
