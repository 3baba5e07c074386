package config

import (
	"fmt"
	"net/url"
	"strconv"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that the loaded configuration is usable. The service
// refuses to start on a missing credential or an unparseable endpoint instead
// of failing on the first user request.
func ValidateConfig(cfg *Config) error {
	if cfg.OpenRouterAPIKey == "" {
		return ValidationError{Field: "OPENROUTER_API_KEY", Message: "credential must not be empty"}
	}

	if cfg.OpenRouterAPIURL == "" {
		return ValidationError{Field: "OPENROUTER_API_URL", Message: "endpoint URL must not be empty"}
	}
	parsed, err := url.Parse(cfg.OpenRouterAPIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return ValidationError{Field: "OPENROUTER_API_URL", Message: fmt.Sprintf("invalid endpoint URL %q", cfg.OpenRouterAPIURL)}
	}

	if cfg.Model == "" {
		return ValidationError{Field: "OPENROUTER_MODEL", Message: "model identifier must not be empty"}
	}

	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "port must not be empty"}
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		return ValidationError{Field: "SERVER_PORT", Message: fmt.Sprintf("invalid port %q", cfg.ServerPort)}
	}

	if cfg.RequestTimeout <= 0 {
		return ValidationError{Field: "REQUEST_TIMEOUT_SECONDS", Message: "timeout must be positive"}
	}

	return nil
}
