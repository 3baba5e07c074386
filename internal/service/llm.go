package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"

	"github.com/pageza/flavorgen/backend/config"
	"github.com/pageza/flavorgen/backend/internal/composer"
)

// LLMService handles interactions with the OpenRouter chat-completion API
type LLMService struct {
	apiKey  string
	apiURL  string
	model   string
	referer string
	title   string
	client  *http.Client
}

// NewLLMService creates a new LLMService instance. The credential must already
// be resolved; an empty key is a programming error caught here rather than on
// the first request.
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.OpenRouterAPIKey == "" {
		return nil, fmt.Errorf("completion API key must not be empty")
	}
	if cfg.OpenRouterAPIURL == "" {
		return nil, fmt.Errorf("completion API URL must not be empty")
	}

	return &LLMService{
		apiKey:  cfg.OpenRouterAPIKey,
		apiURL:  cfg.OpenRouterAPIURL,
		model:   cfg.Model,
		referer: cfg.AppReferer,
		title:   cfg.AppTitle,
		client:  &http.Client{Timeout: cfg.RequestTimeout},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a request to the OpenRouter API
type Request struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	MaxTokens   int       `json:"max_tokens"`
	Temperature float64   `json:"temperature"`
	TopP        float64   `json:"top_p"`
}

// GenerateRecipe composes the recipe prompt for the given inputs and performs
// a single completion request. The caller validates that ingredients is
// non-empty after trimming.
func (s *LLMService) GenerateRecipe(ctx context.Context, ingredients, cuisine, diet string) (string, error) {
	prompt := composer.Compose(ingredients, cuisine, diet)
	return s.Complete(ctx, prompt)
}

// Complete issues one HTTP POST to the chat-completion endpoint and returns
// the first choice's message content. No retries are attempted; every failure
// is classified as one of the typed errors in this package.
func (s *LLMService) Complete(ctx context.Context, prompt string) (string, error) {
	reqBody := Request{
		Model: s.model,
		Messages: []Message{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   1500,
		Temperature: 0.7,
		TopP:        0.9,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", &UnexpectedError{Err: fmt.Errorf("failed to marshal request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", &UnexpectedError{Err: fmt.Errorf("failed to create request: %w", err)}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("HTTP-Referer", s.referer)
	req.Header.Set("X-Title", s.title)

	resp, err := s.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &UnexpectedError{Err: fmt.Errorf("failed to send request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return "", ErrTimeout
		}
		return "", &UnexpectedError{Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(body)}
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &MalformedResponseError{Reason: "response body is not valid JSON"}
	}
	if len(result.Choices) == 0 {
		return "", &MalformedResponseError{Reason: "no choices in response"}
	}

	return result.Choices[0].Message.Content, nil
}

// errorDetail extracts error.message from an error response body, falling
// back to the raw body when the body is not JSON.
func errorDetail(body []byte) string {
	var parsed struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return string(body)
	}
	if parsed.Error.Message == "" {
		return "Unknown error"
	}
	return parsed.Error.Message
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
