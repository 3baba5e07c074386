package service

import (
	"errors"
	"fmt"
)

// Kind classifies a completion failure for the presentation layer. The result
// of a generation is discriminated by error type, never by sniffing the
// recipe text for marker substrings.
type Kind string

const (
	KindTimeout           Kind = "timeout"
	KindHTTPError         Kind = "http_error"
	KindMalformedResponse Kind = "malformed_response"
	KindUnexpected        Kind = "unexpected"
)

// ErrTimeout is returned when the completion request exceeds the configured
// timeout. The text is the fixed user-facing message.
var ErrTimeout = errors.New("Request timed out. Please try again.")

// APIError represents a non-200 response from the completion endpoint.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API Error: %d - %s", e.StatusCode, e.Detail)
}

// MalformedResponseError represents a 200 response whose body does not have
// the expected completion shape.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed completion response: %s", e.Reason)
}

// UnexpectedError wraps any other failure during request construction or
// execution (network failure, marshalling, etc.).
type UnexpectedError struct {
	Err error
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("Error: %s", e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

// FailureKind maps a completion error to its classification kind.
func FailureKind(err error) Kind {
	var apiErr *APIError
	var malformedErr *MalformedResponseError

	switch {
	case errors.Is(err, ErrTimeout):
		return KindTimeout
	case errors.As(err, &apiErr):
		return KindHTTPError
	case errors.As(err, &malformedErr):
		return KindMalformedResponse
	default:
		return KindUnexpected
	}
}
