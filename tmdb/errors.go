package tmdb

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Common errors returned by the TMDB client.
var (
	// ErrMissingAPIKey indicates the client was created without an API key.
	ErrMissingAPIKey = errors.New("TMDB API key is required")
)

// APIError represents a non-2xx response from the TMDB API.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("tmdb API error: status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// DecodeError indicates a response body did not match the expected shape.
type DecodeError struct {
	Shape string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Shape, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// apiErrorFromBody builds an APIError from a failed response. TMDB error
// bodies carry a status_message field; anything unreadable maps to
// "Unknown error".
func apiErrorFromBody(statusCode int, body []byte) *APIError {
	var payload struct {
		StatusMessage string `json:"status_message"`
	}
	message := "Unknown error"
	if err := json.Unmarshal(body, &payload); err == nil && payload.StatusMessage != "" {
		message = payload.StatusMessage
	}
	return &APIError{StatusCode: statusCode, Message: message}
}
