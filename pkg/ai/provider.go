package ai

import (
	"context"
	"errors"
	"fmt"
)

// Model failure classes. Every error returned by Client wraps exactly one of them.
var (
	// ErrModelUnavailable means the provider is not configured (missing credentials or unknown provider)
	ErrModelUnavailable = errors.New("ai model unavailable")
	// ErrModelError covers upstream failures and unusable output
	ErrModelError = errors.New("ai model error")
	// ErrModelTimeout means the call did not finish within the configured timeout
	ErrModelTimeout = errors.New("ai model timeout")
	// ErrModelBusy means the client is saturated (queue full or rate window exhausted)
	ErrModelBusy = errors.New("ai model busy")
)

// Provider is a single generative-language backend
type Provider interface {
	Name() string
	Model() string
	// Configured reports whether credentials are present; no network call is made
	Configured() bool
	Complete(ctx context.Context, req CompletionRequest) (string, error)
}

// CompletionRequest is a provider-neutral single-turn completion
type CompletionRequest struct {
	System      string
	Prompt      string
	JSON        bool // ask the backend for a JSON object response
	MaxTokens   int
	Temperature float32
}

// APIError is an upstream HTTP failure
type APIError struct {
	Provider   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
	}
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}
