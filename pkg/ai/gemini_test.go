package ai

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGeminiServer points the genai SDK at a local server answering every call with status and body
func newGeminiServer(t *testing.T, status int, body string) *atomic.Int32 {
	t.Helper()
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	t.Setenv("GOOGLE_GEMINI_BASE_URL", ts.URL)
	return &calls
}

func TestGeminiClient_Configured(t *testing.T) {
	assert.False(t, NewGeminiClient("", "").Configured())
	assert.Equal(t, DefaultGeminiModel, NewGeminiClient("k", "").Model())
}

func TestGeminiClient_Complete(t *testing.T) {
	calls := newGeminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"1. Draft proposal"}]}}]}`)

	out, err := NewGeminiClient("test-key", "").Complete(context.Background(), CompletionRequest{System: "sys", Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "1. Draft proposal", out)
	assert.Equal(t, int32(1), calls.Load())
}

func TestGeminiClient_APIErrorStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		transient bool
		want      error
	}{
		{name: "unavailable", status: http.StatusServiceUnavailable, transient: true, want: ErrModelError},
		{name: "rate limited", status: http.StatusTooManyRequests, transient: true, want: ErrModelBusy},
		{name: "bad key", status: http.StatusForbidden, transient: false, want: ErrModelUnavailable},
		{name: "bad request", status: http.StatusBadRequest, transient: false, want: ErrModelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			newGeminiServer(t, tt.status, `{"error":{"code":`+strconv.Itoa(tt.status)+`,"message":"upstream says no","status":"ERR"}}`)

			_, err := NewGeminiClient("test-key", "").Complete(context.Background(), CompletionRequest{Prompt: "hi"})

			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "got %v", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "gemini", apiErr.Provider)
			assert.Equal(t, tt.transient, IsTransient(err))
			assert.ErrorIs(t, classify(context.Background(), err), tt.want)
		})
	}
}

func TestClient_RetriesGeminiServerErrors(t *testing.T) {
	calls := newGeminiServer(t, http.StatusServiceUnavailable, `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`)

	c := newTestClient(t, NewGeminiClient("test-key", ""), Options{MaxRetries: 2})
	_, err := c.Generate(context.Background(), CompletionRequest{Prompt: "hi"})

	assert.ErrorIs(t, err, ErrModelError)
	assert.Equal(t, int32(3), calls.Load())
}
