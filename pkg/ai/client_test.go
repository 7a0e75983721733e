package ai

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type stubProvider struct {
	configured bool
	calls      atomic.Int32
	CompleteFn func(ctx context.Context, req CompletionRequest) (string, error)
}

func (s *stubProvider) Name() string     { return "stub" }
func (s *stubProvider) Model() string    { return "stub-1" }
func (s *stubProvider) Configured() bool { return s.configured }

func (s *stubProvider) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	s.calls.Add(1)
	return s.CompleteFn(ctx, req)
}

func newTestClient(t *testing.T, p Provider, opts Options) *Client {
	t.Helper()
	c := NewClient(p, opts, zaptest.NewLogger(t))
	c.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return c
}

func TestClient_UnconfiguredMakesNoCall(t *testing.T) {
	p := &stubProvider{CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		t.Fatal("provider must not be called")
		return "", nil
	}}
	c := newTestClient(t, p, Options{})

	assert.ErrorIs(t, c.Available(), ErrModelUnavailable)

	_, err := c.Generate(context.Background(), CompletionRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Equal(t, int32(0), p.calls.Load())
}

func TestClient_NilProvider(t *testing.T) {
	c := NewClient(nil, Options{}, nil)
	assert.ErrorIs(t, c.Available(), ErrModelUnavailable)
	assert.Equal(t, "none", c.ProviderName())
}

func TestClient_GenerateSuccess(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(_ context.Context, req CompletionRequest) (string, error) {
		return "echo: " + req.Prompt, nil
	}}
	c := newTestClient(t, p, Options{})

	out, err := c.Generate(context.Background(), CompletionRequest{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "echo: hi", out)
	assert.Equal(t, "stub", c.ProviderName())
	assert.Equal(t, "stub-1", c.ModelName())
}

func TestClient_NoRetryByDefault(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		return "", &APIError{Provider: "stub", StatusCode: http.StatusServiceUnavailable}
	}}
	c := newTestClient(t, p, Options{})

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelError)
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestClient_RetriesTransientFailures(t *testing.T) {
	p := &stubProvider{configured: true}
	p.CompleteFn = func(context.Context, CompletionRequest) (string, error) {
		if p.calls.Load() < 3 {
			return "", &APIError{Provider: "stub", StatusCode: http.StatusBadGateway}
		}
		return "ok", nil
	}
	c := newTestClient(t, p, Options{MaxRetries: 2})

	out, err := c.Generate(context.Background(), CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, int32(3), p.calls.Load())
}

func TestClient_RetryIsCapped(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		return "", &APIError{Provider: "stub", StatusCode: http.StatusInternalServerError}
	}}
	c := newTestClient(t, p, Options{MaxRetries: 2})

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelError)
	assert.Equal(t, int32(3), p.calls.Load())
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		return "", &APIError{Provider: "stub", StatusCode: http.StatusBadRequest}
	}}
	c := newTestClient(t, p, Options{MaxRetries: 3})

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelError)
	assert.Equal(t, int32(1), p.calls.Load())
}

func TestClient_RejectedCredentialsAreUnavailable(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		return "", &APIError{Provider: "stub", StatusCode: http.StatusUnauthorized}
	}}
	c := newTestClient(t, p, Options{})

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestClient_Timeout(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(ctx context.Context, _ CompletionRequest) (string, error) {
		<-ctx.Done()
		return "", ctx.Err()
	}}
	c := newTestClient(t, p, Options{Timeout: 20 * time.Millisecond})

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelTimeout)
}

func TestClient_IgnoresCallerCancellation(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(ctx context.Context, _ CompletionRequest) (string, error) {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "done", nil
	}}
	c := newTestClient(t, p, Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := c.Generate(ctx, CompletionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestClient_BusyWhenSaturated(t *testing.T) {
	release := make(chan struct{})
	started := make(chan struct{}, 1)
	p := &stubProvider{configured: true, CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		started <- struct{}{}
		<-release
		return "ok", nil
	}}
	c := newTestClient(t, p, Options{MaxConcurrent: 1, QueueTimeout: 20 * time.Millisecond})

	done := make(chan error, 1)
	go func() {
		_, err := c.Generate(context.Background(), CompletionRequest{})
		done <- err
	}()
	<-started

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelBusy)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), p.calls.Load())
}

type denyLimiter struct{}

func (denyLimiter) Wait(context.Context) error { return errors.New("window exhausted") }

func TestClient_LimiterRejectionIsBusyAndReleasesSlot(t *testing.T) {
	p := &stubProvider{configured: true, CompleteFn: func(context.Context, CompletionRequest) (string, error) {
		return "ok", nil
	}}
	c := newTestClient(t, p, Options{MaxConcurrent: 1, Limiters: []Limiter{denyLimiter{}}})

	_, err := c.Generate(context.Background(), CompletionRequest{})
	assert.ErrorIs(t, err, ErrModelBusy)
	assert.True(t, c.sem.TryAcquire(1), "semaphore slot must be released")
	assert.Equal(t, int32(0), p.calls.Load())
}

func TestLocalLimiter(t *testing.T) {
	l := NewLocalLimiter(1, 1)
	require.NoError(t, l.Wait(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, l.Wait(ctx), ErrModelBusy)

	unlimited := NewLocalLimiter(0, 0)
	for i := 0; i < 100; i++ {
		require.NoError(t, unlimited.Wait(context.Background()))
	}
}

func TestIsTransient(t *testing.T) {
	assert.True(t, IsTransient(&APIError{StatusCode: http.StatusTooManyRequests}))
	assert.True(t, IsTransient(&APIError{StatusCode: http.StatusServiceUnavailable}))
	assert.False(t, IsTransient(&APIError{StatusCode: http.StatusBadRequest}))
	assert.False(t, IsTransient(context.DeadlineExceeded))
	assert.False(t, IsTransient(errors.New("bad json")))
	assert.False(t, IsTransient(nil))
}
