package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"
)

const (
	DefaultTimeout       = 30 * time.Second
	DefaultQueueTimeout  = 5 * time.Second
	DefaultMaxConcurrent = 4
)

// Options bounds how the Client talks to its provider.
// MaxRetries is the number of extra attempts for transient failures; zero disables retry.
type Options struct {
	Timeout       time.Duration
	MaxConcurrent int64
	QueueTimeout  time.Duration
	MaxRetries    uint64
	Limiters      []Limiter
}

// Client is the single chokepoint for generative model calls.
// It owns the per-call timeout, the concurrency cap, rate limiting and retry.
type Client struct {
	provider     Provider
	sem          *semaphore.Weighted
	limiters     []Limiter
	timeout      time.Duration
	queueTimeout time.Duration
	maxRetries   uint64
	logger       *zap.Logger
	newBackOff   func() backoff.BackOff
}

// NewClient wraps provider. A nil provider yields a client that is never available.
func NewClient(provider Provider, opts Options, logger *zap.Logger) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.QueueTimeout <= 0 {
		opts.QueueTimeout = DefaultQueueTimeout
	}
	if opts.MaxConcurrent < 1 {
		opts.MaxConcurrent = DefaultMaxConcurrent
	}

	return &Client{
		provider:     provider,
		sem:          semaphore.NewWeighted(opts.MaxConcurrent),
		limiters:     opts.Limiters,
		timeout:      opts.Timeout,
		queueTimeout: opts.QueueTimeout,
		maxRetries:   opts.MaxRetries,
		logger:       logger,
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.InitialInterval = 500 * time.Millisecond
			bo.MaxInterval = 5 * time.Second
			bo.MaxElapsedTime = 0
			return bo
		},
	}
}

// Available returns an ErrModelUnavailable error when no call could succeed because of configuration
func (c *Client) Available() error {
	if c == nil || c.provider == nil {
		return fmt.Errorf("%w: no AI provider configured", ErrModelUnavailable)
	}
	if !c.provider.Configured() {
		return fmt.Errorf("%w: %s API key is not set", ErrModelUnavailable, c.provider.Name())
	}
	return nil
}

// ProviderName returns the configured provider or "none"
func (c *Client) ProviderName() string {
	if c == nil || c.provider == nil {
		return "none"
	}
	return c.provider.Name()
}

// ModelName returns the model identifier sent to the provider
func (c *Client) ModelName() string {
	if c == nil || c.provider == nil {
		return ""
	}
	return c.provider.Model()
}

// Generate sends req to the provider and returns the raw text.
// The call is detached from ctx cancellation: once issued it runs until it completes or times out.
func (c *Client) Generate(ctx context.Context, req CompletionRequest) (string, error) {
	if err := c.Available(); err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	if err := c.admit(callCtx); err != nil {
		if c.logger != nil {
			c.logger.Warn("🚦 AI call rejected", zap.String("provider", c.provider.Name()), zap.Error(err))
		}
		return "", err
	}
	defer c.sem.Release(1)

	start := time.Now()
	var (
		out      string
		attempts int
	)
	op := func() error {
		attempts++
		text, err := c.provider.Complete(callCtx, req)
		if err != nil {
			if !IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		out = text
		return nil
	}
	notify := func(err error, wait time.Duration) {
		if c.logger != nil {
			c.logger.Warn("🔁 Retrying AI call",
				zap.String("provider", c.provider.Name()),
				zap.Int("attempt", attempts),
				zap.Duration("wait", wait),
				zap.Error(err),
			)
		}
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(c.newBackOff(), c.maxRetries), callCtx)
	if err := backoff.RetryNotify(op, bo, notify); err != nil {
		classified := classify(callCtx, err)
		if c.logger != nil {
			c.logger.Error("❌ AI call failed",
				zap.String("provider", c.provider.Name()),
				zap.String("model", c.provider.Model()),
				zap.Int("attempts", attempts),
				zap.Duration("latency", time.Since(start)),
				zap.Error(err),
			)
		}
		return "", classified
	}

	if c.logger != nil {
		c.logger.Debug("🤖 AI call completed",
			zap.String("provider", c.provider.Name()),
			zap.String("model", c.provider.Model()),
			zap.Int("attempts", attempts),
			zap.Duration("latency", time.Since(start)),
		)
	}
	return out, nil
}

// admit acquires a concurrency slot and passes every limiter, waiting at most queueTimeout.
// On success the caller owns one semaphore unit.
func (c *Client) admit(ctx context.Context) error {
	queueCtx, cancel := context.WithTimeout(ctx, c.queueTimeout)
	defer cancel()

	if err := c.sem.Acquire(queueCtx, 1); err != nil {
		return fmt.Errorf("%w: concurrency limit reached", ErrModelBusy)
	}

	for _, l := range c.limiters {
		if err := l.Wait(queueCtx); err != nil {
			c.sem.Release(1)
			if errors.Is(err, ErrModelBusy) {
				return err
			}
			return fmt.Errorf("%w: %w", ErrModelBusy, err)
		}
	}
	return nil
}
