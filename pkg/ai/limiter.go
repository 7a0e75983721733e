package ai

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// Limiter gates outbound model calls. Wait blocks until the call may proceed or ctx ends.
type Limiter interface {
	Wait(ctx context.Context) error
}

// LocalLimiter is a per-process token bucket
type LocalLimiter struct {
	limiter *rate.Limiter
}

var _ Limiter = (*LocalLimiter)(nil)

// NewLocalLimiter creates a token bucket refilled at rps with the given burst.
// A non-positive rps disables the limit.
func NewLocalLimiter(rps float64, burst int) *LocalLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &LocalLimiter{limiter: rate.NewLimiter(limit, burst)}
}

// Wait blocks until a token is available
func (l *LocalLimiter) Wait(ctx context.Context) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: local rate limit: %w", ErrModelBusy, err)
	}
	return nil
}
