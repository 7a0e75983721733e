package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/pkg/ai"
)

const defaultLimiterPrefix = "ai:ratelimit"

// windowScript increments the window counter and sets its expiry on first use
var windowScript = redis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// WindowLimiter is a fixed-window request counter shared by every process using the same Redis.
// It does not queue: a call over the limit fails fast with ai.ErrModelBusy.
type WindowLimiter struct {
	client redis.Scripter
	limit  int64
	window time.Duration
	prefix string
	logger *zap.Logger
	now    func() time.Time
}

var _ ai.Limiter = (*WindowLimiter)(nil)

// NewWindowLimiter allows limit calls per window across all replicas
func NewWindowLimiter(client redis.Scripter, limit int, window time.Duration, logger *zap.Logger) *WindowLimiter {
	if window <= 0 {
		window = time.Minute
	}
	return &WindowLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: defaultLimiterPrefix,
		logger: logger,
		now:    time.Now,
	}
}

// Wait admits the call if the current window has room.
// Redis failures admit the call; the local limiter still applies.
func (l *WindowLimiter) Wait(ctx context.Context) error {
	if l.limit <= 0 {
		return nil
	}

	key := l.key(l.now())
	n, err := windowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Int64()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", ai.ErrModelBusy, ctx.Err())
		}
		if l.logger != nil {
			l.logger.Warn("⚠️ Shared rate limiter unavailable, admitting call", zap.String("key", key), zap.Error(err))
		}
		return nil
	}

	if n > l.limit {
		return fmt.Errorf("%w: shared limit of %d calls per %s reached", ai.ErrModelBusy, l.limit, l.window)
	}
	return nil
}

func (l *WindowLimiter) key(at time.Time) string {
	return fmt.Sprintf("%s:%d", l.prefix, at.UTC().Truncate(l.window).Unix())
}
