package ai

import (
	"github.com/johnquangdev/meeting-copilot/pkg/config"
	"go.uber.org/zap"
)

// NewProviderFromConfig picks the backend named by AI_PROVIDER.
// It returns nil for an unknown name so the client reports ErrModelUnavailable.
func NewProviderFromConfig(cfg *config.Config) Provider {
	switch cfg.AI.Provider {
	case config.ProviderGroq:
		return NewGroqClient(cfg.Groq.APIKey, cfg.Groq.BaseURL, cfg.Groq.Model)
	case config.ProviderGemini:
		return NewGeminiClient(cfg.Gemini.APIKey, cfg.Gemini.Model)
	default:
		return nil
	}
}

// NewClientFromConfig builds the model client with the configured limits.
// Extra limiters (a shared Redis window, for instance) run after the local token bucket.
func NewClientFromConfig(cfg *config.Config, logger *zap.Logger, extra ...Limiter) *Client {
	limiters := []Limiter{NewLocalLimiter(cfg.AI.RequestsPerSecond, cfg.AI.Burst)}
	limiters = append(limiters, extra...)

	return NewClient(NewProviderFromConfig(cfg), Options{
		Timeout:       cfg.AI.Timeout,
		MaxConcurrent: cfg.AI.MaxConcurrent,
		QueueTimeout:  cfg.AI.QueueTimeout,
		MaxRetries:    cfg.AI.MaxRetries,
		Limiters:      limiters,
	}, logger)
}
