package ai

import (
	"testing"

	"github.com/johnquangdev/meeting-copilot/pkg/config"
	"github.com/stretchr/testify/assert"
)

func TestNewProviderFromConfig(t *testing.T) {
	cfg := &config.Config{}

	cfg.AI.Provider = config.ProviderGroq
	cfg.Groq.APIKey = "k"
	assert.Equal(t, "groq", NewProviderFromConfig(cfg).Name())

	cfg.AI.Provider = config.ProviderGemini
	p := NewProviderFromConfig(cfg)
	assert.Equal(t, "gemini", p.Name())
	assert.False(t, p.Configured())

	cfg.AI.Provider = "other"
	assert.Nil(t, NewProviderFromConfig(cfg))
}

func TestNewClientFromConfig_MissingKeyIsUnavailable(t *testing.T) {
	cfg := &config.Config{}
	cfg.AI.Provider = config.ProviderGroq

	c := NewClientFromConfig(cfg, nil)
	assert.ErrorIs(t, c.Available(), ErrModelUnavailable)
	assert.Equal(t, "groq", c.ProviderName())
}
