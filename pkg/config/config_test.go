package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, ProviderGroq, cfg.AI.Provider)
	assert.Equal(t, 10, cfg.AI.TrendWindow)
	assert.Equal(t, uint64(0), cfg.AI.MaxRetries)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_SSL_MODE", "require")
	t.Setenv("AI_PROVIDER", " Gemini ")
	t.Setenv("AI_TREND_WINDOW", "25")
	t.Setenv("AI_QUEUE_TIMEOUT", "250ms")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "require", cfg.Database.SSLMode)
	assert.Equal(t, ProviderGemini, cfg.AI.Provider)
	assert.Equal(t, 25, cfg.AI.TrendWindow)
	assert.Equal(t, 250*time.Millisecond, cfg.AI.QueueTimeout)
	assert.Equal(t, "g-key", cfg.Gemini.APIKey)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingModelCredentialsIsNotAnError(t *testing.T) {
	t.Setenv("GROQ_API_KEY", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.Groq.APIKey)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Environment: "development"},
			JWT:    JWTConfig{AccessSecret: "s3cret"},
			AI:     AIConfig{Provider: ProviderGroq, TrendWindow: 10, MaxConcurrent: 2},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty secret", mutate: func(c *Config) { c.JWT.AccessSecret = "" }, wantErr: "JWT_ACCESS_SECRET is required"},
		{
			name: "placeholder secret in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.JWT.AccessSecret = DefaultAccessSecret
			},
			wantErr: "must be changed in production",
		},
		{
			name: "auto migrate in production",
			mutate: func(c *Config) {
				c.Server.Environment = "production"
				c.Database.AutoMigrate = true
			},
			wantErr: "DB_AUTO_MIGRATE",
		},
		{name: "unknown provider", mutate: func(c *Config) { c.AI.Provider = "openai" }, wantErr: "unknown AI_PROVIDER"},
		{name: "trend window too small", mutate: func(c *Config) { c.AI.TrendWindow = 0 }, wantErr: "AI_TREND_WINDOW"},
		{name: "trend window too large", mutate: func(c *Config) { c.AI.TrendWindow = 51 }, wantErr: "AI_TREND_WINDOW"},
		{name: "no concurrency", mutate: func(c *Config) { c.AI.MaxConcurrent = 0 }, wantErr: "AI_MAX_CONCURRENT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", Name: "n", SSLMode: "disable",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=disable", cfg.GetDatabaseDSN())
}
