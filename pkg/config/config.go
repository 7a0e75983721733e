package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	// DefaultAccessSecret is the placeholder shipped in .env.example; refused in production
	DefaultAccessSecret = "your-access-secret-change-in-production"

	ProviderGroq   = "groq"
	ProviderGemini = "gemini"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig   `envconfig:"SERVER"`
	Database DatabaseConfig `envconfig:"DB"`
	Redis    RedisConfig    `envconfig:"REDIS"`
	JWT      JWTConfig      `envconfig:"JWT"`
	Storage  StorageConfig  `envconfig:"STORAGE"`
	AI       AIConfig       `envconfig:"AI"`
	Groq     GroqConfig     `envconfig:"GROQ"`
	Gemini   GeminiConfig   `envconfig:"GEMINI"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `default:"8080"`
	Host            string        `default:"0.0.0.0"`
	Environment     string        `default:"development"`
	AllowedOrigins  []string      `split_words:"true" default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `split_words:"true" default:"10s"`
	BodyLimit       string        `split_words:"true" default:"1M"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host          string `default:"localhost"`
	Port          string `default:"5432"`
	User          string `default:"postgres"`
	Password      string `default:"postgres"`
	Name          string `default:"meeting_copilot"`
	SSLMode       string `split_words:"true" default:"disable"`
	MaxConns      int    `split_words:"true" default:"25"`
	MinConns      int    `split_words:"true" default:"5"`
	MigrationsDir string `split_words:"true" default:"migrations"`
	AutoMigrate   bool   `split_words:"true" default:"false"`
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Enabled  bool   `default:"false"`
	Host     string `default:"localhost"`
	Port     string `default:"6379"`
	Password string
	DB       int `default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret string        `split_words:"true" default:"your-access-secret-change-in-production"`
	AccessExpiry time.Duration `split_words:"true" default:"15m"`
	Issuer       string        `default:"meeting-copilot"`
}

// StorageConfig holds object storage configuration for the raw output archive
type StorageConfig struct {
	Enabled    bool   `default:"false"`
	Endpoint   string `default:"localhost:9000"`
	AccessKey  string `split_words:"true" default:"minioadmin"`
	SecretKey  string `split_words:"true" default:"minioadmin"`
	Bucket     string `default:"meeting-copilot"`
	UseSSL     bool   `split_words:"true" default:"false"`
	ArchiveRaw bool   `split_words:"true" default:"false"`
}

// AIConfig holds the generative model client limits
type AIConfig struct {
	Provider          string        `default:"groq"`
	Timeout           time.Duration `default:"30s"`
	MaxConcurrent     int64         `split_words:"true" default:"4"`
	QueueTimeout      time.Duration `split_words:"true" default:"5s"`
	RequestsPerSecond float64       `split_words:"true" default:"2"`
	Burst             int           `default:"4"`
	RequestsPerMinute int           `split_words:"true" default:"0"`
	MaxRetries        uint64        `split_words:"true" default:"0"`
	TrendWindow       int           `split_words:"true" default:"10"`
	MaxInputChars     int           `split_words:"true" default:"12000"`
}

// GroqConfig holds Groq (OpenAI-compatible) credentials
type GroqConfig struct {
	APIKey  string `split_words:"true"`
	BaseURL string `split_words:"true" default:"https://api.groq.com"`
	Model   string `default:"llama-3.3-70b-versatile"`
}

// GeminiConfig holds Google Gemini credentials
type GeminiConfig struct {
	APIKey string `split_words:"true"`
	Model  string `default:"gemini-2.0-flash"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	cfg.AI.Provider = strings.ToLower(strings.TrimSpace(cfg.AI.Provider))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration.
// Missing model credentials are deliberately accepted; the analysis endpoints report them per request.
func (c *Config) Validate() error {
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.IsProduction() && c.JWT.AccessSecret == DefaultAccessSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET must be changed in production")
	}
	if c.IsProduction() && c.Database.AutoMigrate {
		return fmt.Errorf("DB_AUTO_MIGRATE must be disabled in production, run the migrate command instead")
	}
	switch c.AI.Provider {
	case ProviderGroq, ProviderGemini:
	default:
		return fmt.Errorf("unknown AI_PROVIDER %q", c.AI.Provider)
	}
	if c.AI.TrendWindow < 1 || c.AI.TrendWindow > 50 {
		return fmt.Errorf("AI_TREND_WINDOW must be between 1 and 50, got %d", c.AI.TrendWindow)
	}
	if c.AI.MaxConcurrent < 1 {
		return fmt.Errorf("AI_MAX_CONCURRENT must be at least 1")
	}
	return nil
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}
