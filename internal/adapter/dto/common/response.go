package common

import "time"

// Envelope is embedded in every success response
type Envelope struct {
	Success   bool      `json:"success" example:"true"`
	Timestamp time.Time `json:"timestamp"`
}

// NewEnvelope returns a success envelope stamped with now
func NewEnvelope(now time.Time) Envelope {
	return Envelope{Success: true, Timestamp: now.UTC()}
}

// ErrorResponse is the single failure envelope
type ErrorResponse struct {
	Success   bool              `json:"success" example:"false"`
	Error     string            `json:"error" example:"notes is required"`
	Code      string            `json:"code" example:"INVALID_ARGUMENT"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
}

// HealthResponse reports process and dependency status
type HealthResponse struct {
	Status      string            `json:"status" example:"ok"`
	Environment string            `json:"environment" example:"development"`
	AI          ProviderHealth    `json:"ai"`
	Checks      map[string]string `json:"checks,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}

// ProviderHealth describes the configured model provider
type ProviderHealth struct {
	Provider  string `json:"provider" example:"groq"`
	Model     string `json:"model" example:"llama-3.3-70b-versatile"`
	Available bool   `json:"available"`
}
