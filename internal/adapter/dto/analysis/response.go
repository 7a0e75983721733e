package analysis

import (
	"time"

	"github.com/johnquangdev/meeting-copilot/internal/adapter/dto/common"
)

// ActionItemsResponse is returned by POST /v1/ai/action-items
type ActionItemsResponse struct {
	common.Envelope
	ActionItems []string `json:"actionItems"`
	SavedCount  int      `json:"savedCount"`
}

// ContentAnalysisResponse is returned by POST /v1/ai/content-analysis
type ContentAnalysisResponse struct {
	common.Envelope
	Analysis string `json:"analysis"`
}

// TrendsResponse is returned by POST /v1/ai/trends
type TrendsResponse struct {
	common.Envelope
	Analysis     string `json:"analysis"`
	MeetingCount int    `json:"meetingCount"`
}

// FollowUpEmailResponse is returned by POST /v1/ai/follow-up-email
type FollowUpEmailResponse struct {
	common.Envelope
	Email   string `json:"email"`
	Subject string `json:"subject,omitempty"`
}

// MeetingQuestionsResponse is returned by POST /v1/ai/meeting-questions
type MeetingQuestionsResponse struct {
	common.Envelope
	Questions []string `json:"questions"`
}

// PitchVerdict is the structured pitch evaluation
type PitchVerdict struct {
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	MarketScore    int      `json:"marketScore" example:"7"`
	Recommendation string   `json:"recommendation"`
	Raw            string   `json:"raw,omitempty"`
	Structured     bool     `json:"structured"`
}

// PitchAnalysisResponse is returned by POST /v1/ai/pitch-analysis
type PitchAnalysisResponse struct {
	common.Envelope
	Analysis PitchVerdict `json:"analysis"`
}

// AnalysisRun is one entry of the caller's run history
type AnalysisRun struct {
	ID           string    `json:"id"`
	Kind         string    `json:"kind" example:"action_items"`
	Status       string    `json:"status" example:"succeeded"`
	Provider     string    `json:"provider,omitempty"`
	Model        string    `json:"model,omitempty"`
	DurationMS   int64     `json:"durationMs"`
	ItemCount    int       `json:"itemCount"`
	ErrorCode    string    `json:"errorCode,omitempty"`
	RawObjectKey string    `json:"rawObjectKey,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// AnalysisRunsResponse is returned by GET /v1/ai/analyses
type AnalysisRunsResponse struct {
	common.Envelope
	Analyses []AnalysisRun `json:"analyses"`
}
