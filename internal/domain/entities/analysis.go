package entities

import (
	"bytes"
	"encoding/json"
	"strings"
)

// AnalysisKind enumerates the analysis pipelines
type AnalysisKind string

const (
	KindActionItems      AnalysisKind = "action_items"
	KindContentAnalysis  AnalysisKind = "content_analysis"
	KindTrends           AnalysisKind = "trends"
	KindFollowUpEmail    AnalysisKind = "follow_up_email"
	KindMeetingQuestions AnalysisKind = "meeting_questions"
	KindPitchAnalysis    AnalysisKind = "pitch_analysis"
)

// AllKinds lists every kind in a stable order
var AllKinds = []AnalysisKind{
	KindActionItems,
	KindContentAnalysis,
	KindTrends,
	KindFollowUpEmail,
	KindMeetingQuestions,
	KindPitchAnalysis,
}

// IsValid checks if the kind is known
func (k AnalysisKind) IsValid() bool {
	for _, known := range AllKinds {
		if k == known {
			return true
		}
	}
	return false
}

// AnalysisRequest is one of the six request variants
type AnalysisRequest interface {
	Kind() AnalysisKind
}

// ActionItemRequest asks for action items extracted from notes, optionally saved against a meeting
type ActionItemRequest struct {
	MeetingID string `json:"meetingId"`
	Notes     string `json:"notes" validate:"notblank"`
}

// ContentAnalysisRequest asks for a free-text analysis of arbitrary content
type ContentAnalysisRequest struct {
	Text string `json:"text" validate:"notblank"`
	URL  string `json:"url" validate:"omitempty,url"`
	Type string `json:"type" validate:"max=64"`
}

// TrendRequest carries no body; the owner is the principal
type TrendRequest struct{}

// FollowUpRequest asks for a follow-up email draft
type FollowUpRequest struct {
	MeetingTitle string     `json:"meetingTitle" validate:"notblank"`
	Notes        string     `json:"notes" validate:"notblank"`
	Attendees    StringList `json:"attendees"`
}

// MeetingQuestionsRequest asks for preparation questions
type MeetingQuestionsRequest struct {
	Topic        string     `json:"topic" validate:"notblank"`
	Participants StringList `json:"participants"`
	MeetingType  string     `json:"meetingType" validate:"max=64"`
}

// PitchRequest asks for a structured pitch verdict. "pitch" is accepted as an alias of "pitchText".
type PitchRequest struct {
	PitchText string `json:"pitchText" validate:"notblank"`
	Pitch     string `json:"pitch" validate:"-"`
}

func (ActionItemRequest) Kind() AnalysisKind       { return KindActionItems }
func (ContentAnalysisRequest) Kind() AnalysisKind  { return KindContentAnalysis }
func (TrendRequest) Kind() AnalysisKind            { return KindTrends }
func (FollowUpRequest) Kind() AnalysisKind         { return KindFollowUpEmail }
func (MeetingQuestionsRequest) Kind() AnalysisKind { return KindMeetingQuestions }
func (PitchRequest) Kind() AnalysisKind            { return KindPitchAnalysis }

// Normalize folds the pitch alias into PitchText
func (r *PitchRequest) Normalize() {
	if strings.TrimSpace(r.PitchText) == "" {
		r.PitchText = r.Pitch
	}
	r.Pitch = ""
}

// StringList accepts either a JSON array of strings or a single comma separated string
type StringList []string

// UnmarshalJSON implements json.Unmarshaler
func (l *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*l = splitNonEmpty(s)
		return nil
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	out := make(StringList, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	*l = out
	return nil
}

func splitNonEmpty(s string) StringList {
	out := StringList{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// PitchVerdict is the structured outcome of a pitch analysis.
// Structured is false when the model output could not be parsed; Raw then carries the text.
type PitchVerdict struct {
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	MarketScore    int      `json:"marketScore"`
	Recommendation string   `json:"recommendation"`
	Raw            string   `json:"raw,omitempty"`
	Structured     bool     `json:"structured"`
}

// AnalysisResult is the normalized output of one pipeline run. Only the fields of its Kind are set.
// ShortCircuited marks results produced without a model call.
type AnalysisResult struct {
	Kind           AnalysisKind  `json:"kind"`
	ActionItems    []string      `json:"actionItems,omitempty"`
	SavedCount     int           `json:"savedCount,omitempty"`
	Analysis       string        `json:"analysis,omitempty"`
	MeetingCount   int           `json:"meetingCount,omitempty"`
	Email          string        `json:"email,omitempty"`
	Subject        string        `json:"subject,omitempty"`
	Questions      []string      `json:"questions,omitempty"`
	Pitch          *PitchVerdict `json:"pitch,omitempty"`
	ShortCircuited bool          `json:"shortCircuited,omitempty"`
}

// ItemCount is the number of list entries in the result, used for run bookkeeping
func (r *AnalysisResult) ItemCount() int {
	switch r.Kind {
	case KindActionItems:
		return len(r.ActionItems)
	case KindMeetingQuestions:
		return len(r.Questions)
	case KindPitchAnalysis:
		if r.Pitch != nil {
			return len(r.Pitch.Strengths) + len(r.Pitch.Weaknesses)
		}
	}
	return 0
}
