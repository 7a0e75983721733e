package presenter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
)

func render(t *testing.T, v interface{}) map[string]interface{} {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestToAnalysisResponse_EnvelopePerKind(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		result *entities.AnalysisResult
		fields []string
	}{
		{name: "action items", result: &entities.AnalysisResult{Kind: entities.KindActionItems}, fields: []string{"actionItems", "savedCount"}},
		{name: "content", result: &entities.AnalysisResult{Kind: entities.KindContentAnalysis, Analysis: "a"}, fields: []string{"analysis"}},
		{name: "trends", result: &entities.AnalysisResult{Kind: entities.KindTrends, Analysis: "a", MeetingCount: 2}, fields: []string{"analysis", "meetingCount"}},
		{name: "follow-up", result: &entities.AnalysisResult{Kind: entities.KindFollowUpEmail, Email: "e"}, fields: []string{"email"}},
		{name: "questions", result: &entities.AnalysisResult{Kind: entities.KindMeetingQuestions}, fields: []string{"questions"}},
		{name: "pitch", result: &entities.AnalysisResult{Kind: entities.KindPitchAnalysis}, fields: []string{"analysis"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := render(t, ToAnalysisResponse(tt.result, now))
			assert.Equal(t, true, body["success"])
			assert.Equal(t, "2026-06-01T12:00:00Z", body["timestamp"])
			for _, f := range tt.fields {
				assert.Contains(t, body, f)
			}
		})
	}
}

func TestToAnalysisResponse_EmptyListsAreArrays(t *testing.T) {
	body := render(t, ToAnalysisResponse(&entities.AnalysisResult{Kind: entities.KindActionItems}, time.Now()))
	assert.Equal(t, []interface{}{}, body["actionItems"])
	assert.Equal(t, float64(0), body["savedCount"])
}

func TestToAnalysisResponse_PitchVerdict(t *testing.T) {
	body := render(t, ToAnalysisResponse(&entities.AnalysisResult{
		Kind: entities.KindPitchAnalysis,
		Pitch: &entities.PitchVerdict{
			Strengths:   []string{"Big market"},
			MarketScore: 8,
			Structured:  true,
		},
	}, time.Now()))

	verdict, ok := body["analysis"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"Big market"}, verdict["strengths"])
	assert.Equal(t, []interface{}{}, verdict["weaknesses"])
	assert.Equal(t, float64(8), verdict["marketScore"])
	assert.NotContains(t, verdict, "raw")
}

func TestToAnalysisRunsResponse(t *testing.T) {
	run := entities.NewAnalysisRun(uuid.New(), entities.KindTrends)
	run.Status = entities.AnalysisRunShortCircuited

	resp := ToAnalysisRunsResponse([]*entities.AnalysisRun{run}, time.Now())
	require.Len(t, resp.Analyses, 1)
	assert.Equal(t, run.ID.String(), resp.Analyses[0].ID)
	assert.Equal(t, "short_circuited", resp.Analyses[0].Status)

	empty := render(t, ToAnalysisRunsResponse(nil, time.Now()))
	assert.Equal(t, []interface{}{}, empty["analyses"])
}
