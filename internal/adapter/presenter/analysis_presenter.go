package presenter

import (
	"time"

	analysisDTO "github.com/johnquangdev/meeting-copilot/internal/adapter/dto/analysis"
	"github.com/johnquangdev/meeting-copilot/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
)

// ToAnalysisResponse converts a pipeline result into the response body of its kind
func ToAnalysisResponse(r *entities.AnalysisResult, now time.Time) interface{} {
	env := common.NewEnvelope(now)

	switch r.Kind {
	case entities.KindActionItems:
		return &analysisDTO.ActionItemsResponse{
			Envelope:    env,
			ActionItems: nonNil(r.ActionItems),
			SavedCount:  r.SavedCount,
		}
	case entities.KindTrends:
		return &analysisDTO.TrendsResponse{
			Envelope:     env,
			Analysis:     r.Analysis,
			MeetingCount: r.MeetingCount,
		}
	case entities.KindFollowUpEmail:
		return &analysisDTO.FollowUpEmailResponse{
			Envelope: env,
			Email:    r.Email,
			Subject:  r.Subject,
		}
	case entities.KindMeetingQuestions:
		return &analysisDTO.MeetingQuestionsResponse{
			Envelope:  env,
			Questions: nonNil(r.Questions),
		}
	case entities.KindPitchAnalysis:
		return &analysisDTO.PitchAnalysisResponse{
			Envelope: env,
			Analysis: toPitchVerdict(r.Pitch),
		}
	default:
		return &analysisDTO.ContentAnalysisResponse{
			Envelope: env,
			Analysis: r.Analysis,
		}
	}
}

func toPitchVerdict(v *entities.PitchVerdict) analysisDTO.PitchVerdict {
	if v == nil {
		return analysisDTO.PitchVerdict{Strengths: []string{}, Weaknesses: []string{}}
	}
	return analysisDTO.PitchVerdict{
		Strengths:      nonNil(v.Strengths),
		Weaknesses:     nonNil(v.Weaknesses),
		MarketScore:    v.MarketScore,
		Recommendation: v.Recommendation,
		Raw:            v.Raw,
		Structured:     v.Structured,
	}
}

// ToAnalysisRunsResponse converts the caller's run history
func ToAnalysisRunsResponse(runs []*entities.AnalysisRun, now time.Time) *analysisDTO.AnalysisRunsResponse {
	out := make([]analysisDTO.AnalysisRun, 0, len(runs))
	for _, run := range runs {
		out = append(out, analysisDTO.AnalysisRun{
			ID:           run.ID.String(),
			Kind:         string(run.Kind),
			Status:       string(run.Status),
			Provider:     run.Provider,
			Model:        run.Model,
			DurationMS:   run.DurationMS,
			ItemCount:    run.ItemCount,
			ErrorCode:    run.ErrorCode,
			RawObjectKey: run.RawObjectKey,
			CreatedAt:    run.CreatedAt,
		})
	}
	return &analysisDTO.AnalysisRunsResponse{
		Envelope: common.NewEnvelope(now),
		Analyses: out,
	}
}

// nonNil keeps empty lists rendering as [] rather than null
func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
