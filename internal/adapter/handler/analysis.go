package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/errors"
	"github.com/johnquangdev/meeting-copilot/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	httpmw "github.com/johnquangdev/meeting-copilot/internal/infrastructure/http/middleware"
	ucErrors "github.com/johnquangdev/meeting-copilot/internal/usecase/errors"
)

// AnalysisService is the pipeline behind the analysis endpoints
type AnalysisService interface {
	Analyze(ctx context.Context, principal *entities.Principal, req entities.AnalysisRequest) (*entities.AnalysisResult, error)
	ListRuns(ctx context.Context, principal *entities.Principal, limit int) ([]*entities.AnalysisRun, error)
}

// Analysis handles the /v1/ai endpoints
type Analysis struct {
	svc    AnalysisService
	logger *zap.Logger
	now    func() time.Time
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(svc AnalysisService, logger *zap.Logger) *Analysis {
	return &Analysis{svc: svc, logger: logger, now: time.Now}
}

// ActionItems extracts action items from meeting notes
// @Summary      Extract action items
// @Description  Extracts action items from notes. When meetingId is given, each item is saved as a pending action item of that meeting.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entities.ActionItemRequest        true  "Meeting notes"
// @Success      200      {object}  analysis.ActionItemsResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing or malformed field"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Model not configured or analysis failed"
// @Router       /ai/action-items [post]
func (h *Analysis) ActionItems(c echo.Context) error {
	return h.analyze(c, &entities.ActionItemRequest{})
}

// ContentAnalysis analyzes arbitrary text
// @Summary      Analyze content
// @Description  Summarizes content into key points and takeaways
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entities.ContentAnalysisRequest   true  "Content to analyze"
// @Success      200      {object}  analysis.ContentAnalysisResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing or malformed field"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Model not configured or analysis failed"
// @Router       /ai/content-analysis [post]
func (h *Analysis) ContentAnalysis(c echo.Context) error {
	return h.analyze(c, &entities.ContentAnalysisRequest{})
}

// Trends finds patterns across the caller's recent meetings
// @Summary      Analyze meeting trends
// @Description  Analyzes the caller's most recent meetings. Returns a fixed message without calling the model when there are none.
// @Tags         AI
// @Produce      json
// @Security     BearerAuth
// @Success      200      {object}  analysis.TrendsResponse
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Model not configured or analysis failed"
// @Router       /ai/trends [post]
func (h *Analysis) Trends(c echo.Context) error {
	return h.run(c, &entities.TrendRequest{})
}

// FollowUpEmail drafts a follow-up email
// @Summary      Draft follow-up email
// @Description  Drafts a follow-up email from meeting notes
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entities.FollowUpRequest          true  "Meeting details"
// @Success      200      {object}  analysis.FollowUpEmailResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing or malformed field"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Model not configured or analysis failed"
// @Router       /ai/follow-up-email [post]
func (h *Analysis) FollowUpEmail(c echo.Context) error {
	return h.analyze(c, &entities.FollowUpRequest{})
}

// MeetingQuestions suggests preparation questions
// @Summary      Suggest meeting questions
// @Description  Suggests questions to prepare for a meeting
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entities.MeetingQuestionsRequest  true  "Meeting topic"
// @Success      200      {object}  analysis.MeetingQuestionsResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing or malformed field"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Model not configured or analysis failed"
// @Router       /ai/meeting-questions [post]
func (h *Analysis) MeetingQuestions(c echo.Context) error {
	return h.analyze(c, &entities.MeetingQuestionsRequest{})
}

// PitchAnalysis evaluates a startup pitch
// @Summary      Analyze pitch
// @Description  Evaluates a pitch into strengths, weaknesses, a market score and a recommendation. "pitch" is accepted as an alias of "pitchText".
// @Tags         AI
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      entities.PitchRequest             true  "Pitch text"
// @Success      200      {object}  analysis.PitchAnalysisResponse
// @Failure      400      {object}  common.ErrorResponse  "Missing or malformed field"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Model not configured or analysis failed"
// @Router       /ai/pitch-analysis [post]
func (h *Analysis) PitchAnalysis(c echo.Context) error {
	return h.analyze(c, &entities.PitchRequest{})
}

// ListRuns lists the caller's recent analysis runs
// @Summary      List analysis runs
// @Description  Lists the caller's analysis runs, newest first
// @Tags         AI
// @Produce      json
// @Security     BearerAuth
// @Param        limit    query     int     false  "Max runs (1-100, default 20)"
// @Success      200      {object}  analysis.AnalysisRunsResponse
// @Failure      400      {object}  common.ErrorResponse  "Invalid limit"
// @Failure      401      {object}  common.ErrorResponse  "User not authenticated"
// @Failure      500      {object}  common.ErrorResponse  "Failed to list runs"
// @Router       /ai/analyses [get]
func (h *Analysis) ListRuns(c echo.Context) error {
	principal, ok := httpmw.PrincipalFrom(c)
	if !ok {
		return HandleError(h.logger, c, ucErrors.ErrUnauthorized)
	}

	var limit int
	if err := echo.QueryParamsBinder(c).Int("limit", &limit).BindError(); err != nil {
		return HandleError(h.logger, c, ucErrors.NewValidationError("limit", "must be an integer"))
	}

	runs, err := h.svc.ListRuns(c.Request().Context(), principal, limit)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisRunsResponse(runs, h.now()))
}

// analyze binds the body into req and runs it through the pipeline
func (h *Analysis) analyze(c echo.Context, req entities.AnalysisRequest) error {
	if _, ok := httpmw.PrincipalFrom(c); !ok {
		return HandleError(h.logger, c, ucErrors.ErrUnauthorized)
	}

	if err := c.Bind(req); err != nil {
		if h.logger != nil {
			h.logger.Debug("failed to bind request body", zap.String("kind", string(req.Kind())), zap.Error(err))
		}
		return HandleError(h.logger, c, errors.ErrInvalidPayload())
	}

	return h.run(c, req)
}

// run executes req for the authenticated caller. The request body is not read.
func (h *Analysis) run(c echo.Context, req entities.AnalysisRequest) error {
	principal, ok := httpmw.PrincipalFrom(c)
	if !ok {
		return HandleError(h.logger, c, ucErrors.ErrUnauthorized)
	}

	result, err := h.svc.Analyze(c.Request().Context(), principal, req)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, presenter.ToAnalysisResponse(result, h.now()))
}
