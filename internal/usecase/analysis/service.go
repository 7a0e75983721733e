package analysis

import (
	"context"
	"encoding/json"
	stdErrors "errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/internal/domain/entities"
	domainrepo "github.com/johnquangdev/meeting-copilot/internal/domain/repositories"
	ucErrors "github.com/johnquangdev/meeting-copilot/internal/usecase/errors"
	"github.com/johnquangdev/meeting-copilot/pkg/ai"
	"github.com/johnquangdev/meeting-copilot/pkg/validator"
)

const (
	DefaultTrendWindow = 10
	DefaultRunsLimit   = 20
	MaxRunsLimit       = 100

	// TrendsNotEnoughData is returned without a model call when the caller has no meetings
	TrendsNotEnoughData = "Not enough data to analyze trends yet. Record a few meetings and try again."

	sideEffectTimeout = 5 * time.Second
)

// ModelClient is the generative model chokepoint
type ModelClient interface {
	Available() error
	Generate(ctx context.Context, req ai.CompletionRequest) (string, error)
	ProviderName() string
	ModelName() string
}

// RequestValidator validates request structs
type RequestValidator interface {
	Validate(i interface{}) error
}

// RawArchiver stores raw model output
type RawArchiver interface {
	ArchiveRaw(ctx context.Context, key string, body []byte) error
}

// Deps are the collaborators of the pipeline. Runs and Archive are optional.
type Deps struct {
	Model       ModelClient
	Validator   RequestValidator
	Meetings    domainrepo.MeetingRepository
	ActionItems domainrepo.ActionItemRepository
	Runs        domainrepo.AnalysisRunRepository
	Archive     RawArchiver
}

// Options tune the pipeline
type Options struct {
	TrendWindow   int
	MaxInputChars int
}

// Service runs the analysis pipeline: authorize, validate, aggregate, prompt, generate, normalize, persist.
type Service struct {
	model       ModelClient
	validator   RequestValidator
	prompts     *PromptBuilder
	meetings    domainrepo.MeetingRepository
	actionItems domainrepo.ActionItemRepository
	runs        domainrepo.AnalysisRunRepository
	archive     RawArchiver
	trendWindow int
	logger      *zap.Logger
	now         func() time.Time
}

// NewService creates the analysis service
func NewService(deps Deps, opts Options, logger *zap.Logger) *Service {
	if opts.TrendWindow <= 0 {
		opts.TrendWindow = DefaultTrendWindow
	}
	return &Service{
		model:       deps.Model,
		validator:   deps.Validator,
		prompts:     NewPromptBuilder(opts.MaxInputChars),
		meetings:    deps.Meetings,
		actionItems: deps.ActionItems,
		runs:        deps.Runs,
		archive:     deps.Archive,
		trendWindow: opts.TrendWindow,
		logger:      logger,
		now:         time.Now,
	}
}

// Analyze runs one request through the pipeline for principal
func (s *Service) Analyze(ctx context.Context, principal *entities.Principal, req entities.AnalysisRequest) (*entities.AnalysisResult, error) {
	if principal == nil || principal.ID == uuid.Nil {
		return nil, ucErrors.ErrUnauthorized
	}
	if req == nil {
		return nil, ucErrors.NewValidationError("body", "is required")
	}

	st, ok := strategies[req.Kind()]
	if !ok {
		return nil, ucErrors.NewValidationError("kind", "is not supported")
	}
	if err := s.validate(req); err != nil {
		return nil, err
	}

	kind := req.Kind()
	start := s.now()
	run := entities.NewAnalysisRun(principal.ID, kind)
	log := s.requestLogger(principal, kind)

	if err := s.model.Available(); err != nil {
		s.finish(ctx, run, start, nil, "", err)
		return nil, err
	}

	var meetings []*entities.Meeting
	if st.needsMeetings {
		var err error
		meetings, err = s.meetings.ListRecentByOwner(ctx, principal.ID, s.trendWindow)
		if err != nil {
			err = fmt.Errorf("%w: %w", ucErrors.ErrAggregationFailed, err)
			s.finish(ctx, run, start, nil, "", err)
			return nil, err
		}
		if len(meetings) == 0 {
			result := &entities.AnalysisResult{Kind: kind, Analysis: TrendsNotEnoughData, ShortCircuited: true}
			s.finish(ctx, run, start, result, "", nil)
			if log != nil {
				log.Info("📭 No meetings to analyze, skipping model call")
			}
			return result, nil
		}
	}

	prompt, err := s.prompts.Build(req, meetings)
	if err != nil {
		s.finish(ctx, run, start, nil, "", err)
		return nil, err
	}

	raw, err := s.model.Generate(ctx, ai.CompletionRequest{
		System:      prompt.System,
		Prompt:      prompt.User,
		JSON:        prompt.JSON,
		MaxTokens:   prompt.MaxTokens,
		Temperature: prompt.Temperature,
	})
	if err != nil {
		s.finish(ctx, run, start, nil, "", err)
		return nil, err
	}

	result, err := st.normalize(raw)
	if err != nil {
		s.finish(ctx, run, start, nil, raw, err)
		return nil, err
	}
	if st.needsMeetings {
		result.MeetingCount = len(meetings)
	}

	if itemsReq, ok := req.(*entities.ActionItemRequest); ok {
		result.SavedCount = s.persistActionItems(ctx, principal, itemsReq.MeetingID, result.ActionItems)
	}

	s.finish(ctx, run, start, result, raw, nil)

	if log != nil {
		log.Info("✅ Analysis completed",
			zap.Int("items", result.ItemCount()),
			zap.Duration("latency", s.now().Sub(start)),
		)
	}
	return result, nil
}

// ListRuns returns the caller's most recent analysis runs
func (s *Service) ListRuns(ctx context.Context, principal *entities.Principal, limit int) ([]*entities.AnalysisRun, error) {
	if principal == nil || principal.ID == uuid.Nil {
		return nil, ucErrors.ErrUnauthorized
	}
	if limit == 0 {
		limit = DefaultRunsLimit
	}
	if limit < 1 || limit > MaxRunsLimit {
		return nil, ucErrors.NewValidationError("limit", fmt.Sprintf("must be between 1 and %d", MaxRunsLimit))
	}
	if s.runs == nil {
		return []*entities.AnalysisRun{}, nil
	}
	return s.runs.ListByOwner(ctx, principal.ID, limit)
}

func (s *Service) validate(req entities.AnalysisRequest) error {
	if n, ok := req.(interface{ Normalize() }); ok {
		n.Normalize()
	}
	if s.validator == nil {
		return nil
	}

	err := s.validator.Validate(req)
	if err == nil {
		return nil
	}
	var fe *validator.FieldError
	if stdErrors.As(err, &fe) {
		return ucErrors.NewValidationError(fe.Field, fe.Reason)
	}
	return fmt.Errorf("%w: %w", ucErrors.ErrInvalidRequest, err)
}

// persistActionItems writes derived items when a meeting was named. Failures are logged and reported as zero saved.
func (s *Service) persistActionItems(ctx context.Context, principal *entities.Principal, meetingID string, items []string) int {
	if meetingID == "" || len(items) == 0 || s.actionItems == nil {
		return 0
	}

	mid, err := uuid.Parse(meetingID)
	if err != nil {
		s.logPersistenceFailure(principal, meetingID, err)
		return 0
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	saved, err := s.actionItems.CreateForMeeting(writeCtx, principal.ID, mid, items)
	if err != nil {
		if stdErrors.Is(err, entities.ErrMeetingNotFound) {
			err = fmt.Errorf("%w: %w", ucErrors.ErrMeetingNotFound, err)
		}
		s.logPersistenceFailure(principal, meetingID, fmt.Errorf("%w: %w", ucErrors.ErrPersistenceFailed, err))
		return 0
	}

	if s.logger != nil {
		s.logger.Info("💾 Saved action items",
			zap.String("principal_id", principal.ID.String()),
			zap.String("meeting_id", meetingID),
			zap.Int("count", len(saved)),
		)
	}
	return len(saved)
}

func (s *Service) logPersistenceFailure(principal *entities.Principal, meetingID string, err error) {
	if s.logger != nil {
		s.logger.Warn("⚠️ Failed to persist action items, returning result anyway",
			zap.String("principal_id", principal.ID.String()),
			zap.String("meeting_id", meetingID),
			zap.Error(err),
		)
	}
}

// finish archives raw output and records the run. Both are best effort.
func (s *Service) finish(ctx context.Context, run *entities.AnalysisRun, start time.Time, result *entities.AnalysisResult, raw string, runErr error) {
	if s.runs == nil && s.archive == nil {
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
	defer cancel()

	run.Provider = s.model.ProviderName()
	run.Model = s.model.ModelName()
	run.DurationMS = s.now().Sub(start).Milliseconds()

	switch {
	case runErr != nil:
		run.Status = entities.AnalysisRunFailed
		run.ErrorCode = RunErrorCode(runErr)
	case result != nil && result.ShortCircuited:
		run.Status = entities.AnalysisRunShortCircuited
	default:
		run.Status = entities.AnalysisRunSucceeded
	}

	if result != nil {
		run.ItemCount = result.ItemCount()
		if b, err := json.Marshal(result); err == nil {
			run.Result = b
		}
	}

	if raw != "" && s.archive != nil {
		key := RawObjectKey(run.Kind, s.now(), run.ID)
		if err := s.archive.ArchiveRaw(writeCtx, key, []byte(raw)); err != nil {
			if s.logger != nil {
				s.logger.Warn("⚠️ Failed to archive raw model output", zap.String("key", key), zap.Error(err))
			}
		} else {
			run.RawObjectKey = key
		}
	}

	if s.runs == nil {
		return
	}
	if err := s.runs.Create(writeCtx, run); err != nil && s.logger != nil {
		s.logger.Warn("⚠️ Failed to record analysis run",
			zap.String("run_id", run.ID.String()),
			zap.String("kind", string(run.Kind)),
			zap.Error(err),
		)
	}
}

func (s *Service) requestLogger(principal *entities.Principal, kind entities.AnalysisKind) *zap.Logger {
	if s.logger == nil {
		return nil
	}
	return s.logger.With(
		zap.String("principal_id", principal.ID.String()),
		zap.String("kind", string(kind)),
		zap.String("provider", s.model.ProviderName()),
	)
}

// RawObjectKey is the archive location of a run's raw output
func RawObjectKey(kind entities.AnalysisKind, at time.Time, runID uuid.UUID) string {
	return fmt.Sprintf("raw/%s/%s/%s.txt", kind, at.UTC().Format("2006/01/02"), runID)
}

// RunErrorCode is the stable code stored on failed runs
func RunErrorCode(err error) string {
	switch {
	case stdErrors.Is(err, ai.ErrModelUnavailable):
		return "MODEL_UNAVAILABLE"
	case stdErrors.Is(err, ai.ErrModelTimeout):
		return "MODEL_TIMEOUT"
	case stdErrors.Is(err, ai.ErrModelBusy):
		return "MODEL_BUSY"
	case stdErrors.Is(err, ai.ErrModelError):
		return "MODEL_ERROR"
	case stdErrors.Is(err, ucErrors.ErrAggregationFailed):
		return "AGGREGATION_FAILED"
	default:
		return "INTERNAL"
	}
}
