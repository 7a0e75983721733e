package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/internal/adapter/dto/common"
	httpmw "github.com/johnquangdev/meeting-copilot/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/meeting-copilot/pkg/config"
)

const healthCheckTimeout = 2 * time.Second

// ModelStatus describes the configured model client for health reporting
type ModelStatus interface {
	Available() error
	ProviderName() string
	ModelName() string
}

// HealthCheck pings one dependency
type HealthCheck func(ctx context.Context) error

// Router holds all handlers
type Router struct {
	cfg      *config.Config
	analysis *Analysis
	sessions httpmw.SessionValidator
	model    ModelStatus
	checks   map[string]HealthCheck
	logger   *zap.Logger
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysis *Analysis, sessions httpmw.SessionValidator, model ModelStatus, logger *zap.Logger) *Router {
	return &Router{
		cfg:      cfg,
		analysis: analysis,
		sessions: sessions,
		model:    model,
		checks:   map[string]HealthCheck{},
		logger:   logger,
	}
}

// WithHealthCheck adds a dependency check to /health
func (rt *Router) WithHealthCheck(name string, check HealthCheck) *Router {
	rt.checks[name] = check
	return rt
}

// NewServer creates the Echo instance with the middleware stack and error handler.
// Request validation runs in the analysis service, so no echo.Validator is registered.
func NewServer(cfg *config.Config, logger *zap.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler(logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, echo.HeaderXRequestID},
		AllowCredentials: true,
	}))
	e.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	return e
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	if !rt.cfg.IsProduction() {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	v1 := e.Group("/v1")
	rt.setupAIRoutes(v1)
}

// setupAIRoutes configures the analysis routes. Every route requires a valid session.
func (rt *Router) setupAIRoutes(g *echo.Group) {
	aiGroup := g.Group("/ai", httpmw.EchoAuth(rt.sessions))

	aiGroup.POST("/action-items", rt.analysis.ActionItems)
	aiGroup.POST("/content-analysis", rt.analysis.ContentAnalysis)
	aiGroup.POST("/trends", rt.analysis.Trends)
	aiGroup.POST("/follow-up-email", rt.analysis.FollowUpEmail)
	aiGroup.POST("/meeting-questions", rt.analysis.MeetingQuestions)
	aiGroup.POST("/pitch-analysis", rt.analysis.PitchAnalysis)
	aiGroup.GET("/analyses", rt.analysis.ListRuns)
}

// healthCheck returns health status
// @Summary      Health check
// @Tags         System
// @Produce      json
// @Success      200  {object}  common.HealthResponse
// @Router       /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:      "ok",
		Environment: rt.cfg.Server.Environment,
		Timestamp:   time.Now().UTC(),
	}

	if rt.model != nil {
		resp.AI = common.ProviderHealth{
			Provider:  rt.model.ProviderName(),
			Model:     rt.model.ModelName(),
			Available: rt.model.Available() == nil,
		}
	}

	if len(rt.checks) > 0 {
		ctx, cancel := context.WithTimeout(c.Request().Context(), healthCheckTimeout)
		defer cancel()

		resp.Checks = make(map[string]string, len(rt.checks))
		for name, check := range rt.checks {
			if err := check(ctx); err != nil {
				resp.Checks[name] = "unavailable"
				resp.Status = "degraded"
				if rt.logger != nil {
					rt.logger.Warn("⚠️ Health check failed", zap.String("check", name), zap.Error(err))
				}
				continue
			}
			resp.Checks[name] = "ok"
		}
	}

	return c.JSON(http.StatusOK, resp)
}
