package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	migrate "github.com/rubenv/sql-migrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-copilot/internal/adapter/handler"
	"github.com/johnquangdev/meeting-copilot/internal/adapter/repository"
	"github.com/johnquangdev/meeting-copilot/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-copilot/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-copilot/internal/infrastructure/storage"
	"github.com/johnquangdev/meeting-copilot/internal/usecase/analysis"
	"github.com/johnquangdev/meeting-copilot/internal/usecase/auth"
	"github.com/johnquangdev/meeting-copilot/pkg/ai"
	"github.com/johnquangdev/meeting-copilot/pkg/jwt"
	pkgvalidator "github.com/johnquangdev/meeting-copilot/pkg/validator"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	logger.Info("🔧 Initializing dependencies...", zap.String("environment", cfg.Server.Environment))

	// Database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		return err
	}
	defer database.CloseDB(db) //nolint:errcheck

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	if cfg.Database.AutoMigrate {
		logger.Info("🔄 Applying migrations on startup", zap.String("dir", cfg.Database.MigrationsDir))
		if _, err := database.Migrate(db, cfg.Database.MigrationsDir, migrate.Up, 0, logger); err != nil {
			return err
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	runRepo := repository.NewAnalysisRunRepository(db)

	// Auth
	jwtManager := jwt.NewManager(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiry, cfg.JWT.Issuer)
	sessions := auth.NewSessionService(userRepo, jwtManager, logger)

	// Model client, with a shared Redis window when Redis is enabled
	var extra []ai.Limiter
	healthChecks := map[string]handler.HealthCheck{
		"database": sqlDB.PingContext,
	}

	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedisClient(cfg, logger)
		if err != nil {
			return err
		}
		defer redisClient.Close() //nolint:errcheck

		extra = append(extra, cache.NewWindowLimiter(redisClient, cfg.AI.RequestsPerMinute, time.Minute, logger))
		healthChecks["redis"] = func(ctx context.Context) error {
			return redisClient.Ping(ctx).Err()
		}
	}

	model := ai.NewClientFromConfig(cfg, logger, extra...)
	if err := model.Available(); err != nil {
		logger.Warn("⚠️  AI model is not configured; analysis endpoints will fail", zap.Error(err))
	} else {
		logger.Info("🤖 AI model ready", zap.String("provider", model.ProviderName()), zap.String("model", model.ModelName()))
	}

	requestValidator := pkgvalidator.New()
	deps := analysis.Deps{
		Model:       model,
		Validator:   requestValidator,
		Meetings:    meetingRepo,
		ActionItems: actionItemRepo,
		Runs:        runRepo,
	}

	// Raw output archive
	if cfg.Storage.Enabled && cfg.Storage.ArchiveRaw {
		archive, err := storage.NewMinIOClient(cmd.Context(), &cfg.Storage, logger)
		if err != nil {
			return err
		}
		deps.Archive = archive
		healthChecks["storage"] = archive.Ping
	}

	analysisService := analysis.NewService(deps, analysis.Options{
		TrendWindow:   cfg.AI.TrendWindow,
		MaxInputChars: cfg.AI.MaxInputChars,
	}, logger)

	// HTTP
	e := handler.NewServer(cfg, logger)
	router := handler.NewRouter(cfg, handler.NewAnalysisHandler(analysisService, logger), sessions, model, logger)
	for name, check := range healthChecks {
		router.WithHealthCheck(name, check)
	}
	router.Setup(e)

	serverErr := make(chan error, 1)
	go func() {
		addr := cfg.GetServerAddr()
		logger.Info("🚀 Starting server", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return err
	case <-quit:
	}

	logger.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("❌ Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("✅ Server stopped gracefully")
	return nil
}
