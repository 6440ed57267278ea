package main

import (
	"context"
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"

	"github.com/KasumiMercury/primind-reminder-scheduler/internal/config"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/domain"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/handler"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/health"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/infra/reminderstore"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/infra/schedulerecorder"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/logging"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/metrics"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/middleware"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/compose"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/dispatch"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/expand"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/lifecycle"
	"github.com/KasumiMercury/primind-reminder-scheduler/internal/service/schedule"
)

// Version is set via ldflags at build time
var Version = "dev"

const moduleName = logging.Module("reminder-scheduler")

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	obs, err := initObservability(ctx)
	if err != nil {
		slog.Error("failed to initialize observability", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := obs.Shutdown(shutdownCtx); err != nil {
			slog.Warn("observability shutdown error", slog.String("error", err.Error()))
		}
	}()

	slog.SetDefault(obs.Logger())

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		return 1
	}

	if err := config.ValidateForRun(cfg); err != nil {
		slog.Error("configuration validation error", slog.String("error", err.Error()))
		return 1
	}

	if err := cfg.TaskQueue.Validate(); err != nil {
		slog.Error("task queue configuration error", slog.String("error", err.Error()))
		return 1
	}

	httpMetrics, err := metrics.NewHTTPMetrics()
	if err != nil {
		slog.Error("failed to initialize HTTP metrics", slog.String("error", err.Error()))
		return 1
	}

	schedulerMetrics, err := metrics.NewSchedulerMetrics()
	if err != nil {
		slog.Error("failed to initialize scheduler metrics", slog.String("error", err.Error()))
		return 1
	}

	// InfluxDB for local, BigQuery for gcloud
	resultRecorder, err := schedulerecorder.NewRecorder(ctx, schedulerecorder.LoadConfig())
	if err != nil {
		slog.Error("failed to initialize schedule result recorder", slog.String("error", err.Error()))
		return 1
	}
	defer func() {
		if err := resultRecorder.Close(); err != nil {
			slog.Warn("failed to close schedule result recorder", slog.String("error", err.Error()))
		}
	}()

	redisOptions := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	if cfg.Redis.TLS {
		redisOptions.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	redisClient := redis.NewClient(redisOptions)

	if err := redisotel.InstrumentTracing(redisClient); err != nil {
		slog.Error("failed to instrument redis tracing",
			slog.String("event", "redis.otel.tracing.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisotel.InstrumentMetrics(redisClient); err != nil {
		slog.Error("failed to instrument redis metrics",
			slog.String("event", "redis.otel.metrics.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.Error("failed to connect redis",
			slog.String("event", "redis.connect.fail"),
			slog.String("error", err.Error()),
		)
		return 1
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Warn("failed to close redis client", slog.String("error", err.Error()))
		}
	}()

	slog.Info("redis connected",
		slog.String("addr", cfg.Redis.Addr),
	)

	platform, cleanup, err := initPlatform(ctx, cfg, redisClient)
	if err != nil {
		slog.Error("failed to initialize notification platform", slog.String("error", err.Error()))
		return 1
	}
	if cleanup != nil {
		defer func() {
			if err := cleanup(); err != nil {
				slog.Error("notification platform cleanup error", slog.String("error", err.Error()))
			}
		}()
	}

	scheduleService := schedule.NewService(
		platform,
		expand.NewExpander(),
		compose.NewComposer(),
		resultRecorder,
		schedulerMetrics,
		schedule.Options{
			SubmitTimeout: cfg.Scheduler.SubmitTimeout,
			Concurrency:   cfg.Scheduler.Concurrency,
			RatePerSecond: cfg.Scheduler.RatePerSecond,
			Burst:         cfg.Scheduler.Burst,
			Now:           time.Now,
		},
	)

	if err := scheduleService.EnsureChannels(ctx); err != nil {
		slog.Error("failed to register notification channels", slog.String("error", err.Error()))
		return 1
	}

	reminderStore := reminderstore.NewClient(cfg.ReminderStoreURL)
	lifecycleService := lifecycle.NewService(reminderStore, scheduleService)

	dispatcher := dispatch.NewDispatcher(schedulerMetrics)
	dispatcher.OnReminder(lifecycleService.HandleReminderInteraction)
	dispatcher.OnLoveMessage(func(ctx context.Context, interaction dispatch.MessageInteraction) {
		slog.InfoContext(ctx, "love message opened",
			slog.String("message_id", interaction.MessageID),
			slog.String("couple_id", interaction.CoupleID),
		)
	})
	dispatcher.OnCoupleActivity(func(ctx context.Context, interaction dispatch.ActivityInteraction) {
		slog.InfoContext(ctx, "couple activity opened",
			slog.String("activity_id", interaction.ActivityID),
			slog.String("activity_type", interaction.ActivityType),
		)
	})
	dispatcher.OnUnknown(func(ctx context.Context, kind string, metadata domain.Metadata) {
		slog.DebugContext(ctx, "ignored notification interaction",
			slog.String("kind", kind),
			slog.Int("metadata_keys", len(metadata)),
		)
	})

	reminderLocks := handler.NewKeyedMutex()
	reminderHandler := handler.NewReminderHandler(scheduleService, lifecycleService, reminderLocks)
	interactionHandler := handler.NewInteractionHandler(dispatcher, reminderLocks)

	r := gin.New()
	r.Use(middleware.Gin(middleware.GinConfig{
		SkipPaths:   []string{"/health", "/health/live", "/health/ready", "/metrics"},
		Module:      moduleName,
		TracerName:  "github.com/KasumiMercury/primind-reminder-scheduler/internal/observability/middleware",
		HTTPMetrics: httpMetrics,
	}))
	r.Use(middleware.PanicRecoveryGin())

	healthChecker := health.NewChecker(redisClient, Version, string(moduleName))
	r.GET("/health/live", healthChecker.LiveHandler())
	r.GET("/health/ready", healthChecker.ReadyHandler())
	r.GET("/health", healthChecker.ReadyHandler())

	grpcHealthPath, grpcHealthHandler := healthChecker.GRPCHandler()
	r.POST(grpcHealthPath+":method", gin.WrapH(grpcHealthHandler))

	v1 := r.Group("/api/v1")
	reminderHandler.Register(v1)
	interactionHandler.Register(v1)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Port),
			slog.Duration("submit_timeout", cfg.Scheduler.SubmitTimeout),
			slog.Int("submit_concurrency", cfg.Scheduler.Concurrency),
			slog.Float64("submit_rate_per_second", cfg.Scheduler.RatePerSecond),
		)
		serverErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
		cancel()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("failed to shutdown server", slog.String("error", err.Error()))
			return 1
		}

		if err := resultRecorder.Flush(shutdownCtx); err != nil {
			slog.Warn("failed to flush schedule result recorder", slog.String("error", err.Error()))
		}

		slog.Info("server exited properly")
		return 0

	case err := <-serverErr:
		if errors.Is(err, http.ErrServerClosed) {
			return 0
		}
		slog.Error("server exited with error", slog.String("error", err.Error()))
		return 1
	}
}
