package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"careops/internal/common"
	"careops/internal/config"
	"careops/internal/handlers"
	"careops/internal/jobs"
	"careops/internal/jobs/background"
	"careops/internal/logging"
	"careops/internal/metrics"
	"careops/internal/middleware"
	"careops/internal/repositories"
	"careops/internal/services"
	"careops/pkg/database"
)

var version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(logging.Options{
		Service: "careops",
		Env:     cfg.App.Env,
		Version: version,
		Level:   cfg.App.LogLevel,
		Format:  cfg.App.LogFormat,
	})

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Msg("careops stopped")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	pool, err := database.NewPool(ctx, cfg.Database.URL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.RunMigrations {
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		logger.Info().Msg("migrations applied")
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis not reachable yet")
		}
	}

	// Repositories
	workspaceRepo := repositories.NewWorkspaceRepo(pool)
	contactRepo := repositories.NewContactRepo(pool)
	bookingRepo := repositories.NewBookingRepo(pool)
	inventoryRepo := repositories.NewInventoryRepo(pool)

	// Services
	var notifier services.BookingNotifier
	if rdb != nil {
		notifier = services.NewRedisNotifier(rdb)
	} else {
		notifier = services.NewLogNotifier(logger)
	}
	workspaceService := services.NewWorkspaceService(workspaceRepo)
	dashboardService := services.NewDashboardService(bookingRepo, inventoryRepo, contactRepo)
	seedService := services.NewSeedService(contactRepo, bookingRepo, inventoryRepo)
	bookingService := services.NewBookingService(contactRepo, bookingRepo, notifier, logger)

	// Background jobs
	var scheduler *background.JobScheduler
	if cfg.Jobs.Enabled {
		scheduler, err = newScheduler(cfg, logger, rdb, workspaceRepo, inventoryRepo, contactRepo)
		if err != nil {
			return err
		}
		scheduler.Start()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = common.NewErrorHandler(logger)
	e.Validator = common.NewRequestValidator()

	e.Use(echoMiddleware.RequestID())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	}))
	e.Use(middleware.Metrics())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echoMiddleware.Recover())

	h := &handlers.Handlers{
		Health:    handlers.NewHealthHandlers(pool, redisPinger(rdb)),
		Workspace: handlers.NewWorkspaceHandlers(workspaceService),
		Dashboard: handlers.NewDashboardHandlers(dashboardService, seedService, workspaceService),
		Booking:   handlers.NewBookingHandlers(bookingService),
	}
	h.Register(e, version)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Str("version", version).Msg("careops API starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	case <-ctx.Done():
		logger.Info().Msg("shutdown requested")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown")
	}
	if scheduler != nil {
		if err := scheduler.Stop(); err != nil {
			logger.Error().Err(err).Msg("scheduler shutdown")
		}
	}
	logger.Info().Msg("careops API stopped")
	return nil
}

func newScheduler(
	cfg *config.Config,
	logger zerolog.Logger,
	rdb *redis.Client,
	workspaceRepo repositories.WorkspaceRepository,
	inventoryRepo repositories.InventoryRepository,
	contactRepo repositories.ContactRepository,
) (*background.JobScheduler, error) {
	scheduler, err := background.NewJobScheduler(logger)
	if err != nil {
		return nil, err
	}

	scanner := jobs.NewLowStockScanner(workspaceRepo, inventoryRepo, logger)
	if err := scheduler.AddJob("low-stock-scan", cfg.Jobs.LowStockScanInterval, scanner.Run); err != nil {
		return nil, err
	}

	if rdb != nil {
		dispatcher := jobs.NewConfirmationDispatcher(rdb, contactRepo, cfg.Jobs.DispatchBatch, logger)
		if err := scheduler.AddJob("confirmation-dispatch", cfg.Jobs.DispatchInterval, dispatcher.Run); err != nil {
			return nil, err
		}
	}
	return scheduler, nil
}

// redisPinger returns nil, not a typed nil, when Redis is disabled.
func redisPinger(rdb *redis.Client) handlers.Pinger {
	if rdb == nil {
		return nil
	}
	return handlers.PingFunc(func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
}
