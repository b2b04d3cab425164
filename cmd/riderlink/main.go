package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/riderlink/riderlink/internal/pkg/config"
	"github.com/riderlink/riderlink/internal/pkg/database"
	"github.com/riderlink/riderlink/internal/pkg/events"
	"github.com/riderlink/riderlink/internal/pkg/health"
	"github.com/riderlink/riderlink/internal/pkg/logger"
	"github.com/riderlink/riderlink/internal/pkg/middleware"
	"github.com/riderlink/riderlink/internal/pkg/server"
	"github.com/riderlink/riderlink/services/fleet"
	handler "github.com/riderlink/riderlink/services/fleet/handler/http"
	"github.com/riderlink/riderlink/services/fleet/repository"
	"github.com/riderlink/riderlink/services/fleet/usecase"
)

const serviceName = "riderlink"

func main() {
	configPath := flag.String("config", "", "path to an env-format config file")
	flag.Parse()

	cfg := config.InitConfig(*configPath)

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer appLogger.Close()
	logger.SetGlobalLogger(appLogger)

	ctx := context.Background()

	// Storage backend.
	var repo fleet.Repository
	switch cfg.Storage.Driver {
	case "postgres":
		pg, err := database.NewPostgresClient(cfg.Database)
		if err != nil {
			appLogger.Fatal("Failed to connect to postgres", logger.Err(err))
		}
		defer pg.Close()

		store := repository.NewPostgresStore(pg.GetDB())
		if err := store.EnsureSchema(ctx); err != nil {
			appLogger.Fatal("Failed to ensure database schema", logger.Err(err))
		}
		repo = store

	default:
		store := repository.NewMemoryStore()
		if cfg.Storage.Seed {
			if err := store.Seed(ctx); err != nil {
				appLogger.Fatal("Failed to seed memory store", logger.Err(err))
			}
			appLogger.Info("Memory store seeded with demo fixture")
		}
		repo = store
	}

	// Optional rate limiter backend.
	var limiter echo.MiddlewareFunc
	if cfg.Redis.Host != "" {
		redisClient, err := database.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to redis", logger.Err(err))
		}
		defer redisClient.Close()

		limiter = middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			RedisClient: redisClient.GetClient(),
			Key:         serviceName,
			Limit:       120,
			Period:      time.Minute,
		})
	}

	// Optional event publication.
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.NSQ.Address != "" {
		nsqPublisher, err := events.NewNSQPublisher(cfg.NSQ.Address, cfg.NSQ.Topic)
		if err != nil {
			appLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		publisher = nsqPublisher
	}
	defer publisher.Stop()

	h := handler.NewHandler(
		usecase.NewAuthUC(repo, cfg.JWT),
		usecase.NewUserUC(repo),
		usecase.NewVehicleUC(repo),
		usecase.NewTelemetryUC(repo, publisher),
		usecase.NewMaintenanceUC(repo),
		usecase.NewFuelUC(repo),
		usecase.NewActivityUC(repo),
		usecase.NewGeofenceUC(repo),
		usecase.NewAlertUC(repo),
		usecase.NewDashboardUC(repo),
		cfg.JWT,
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestIDMiddleware())
	e.Use(logger.EchoMiddleware(appLogger))
	e.Use(middleware.PanicRecoveryMiddleware(appLogger))

	health.RegisterHealthEndpoints(e, serviceName, cfg.App.Version, cfg.Storage.Driver)
	h.RegisterRoutes(e, limiter)

	srv := server.NewGracefulServer(e, appLogger, cfg.Server.Port,
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	if err := srv.Start(); err != nil {
		appLogger.Fatal("Server exited with error", logger.Err(err))
	}
}
