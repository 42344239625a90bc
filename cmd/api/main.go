// Command api is the entry point for the salon HTTP API server.
//
// Startup order: logger, configuration, MongoDB, Redis, indexes, reminder
// pipeline, HTTP server with graceful shutdown. No business logic lives
// here; all wiring is explicit constructor injection.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lia-nails/salon-system/internal/api"
	"github.com/lia-nails/salon-system/internal/core/domain"
	"github.com/lia-nails/salon-system/internal/core/service"
	"github.com/lia-nails/salon-system/internal/infrastructure/config"
	mongodb "github.com/lia-nails/salon-system/internal/infrastructure/db/mongo"
	redisdb "github.com/lia-nails/salon-system/internal/infrastructure/db/redis"
	"github.com/lia-nails/salon-system/internal/infrastructure/notify"
	"github.com/lia-nails/salon-system/internal/infrastructure/queue"
	"github.com/lia-nails/salon-system/pkg/logger"
)

func main() {
	log := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: os.Getenv("ENV") == "development"})

	cfg := config.Load(log)
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	// Startup has a deadline so misconfiguration fails fast instead of
	// hanging on an unreachable dependency.
	startupCtx, startupCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startupCancel()

	mongoClient, db, err := mongodb.Connect(startupCtx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if derr := mongoClient.Disconnect(context.Background()); derr != nil {
			log.Error().Err(derr).Msg("mongo disconnect error")
		}
	}()

	rdb, err := redisdb.Connect(startupCtx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		if cerr := rdb.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("redis close error")
		}
	}()

	authRepo := mongodb.NewAuthRepository(db)
	catalogRepo := mongodb.NewCatalogRepository(db)
	appointmentRepo := mongodb.NewAppointmentRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"accounts":     authRepo.EnsureIndexes,
		"services":     catalogRepo.EnsureIndexes,
		"appointments": appointmentRepo.EnsureIndexes,
		"payments":     paymentRepo.EnsureIndexes,
	} {
		if err := ensure(startupCtx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}

	// Reminder pipeline: scanner finds due appointments, sharded workers
	// deliver each reminder at most once.
	pipelineCtx, pipelineCancel := context.WithCancel(context.Background())
	defer pipelineCancel()

	reminderSvc := service.NewReminderService(
		appointmentRepo,
		redisdb.NewReminderMarker(rdb),
		notify.NewLogNotifier(log),
		log,
	)
	dispatcher := queue.NewDispatcher(cfg.ReminderWorkers, reminderSvc, appointmentRepo, log)
	dispatcher.Start(pipelineCtx)

	passwordPolicy := domain.DefaultPasswordPolicy()
	if cfg.PasswordMinLength > 0 {
		passwordPolicy.MinLength = cfg.PasswordMinLength
	}

	e := api.NewRouter(db, rdb, api.Config{
		JWTSecret:      cfg.JWTSecret,
		TokenTTL:       cfg.TokenTTL,
		BcryptCost:     cfg.BcryptCost,
		PasswordPolicy: passwordPolicy,
	}, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	pipelineCancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
