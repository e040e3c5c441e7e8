package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/peoplehr/leave-system/internal/api"
	"github.com/peoplehr/leave-system/internal/infrastructure/config"
	mongodb "github.com/peoplehr/leave-system/internal/infrastructure/db/mongo"
	redisdb "github.com/peoplehr/leave-system/internal/infrastructure/db/redis"
	"github.com/peoplehr/leave-system/internal/infrastructure/notify"
	"github.com/peoplehr/leave-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Leave Management API
// @version         1.0
// @description     Time-off booking with conflict detection and OTP-gated password reset.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- External stores: open ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewLeaveRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("leave index creation failed")
	}

	// --- Out-of-band delivery workers ---
	notifier := notify.NewDispatcher(cfg.NotifyWorkers, notify.NewLogMailer(log), log)
	notifier.Start(ctx)

	// --- Ready: serve ---
	e := api.NewRouter(cfg, db, rdb, notifier, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	// --- Closed: drain and release ---
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := mongoClient.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}

	log.Info().Msg("cleanup completed")
	os.Exit(0)
}
