// Marketplace API server.
//
// Boot order: config, logger, Postgres (with migrations), Redis, router.
// A missing JWT secret or unreachable Postgres aborts startup; Redis is
// required too since the readiness probe and directory cache depend on it.
//
// @title           Marketplace API
// @version         1.0
// @description     REST API backend for a freelance marketplace connecting developers and clients.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
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

	"github.com/devconnect/marketplace-api/internal/api"
	"github.com/devconnect/marketplace-api/internal/infrastructure/config"
	"github.com/devconnect/marketplace-api/internal/infrastructure/db/postgres"
	"github.com/devconnect/marketplace-api/internal/infrastructure/db/redis"
	"github.com/devconnect/marketplace-api/pkg/logger"
)

func main() {
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(rootCtx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	log := logger.Init(cfg.LogLevel, cfg.Env == "development").
		With().Str("service", "marketplace-api").Str("env", cfg.Env).Logger()

	// ---- Postgres ----
	pool, err := postgres.Connect(rootCtx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connect failed")
	}
	defer pool.Close()
	log.Info().Msg("postgres connected")

	if err := postgres.RunMigrations(cfg.Postgres.DSN); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}
	log.Info().Msg("migrations applied")

	// ---- Redis ----
	rdb, err := redis.New(rootCtx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()
	log.Info().Msg("redis connected")

	// ---- Router ----
	e, err := api.NewRouter(pool, rdb, api.RouterConfig{
		JWTSecret: cfg.JWTSecret,
		TokenTTL:  cfg.TokenTTL,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	log.Info().Msg("shutdown complete")
}
