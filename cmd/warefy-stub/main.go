// Command warefy-stub serves an in-memory Warefy backend for local
// development against the client and warefyctl.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/warefy/supply-chain-client/internal/pkg/config"
	"github.com/warefy/supply-chain-client/internal/stub"
	"github.com/warefy/supply-chain-client/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Output: os.Stderr}).Fatal().Err(err).Msg("load config")
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty && cfg.Env == "development",
		Output:  os.Stdout,
		Service: "warefy-stub",
	})

	store := stub.NewStore()
	if err := store.Seed(cfg.Stub.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("seed store")
	}

	e := stub.NewRouter(store, stub.Options{
		JWTSecret: cfg.Stub.JWTSecret,
		Logger:    log,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Stub.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("stub backend listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
