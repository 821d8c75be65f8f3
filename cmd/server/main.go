package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/inventoryapi/inventory-system/internal/api"
	"github.com/inventoryapi/inventory-system/internal/core/token"
	"github.com/inventoryapi/inventory-system/internal/infrastructure/config"
	"github.com/inventoryapi/inventory-system/internal/infrastructure/db/postgres"
	"github.com/inventoryapi/inventory-system/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New("info", false, os.Stderr)
		bootLog.Fatal().Err(err).Msg("configuration error")
	}

	log := logger.New(cfg.LogLevel, !cfg.IsProduction(), os.Stdout)

	db, err := postgres.Connect(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer postgres.Close(db)

	if err := postgres.Bootstrap(ctx, db, log); err != nil {
		log.Fatal().Err(err).Msg("bootstrap failed")
	}

	tokens := token.NewManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience)

	e := api.NewRouter(db, tokens, log)
	e.Server.ReadHeaderTimeout = 5 * time.Second

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("inventory api listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}
