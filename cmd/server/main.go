package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"furls/dashboard/internal/config"
	"furls/dashboard/internal/database"
	"furls/dashboard/internal/logging"
	"furls/dashboard/internal/router"
	"furls/dashboard/internal/storage"

	"github.com/gin-gonic/gin"
)

//go:generate swag init -g cmd/server/main.go -o docs

const shutdownTimeout = 10 * time.Second

// @title           Furls Dashboard API
// @version         1.0
// @description     Session telemetry ingestion, stats, leaderboards and friends for the furls plugin dashboard.
// @host            localhost:8080
// @BasePath        /api
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
// @securityDefinitions.apiKey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.EphemeralJWTSecret {
		logging.Warn().Msg("JWT_SECRET not set, using a random secret; tokens will not survive a restart")
	}

	if err := database.Connect(cfg.DatabaseURL, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: time.Hour,
	}); err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize database")
	}
	defer func() {
		if err := database.Close(); err != nil {
			logging.Error().Err(err).Msg("failed to close database")
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := storage.Init(ctx, cfg); err != nil {
		logging.Fatal().Err(err).Msg("failed to initialize avatar storage")
	}
	if storage.Default == nil {
		logging.Info().Msg("avatar storage disabled, AVATAR_BUCKET is empty")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logging.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.Environment).
			Msg("server listening")
		logging.Info().Msgf("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	logging.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("graceful shutdown failed")
	}
}
