// Package main provides the entry point for the HTTP server.
package main

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/festy23/team_service/internal/config"
	"github.com/festy23/team_service/internal/database/database"
	"github.com/festy23/team_service/internal/database/migrate"
	"github.com/festy23/team_service/internal/health"
	"github.com/festy23/team_service/internal/middleware"
	playerRouter "github.com/festy23/team_service/internal/player/router"
	teamRouter "github.com/festy23/team_service/internal/team/router"
	"github.com/festy23/team_service/pkg/logger"
)

const startupCheckTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	envFile := config.GetEnv("ENV_FILE", ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	cfg := config.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return err
	}

	appLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		return err
	}
	defer func() { _ = appLogger.Sync() }()

	db, err := database.New(appLogger)
	if err != nil {
		return err
	}
	defer func() {
		if stats, err := database.GetStats(db); err == nil {
			appLogger.Infow("database pool stats",
				"open", stats.OpenConnections,
				"in_use", stats.InUse,
				"wait_count", stats.WaitCount,
				"wait_duration", stats.WaitDuration,
			)
		}
		if err := database.Close(db); err != nil {
			appLogger.Warnw("failed to close database", "error", err)
		}
	}()

	if cfg.MigrateOnStart {
		if err := migrate.Migrate(db, appLogger); err != nil {
			return err
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupCheckTimeout)
	err = health.VerifyStore(ctx, db)
	cancel()
	if err != nil {
		return err
	}

	gin.SetMode(cfg.GinMode)
	srv := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      newHandler(cfg, db, appLogger),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		appLogger.Infow("server listening", "address", srv.Addr, "env_file", cfg.EnvFile)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		appLogger.Infow("shutting down", "signal", sig.String())
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	appLogger.Infow("server stopped")
	return nil
}

// newHandler builds the gin engine with all routes and wraps it in CORS.
func newHandler(cfg config.Config, db *gorm.DB, appLogger *zap.SugaredLogger) http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(appLogger), middleware.Recovery(appLogger))

	health.RegisterRoutes(r, db, appLogger)
	playerRouter.RegisterRoutes(r, db, appLogger)
	teamRouter.RegisterRoutes(r, db, appLogger)

	return cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: []string{"Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{"Location", middleware.RequestIDHeader},
	}).Handler(r)
}
