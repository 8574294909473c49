// File: /main.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"cars-api/config"
	"cars-api/database"
	"cars-api/jobs"
	"cars-api/logger"
	"cars-api/metrics"
	"cars-api/middleware"
	"cars-api/repositories"
	"cars-api/routes"
	"cars-api/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr).With().Timestamp().Logger()
		bootLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, db := openStore(cfg, log)
	if db != nil {
		defer func() {
			if err := database.Close(db); err != nil {
				log.Error().Err(err).Msg("Failed to close database")
			}
		}()
	}

	if cfg.Seed {
		if err := database.SeedData(ctx, store, log); err != nil {
			log.Warn().Err(err).Msg("Failed to seed database")
		}
	}

	carService := services.NewCarService(store, log)

	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	opts := routes.Options{
		CarService:    carService,
		StorageDriver: cfg.StorageDriver,
		Logger:        log,
	}
	if cfg.RateLimitRPM > 0 {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimitRPM, cfg.RateLimitBurst)
	}
	if cfg.MetricsEnabled {
		opts.Metrics = metrics.New()
		if cfg.InventoryInterval > 0 {
			job := jobs.NewInventoryJob(carService, opts.Metrics, cfg.InventoryInterval, log)
			job.Start(ctx)
			defer job.Stop()
		}
	}

	server := &http.Server{
		Addr:    cfg.Addr(),
		Handler: routes.NewEngine(opts),
	}

	go func() {
		log.Info().Str("addr", server.Addr).Str("storage", cfg.StorageDriver).Msg("Starting cars API server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("Server stopped unexpectedly")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Graceful shutdown failed")
		return
	}
	log.Info().Msg("Server stopped")
}

// openStore returns the configured car store and, for MySQL, the connection
// that must be closed on exit.
func openStore(cfg *config.Config, log zerolog.Logger) (repositories.CarStore, *gorm.DB) {
	if cfg.StorageDriver != config.StorageMySQL {
		return repositories.NewMemoryCarRepository(), nil
	}

	db, err := database.Initialize(cfg.DatabaseURL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}
	return repositories.NewGormCarRepository(db), db
}
