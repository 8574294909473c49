// File: /database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"cars-api/models"
	"cars-api/repositories"
)

// Initialize opens the MySQL connection. Implicit transactions around single
// writes are disabled; every repository call is one statement.
func Initialize(databaseURL string, log zerolog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                 newGormLogger(log),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func newGormLogger(log zerolog.Logger) logger.Interface {
	level := logger.Warn
	if log.GetLevel() <= zerolog.DebugLevel {
		level = logger.Info
	}

	gormLog := log.With().Str("component", "gorm").Logger()
	return logger.New(&gormLog, logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

// Migrate creates or updates the car table.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Car{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedCars is the reference data loaded by SeedData.
var SeedCars = []models.CarFields{
	{Brand: "Toyota", Model: "Corolla", Year: 2020},
	{Brand: "Honda", Model: "Civic", Year: 2021},
	{Brand: "Tesla", Model: "Model 3", Year: 2022},
	{Brand: "Ford", Model: "Mustang", Year: 2023},
	{Brand: "Chevrolet", Model: "Camaro", Year: 2024},
	{Brand: "BMW", Model: "X5", Year: 2025},
	{Brand: "Mercedes-Benz", Model: "GLC", Year: 2026},
	{Brand: "Audi", Model: "Q7", Year: 2027},
	{Brand: "Lamborghini", Model: "Huracan", Year: 2028},
	{Brand: "Ferrari", Model: "F8", Year: 2029},
}

// SeedData fills an empty store with SeedCars. A store that already holds
// cars is left alone.
func SeedData(ctx context.Context, store repositories.CarStore, log zerolog.Logger) error {
	existing, err := store.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("count cars: %w", err)
	}
	if len(existing) > 0 {
		log.Info().Int("cars", len(existing)).Msg("store already has data, skipping seed")
		return nil
	}

	for _, fields := range SeedCars {
		if _, err := store.Create(ctx, fields); err != nil {
			return fmt.Errorf("seed %s %s: %w", fields.Brand, fields.Model, err)
		}
	}

	log.Info().Int("cars", len(SeedCars)).Msg("store seeded")
	return nil
}
