// File: /config/config.go
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Loads a .env file into the process environment, if one exists.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix = "CARS_"

	StorageMemory = "memory"
	StorageMySQL  = "mysql"
)

type Config struct {
	Port     string `koanf:"port" validate:"required,numeric"`
	Env      string `koanf:"env" validate:"required,oneof=development production test"`
	LogLevel string `koanf:"log_level" validate:"required,oneof=trace debug info warn error"`

	StorageDriver string `koanf:"storage_driver" validate:"required,oneof=memory mysql"`
	DatabaseURL   string `koanf:"database_url" validate:"required_if=StorageDriver mysql"`
	Seed          bool   `koanf:"seed"`

	// 0 disables rate limiting
	RateLimitRPM   int `koanf:"rate_limit_rpm" validate:"gte=0"`
	RateLimitBurst int `koanf:"rate_limit_burst" validate:"gt=0"`

	MetricsEnabled    bool          `koanf:"metrics_enabled"`
	InventoryInterval time.Duration `koanf:"inventory_interval" validate:"gte=0"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout" validate:"gt=0"`
}

// Default returns the configuration used when no environment is set.
func Default() *Config {
	return &Config{
		Port:              "8080",
		Env:               "development",
		LogLevel:          "info",
		StorageDriver:     StorageMemory,
		RateLimitBurst:    20,
		MetricsEnabled:    true,
		InventoryInterval: time.Minute,
		ShutdownTimeout:   10 * time.Second,
	}
}

// Load reads CARS_* environment variables on top of Default and validates
// the result. CARS_LOG_LEVEL maps to the "log_level" key.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
