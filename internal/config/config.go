package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port            string        `env:"PORT"`
	LegacyPort      string        `env:"APP_PORT"`
	DatabasePath    string        `env:"DATABASE_PATH" envDefault:"employees.db"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	DBLogLevel      string        `env:"DB_LOG_LEVEL" envDefault:"warn"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

const defaultPort = "3000"

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Port == "" {
		cfg.Port = cfg.LegacyPort
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if err := validatePort(cfg.Port); err != nil {
		return Config{}, err
	}

	cfg.DBLogLevel = strings.ToLower(strings.TrimSpace(cfg.DBLogLevel))
	switch cfg.DBLogLevel {
	case "silent", "error", "warn", "info":
	default:
		return Config{}, fmt.Errorf("DB_LOG_LEVEL must be one of: silent, error, warn, info")
	}

	if strings.TrimSpace(cfg.DatabaseURL) == "" && strings.TrimSpace(cfg.DatabasePath) == "" {
		return Config{}, fmt.Errorf("DATABASE_PATH required when DATABASE_URL is not set")
	}

	return cfg, nil
}

// UsesPostgres reports whether the Postgres backend is selected.
func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func validatePort(port string) error {
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("port must be an integer in range 1..65535, got %q", port)
	}
	return nil
}
