package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	CatalogMemory   = "memory"
	CatalogPostgres = "postgres"
	CatalogSQLite   = "sqlite"
)

type Config struct {
	HTTPAddr             string        `env:"HTTP_ADDR" envDefault:"0.0.0.0:8080"`
	JWTSecret            string        `env:"JWT_SECRET"`
	SessionTTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"5m"`
	CookieSecure         bool          `env:"COOKIE_SECURE" envDefault:"false"`

	CatalogDriver string `env:"CATALOG_DRIVER" envDefault:"memory"`
	DatabaseURL   string `env:"DATABASE_URL"`
	SQLitePath    string `env:"SQLITE_PATH" envDefault:"./data/awards.db"`

	DonationDelay       time.Duration `env:"DONATION_DELAY" envDefault:"1500ms"`
	DonationHistorySize int           `env:"DONATION_HISTORY_SIZE" envDefault:"3"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads an optional .env file, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return Parse()
}

// Parse reads the process environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.CatalogDriver {
	case CatalogMemory, CatalogSQLite:
	case CatalogPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required when CATALOG_DRIVER=postgres")
		}
	default:
		return fmt.Errorf("unknown CATALOG_DRIVER %q", c.CatalogDriver)
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.SessionSweepInterval <= 0 {
		return errors.New("SESSION_SWEEP_INTERVAL must be positive")
	}
	if c.DonationDelay < 0 {
		return errors.New("DONATION_DELAY must not be negative")
	}
	if c.DonationHistorySize <= 0 {
		return errors.New("DONATION_HISTORY_SIZE must be positive")
	}
	return nil
}
