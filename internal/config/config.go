package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config chứa toàn bộ application configuration.
// Struct này được populate từ environment variables (có thể được load từ .env trong main).
type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Database DatabaseConfig
}

type AppConfig struct {
	Name          string `env:"APP_NAME" envDefault:"Book Management API"`
	Environment   string `env:"APP_ENV" envDefault:"development"` // development, staging, production
	Port          string `env:"APP_PORT" envDefault:"8080"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	DefaultLocale string `env:"DEFAULT_LOCALE" envDefault:"en"`
}

type HTTPConfig struct {
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Supported values of DB_DRIVER.
const (
	DriverPgx      = "pgx"      // pgxpool, native protocol
	DriverPostgres = "postgres" // database/sql with lib/pq
	DriverSQLite   = "sqlite3"  // database/sql with go-sqlite3
)

type DatabaseConfig struct {
	Driver   string `env:"DB_DRIVER" envDefault:"pgx"`
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD"`
	Name     string `env:"DB_NAME" envDefault:"book_management"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	MaxConns          int32         `env:"DB_MAX_CONNS" envDefault:"25"`
	MinConns          int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	MaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"5m"`
	MaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"1m"`
	HealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	MaxRetries     int           `env:"DB_MAX_RETRIES" envDefault:"5"`
	RetryDelay     time.Duration `env:"DB_RETRY_DELAY" envDefault:"1s"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"10s"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"book_management.db"`
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.App.Port == "" {
		return fmt.Errorf("APP_PORT must not be empty")
	}

	switch c.Database.Driver {
	case DriverPgx, DriverPostgres:
		if c.Database.MaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("DB_MIN_CONNS (%d) must not exceed DB_MAX_CONNS (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
		if c.Database.MaxRetries < 1 {
			return fmt.Errorf("DB_MAX_RETRIES must be at least 1")
		}
		// Production environment phải có database password
		if c.App.Environment == "production" && c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH must be set for driver %s", DriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s, %s or %s)", c.Database.Driver, DriverPgx, DriverPostgres, DriverSQLite)
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}
