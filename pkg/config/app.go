package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// AppConfig is the full application configuration. Values come from the YAML
// file first; environment variables override the file.
type AppConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Seed     SeedConfig     `yaml:"seed"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	LogLevel string         `yaml:"log_level"`
}

// DatabaseConfig selects the store backend and its connection settings.
type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver string `yaml:"driver"`
	// DSN is the PostgreSQL connection string; ignored for sqlite.
	DSN string `yaml:"dsn"`
	// Path is the SQLite database file; ignored for postgres.
	Path string `yaml:"path"`

	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time"`
}

// SeedConfig controls the bootstrap loader run at start.
type SeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in configuration: SQLite in the working
// directory, seeding on, metrics on :9090.
func Default() AppConfig {
	return AppConfig{
		Database: DatabaseConfig{
			Driver:          DriverSQLite,
			Path:            "dalahus.db",
			MaxOpenConns:    25,
			MaxIdleConns:    10,
			ConnMaxLifetime: 1 * time.Hour,
			ConnMaxIdleTime: 30 * time.Minute,
		},
		Seed:     SeedConfig{Enabled: true},
		Metrics:  MetricsConfig{Addr: ":9090"},
		LogLevel: "info",
	}
}

// Load builds the configuration in three layers: defaults, then the YAML
// file at path (skipped when path is empty or the file does not exist), then
// environment variables. The result is validated before being returned.
//
// Environment overrides:
//   - DATABASE_DRIVER:  "postgres" or "sqlite"
//   - DATABASE_URL:     PostgreSQL DSN
//   - SQLITE_PATH:      SQLite file path
//   - DB_MAX_OPEN_CONNS, DB_MAX_IDLE_CONNS
//   - DB_CONN_MAX_LIFETIME, DB_CONN_MAX_IDLE_TIME (durations, e.g. "1h")
//   - SEED_ON_START:    boolean
//   - METRICS_ADDR:     listen address for /metrics
//   - LOG_LEVEL:        "debug" or "info"
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// Missing file is fine, env and defaults carry the config.
		case err != nil:
			return AppConfig{}, fmt.Errorf("Load: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("Load: parse %s: %w", path, err)
			}
		}
	}

	cfg.Database.Driver = GetEnvString("DATABASE_DRIVER", cfg.Database.Driver)
	cfg.Database.DSN = GetEnvString("DATABASE_URL", cfg.Database.DSN)
	cfg.Database.Path = GetEnvString("SQLITE_PATH", cfg.Database.Path)
	cfg.Database.MaxOpenConns = GetEnvInt("DB_MAX_OPEN_CONNS", cfg.Database.MaxOpenConns)
	cfg.Database.MaxIdleConns = GetEnvInt("DB_MAX_IDLE_CONNS", cfg.Database.MaxIdleConns)
	cfg.Database.ConnMaxLifetime = GetEnvDuration("DB_CONN_MAX_LIFETIME", cfg.Database.ConnMaxLifetime)
	cfg.Database.ConnMaxIdleTime = GetEnvDuration("DB_CONN_MAX_IDLE_TIME", cfg.Database.ConnMaxIdleTime)
	cfg.Seed.Enabled = GetEnvBool("SEED_ON_START", cfg.Seed.Enabled)
	cfg.Metrics.Addr = GetEnvString("METRICS_ADDR", cfg.Metrics.Addr)
	cfg.LogLevel = GetEnvString("LOG_LEVEL", cfg.LogLevel)

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, fmt.Errorf("Load: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values that cannot work at runtime.
func (c AppConfig) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for the postgres driver")
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("database.path is required for the sqlite driver")
		}
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q",
			DriverPostgres, DriverSQLite, c.Database.Driver)
	}

	if c.Database.MaxOpenConns < 1 {
		return fmt.Errorf("database.max_open_conns must be at least 1, got %d",
			c.Database.MaxOpenConns)
	}
	if c.Database.ConnMaxLifetime <= 0 {
		return fmt.Errorf("database.conn_max_lifetime must be positive, got %v",
			c.Database.ConnMaxLifetime)
	}
	return nil
}
