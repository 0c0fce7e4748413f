// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Supported database drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config is built once at startup and passed by value to whoever needs it.
type Config struct {
	DB       DBConfig `envconfig:"DB"`
	HTTPAddr string   `envconfig:"HTTP_ADDR" default:":8080"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
	// LogFormat is pretty or json.
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	AutoMigrate bool `envconfig:"AUTO_MIGRATE" default:"true"`
	SeedDemo    bool `envconfig:"SEED_DEMO" default:"false"`
}

// DBConfig holds connection settings, read from DB_* variables. Host, port,
// user, password and name only apply to postgres; SQLitePath only to sqlite.
type DBConfig struct {
	Driver          string        `envconfig:"DRIVER" default:"postgres"`
	Host            string        `envconfig:"HOST" default:"localhost"`
	Port            string        `envconfig:"PORT" default:"5432"`
	User            string        `envconfig:"USER" default:"postgres"`
	Password        string        `envconfig:"PASSWORD" default:"password"`
	Name            string        `envconfig:"NAME" default:"codehost"`
	SSLMode         string        `envconfig:"SSLMODE" default:"disable"`
	SQLitePath      string        `envconfig:"SQLITE_PATH" default:"codehost.db"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"30m"`
}

// DSN returns the driver specific data source name.
func (c DBConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return SQLiteDSN(c.SQLitePath)
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.Host, c.User, c.Password, c.Name, c.Port, c.SSLMode)
}

// SQLiteDSN enables foreign keys and a busy timeout on a sqlite file or URI.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}

// Load reads an optional .env file, then the process environment.
// A missing env file is not an error; variables already set in the
// environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile == "" {
		envFile = ".env"
	}
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the service cannot start with.
func (c Config) Validate() error {
	var errs []error
	switch c.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverSQLite, c.DB.Driver))
	}
	switch strings.ToLower(c.LogFormat) {
	case "pretty", "json":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be pretty or json, got %q", c.LogFormat))
	}
	if c.HTTPAddr == "" {
		errs = append(errs, errors.New("HTTP_ADDR must not be empty"))
	}
	return errors.Join(errs...)
}
