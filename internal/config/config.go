package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"github.com/caarlos0/env/v8"
	"github.com/joho/godotenv"
)

type Config struct {
	// In all cases the default behavior should be for the docker compose setup
	PostgresAddress  string `env:"POSTGRES_ADDRESS" envDefault:"localhost"`
	PostgresPort     string `env:"POSTGRES_PORT" envDefault:"5433"`
	PostgresDB       string `env:"POSTGRES_DB" envDefault:"prefin"`
	PostgresUsername string `env:"POSTGRES_USERNAME" envDefault:"postgres"`
	PostgresPassword string `env:"POSTGRES_PASSWORD" envDefault:"testpassword"`
	PostgresSSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`

	Port            string `env:"PORT" envDefault:"9446"`
	JWTSecret       string `env:"JWT_SECRET,required"`
	CookieSecure    bool   `env:"COOKIE_SECURE" envDefault:"false"`
	OperatorWorkers int    `env:"OPERATOR_WORKERS" envDefault:"4"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	MigrateOnStart  bool   `env:"MIGRATE_ON_START" envDefault:"true"`

	// Browser origins allowed to call the API with the session cookie.
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000,http://localhost:3001"`
}

// ProcessEnvironmentVariables loads an optional .env file and parses the
// environment into a Config. A missing JWT_SECRET is an error.
func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	if cfg.OperatorWorkers < 1 {
		cfg.OperatorWorkers = 1
	}

	return &cfg, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=" + url.QueryEscape(c.PostgresSSLMode),
	}
	return u.String()
}
