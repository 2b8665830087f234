// Package config loads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "HOUSEPOINTS_"

// Config is the full server configuration.
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Timezone        string        `env:"TIMEZONE" envDefault:"America/Sao_Paulo"`

	// Store selects the backend: memory, sqlite, redis or postgres.
	Store      string `env:"STORE" envDefault:"sqlite"`
	SQLitePath string `env:"SQLITE_PATH" envDefault:"./data/housepoints.db"`

	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`
	RedisPrefix   string `env:"REDIS_PREFIX" envDefault:"housepoints:"`

	PostgresURL string `env:"POSTGRES_URL"`

	// Credentials selects password checking: plaintext or bcrypt.
	Credentials string `env:"CREDENTIALS" envDefault:"plaintext"`

	AdvisoryAPIKey     string        `env:"ADVISORY_API_KEY"`
	AdvisoryBaseURL    string        `env:"ADVISORY_BASE_URL" envDefault:"https://generativelanguage.googleapis.com/v1beta/openai/"`
	AdvisoryModel      string        `env:"ADVISORY_MODEL" envDefault:"gemini-3-flash-preview"`
	AdvisoryTimeout    time.Duration `env:"ADVISORY_TIMEOUT" envDefault:"15s"`
	SummaryConcurrency int           `env:"SUMMARY_CONCURRENCY" envDefault:"2"`

	// OTelEndpoint enables tracing when set.
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
}

var (
	validStores      = []string{"memory", "sqlite", "redis", "postgres"}
	validCredentials = []string{"plaintext", "bcrypt"}
)

// Load reads the dotenv file named by HOUSEPOINTS_ENV_FILE (default .env)
// when it exists, then parses the environment. Variables already set win
// over the file.
func Load() (Config, error) {
	path := os.Getenv(Prefix + "ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings and backend requirements.
func (c Config) Validate() error {
	if !oneOf(c.Store, validStores) {
		return fmt.Errorf("invalid %sSTORE %q: want one of %v", Prefix, c.Store, validStores)
	}
	if !oneOf(c.Credentials, validCredentials) {
		return fmt.Errorf("invalid %sCREDENTIALS %q: want one of %v", Prefix, c.Credentials, validCredentials)
	}
	if c.Store == "postgres" && c.PostgresURL == "" {
		return fmt.Errorf("%sPOSTGRES_URL is required when %sSTORE=postgres", Prefix, Prefix)
	}
	if c.SummaryConcurrency < 1 {
		return fmt.Errorf("%sSUMMARY_CONCURRENCY must be at least 1", Prefix)
	}
	return nil
}

// Location loads the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid %sTIMEZONE: %w", Prefix, err)
	}
	return loc, nil
}

func oneOf(v string, allowed []string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
