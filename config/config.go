package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is loaded from environment variables at startup. Empty REDIS_ADDR
// and SQLITE_PATH select the in-process cache and store; an empty
// OPENAI_API_KEY disables AI enrichment.
type Config struct {
	Addr         string        `env:"ADDR" envDefault:":8080"`
	RedisAddr    string        `env:"REDIS_ADDR"`
	SQLitePath   string        `env:"SQLITE_PATH"`
	OpenAIAPIKey string        `env:"OPENAI_API_KEY"`
	RateLimit    int           `env:"RATE_LIMIT" envDefault:"30"`
	RateWindow   time.Duration `env:"RATE_WINDOW" envDefault:"1m"`
}

// Load parses the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
