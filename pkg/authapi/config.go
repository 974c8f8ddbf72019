package authapi

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingBaseURL is returned when the real backend is selected without a
// base URL to reach it.
var ErrMissingBaseURL = errors.New("authapi: AUTH_API_BASE_URL is required when USE_MOCK_API is false")

// Config selects and parameterizes the backend. With UseMock the Simulator
// is used and BaseURL may stay empty.
type Config struct {
	UseMock bool   `env:"USE_MOCK_API" envDefault:"true"`
	BaseURL string `env:"AUTH_API_BASE_URL"`
}

var loadDotEnv sync.Once

// LoadConfig reads Config from the environment, loading a .env file first
// when one exists in the working directory.
func LoadConfig() (Config, error) {
	loadDotEnv.Do(func() {
		// Missing .env files are fine; the environment may be set directly.
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if !cfg.UseMock && cfg.BaseURL == "" {
		return Config{}, ErrMissingBaseURL
	}
	return cfg, nil
}

// New selects the backend for cfg: the Simulator when UseMock is set,
// otherwise an HTTPClient rooted at cfg.BaseURL. Both satisfy Client, so
// callers stay backend-agnostic.
func New(cfg Config) Client {
	if cfg.UseMock {
		return NewSimulator()
	}
	return NewHTTPClient(cfg.BaseURL)
}
