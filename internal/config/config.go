package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

type Config struct {
	APIBaseURL     string        `env:"API_BASE_URL" envDefault:"https://invoice-me.vincentchan.cloud"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
	Port           int           `env:"PORT" envDefault:"8080"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	AppEnv         string        `env:"APP_ENV" envDefault:"production"`
	DisplayLocale  string        `env:"DISPLAY_LOCALE" envDefault:"en-US"`

	SessionStore string `env:"SESSION_STORE" envDefault:"memory"`
	SessionFile  string `env:"SESSION_FILE"`

	MockAPIPort     int    `env:"MOCK_API_PORT" envDefault:"8081"`
	MockAPIUsername string `env:"MOCK_API_USERNAME" envDefault:"admin"`
	MockAPIPassword string `env:"MOCK_API_PASSWORD" envDefault:"admin"`
}

func Load() (*Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

func (c Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("API_BASE_URL must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", c.Port)
	}
	switch c.SessionStore {
	case "memory", "file":
	default:
		return fmt.Errorf("invalid session store %q: must be memory or file", c.SessionStore)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("invalid request timeout %s: must be positive", c.RequestTimeout)
	}
	return nil
}
