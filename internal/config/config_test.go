package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://invoice-me.vincentchan.cloud", cfg.APIBaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "memory", cfg.SessionStore)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "en-US", cfg.DisplayLocale)
}

func TestValidate(t *testing.T) {
	valid := Config{
		APIBaseURL:     "http://localhost:8081",
		Port:           8080,
		SessionStore:   "memory",
		RequestTimeout: time.Second,
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty base url", mutate: func(c *Config) { c.APIBaseURL = "" }, wantErr: "API_BASE_URL"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = 70000 }, wantErr: "invalid port 70000"},
		{name: "unknown session store", mutate: func(c *Config) { c.SessionStore = "redis" }, wantErr: `invalid session store "redis"`},
		{name: "zero timeout", mutate: func(c *Config) { c.RequestTimeout = 0 }, wantErr: "invalid request timeout"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
