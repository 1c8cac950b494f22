package config

import (
	"testing"
	"time"

	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{})
	assert.NilError(t, err)

	assert.Check(t, cmp.Equal(cfg.Server.Port, "8080"))
	assert.Check(t, cmp.Equal(cfg.Server.Host, "0.0.0.0"))
	assert.Check(t, cmp.Equal(cfg.Server.Addr(), "0.0.0.0:8080"))
	assert.Check(t, cmp.Equal(cfg.Server.ReadTimeout, 15*time.Second))
	assert.Check(t, cmp.Equal(cfg.Server.WriteTimeout, 15*time.Second))
	assert.Check(t, cmp.Equal(cfg.Server.IdleTimeout, 60*time.Second))
	assert.Check(t, cmp.Equal(cfg.Server.RequestTimeout, 60*time.Second))
	assert.Check(t, cmp.Equal(cfg.Server.ShutdownTimeout, 30*time.Second))
	assert.Check(t, cmp.Equal(cfg.LogLevel, "info"))
	assert.Check(t, cmp.Equal(cfg.LogFormat, "json"))
	assert.Check(t, !cfg.CORS.Enabled())
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(map[string]string{
		"PORT":                 "9090",
		"HOST":                 "127.0.0.1",
		"SHUTDOWN_TIMEOUT":     "5s",
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "text",
		"CORS_ALLOWED_ORIGINS": "https://a.example,https://b.example",
	})
	assert.NilError(t, err)

	assert.Check(t, cmp.Equal(cfg.Server.Addr(), "127.0.0.1:9090"))
	assert.Check(t, cmp.Equal(cfg.Server.ShutdownTimeout, 5*time.Second))
	assert.Check(t, cmp.Equal(cfg.LogLevel, "debug"))
	assert.Check(t, cmp.Equal(cfg.LogFormat, "text"))
	assert.Check(t, cmp.DeepEqual(cfg.CORS.AllowedOrigins, []string{"https://a.example", "https://b.example"}))
	assert.Check(t, cfg.CORS.Enabled())
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{
			name:    "non-numeric port",
			env:     map[string]string{"PORT": "http"},
			wantErr: "invalid PORT",
		},
		{
			name:    "port out of range",
			env:     map[string]string{"PORT": "70000"},
			wantErr: "invalid PORT",
		},
		{
			name:    "zero shutdown timeout",
			env:     map[string]string{"SHUTDOWN_TIMEOUT": "0s"},
			wantErr: "SHUTDOWN_TIMEOUT must be positive",
		},
		{
			name:    "unparseable duration",
			env:     map[string]string{"READ_TIMEOUT": "soon"},
			wantErr: "failed to parse environment",
		},
		{
			name:    "bad log level",
			env:     map[string]string{"LOG_LEVEL": "verbose"},
			wantErr: "invalid log level",
		},
		{
			name:    "bad log format",
			env:     map[string]string{"LOG_FORMAT": "xml"},
			wantErr: "invalid log format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFrom(tt.env)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
