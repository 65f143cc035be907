package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	keys := []string{
		"DB_DRIVER", "DB_DSN", "SERVER_PORT", "SESSION_SECRET", "SESSION_MAX_AGE_SEC",
		"PUBLIC_BASE_URL", "STATIC_DIR", "QR_SIZE", "LOG_LEVEL", "GIN_MODE",
		"LOGIN_RATE_PER_MINUTE", "ADMIN_USERNAME", "ADMIN_PASSWORD",
	}
	for _, k := range keys {
		t.Setenv(k, "")
	}
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

func TestLoad_Defaults(t *testing.T) {
	setEnv(t, map[string]string{"SESSION_SECRET": "0123456789abcdef"})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "violations.db", cfg.DBDSN)
	assert.Equal(t, "5000", cfg.ServerPort)
	assert.Equal(t, "http://localhost:5000", cfg.PublicBaseURL)
	assert.Equal(t, "./static", cfg.StaticDir)
	assert.Equal(t, 256, cfg.QRSize)
	assert.Equal(t, 10, cfg.LoginRatePerMinute)
	assert.Equal(t, 86400, cfg.SessionMaxAge)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"DB_DRIVER":             "POSTGRES",
		"DB_DSN":                "postgres://u:p@db:5432/tickets",
		"SERVER_PORT":           "8081",
		"SESSION_SECRET":        "0123456789abcdef",
		"PUBLIC_BASE_URL":       "http://10.14.249.63:8081",
		"QR_SIZE":               "512",
		"LOGIN_RATE_PER_MINUTE": "3",
		"ADMIN_USERNAME":        "  chief  ",
		"ADMIN_PASSWORD":        "secret",
	})

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "postgres://u:p@db:5432/tickets", cfg.DBDSN)
	assert.Equal(t, "http://10.14.249.63:8081", cfg.PublicBaseURL)
	assert.Equal(t, 512, cfg.QRSize)
	assert.Equal(t, 3, cfg.LoginRatePerMinute)
	assert.Equal(t, "chief", cfg.AdminUsername)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"missing secret", map[string]string{}},
		{"short secret", map[string]string{"SESSION_SECRET": "short"}},
		{"unknown driver", map[string]string{"SESSION_SECRET": "0123456789abcdef", "DB_DRIVER": "mysql"}},
		{"postgres without dsn", map[string]string{"SESSION_SECRET": "0123456789abcdef", "DB_DRIVER": "postgres"}},
		{"relative base url", map[string]string{"SESSION_SECRET": "0123456789abcdef", "PUBLIC_BASE_URL": "10.0.0.1:5000"}},
		{"bad qr size", map[string]string{"SESSION_SECRET": "0123456789abcdef", "QR_SIZE": "abc"}},
		{"tiny qr size", map[string]string{"SESSION_SECRET": "0123456789abcdef", "QR_SIZE": "10"}},
		{"zero rate", map[string]string{"SESSION_SECRET": "0123456789abcdef", "LOGIN_RATE_PER_MINUTE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)
			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
