// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN_SIGN_KEY":       "jwt_secret",
		"APP_TOKEN_ISSUER":         "test_issuer",
		"APP_TOKEN_DURATION":       "1h",
		"APP_SESSION_SECRET":       "cookie_secret",
		"APP_SESSION_TTL":          "12h",
		"APP_PASSWORD_HASH_COST":   "12",
		"APP_GENERIC_LOGIN_ERRORS": "true",
		"APP_LOG_LEVEL":            "info",
		"APP_VERSION":              "1.0.0",

		"STORAGE_DB_DRIVER":               "sqlite3",
		"STORAGE_DB_DATABASE_URI":         "file:auth.db",
		"STORAGE_SESSIONS_REDIS_ADDRESS":  "localhost:6379",
		"STORAGE_SESSIONS_REDIS_PASSWORD": "redis_pass",
		"STORAGE_SESSIONS_REDIS_DB":       "2",

		"SERVER_ADDRESS":           "localhost:8080",
		"SERVER_REQUEST_TIMEOUT":   "30s",
		"SERVER_COOKIE_SECURE":     "true",
		"SERVER_RATE_LIMIT":        "50",
		"SERVER_RATE_LIMIT_WINDOW": "5m",

		"WORKERS_SESSION_SWEEP_INTERVAL": "10s",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "cookie_secret", cfg.App.SessionSecret)
	assert.Equal(t, 12*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.True(t, cfg.App.GenericLoginErrors)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
	assert.Equal(t, "file:auth.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:6379", cfg.Storage.Sessions.RedisAddress)
	assert.Equal(t, "redis_pass", cfg.Storage.Sessions.RedisPassword)
	assert.Equal(t, 2, cfg.Storage.Sessions.RedisDB)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.True(t, cfg.Server.CookieSecure)
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, 5*time.Minute, cfg.Server.RateLimitWindow)

	assert.Equal(t, 10*time.Second, cfg.Workers.SessionSweepInterval)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("APP_TOKEN_DURATION", "not-a-duration")

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, loadDotEnv(""))
}

// TestLoadDotEnv_DoesNotOverrideProcessEnv verifies that variables already
// present in the environment win over the .env file.
func TestLoadDotEnv_DoesNotOverrideProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_ISSUER=from-file\nAPP_VERSION=9.9.9\n"), 0o600))

	t.Setenv("APP_TOKEN_ISSUER", "from-env")
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))

	require.NoError(t, loadDotEnv(path))
	t.Cleanup(func() { _ = os.Unsetenv("APP_VERSION") })

	assert.Equal(t, "from-env", os.Getenv("APP_TOKEN_ISSUER"))
	assert.Equal(t, "9.9.9", os.Getenv("APP_VERSION"))
}
