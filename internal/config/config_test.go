package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "REPLIT_URL", "CLIENT_TIMEOUT_SECONDS", "CLIENT_MAX_RETRIES",
		"DATABASE_URL", "REDIS_HOST", "GEMINI_API_KEY", "GOOGLE_API_KEY",
		"AI_PROVIDER_BACKEND", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultBaseURL, cfg.Client.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 0, cfg.Client.MaxRetries)
	assert.Empty(t, cfg.DB.DatabaseURL)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, DefaultBackend, cfg.Provider.Backend)
	assert.Empty(t, cfg.Provider.APIKey)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "6001")
	t.Setenv("REPLIT_URL", "https://example.test")
	t.Setenv("CLIENT_TIMEOUT_SECONDS", "5")
	t.Setenv("CLIENT_MAX_RETRIES", "2")
	t.Setenv("DATABASE_URL", "sqlite://./data/test.db")
	t.Setenv("REDIS_HOST", "127.0.0.1")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	cfg := Load()

	assert.Equal(t, 6001, cfg.Server.Port)
	assert.Equal(t, "https://example.test", cfg.Client.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Client.Timeout)
	assert.Equal(t, 2, cfg.Client.MaxRetries)
	assert.Equal(t, "sqlite://./data/test.db", cfg.DB.DatabaseURL)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "google-key", cfg.Provider.APIKey)
}

func TestGetEnvAsInt_InvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	assert.Equal(t, 42, getEnvAsInt("PORT", 42))
}
