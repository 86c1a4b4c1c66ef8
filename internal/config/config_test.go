package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/contractflow")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
		assert.Equal(t, 8080, cfg.HTTP.Port)
		assert.Equal(t, "uploads", cfg.Storage.Root)
		assert.Equal(t, 24*time.Hour, cfg.Alerts.Interval)
		assert.Equal(t, 7*24*time.Hour, cfg.Alerts.SoonWindow)
	})

	t.Run("requires a database dsn", func(t *testing.T) {
		t.Setenv("DB_DSN", "")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("rejects a sub-minute alert interval", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/contractflow")
		t.Setenv("ALERTS_INTERVAL", "10s")

		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("DB_DSN", "postgres://localhost/contractflow")
		t.Setenv("APP_ENV", "production")
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("ALERTS_SOON_WINDOW", "72h")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example , https://b.example")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, 9090, cfg.HTTP.Port)
		assert.Equal(t, 72*time.Hour, cfg.Alerts.SoonWindow)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
	})
}
