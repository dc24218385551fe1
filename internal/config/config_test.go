// Package config_test provides unit tests for configuration loading.
package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finora/bot-service/internal/config"
)

func TestLoad_RequiresBotToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEGRAM_BOT_TOKEN")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "redis", cfg.Cache.Type)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "mongodb", cfg.Profile.Type)
	assert.Equal(t, 20*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "/telegram/webhook", cfg.Telegram.WebhookPath)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL_SECONDS", "600")
	t.Setenv("PROFILE_STORE_TYPE", "memory")
	t.Setenv("BACKEND_RPC_URL", "http://backend:9000/rpc")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "memory", cfg.Profile.Type)
	assert.Equal(t, "http://backend:9000/rpc", cfg.Backend.URL)
}
