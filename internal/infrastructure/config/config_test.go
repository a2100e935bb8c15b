package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "LOG_MODE", "REDIS_ADDR", "DRAFT_TTL", "DRAFT_AUTO_START", "ORDERS_API_URL", "CORS_ORIGINS", "TOKEN_TTL", "SYNC_IDLE_TTL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "dev", cfg.LogMode)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.DraftTTL)
	assert.True(t, cfg.DraftAutoStart)
	assert.Empty(t, cfg.OrdersAPIURL)
	assert.Equal(t, 30*time.Minute, cfg.SyncIdleTTL)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DRAFT_TTL", "30m")
	t.Setenv("DRAFT_AUTO_START", "false")
	t.Setenv("SYNC_IDLE_TTL", "5m")
	t.Setenv("ORDERS_API_URL", " http://orders:8080/ ")
	t.Setenv("CORS_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.DraftTTL)
	assert.False(t, cfg.DraftAutoStart)
	assert.Equal(t, 5*time.Minute, cfg.SyncIdleTTL)
	assert.Equal(t, "http://orders:8080", cfg.OrdersAPIURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_Malformed(t *testing.T) {
	cases := map[string]string{
		"PORT":             "eighty",
		"DRAFT_TTL":        "1 day",
		"DRAFT_AUTO_START": "maybe",
		"SYNC_IDLE_TTL":    "soon",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}
