package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "CORS_ORIGINS", "GEMINI_API_KEY", "GEMINI_MODEL",
		"ADVISOR_TIMEOUT", "ADVISOR_RECENT_TRANSACTIONS", "SESSION_TTL", "CHAT_RATE_LIMIT", "CHAT_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.Equal(t, "gemini-2.5-flash", cfg.Advisor.Model)
	assert.Equal(t, 30*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 10, cfg.Advisor.RecentTransactions)
	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
	assert.Equal(t, 10, cfg.ChatRateLimit)
	assert.Equal(t, 3, cfg.ChatBurst)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("ADVISOR_TIMEOUT", "5s")
	t.Setenv("ADVISOR_RECENT_TRANSACTIONS", "5")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("CHAT_RATE_LIMIT", "20")
	t.Setenv("CHAT_BURST", "5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.Equal(t, "key", cfg.Advisor.APIKey)
	assert.Equal(t, 5*time.Second, cfg.Advisor.Timeout)
	assert.Equal(t, 5, cfg.Advisor.RecentTransactions)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.Equal(t, 20, cfg.ChatRateLimit)
	assert.Equal(t, 5, cfg.ChatBurst)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"ADVISOR_TIMEOUT", "soon"},
		{"ADVISOR_TIMEOUT", "0s"},
		{"ADVISOR_RECENT_TRANSACTIONS", "ten"},
		{"SESSION_TTL", "forever"},
		{"CHAT_RATE_LIMIT", "-1"},
		{"CHAT_BURST", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
