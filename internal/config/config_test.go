package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "SmartBiz SA Backend", cfg.AppName)
	assert.Equal(t, "1.0.0", cfg.AppVersion)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "http://localhost:5173", cfg.FrontendURL)
	assert.Equal(t, "sqlite", cfg.DBType)
	assert.Equal(t, "smartbiz.db", cfg.DBPath)
	assert.Equal(t, "https://api.cerebras.ai/v1", cfg.Chat.BaseURL)
	assert.Equal(t, "rachel", cfg.Speech.DefaultVoiceID)
	assert.Equal(t, 30*time.Second, cfg.SmartSQL.BridgeTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RAINDROP_TIMEOUT", "5")
	t.Setenv("CEREBRAS_API_KEY", "  key-with-spaces  ")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5*time.Second, cfg.SmartSQL.BridgeTimeout)
	assert.Equal(t, "key-with-spaces", cfg.Chat.APIKey)
}

func TestGetenvIntRejectsGarbage(t *testing.T) {
	t.Setenv("RAINDROP_TIMEOUT", "soon")
	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.SmartSQL.BridgeTimeout)
}
