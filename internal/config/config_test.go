package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "8080")
	t.Setenv("AGENT_SESSION_TTL", "not-a-duration")
	t.Setenv("AGENT_FOLLOWUPS_ENABLED", "")

	cfg := Load()

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, time.Hour, cfg.Agent.ConversationTTL)
	assert.True(t, cfg.Agent.FollowUpsEnabled)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("AGENT_SESSION_TTL", "15m")
	t.Setenv("AGENT_FOLLOWUPS_ENABLED", "false")
	t.Setenv("JWT_SECRET", "s3cret")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 15*time.Minute, cfg.Agent.ConversationTTL)
	assert.False(t, cfg.Agent.FollowUpsEnabled)
	assert.Equal(t, "s3cret", cfg.Auth.JwtSecret)
}
