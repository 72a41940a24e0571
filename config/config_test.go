package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RATE_LIMIT_RPS", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.UsePostgres())
	assert.Equal(t, 20.0, cfg.RateLimitRPS)
	assert.Equal(t, 40, cfg.RateLimitBurst)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/jobs")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://jobs.example/ , ,http://localhost:5173")
	t.Setenv("SEED_ENABLED", "false")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, []string{"https://jobs.example", "http://localhost:5173"}, cfg.AllowedOrigins)
	assert.False(t, cfg.SeedEnabled)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}
