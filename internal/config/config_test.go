package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tasklist/internal/config"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := config.LoadConfig()

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.True(t, cfg.SeedExamples)
	assert.Nil(t, cfg.TrustedProxies)
	assert.Nil(t, cfg.AllowedOrigins)
	assert.Equal(t, 300, cfg.RateLimitPerMin)
	assert.Equal(t, 50, cfg.RateLimitBurst)
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("APP_ENV", "production")
	t.Setenv("SEED_EXAMPLES", "false")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.2")
	t.Setenv("ALLOWED_ORIGINS", "https://tasks.example.com")
	t.Setenv("RATE_LIMIT_PER_MIN", "60")
	t.Setenv("RATE_LIMIT_BURST", "5")

	cfg := config.LoadConfig()

	assert.Equal(t, "9999", cfg.AppPort)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.SeedExamples)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	assert.Equal(t, []string{"https://tasks.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoadConfig_IgnoresUnparseableValues(t *testing.T) {
	t.Setenv("SEED_EXAMPLES", "not-a-bool")
	t.Setenv("RATE_LIMIT_PER_MIN", "not-a-number")

	cfg := config.LoadConfig()

	assert.True(t, cfg.SeedExamples)
	assert.Equal(t, 300, cfg.RateLimitPerMin)
}
