package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/kickstats")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.CacheEnabled)
	assert.True(t, cfg.RateLimitEnabled)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/kickstats")
	t.Setenv("API_PORT", "9000")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example.com, https://b.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.APIPort)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.CacheEnabled)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowOrigins)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "not a number")
	assert.Equal(t, 42, envInt("SOME_INT", 42))

	t.Setenv("SOME_BOOL", "maybe")
	assert.True(t, envBool("SOME_BOOL", true))

	t.Setenv("SOME_LIST", " , ,")
	assert.Equal(t, []string{"fallback"}, envList("SOME_LIST", []string{"fallback"}))
}
