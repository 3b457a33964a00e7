package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"GAMES_SOURCE", "DATABASE_URL", "API_PORT", "PORT", "CORS_ALLOW_ORIGINS", "DEBUG"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "assets/H2H.json", cfg.GamesSource)
	assert.Equal(t, "assets/seasons.json", cfg.SummarySource)
	assert.Empty(t, cfg.RivalrySource)
	assert.Equal(t, 8000, cfg.APIPort)
	assert.Equal(t, DefaultSleeperBaseURL, cfg.SleeperBaseURL)
	assert.Equal(t, 60*time.Second, cfg.RateLimitWindow)
	assert.Len(t, cfg.CORSAllowOrigins, 3)
	assert.False(t, cfg.UseDatabase())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GAMES_SOURCE", "https://example.com/H2H.json")
	t.Setenv("PORT", "9090")
	t.Setenv("API_PORT", "")
	t.Setenv("DEBUG", "true")
	t.Setenv("CORS_ALLOW_ORIGINS", " https://a.example , ,https://b.example")
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/H2H.json", cfg.GamesSource)
	assert.Equal(t, 9090, cfg.APIPort)
	assert.True(t, cfg.Debug)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowOrigins)
	assert.Equal(t, 100, cfg.RateLimitRequests, "invalid ints fall back")
	assert.True(t, cfg.IsProduction())
}

func TestLoadRequiresAGameSource(t *testing.T) {
	t.Setenv("GAMES_SOURCE", " ")
	t.Setenv("DATABASE_URL", "")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DATABASE_URL", "postgres://localhost/h2h")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UseDatabase())
	assert.Empty(t, cfg.GamesSource)
}
