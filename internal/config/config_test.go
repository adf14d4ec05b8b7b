package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bodima/internal/config"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, 10, cfg.Database.PoolSize)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenDuration)
	assert.True(t, cfg.Auth.ProtectUserRoutes)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("JWT_TOKEN_DURATION", "1h")
	t.Setenv("AUTH_PROTECT_USER_ROUTES", "false")
	t.Setenv("ALLOWED_ORIGINS", "https://app.example.com")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Port)
	assert.Equal(t, time.Hour, cfg.Auth.TokenDuration)
	assert.False(t, cfg.Auth.ProtectUserRoutes)
	assert.Equal(t, []string{"https://app.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoadAggregatesProblems(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_TOKEN_DURATION", "soon")
	t.Setenv("DB_POOL_SIZE", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "JWT_TOKEN_DURATION")
	assert.Contains(t, err.Error(), "DB_POOL_SIZE")
}
