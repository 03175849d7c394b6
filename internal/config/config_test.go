package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("APP_ENV", "")

	cfg := Load()

	assert.Contains(t, cfg.DBUrl, "postgres://")
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/salonium?sslmode=disable")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "postgres://u:p@db:5432/salonium?sslmode=disable", cfg.DBUrl)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, ":9090", cfg.Addr())
	assert.True(t, cfg.IsProduction())
}
