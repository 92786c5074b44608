package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "http://localhost:8080/api/brands", cfg.API.BaseURL)
	assert.Equal(t, "localhost", cfg.Postgres.Host)
	assert.Equal(t, 5432, cfg.Postgres.Port)
	assert.Equal(t, "disable", cfg.Postgres.SSLMode)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 5, cfg.Postgres.MaxIdleConns)
	assert.Equal(t, 6379, cfg.Redis.Port)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BRAND_API_BASE_URL", "https://api.example.com/brands/")
	t.Setenv("POSTGRES_SSLMODE", "require")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com/brands/", cfg.API.BaseURL)
	assert.Equal(t, "require", cfg.Postgres.SSLMode)
	assert.Equal(t, 25, cfg.Postgres.MaxOpenConns)
	assert.Equal(t, 8, cfg.Postgres.MaxIdleConns)
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 10, cfg.Postgres.MaxOpenConns)
}

func TestValidateRejectsEmptyBaseURL(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Postgres: PostgresConfig{Host: "localhost", User: "brandlens"},
		Report:   ReportConfig{CacheTTL: 1},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BRAND_API_BASE_URL")
}
