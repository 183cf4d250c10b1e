package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PSQL_ADDRESS", "")
	t.Setenv("REDIS_ADDRESS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.Psql.Configured())
	assert.Equal(t, int32(10), cfg.Psql.MaxConns)
	assert.False(t, cfg.Redis.Enabled())
	assert.Equal(t, time.Minute, cfg.Redis.DashboardTTL)
	assert.False(t, cfg.Otel.Enabled)
	assert.Equal(t, "stdout", cfg.Otel.ExporterKind())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ADDRESS", "postgres://u:p@db:5432/agency?sslmode=disable")
	t.Setenv("REDIS_ADDRESS", "cache:6379")
	t.Setenv("REDIS_DASHBOARD_TTL", "30s")
	t.Setenv("OTEL_EXPORTER", "otlp")
	t.Setenv("OTEL_SAMPLE_RATIO", "3")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Configured())
	assert.Equal(t, "db:5432", cfg.Psql.Addr.Host)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 30*time.Second, cfg.Redis.DashboardTTL)
	assert.Equal(t, "otlp", cfg.Otel.ExporterKind())
	assert.Equal(t, 1.0, cfg.Otel.Ratio())
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}
