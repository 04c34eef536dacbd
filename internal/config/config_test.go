package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, EnvDevelopment, cfg.Environment)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, uint64(2), cfg.LLMMaxRetries)
	assert.Equal(t, 3600, cfg.RatesTTLSeconds)
	assert.False(t, cfg.StrictJSONExtract)
	assert.Equal(t, ":8080", cfg.GetHTTPAddr())
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("TRIP_PLANNER_HTTP_PORT", "9090")
	t.Setenv("TRIP_PLANNER_OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("TRIP_PLANNER_STRICT_JSON_EXTRACT", "true")

	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.HTTPPort)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.True(t, cfg.StrictJSONExtract)
}

func TestPostgresRequiresDSN(t *testing.T) {
	t.Setenv("TRIP_PLANNER_DB_DRIVER", "postgres")
	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_DSN")

	t.Setenv("TRIP_PLANNER_POSTGRES_DSN", "postgres://localhost:5432/trips")
	cfg, err := New()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.DBDriver)
}

func TestUnsupportedDriver(t *testing.T) {
	t.Setenv("TRIP_PLANNER_DB_DRIVER", "spanner")
	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported DB_DRIVER")
}

func TestResolveDefaultsFloors(t *testing.T) {
	cfg := &Config{DBDriver: "sqlite", SQLitePath: ":memory:", RatesTTLSeconds: -5}
	require.NoError(t, cfg.ResolveDefaults())
	assert.Equal(t, 3600, cfg.RatesTTLSeconds)
	assert.Equal(t, 30, cfg.HealthIntervalSeconds)
}

func TestNewForTesting(t *testing.T) {
	cfg := NewForTesting()
	assert.True(t, cfg.IsTesting())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":memory:", cfg.SQLitePath)
	require.NoError(t, cfg.ResolveDefaults())
}
