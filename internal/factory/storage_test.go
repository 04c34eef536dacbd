package factory

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ronojoykumar/travel-itinerary-app/internal/config"
)

func TestNewStoreSQLite(t *testing.T) {
	cfg := config.NewForTesting()
	st, err := NewStore(cfg, zerolog.Nop())
	require.NoError(t, err)
	defer func() { _ = st.Close() }()
	assert.NoError(t, st.HealthPing(context.Background()))
}

func TestNewStorePostgresRequiresDSN(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.DBDriver = "postgres"
	cfg.PostgresDSN = ""
	_, err := NewStore(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "POSTGRES_DSN")
}

func TestNewStoreUnknownDriver(t *testing.T) {
	cfg := config.NewForTesting()
	cfg.DBDriver = "cassandra"
	_, err := NewStore(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown DB_DRIVER")
}
