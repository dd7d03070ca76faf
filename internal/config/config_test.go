package config

import (
	"route-solver-service/internal/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "DATABASE_URL", "DB_PATH", "DEPOT_LAT", "DEPOT_LON", "DEFAULT_DEPOT_ID", "MAX_ORDERS", "REDIS_URL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, domain.DefaultDepot().Location, cfg.DefaultDepot.Location)
	assert.Equal(t, domain.DefaultDepotID, cfg.DefaultDepotID)
	assert.Equal(t, 5000, cfg.MaxOrders)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "routes.solved", cfg.RedisChannel)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEFAULT_DEPOT_ID", "la")
	t.Setenv("DEPOT_LAT", "34.0522")
	t.Setenv("DEPOT_LON", "-118.2437")
	t.Setenv("MAX_ORDERS", "0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "la", cfg.DefaultDepot.ID)
	assert.Equal(t, domain.Coordinates{Lat: 34.0522, Lon: -118.2437}, cfg.DefaultDepot.Location)
	assert.Zero(t, cfg.MaxOrders)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string][2]string{
		"non-numeric max orders": {"MAX_ORDERS", "lots"},
		"negative max orders":    {"MAX_ORDERS", "-1"},
		"latitude out of range":  {"DEPOT_LAT", "95"},
		"non-numeric rate":       {"SOLVE_RATE_LIMIT", "fast"},
	}

	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetFallback(t *testing.T) {
	t.Setenv("SOME_KEY", "  ")
	assert.Equal(t, "fallback", Get("SOME_KEY", "fallback"))

	t.Setenv("SOME_KEY", "value")
	assert.Equal(t, "value", Get("SOME_KEY", "fallback"))
}
