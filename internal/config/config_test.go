package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_Defaults(t *testing.T) {
	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Geocoder.BaseURL)
	assert.Equal(t, "https://router.project-osrm.org", cfg.Routing.BaseURL)
	assert.Equal(t, "driving", cfg.Routing.Profile)
	assert.Equal(t, 20.5937, cfg.Ride.DefaultLat)
	assert.Equal(t, 78.9629, cfg.Ride.DefaultLon)
	assert.Equal(t, "point_count", cfg.Ride.EstimateStrategy)
	assert.False(t, cfg.Ride.QuoteStreamEnabled)
	assert.Equal(t, time.Hour, cfg.Cache.SessionTTL)
	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	t.Setenv("API_PORT", "9090")
	t.Setenv("ROUTING_BASE_URL", "http://osrm.local:5000/")
	t.Setenv("ESTIMATE_STRATEGY", "haversine")

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "http://osrm.local:5000", cfg.Routing.BaseURL)
	assert.Equal(t, "haversine", cfg.Ride.EstimateStrategy)
}

func TestLoadFile_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "REDIS_HOST=redis\nREDIS_PORT=6380\nQUOTE_STREAM_ENABLED=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.GetRedisAddr())
	assert.True(t, cfg.Ride.QuoteStreamEnabled)
}
