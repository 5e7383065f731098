package nominatim

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ride-booking/internal/config"
	"github.com/ride-booking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig(baseURL string) *config.GeocoderConfig {
	return &config.GeocoderConfig{
		BaseURL:        baseURL,
		UserAgent:      "ride-booking-test/1.0",
		RequestTimeout: 5,
		RatePerSecond:  0, // без ограничения в тестах
		Burst:          1,
		SearchLimit:    3,
	}
}

func TestClient_Search(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "India Gate, Delhi", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "3", r.URL.Query().Get("limit"))
			assert.Equal(t, "ride-booking-test/1.0", r.Header.Get("User-Agent"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"lat":"28.6129","lon":"77.2295","display_name":"India Gate, Kartavya Path, New Delhi"},
				{"lat":"28.61","lon":"77.23","display_name":"India Gate Circle"}
			]`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		results, err := client.Search(context.Background(), "India Gate, Delhi")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.InDelta(t, 28.6129, results[0].Coordinate.Lat, 1e-9)
		assert.InDelta(t, 77.2295, results[0].Coordinate.Lon, 1e-9)
		assert.Equal(t, "India Gate, Kartavya Path, New Delhi", results[0].DisplayName)
	})

	t.Run("no candidates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		results, err := client.Search(context.Background(), "nowhere at all")
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("bad coordinates are skipped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[
				{"lat":"abc","lon":"77.2","display_name":"broken"},
				{"lat":"95.0","lon":"77.2","display_name":"out of range"},
				{"lat":"28.5","lon":"77.1","display_name":"ok"}
			]`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		results, err := client.Search(context.Background(), "delhi")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "ok", results[0].DisplayName)
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`overloaded`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		results, err := client.Search(context.Background(), "delhi")
		assert.Error(t, err)
		assert.Nil(t, results)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.Contains(t, err.Error(), "status 503")
	})

	t.Run("malformed body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		_, err := client.Search(context.Background(), "delhi")
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})

	t.Run("server unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		client := NewNominatimClient(testConfig(url), logger)

		_, err := client.Search(context.Background(), "delhi")
		assert.ErrorIs(t, err, domain.ErrUpstream)
	})
}

func TestClient_Reverse(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/reverse", r.URL.Path)
			assert.Equal(t, "20.5937", r.URL.Query().Get("lat"))
			assert.Equal(t, "78.9629", r.URL.Query().Get("lon"))
			w.Write([]byte(`{"display_name":"Maharashtra, India"}`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		name, err := client.Reverse(context.Background(), domain.Coordinate{Lat: 20.5937, Lon: 78.9629})
		require.NoError(t, err)
		assert.Equal(t, "Maharashtra, India", name)
	})

	t.Run("unable to geocode", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"error":"Unable to geocode"}`))
		}))
		defer server.Close()

		client := NewNominatimClient(testConfig(server.URL), logger)

		name, err := client.Reverse(context.Background(), domain.Coordinate{Lat: 0, Lon: -160})
		assert.ErrorIs(t, err, domain.ErrGeocodeNoMatch)
		assert.Empty(t, name)
	})
}

func TestClient_RateLimiterHonoursContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	cfg := testConfig(server.URL)
	cfg.RatePerSecond = 0.001
	cfg.Burst = 1
	client := NewNominatimClient(cfg, zap.NewNop())

	// Первый запрос расходует burst
	_, err := client.Search(context.Background(), "first")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = client.Search(ctx, "second")
	assert.ErrorIs(t, err, domain.ErrUpstream)
}
