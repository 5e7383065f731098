package usecase_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/pkg/errors"
	"github.com/ride-booking/internal/usecase"
	"github.com/ride-booking/internal/usecase/dto"
)

var defaultLocation = domain.Coordinate{Lat: 20.5937, Lon: 78.9629}

func TestLocationUseCase_Search(t *testing.T) {
	ctx := context.Background()
	logger := zap.NewNop()

	t.Run("first candidate is used", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewLocationUseCase(geocoder, nil, logger, time.Hour, defaultLocation)

		geocoder.On("Search", ctx, "India Gate, Delhi").Return([]domain.GeocodeResult{
			{Coordinate: domain.Coordinate{Lat: 28.6129, Lon: 77.2295}, DisplayName: "India Gate"},
			{Coordinate: domain.Coordinate{Lat: 28.60, Lon: 77.20}, DisplayName: "Somewhere else"},
		}, nil)

		resp, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "India Gate, Delhi"})
		require.NoError(t, err)
		assert.InDelta(t, 28.6129, resp.Lat, 0.01)
		assert.InDelta(t, 77.2295, resp.Lon, 0.01)
		assert.GreaterOrEqual(t, resp.Lat, -90.0)
		assert.LessOrEqual(t, resp.Lat, 90.0)
		assert.GreaterOrEqual(t, resp.Lon, -180.0)
		assert.LessOrEqual(t, resp.Lon, 180.0)
		assert.Equal(t, "India Gate", resp.DisplayName)
		geocoder.AssertExpectations(t)
	})

	t.Run("no candidates", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewLocationUseCase(geocoder, nil, logger, time.Hour, defaultLocation)

		geocoder.On("Search", ctx, "qwertyuiop").Return([]domain.GeocodeResult{}, nil)

		resp, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "qwertyuiop"})
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errors.ErrGeocodeNoMatch)
	})

	t.Run("network failure is surfaced, not retried", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		uc := usecase.NewLocationUseCase(geocoder, nil, logger, time.Hour, defaultLocation)

		geocoder.On("Search", ctx, "Delhi").
			Return(nil, fmt.Errorf("%w: connection refused", domain.ErrUpstream)).Once()

		_, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "Delhi"})
		assert.ErrorIs(t, err, errors.ErrUpstreamUnavailable)
		geocoder.AssertNumberOfCalls(t, "Search", 1)
	})

	t.Run("cache hit skips geocoder", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewLocationUseCase(geocoder, cache, logger, time.Hour, defaultLocation)

		cached, _ := json.Marshal(domain.GeocodeResult{
			Coordinate:  domain.Coordinate{Lat: 28.6129, Lon: 77.2295},
			DisplayName: "India Gate",
		})
		cache.On("Get", ctx, "geocode:search:india gate, delhi").Return(cached, nil)

		resp, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "  India   Gate, DELHI "})
		require.NoError(t, err)
		assert.Equal(t, "India Gate", resp.DisplayName)
		geocoder.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("cache miss stores result", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewLocationUseCase(geocoder, cache, logger, time.Hour, defaultLocation)

		cache.On("Get", ctx, "geocode:search:connaught place").Return(nil, nil)
		cache.On("Set", ctx, "geocode:search:connaught place", mock.Anything, time.Hour).Return(nil)
		geocoder.On("Search", ctx, "Connaught Place").Return([]domain.GeocodeResult{
			{Coordinate: domain.Coordinate{Lat: 28.6315, Lon: 77.2167}, DisplayName: "Connaught Place"},
		}, nil)

		_, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "Connaught Place"})
		require.NoError(t, err)
		cache.AssertExpectations(t)
	})

	t.Run("corrupt cache entry is evicted", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewLocationUseCase(geocoder, cache, logger, time.Hour, defaultLocation)

		key := "geocode:search:india gate"
		cache.On("Get", ctx, key).Return([]byte("{not json"), nil)
		cache.On("Delete", ctx, key).Return(nil).Once()
		cache.On("Set", ctx, key, mock.Anything, time.Hour).Return(nil)
		geocoder.On("Search", ctx, "India Gate").Return([]domain.GeocodeResult{
			{Coordinate: domain.Coordinate{Lat: 28.6129, Lon: 77.2295}, DisplayName: "India Gate"},
		}, nil)

		resp, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "India Gate"})
		require.NoError(t, err)
		assert.Equal(t, "India Gate", resp.DisplayName)
		cache.AssertExpectations(t)
		geocoder.AssertExpectations(t)
	})

	t.Run("cache failure does not break lookup", func(t *testing.T) {
		geocoder := &MockGeocoderRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewLocationUseCase(geocoder, cache, logger, time.Hour, defaultLocation)

		cache.On("Get", ctx, mock.Anything).Return(nil, fmt.Errorf("redis down"))
		cache.On("Set", ctx, mock.Anything, mock.Anything, mock.Anything).Return(fmt.Errorf("redis down"))
		geocoder.On("Search", ctx, "Mumbai").Return([]domain.GeocodeResult{
			{Coordinate: domain.Coordinate{Lat: 19.0760, Lon: 72.8777}, DisplayName: "Mumbai"},
		}, nil)

		resp, err := uc.Search(ctx, dto.GeocodeSearchRequest{Query: "Mumbai"})
		require.NoError(t, err)
		assert.Equal(t, "Mumbai", resp.DisplayName)
	})
}

func TestLocationUseCase_ReverseGeocode(t *testing.T) {
	ctx := context.Background()
	geocoder := &MockGeocoderRepository{}
	uc := usecase.NewLocationUseCase(geocoder, nil, zap.NewNop(), time.Hour, defaultLocation)

	lat, lon := 28.6129, 77.2295
	geocoder.On("Reverse", ctx, domain.Coordinate{Lat: lat, Lon: lon}).Return("India Gate, New Delhi", nil)

	resp, err := uc.ReverseGeocode(ctx, dto.ReverseGeocodeRequest{Lat: &lat, Lon: &lon})
	require.NoError(t, err)
	assert.Equal(t, "India Gate, New Delhi", resp.DisplayName)

	badLat := 123.0
	_, err = uc.ReverseGeocode(ctx, dto.ReverseGeocodeRequest{Lat: &badLat, Lon: &lon})
	assert.ErrorIs(t, err, errors.ErrInvalidCoordinates)
}

func TestLocationUseCase_ResolveUserLocation(t *testing.T) {
	uc := usecase.NewLocationUseCase(&MockGeocoderRepository{}, nil, zap.NewNop(), time.Hour, defaultLocation)

	tests := []struct {
		name           string
		device         *domain.Coordinate
		expected       domain.Coordinate
		expectedSource domain.LocationSource
	}{
		{
			name:           "no device location",
			device:         nil,
			expected:       defaultLocation,
			expectedSource: domain.LocationSourceDefault,
		},
		{
			name:           "device location",
			device:         &domain.Coordinate{Lat: 12.9716, Lon: 77.5946},
			expected:       domain.Coordinate{Lat: 12.9716, Lon: 77.5946},
			expectedSource: domain.LocationSourceDevice,
		},
		{
			name:           "invalid device location",
			device:         &domain.Coordinate{Lat: 200, Lon: 77.5946},
			expected:       defaultLocation,
			expectedSource: domain.LocationSourceDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, source := uc.ResolveUserLocation(tt.device)
			assert.Equal(t, tt.expected, coord)
			assert.Equal(t, tt.expectedSource, source)
		})
	}
}
