package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/usecase"
)

var indiaGate = domain.Coordinate{Lat: 28.6129, Lon: 77.2295}

func TestRouteUseCase_FetchRoutes(t *testing.T) {
	ctx := context.Background()

	t.Run("three routes in request order", func(t *testing.T) {
		router := &MockRoutingRepository{}
		uc := usecase.NewRouteUseCase(router, zap.NewNop())

		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, 0).Return(makeRoute(10, indiaGate), nil)
		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, 1).Return(makeRoute(20, indiaGate), nil)
		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, 2).Return(makeRoute(30, indiaGate), nil)

		routes, err := uc.FetchRoutes(ctx, defaultLocation, indiaGate)
		require.NoError(t, err)
		require.Len(t, routes, domain.RouteAlternatives)
		for i, r := range routes {
			assert.Equal(t, i, r.Index)
			assert.Len(t, r.Points, (i+1)*10)
			assert.Equal(t, indiaGate, r.Destination)
		}
		router.AssertExpectations(t)
	})

	t.Run("identical alternatives are not deduplicated", func(t *testing.T) {
		router := &MockRoutingRepository{}
		uc := usecase.NewRouteUseCase(router, zap.NewNop())

		for i := 0; i < domain.RouteAlternatives; i++ {
			router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, i).Return(makeRoute(15, indiaGate), nil)
		}

		routes, err := uc.FetchRoutes(ctx, defaultLocation, indiaGate)
		require.NoError(t, err)
		assert.Len(t, routes, 3)
	})

	t.Run("one failure fails the whole fetch", func(t *testing.T) {
		router := &MockRoutingRepository{}
		uc := usecase.NewRouteUseCase(router, zap.NewNop())

		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, 0).Return(makeRoute(10, indiaGate), nil).Maybe()
		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, 1).
			Return(nil, fmt.Errorf("%w: status 502", domain.ErrUpstream))
		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, 2).Return(makeRoute(30, indiaGate), nil).Maybe()

		routes, err := uc.FetchRoutes(ctx, defaultLocation, indiaGate)
		assert.Nil(t, routes)
		assert.ErrorIs(t, err, domain.ErrUpstream)
		assert.Contains(t, err.Error(), "alternative 1")
	})

	t.Run("empty geometry fails the whole fetch", func(t *testing.T) {
		router := &MockRoutingRepository{}
		uc := usecase.NewRouteUseCase(router, zap.NewNop())

		router.On("GetRoute", mock.Anything, defaultLocation, indiaGate, mock.Anything).
			Return(&domain.Route{}, nil)

		routes, err := uc.FetchRoutes(ctx, defaultLocation, indiaGate)
		assert.Nil(t, routes)
		assert.ErrorIs(t, err, domain.ErrEmptyRoute)
	})
}
