package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRoutes(pointCounts ...int) []Route {
	routes := make([]Route, len(pointCounts))
	for i, n := range pointCounts {
		points := make([]Coordinate, n)
		for j := range points {
			points[j] = Coordinate{Lat: 20 + float64(j)*0.01, Lon: 78 + float64(j)*0.01}
		}
		routes[i] = Route{Index: i, Points: points, Destination: Coordinate{Lat: 28.6129, Lon: 77.2295}}
	}
	return routes
}

func TestRouteSet_Replace(t *testing.T) {
	tests := []struct {
		name        string
		routes      []Route
		expectedErr error
	}{
		{name: "three routes", routes: makeRoutes(3, 4, 5)},
		{name: "empty list", routes: []Route{}},
		{name: "one route", routes: makeRoutes(3), expectedErr: ErrRouteCount},
		{name: "two routes", routes: makeRoutes(3, 4), expectedErr: ErrRouteCount},
		{name: "four routes", routes: makeRoutes(1, 1, 1, 1), expectedErr: ErrRouteCount},
		{name: "route without geometry", routes: makeRoutes(3, 0, 5), expectedErr: ErrEmptyRoute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var set RouteSet
			err := set.Replace(tt.routes)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, set.Routes, len(tt.routes))
		})
	}
}

func TestRouteSet_ReplaceResetsSelection(t *testing.T) {
	var set RouteSet
	require.NoError(t, set.Replace(makeRoutes(3, 4, 5)))
	require.NoError(t, set.Select(2))
	require.True(t, set.HasSelection())

	require.NoError(t, set.Replace(makeRoutes(6, 7, 8)))
	assert.False(t, set.HasSelection())
	assert.Nil(t, set.Selected)
}

func TestRouteSet_Select(t *testing.T) {
	t.Run("without routes", func(t *testing.T) {
		var set RouteSet
		assert.ErrorIs(t, set.Select(0), ErrNoRoutes)
	})

	var set RouteSet
	require.NoError(t, set.Replace(makeRoutes(3, 4, 5)))

	for _, idx := range []int{-1, 3, 100} {
		assert.ErrorIs(t, set.Select(idx), ErrInvalidRouteIndex, "index %d", idx)
		assert.False(t, set.HasSelection())
	}

	for _, idx := range []int{0, 1, 2} {
		require.NoError(t, set.Select(idx))
		route, err := set.SelectedRoute()
		require.NoError(t, err)
		assert.Equal(t, idx, route.Index)
	}

	set.ClearSelection()
	_, err := set.SelectedRoute()
	assert.ErrorIs(t, err, ErrNoSelection)
}
