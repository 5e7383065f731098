package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRideSession_SelectionFlow(t *testing.T) {
	session := NewRideSession(Coordinate{Lat: 20.5937, Lon: 78.9629}, LocationSourceDefault, time.Now())
	assert.Equal(t, DisplayModeEmbedded, session.DisplayMode)

	_, err := session.ConfirmSelection(PointCountStrategy{})
	assert.ErrorIs(t, err, ErrNoSelection)
	assert.ErrorIs(t, session.SelectRoute(0), ErrNoRoutes)

	start := Endpoint{Coordinate: session.UserLocation, Name: "India"}
	dest := Endpoint{Coordinate: Coordinate{Lat: 28.6129, Lon: 77.2295}, Name: "India Gate"}
	require.NoError(t, session.ApplyRoutes(start, dest, makeRoutes(40, 50, 60)))
	require.NotNil(t, session.Destination)
	assert.Equal(t, 28.6129, session.Destination.Lat)

	require.NoError(t, session.SelectRoute(1))
	est, err := session.ConfirmSelection(PointCountStrategy{})
	require.NoError(t, err)
	assert.Equal(t, 50, est.Points)
	assert.InDelta(t, 10.0, est.DurationMinutes, 1e-9)
	assert.InDelta(t, 50.0, est.Cost, 1e-9)
	assert.Same(t, est, session.Estimate)

	// Новый выбор убирает прежнюю оценку
	require.NoError(t, session.SelectRoute(2))
	assert.Nil(t, session.Estimate)

	_, err = session.ConfirmSelection(PointCountStrategy{})
	require.NoError(t, err)

	// Новые маршруты сбрасывают выбор и оценку
	require.NoError(t, session.ApplyRoutes(start, dest, makeRoutes(1, 2, 3)))
	assert.Nil(t, session.Routes.Selected)
	assert.Nil(t, session.Estimate)
}

func TestRideSession_ApplyRoutesRejectsPartialList(t *testing.T) {
	session := NewRideSession(Coordinate{}, LocationSourceDefault, time.Now())
	start := Endpoint{Coordinate: Coordinate{Lat: 1, Lon: 1}}
	dest := Endpoint{Coordinate: Coordinate{Lat: 2, Lon: 2}}

	err := session.ApplyRoutes(start, dest, makeRoutes(4, 5))
	assert.ErrorIs(t, err, ErrRouteCount)
	assert.Nil(t, session.Start)
	assert.Empty(t, session.Routes.Routes)
}

func TestRideSession_DisplayMode(t *testing.T) {
	session := NewRideSession(Coordinate{}, LocationSourceDefault, time.Now())

	assert.Equal(t, DisplayModeFullscreen, session.ToggleDisplayMode())
	assert.Equal(t, DisplayModeEmbedded, session.ToggleDisplayMode())

	require.NoError(t, session.SetDisplayMode(DisplayModeFullscreen))
	assert.Equal(t, DisplayModeFullscreen, session.DisplayMode)

	assert.ErrorIs(t, session.SetDisplayMode("popup"), ErrInvalidMode)
	assert.Equal(t, DisplayModeFullscreen, session.DisplayMode)
}

func TestCoordinate_Valid(t *testing.T) {
	assert.True(t, Coordinate{Lat: 28.6129, Lon: 77.2295}.Valid())
	assert.True(t, Coordinate{Lat: -90, Lon: 180}.Valid())
	assert.False(t, Coordinate{Lat: 90.1, Lon: 0}.Valid())
	assert.False(t, Coordinate{Lat: 0, Lon: -180.5}.Valid())
}
