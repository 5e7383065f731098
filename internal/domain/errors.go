package domain

import "errors"

var (
	ErrGeocodeNoMatch    = errors.New("geocoder returned no match")
	ErrNoRoutes          = errors.New("no routes fetched")
	ErrInvalidRouteIndex = errors.New("route index out of range")
	ErrNoSelection       = errors.New("no route selected")
	ErrRouteCount        = errors.New("unexpected number of routes")
	ErrEmptyRoute        = errors.New("route has no geometry")
	ErrInvalidMode       = errors.New("invalid display mode")
	ErrSessionNotFound   = errors.New("ride session not found")
	ErrStaleGeneration   = errors.New("route fetch superseded by a newer one")
	ErrUpstream          = errors.New("upstream geo service failed")
)
