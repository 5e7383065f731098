package errors

import "net/http"

var (
	ErrRideNotFound = New(
		"RIDE_NOT_FOUND",
		"Ride session not found",
		http.StatusNotFound,
	)

	ErrGeocodeNoMatch = New(
		"GEOCODE_NO_MATCH",
		"Address could not be resolved",
		http.StatusNotFound,
	)

	ErrUpstreamUnavailable = New(
		"UPSTREAM_UNAVAILABLE",
		"External geo service is unavailable",
		http.StatusBadGateway,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrNoRoutes = New(
		"NO_ROUTES",
		"No routes fetched for this ride yet",
		http.StatusConflict,
	)

	ErrInvalidRouteIndex = New(
		"INVALID_ROUTE_INDEX",
		"Route index is out of range",
		http.StatusBadRequest,
	)

	ErrNoSelection = New(
		"NO_SELECTION",
		"No route selected",
		http.StatusConflict,
	)

	ErrStaleRouteFetch = New(
		"STALE_ROUTE_FETCH",
		"A newer route request superseded this one",
		http.StatusConflict,
	)

	ErrInvalidDisplayMode = New(
		"INVALID_DISPLAY_MODE",
		"Invalid map display mode",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrTooManyRequests = New(
		"TOO_MANY_REQUESTS",
		"Rate limit exceeded",
		http.StatusTooManyRequests,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
