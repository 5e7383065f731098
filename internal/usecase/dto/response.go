package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
	"github.com/ride-booking/internal/domain"
)

// GeocodeResponse - результат прямого геокодирования
type GeocodeResponse struct {
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	DisplayName string  `json:"display_name"`
}

// ReverseGeocodeResponse - результат обратного геокодирования
type ReverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

// RouteSummary - краткие данные о маршруте без геометрии
type RouteSummary struct {
	Index           int     `json:"index"`
	Points          int     `json:"points"`
	DistanceMeters  float64 `json:"distance_m,omitempty"`
	DurationSeconds float64 `json:"duration_s,omitempty"`
}

// RideResponse - состояние сеанса бронирования
type RideResponse struct {
	ID               uuid.UUID          `json:"id"`
	UserLocation     domain.Coordinate  `json:"user_location"`
	UserLocationName string             `json:"user_location_name,omitempty"`
	LocationSource   string             `json:"location_source"`
	Start            *domain.Coordinate `json:"start,omitempty"`
	StartName        string             `json:"start_name,omitempty"`
	Destination      *domain.Coordinate `json:"destination,omitempty"`
	DestinationName  string             `json:"destination_name,omitempty"`
	Routes           []RouteSummary     `json:"routes"`
	SelectedRoute    *int               `json:"selected_route"`
	Estimate         *domain.Estimate   `json:"estimate,omitempty"`
	DisplayMode      string             `json:"display_mode"`
	UpdatedAt        time.Time          `json:"updated_at"`
}

// NewRideResponse конвертирует сеанс в DTO
func NewRideResponse(s *domain.RideSession) *RideResponse {
	routes := make([]RouteSummary, 0, len(s.Routes.Routes))
	for _, r := range s.Routes.Routes {
		routes = append(routes, RouteSummary{
			Index:           r.Index,
			Points:          len(r.Points),
			DistanceMeters:  r.DistanceMeters,
			DurationSeconds: r.DurationSeconds,
		})
	}

	return &RideResponse{
		ID:               s.ID,
		UserLocation:     s.UserLocation,
		UserLocationName: s.UserLocationName,
		LocationSource:   string(s.LocationSource),
		Start:            s.Start,
		StartName:        s.StartName,
		Destination:      s.Destination,
		DestinationName:  s.DestinationName,
		Routes:           routes,
		SelectedRoute:    s.Routes.Selected,
		Estimate:         s.Estimate,
		DisplayMode:      string(s.DisplayMode),
		UpdatedAt:        s.UpdatedAt,
	}
}

// MapViewResponse - всё, что нужно виджету карты для отрисовки
type MapViewResponse struct {
	Center        domain.Coordinate          `json:"center"`
	Zoom          int                        `json:"zoom"`
	DisplayMode   string                     `json:"display_mode"`
	SelectedRoute *int                       `json:"selected_route"`
	Bounds        []float64                  `json:"bounds,omitempty"` // [min_lon, min_lat, max_lon, max_lat]
	Features      *geojson.FeatureCollection `json:"features"`
}
