package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DisplayMode - режим отображения карты в клиенте
type DisplayMode string

const (
	DisplayModeEmbedded   DisplayMode = "embedded"
	DisplayModeFullscreen DisplayMode = "fullscreen"
)

func (m DisplayMode) Valid() bool {
	return m == DisplayModeEmbedded || m == DisplayModeFullscreen
}

// RideSession - состояние одного сеанса бронирования: точки, маршруты, выбор и оценка.
// Хранится во временном хранилище с TTL, поездки не сохраняются.
type RideSession struct {
	ID               uuid.UUID      `json:"id"`
	UserLocation     Coordinate     `json:"user_location"`
	UserLocationName string         `json:"user_location_name,omitempty"`
	LocationSource   LocationSource `json:"location_source"`

	Start           *Coordinate `json:"start,omitempty"`
	StartName       string      `json:"start_name,omitempty"`
	Destination     *Coordinate `json:"destination,omitempty"`
	DestinationName string      `json:"destination_name,omitempty"`

	Routes      RouteSet    `json:"routes"`
	Estimate    *Estimate   `json:"estimate,omitempty"`
	DisplayMode DisplayMode `json:"display_mode"`

	// Generation растёт при каждом запуске загрузки маршрутов
	Generation uint64 `json:"generation"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewRideSession создаёт сеанс с позицией пользователя
func NewRideSession(location Coordinate, source LocationSource, now time.Time) *RideSession {
	return &RideSession{
		ID:             uuid.New(),
		UserLocation:   location,
		LocationSource: source,
		Routes:         RouteSet{Routes: []Route{}},
		DisplayMode:    DisplayModeEmbedded,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// Endpoint - разрешённая точка маршрута
type Endpoint struct {
	Coordinate Coordinate
	Name       string
}

// ApplyRoutes устанавливает новые конечные точки и список маршрутов.
// Выбор и оценка сбрасываются.
func (s *RideSession) ApplyRoutes(start, destination Endpoint, routes []Route) error {
	if err := s.Routes.Replace(routes); err != nil {
		return err
	}

	startCoord := start.Coordinate
	destCoord := destination.Coordinate
	s.Start = &startCoord
	s.StartName = start.Name
	s.Destination = &destCoord
	s.DestinationName = destination.Name
	s.Estimate = nil
	return nil
}

// SelectRoute выбирает маршрут и убирает ранее показанную оценку
func (s *RideSession) SelectRoute(index int) error {
	if err := s.Routes.Select(index); err != nil {
		return err
	}
	s.Estimate = nil
	return nil
}

func (s *RideSession) ClearSelection() {
	s.Routes.ClearSelection()
	s.Estimate = nil
}

// ConfirmSelection считает оценку для выбранного маршрута
func (s *RideSession) ConfirmSelection(strategy EstimateStrategy) (*Estimate, error) {
	route, err := s.Routes.SelectedRoute()
	if err != nil {
		return nil, err
	}

	estimate := strategy.Estimate(*route)
	s.Estimate = &estimate
	return &estimate, nil
}

func (s *RideSession) SetDisplayMode(mode DisplayMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	s.DisplayMode = mode
	return nil
}

// ToggleDisplayMode переключает embedded <-> fullscreen
func (s *RideSession) ToggleDisplayMode() DisplayMode {
	if s.DisplayMode == DisplayModeFullscreen {
		s.DisplayMode = DisplayModeEmbedded
	} else {
		s.DisplayMode = DisplayModeFullscreen
	}
	return s.DisplayMode
}
