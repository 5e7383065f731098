package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
	"github.com/ride-booking/internal/usecase/dto"
)

const (
	zoomCountry = 5
	zoomStreet  = 13

	highlightColor = "#ff7800"
)

// routeColors - цвета кандидатов по индексу
var routeColors = [domain.RouteAlternatives]string{"blue", "green", "red"}

// MapUseCase - модель карты: центр, маркеры, линии маршрутов и режим отображения
type MapUseCase struct {
	sessions repository.SessionRepository
	rideUC   *RideUseCase
	logger   *zap.Logger
}

// NewMapUseCase - создание нового MapUseCase
func NewMapUseCase(sessions repository.SessionRepository, rideUC *RideUseCase, logger *zap.Logger) *MapUseCase {
	return &MapUseCase{
		sessions: sessions,
		rideUC:   rideUC,
		logger:   logger,
	}
}

// GetMapView строит модель карты для сеанса
func (uc *MapUseCase) GetMapView(ctx context.Context, id uuid.UUID) (*dto.MapViewResponse, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}
	return BuildMapView(session), nil
}

// Click обрабатывает клик по линии маршрута: выбирает маршрут и возвращает обновлённую карту
func (uc *MapUseCase) Click(ctx context.Context, id uuid.UUID, routeIndex int) (*dto.MapViewResponse, error) {
	if _, err := uc.rideUC.SelectRoute(ctx, id, routeIndex); err != nil {
		return nil, err
	}

	uc.logger.Debug("Route clicked on map",
		zap.String("ride_id", id.String()),
		zap.Int("route_index", routeIndex))

	return uc.GetMapView(ctx, id)
}

// SetDisplayMode устанавливает режим embedded или fullscreen
func (uc *MapUseCase) SetDisplayMode(ctx context.Context, id uuid.UUID, mode string) (*dto.MapViewResponse, error) {
	updated, err := uc.sessions.Update(ctx, id, func(s *domain.RideSession) error {
		return s.SetDisplayMode(domain.DisplayMode(mode))
	})
	if err != nil {
		return nil, toAppError(err)
	}
	return BuildMapView(updated), nil
}

// ToggleDisplayMode переключает режим отображения
func (uc *MapUseCase) ToggleDisplayMode(ctx context.Context, id uuid.UUID) (*dto.MapViewResponse, error) {
	updated, err := uc.sessions.Update(ctx, id, func(s *domain.RideSession) error {
		s.ToggleDisplayMode()
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}
	return BuildMapView(updated), nil
}

// BuildMapView собирает GeoJSON для виджета карты.
// Без выбора рисуются все кандидаты своими цветами, с выбором - одна подсвеченная линия.
func BuildMapView(session *domain.RideSession) *dto.MapViewResponse {
	fc := geojson.NewFeatureCollection()

	if session.Start != nil {
		fc.Append(markerFeature("start", *session.Start, session.StartName))
	}
	if session.Destination != nil {
		fc.Append(markerFeature("end", *session.Destination, session.DestinationName))
	}

	var bound *orb.Bound
	extend := func(ls orb.LineString) {
		b := ls.Bound()
		if bound == nil {
			bound = &b
			return
		}
		u := bound.Union(b)
		bound = &u
	}

	if selected, err := session.Routes.SelectedRoute(); err == nil {
		ls := toLineString(selected.Points)
		f := geojson.NewFeature(ls)
		f.Properties["kind"] = "route"
		f.Properties["route_index"] = selected.Index
		f.Properties["color"] = highlightColor
		f.Properties["highlighted"] = true
		fc.Append(f)
		extend(ls)
	} else {
		for i, r := range session.Routes.Routes {
			ls := toLineString(r.Points)
			f := geojson.NewFeature(ls)
			f.Properties["kind"] = "route"
			f.Properties["route_index"] = r.Index
			f.Properties["color"] = routeColor(i)
			f.Properties["highlighted"] = false
			fc.Append(f)
			extend(ls)
		}
	}

	zoom := zoomStreet
	if session.LocationSource == domain.LocationSourceDefault {
		zoom = zoomCountry
	}

	view := &dto.MapViewResponse{
		Center:        session.UserLocation,
		Zoom:          zoom,
		DisplayMode:   string(session.DisplayMode),
		SelectedRoute: session.Routes.Selected,
		Features:      fc,
	}
	if bound != nil {
		view.Bounds = []float64{bound.Min.Lon(), bound.Min.Lat(), bound.Max.Lon(), bound.Max.Lat()}
	}
	return view
}

func markerFeature(kind string, c domain.Coordinate, name string) *geojson.Feature {
	f := geojson.NewFeature(orb.Point{c.Lon, c.Lat})
	f.Properties["kind"] = kind
	if name != "" {
		f.Properties["name"] = name
	}
	return f
}

// GeoJSON хранит точки как [lon, lat]
func toLineString(points []domain.Coordinate) orb.LineString {
	ls := make(orb.LineString, 0, len(points))
	for _, p := range points {
		ls = append(ls, orb.Point{p.Lon, p.Lat})
	}
	return ls
}

func routeColor(i int) string {
	if i >= 0 && i < len(routeColors) {
		return routeColors[i]
	}
	return routeColors[len(routeColors)-1]
}
