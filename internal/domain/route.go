package domain

import "fmt"

// RouteAlternatives - сколько альтернативных маршрутов запрашивается на одну поездку
const RouteAlternatives = 3

// Route - геометрия одного варианта маршрута
type Route struct {
	Index       int          `json:"index"`
	Points      []Coordinate `json:"points"`
	Destination Coordinate   `json:"destination"`

	// Значения, которые вернул маршрутизатор. В оценку не входят.
	DistanceMeters  float64 `json:"distance_m,omitempty"`
	DurationSeconds float64 `json:"duration_s,omitempty"`
}

// RouteSet - кандидаты и выбранный индекс (nil - ничего не выбрано)
type RouteSet struct {
	Routes   []Route `json:"routes"`
	Selected *int    `json:"selected"`
}

// Replace заменяет список целиком и сбрасывает выбор.
// Допустим только пустой список или ровно RouteAlternatives маршрутов с непустой геометрией.
func (s *RouteSet) Replace(routes []Route) error {
	if len(routes) != 0 && len(routes) != RouteAlternatives {
		return fmt.Errorf("%w: got %d, want %d", ErrRouteCount, len(routes), RouteAlternatives)
	}
	for i, r := range routes {
		if len(r.Points) == 0 {
			return fmt.Errorf("%w: index %d", ErrEmptyRoute, i)
		}
	}

	s.Routes = routes
	s.Selected = nil
	return nil
}

// Select выбирает маршрут по индексу
func (s *RouteSet) Select(index int) error {
	if len(s.Routes) == 0 {
		return ErrNoRoutes
	}
	if index < 0 || index >= len(s.Routes) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidRouteIndex, index, len(s.Routes))
	}

	s.Selected = &index
	return nil
}

func (s *RouteSet) ClearSelection() {
	s.Selected = nil
}

// SelectedRoute возвращает выбранный маршрут
func (s *RouteSet) SelectedRoute() (*Route, error) {
	if s.Selected == nil {
		return nil, ErrNoSelection
	}
	idx := *s.Selected
	if idx < 0 || idx >= len(s.Routes) {
		return nil, ErrInvalidRouteIndex
	}
	return &s.Routes[idx], nil
}

func (s *RouteSet) HasSelection() bool {
	return s.Selected != nil
}
