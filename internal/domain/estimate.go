package domain

import (
	"fmt"

	"github.com/ride-booking/internal/pkg/utils"
)

// Коэффициенты упрощённой оценки поездки
const (
	DistancePerPoint = 0.1
	MinutesPerUnit   = 2.0
	CostPerUnit      = 10.0
)

const (
	StrategyPointCount = "point_count"
	StrategyHaversine  = "haversine"
)

// Estimate - грубая оценка времени и стоимости для выбранного маршрута
type Estimate struct {
	RouteIndex      int     `json:"route_index"`
	Points          int     `json:"points"`
	DistanceProxy   float64 `json:"distance_proxy"`
	DurationMinutes float64 `json:"duration_minutes"`
	Cost            float64 `json:"cost"`
	Strategy        string  `json:"strategy"`
}

// EstimateStrategy считает оценку по геометрии маршрута
type EstimateStrategy interface {
	Name() string
	Estimate(route Route) Estimate
}

// PointCountStrategy использует число точек геометрии как замену расстоянию:
// distance = P * 0.1, duration = distance * 2, cost = distance * 10.
type PointCountStrategy struct{}

func (PointCountStrategy) Name() string { return StrategyPointCount }

func (s PointCountStrategy) Estimate(route Route) Estimate {
	points := len(route.Points)
	distance := float64(points) * DistancePerPoint
	return Estimate{
		RouteIndex:      route.Index,
		Points:          points,
		DistanceProxy:   distance,
		DurationMinutes: distance * MinutesPerUnit,
		Cost:            distance * CostPerUnit,
		Strategy:        s.Name(),
	}
}

// HaversineStrategy берёт настоящую длину ломаной в километрах
// с теми же коэффициентами времени и стоимости.
type HaversineStrategy struct{}

func (HaversineStrategy) Name() string { return StrategyHaversine }

func (s HaversineStrategy) Estimate(route Route) Estimate {
	var km float64
	for i := 1; i < len(route.Points); i++ {
		a, b := route.Points[i-1], route.Points[i]
		km += utils.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)
	}
	return Estimate{
		RouteIndex:      route.Index,
		Points:          len(route.Points),
		DistanceProxy:   km,
		DurationMinutes: km * MinutesPerUnit,
		Cost:            km * CostPerUnit,
		Strategy:        s.Name(),
	}
}

// NewEstimateStrategy возвращает стратегию по имени из конфигурации
func NewEstimateStrategy(name string) (EstimateStrategy, error) {
	switch name {
	case "", StrategyPointCount:
		return PointCountStrategy{}, nil
	case StrategyHaversine:
		return HaversineStrategy{}, nil
	default:
		return nil, fmt.Errorf("unknown estimate strategy: %s", name)
	}
}
