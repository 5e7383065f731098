package repository

import (
	"context"

	"github.com/ride-booking/internal/domain"
)

// RoutingRepository определяет методы внешнего сервиса маршрутизации
type RoutingRepository interface {
	// GetRoute возвращает вариант маршрута с индексом alternative между двумя точками
	GetRoute(ctx context.Context, from, to domain.Coordinate, alternative int) (*domain.Route, error)
}
