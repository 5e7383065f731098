package repository

import (
	"context"

	"github.com/ride-booking/internal/domain"
)

// GeocoderRepository определяет методы внешнего сервиса геокодирования
type GeocoderRepository interface {
	// Search возвращает кандидатов для текстового адреса в порядке релевантности
	Search(ctx context.Context, query string) ([]domain.GeocodeResult, error)

	// Reverse возвращает отображаемое имя для координаты
	Reverse(ctx context.Context, coord domain.Coordinate) (string, error)
}
