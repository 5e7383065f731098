package usecase

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
)

// RouteUseCase - загрузка альтернативных маршрутов
type RouteUseCase struct {
	router repository.RoutingRepository
	logger *zap.Logger
}

// NewRouteUseCase - создание нового RouteUseCase
func NewRouteUseCase(router repository.RoutingRepository, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		router: router,
		logger: logger,
	}
}

// FetchRoutes параллельно запрашивает domain.RouteAlternatives маршрутов (индексы 0..N-1)
// и возвращает их в порядке запроса. Ошибка любого запроса отменяет остальные,
// частичный результат не возвращается.
func (uc *RouteUseCase) FetchRoutes(ctx context.Context, from, to domain.Coordinate) ([]domain.Route, error) {
	start := time.Now()
	routes := make([]domain.Route, domain.RouteAlternatives)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < domain.RouteAlternatives; i++ {
		g.Go(func() error {
			route, err := uc.router.GetRoute(gctx, from, to, i)
			if err != nil {
				return fmt.Errorf("alternative %d: %w", i, err)
			}
			if route == nil || len(route.Points) == 0 {
				return fmt.Errorf("alternative %d: %w", i, domain.ErrEmptyRoute)
			}
			route.Index = i
			routes[i] = *route
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		uc.logger.Error("Failed to fetch routes",
			zap.String("from", from.String()),
			zap.String("to", to.String()),
			zap.Error(err))
		return nil, err
	}

	uc.logger.Info("Routes fetched",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int("count", len(routes)),
		zap.Duration("took", time.Since(start)))

	return routes, nil
}
