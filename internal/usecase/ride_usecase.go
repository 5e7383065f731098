package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
	"github.com/ride-booking/internal/pkg/errors"
	"github.com/ride-booking/internal/usecase/dto"
)

// QuoteStreamConfig - публикация подтверждённых оценок для внешнего API бронирования
type QuoteStreamConfig struct {
	Enabled bool
	Stream  string
}

// RideUseCase - сценарий бронирования: точки, маршруты, выбор и оценка
type RideUseCase struct {
	sessions    repository.SessionRepository
	streamRepo  repository.StreamRepository
	locationUC  *LocationUseCase
	routeUC     *RouteUseCase
	strategy    domain.EstimateStrategy
	quoteStream QuoteStreamConfig
	logger      *zap.Logger
}

// NewRideUseCase - создание нового RideUseCase. streamRepo может быть nil.
func NewRideUseCase(
	sessions repository.SessionRepository,
	streamRepo repository.StreamRepository,
	locationUC *LocationUseCase,
	routeUC *RouteUseCase,
	strategy domain.EstimateStrategy,
	quoteStream QuoteStreamConfig,
	logger *zap.Logger,
) *RideUseCase {
	if strategy == nil {
		strategy = domain.PointCountStrategy{}
	}
	if quoteStream.Stream == "" {
		quoteStream.Stream = domain.StreamRideQuoted
	}
	return &RideUseCase{
		sessions:    sessions,
		streamRepo:  streamRepo,
		locationUC:  locationUC,
		routeUC:     routeUC,
		strategy:    strategy,
		quoteStream: quoteStream,
		logger:      logger,
	}
}

// CreateRide создаёт сеанс на позиции устройства или на позиции по умолчанию
func (uc *RideUseCase) CreateRide(ctx context.Context, req dto.CreateRideRequest) (*dto.RideResponse, error) {
	if (req.Lat == nil) != (req.Lon == nil) {
		return nil, errors.ErrInvalidCoordinates
	}

	var device *domain.Coordinate
	if req.Lat != nil {
		device = &domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	}

	location, source := uc.locationUC.ResolveUserLocation(device)
	session := domain.NewRideSession(location, source, time.Now().UTC())

	// Имя места не обязательно, ошибку только логируем
	if name, err := uc.locationUC.DisplayName(ctx, location); err != nil {
		uc.logger.Warn("Could not name user location",
			zap.String("ride_id", session.ID.String()),
			zap.Error(err))
	} else {
		session.UserLocationName = name
	}

	if err := uc.sessions.Create(ctx, session); err != nil {
		uc.logger.Error("Failed to create ride session", zap.Error(err))
		return nil, toAppError(err)
	}

	uc.logger.Info("Ride session created",
		zap.String("ride_id", session.ID.String()),
		zap.String("location_source", string(source)))

	return dto.NewRideResponse(session), nil
}

// GetRide возвращает текущее состояние сеанса
func (uc *RideUseCase) GetRide(ctx context.Context, id uuid.UUID) (*dto.RideResponse, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}
	return dto.NewRideResponse(session), nil
}

// DeleteRide удаляет сеанс
func (uc *RideUseCase) DeleteRide(ctx context.Context, id uuid.UUID) error {
	if err := uc.sessions.Delete(ctx, id); err != nil {
		return toAppError(err)
	}
	uc.logger.Info("Ride session deleted", zap.String("ride_id", id.String()))
	return nil
}

// PlanRide разрешает обе точки, загружает три маршрута и заменяет ими список в сеансе.
// Если пока шла загрузка стартовала загрузка из нового PlanRide, результат отбрасывается.
func (uc *RideUseCase) PlanRide(ctx context.Context, id uuid.UUID, req dto.PlanRideRequest) (*dto.RideResponse, error) {
	session, err := uc.sessions.Get(ctx, id)
	if err != nil {
		return nil, toAppError(err)
	}

	start, destination, err := uc.resolveEndpoints(ctx, session, req)
	if err != nil {
		uc.logger.Error("Failed to resolve ride endpoints",
			zap.String("ride_id", id.String()),
			zap.Error(err))
		return nil, toAppError(err)
	}

	// Поколение берём только после разрешения адресов:
	// запрос с ненайденным адресом не должен отменять уже идущую загрузку
	generation, err := uc.sessions.NextGeneration(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to start route fetch", zap.String("ride_id", id.String()), zap.Error(err))
		return nil, toAppError(err)
	}

	routes, err := uc.routeUC.FetchRoutes(ctx, start.Coordinate, destination.Coordinate)
	if err != nil {
		return nil, toAppError(err)
	}

	updated, err := uc.sessions.UpdateIfGeneration(ctx, id, generation, func(s *domain.RideSession) error {
		if err := s.ApplyRoutes(start, destination, routes); err != nil {
			return err
		}
		s.Generation = generation
		return nil
	})
	if err != nil {
		uc.logger.Warn("Discarding route fetch result",
			zap.String("ride_id", id.String()),
			zap.Uint64("generation", generation),
			zap.Error(err))
		return nil, toAppError(err)
	}

	uc.logger.Info("Ride planned",
		zap.String("ride_id", id.String()),
		zap.Uint64("generation", generation),
		zap.String("start", start.Coordinate.String()),
		zap.String("destination", destination.Coordinate.String()))

	return dto.NewRideResponse(updated), nil
}

// SelectRoute выбирает маршрут и сбрасывает прежнюю оценку
func (uc *RideUseCase) SelectRoute(ctx context.Context, id uuid.UUID, index int) (*dto.RideResponse, error) {
	updated, err := uc.sessions.Update(ctx, id, func(s *domain.RideSession) error {
		return s.SelectRoute(index)
	})
	if err != nil {
		uc.logger.Info("Route selection rejected",
			zap.String("ride_id", id.String()),
			zap.Int("index", index),
			zap.Error(err))
		return nil, toAppError(err)
	}

	return dto.NewRideResponse(updated), nil
}

// ClearSelection возвращает сеанс в состояние "ничего не выбрано"
func (uc *RideUseCase) ClearSelection(ctx context.Context, id uuid.UUID) (*dto.RideResponse, error) {
	updated, err := uc.sessions.Update(ctx, id, func(s *domain.RideSession) error {
		s.ClearSelection()
		return nil
	})
	if err != nil {
		return nil, toAppError(err)
	}

	return dto.NewRideResponse(updated), nil
}

// ConfirmSelection считает оценку для выбранного маршрута и сохраняет её в сеансе
func (uc *RideUseCase) ConfirmSelection(ctx context.Context, id uuid.UUID) (*domain.Estimate, error) {
	var estimate *domain.Estimate
	updated, err := uc.sessions.Update(ctx, id, func(s *domain.RideSession) error {
		est, err := s.ConfirmSelection(uc.strategy)
		if err != nil {
			return err
		}
		estimate = est
		return nil
	})
	if err != nil {
		uc.logger.Info("Estimate rejected", zap.String("ride_id", id.String()), zap.Error(err))
		return nil, toAppError(err)
	}

	uc.logger.Info("Estimate computed",
		zap.String("ride_id", id.String()),
		zap.Int("route_index", estimate.RouteIndex),
		zap.Int("points", estimate.Points),
		zap.Float64("duration_minutes", estimate.DurationMinutes),
		zap.Float64("cost", estimate.Cost))

	uc.publishQuote(ctx, updated, *estimate)

	return estimate, nil
}

func (uc *RideUseCase) resolveEndpoints(
	ctx context.Context,
	session *domain.RideSession,
	req dto.PlanRideRequest,
) (domain.Endpoint, domain.Endpoint, error) {
	start := domain.Endpoint{Coordinate: session.UserLocation, Name: session.UserLocationName}
	var destination domain.Endpoint

	g, gctx := errgroup.WithContext(ctx)
	if req.StartAddress != "" {
		g.Go(func() error {
			result, err := uc.locationUC.ResolveAddress(gctx, req.StartAddress)
			if err != nil {
				return err
			}
			start = domain.Endpoint{Coordinate: result.Coordinate, Name: result.DisplayName}
			return nil
		})
	}
	g.Go(func() error {
		result, err := uc.locationUC.ResolveAddress(gctx, req.DestinationAddress)
		if err != nil {
			return err
		}
		destination = domain.Endpoint{Coordinate: result.Coordinate, Name: result.DisplayName}
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Endpoint{}, domain.Endpoint{}, err
	}
	return start, destination, nil
}

// publishQuote отдаёт оценку внешнему API бронирования. Ошибка не влияет на ответ клиенту.
func (uc *RideUseCase) publishQuote(ctx context.Context, session *domain.RideSession, estimate domain.Estimate) {
	if !uc.quoteStream.Enabled || uc.streamRepo == nil || session.Start == nil || session.Destination == nil {
		return
	}

	event := domain.RideQuotedEvent{
		RideID:          session.ID,
		Start:           *session.Start,
		StartName:       session.StartName,
		Destination:     *session.Destination,
		DestinationName: session.DestinationName,
		Estimate:        estimate,
		QuotedAt:        time.Now().UTC(),
	}

	if err := uc.streamRepo.PublishToStream(ctx, uc.quoteStream.Stream, event); err != nil {
		uc.logger.Error("Failed to publish ride quote",
			zap.String("ride_id", session.ID.String()),
			zap.String("stream", uc.quoteStream.Stream),
			zap.Error(err))
	}
}
