package usecase

import (
	"context"
	stderrors "errors"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/pkg/errors"
)

// toAppError переводит доменные ошибки в ошибки API.
// Неизвестные ошибки возвращаются как есть и отдаются клиенту как 500.
func toAppError(err error) error {
	var appErr *errors.AppError
	switch {
	case err == nil:
		return nil
	case stderrors.As(err, &appErr):
		return appErr
	case stderrors.Is(err, domain.ErrSessionNotFound):
		return errors.ErrRideNotFound
	case stderrors.Is(err, domain.ErrGeocodeNoMatch):
		return errors.ErrGeocodeNoMatch
	case stderrors.Is(err, domain.ErrNoRoutes):
		return errors.ErrNoRoutes
	case stderrors.Is(err, domain.ErrInvalidRouteIndex):
		return errors.ErrInvalidRouteIndex
	case stderrors.Is(err, domain.ErrNoSelection):
		return errors.ErrNoSelection
	case stderrors.Is(err, domain.ErrStaleGeneration):
		return errors.ErrStaleRouteFetch
	case stderrors.Is(err, domain.ErrInvalidMode):
		return errors.ErrInvalidDisplayMode
	case stderrors.Is(err, domain.ErrUpstream),
		stderrors.Is(err, domain.ErrEmptyRoute),
		stderrors.Is(err, domain.ErrRouteCount),
		stderrors.Is(err, context.DeadlineExceeded):
		return errors.ErrUpstreamUnavailable
	}
	return err
}
