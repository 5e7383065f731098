package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ride-booking/internal/domain"
)

// SessionMutator изменяет сеанс внутри транзакции. Ошибка отменяет запись.
type SessionMutator func(session *domain.RideSession) error

// SessionRepository хранит сеансы бронирования
type SessionRepository interface {
	// Create сохраняет новый сеанс
	Create(ctx context.Context, session *domain.RideSession) error

	// Get возвращает сеанс или domain.ErrSessionNotFound
	Get(ctx context.Context, id uuid.UUID) (*domain.RideSession, error)

	// Update читает актуальный сеанс, применяет fn и сохраняет результат атомарно
	Update(ctx context.Context, id uuid.UUID, fn SessionMutator) (*domain.RideSession, error)

	// Delete удаляет сеанс
	Delete(ctx context.Context, id uuid.UUID) error

	// NextGeneration атомарно увеличивает поколение загрузки маршрутов
	NextGeneration(ctx context.Context, id uuid.UUID) (uint64, error)

	// UpdateIfGeneration как Update, но только если текущее поколение всё ещё равно generation.
	// Иначе возвращает domain.ErrStaleGeneration.
	UpdateIfGeneration(ctx context.Context, id uuid.UUID, generation uint64, fn SessionMutator) (*domain.RideSession, error)
}
