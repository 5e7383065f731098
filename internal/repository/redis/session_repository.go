package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
	"go.uber.org/zap"
)

// maxTxAttempts - сколько раз повторяем оптимистичную транзакцию при конкурентной записи
const maxTxAttempts = 5

type sessionRepository struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewSessionRepository создает хранилище сеансов в Redis. Каждая запись продлевает TTL.
func NewSessionRepository(client *redis.Client, ttl time.Duration, logger *zap.Logger) repository.SessionRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &sessionRepository{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func sessionKey(id uuid.UUID) string {
	return fmt.Sprintf("ride:session:%s", id)
}

func generationKey(id uuid.UUID) string {
	return fmt.Sprintf("ride:session:%s:gen", id)
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.RideSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKey(session.ID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Failed to create ride session",
			zap.String("ride_id", session.ID.String()),
			zap.Error(err))
		return fmt.Errorf("failed to create session: %w", err)
	}

	r.logger.Debug("Ride session created", zap.String("ride_id", session.ID.String()))
	return nil
}

func (r *sessionRepository) Get(ctx context.Context, id uuid.UUID) (*domain.RideSession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get ride session", zap.String("ride_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return decodeSession(data)
}

func (r *sessionRepository) Update(ctx context.Context, id uuid.UUID, fn repository.SessionMutator) (*domain.RideSession, error) {
	return r.update(ctx, id, nil, fn)
}

func (r *sessionRepository) UpdateIfGeneration(
	ctx context.Context,
	id uuid.UUID,
	generation uint64,
	fn repository.SessionMutator,
) (*domain.RideSession, error) {
	return r.update(ctx, id, &generation, fn)
}

func (r *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := r.client.Del(ctx, sessionKey(id), generationKey(id)).Result()
	if err != nil {
		r.logger.Error("Failed to delete ride session", zap.String("ride_id", id.String()), zap.Error(err))
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if deleted == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *sessionRepository) NextGeneration(ctx context.Context, id uuid.UUID) (uint64, error) {
	exists, err := r.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check session: %w", err)
	}
	if exists == 0 {
		return 0, domain.ErrSessionNotFound
	}

	var incr *redis.IntCmd
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, generationKey(id))
		pipe.Expire(ctx, generationKey(id), r.ttl)
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to bump route generation", zap.String("ride_id", id.String()), zap.Error(err))
		return 0, fmt.Errorf("failed to bump generation: %w", err)
	}

	return uint64(incr.Val()), nil
}

// update - оптимистичная транзакция WATCH/MULTI по ключу сеанса и ключу поколения
func (r *sessionRepository) update(
	ctx context.Context,
	id uuid.UUID,
	generation *uint64,
	fn repository.SessionMutator,
) (*domain.RideSession, error) {
	key := sessionKey(id)
	genKey := generationKey(id)

	var result *domain.RideSession
	txf := func(tx *redis.Tx) error {
		if generation != nil {
			current, err := tx.Get(ctx, genKey).Uint64()
			if err != nil && !errors.Is(err, redis.Nil) {
				return fmt.Errorf("failed to read generation: %w", err)
			}
			if current != *generation {
				return fmt.Errorf("%w: have %d, current %d", domain.ErrStaleGeneration, *generation, current)
			}
		}

		data, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return domain.ErrSessionNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get session: %w", err)
		}

		session, err := decodeSession(data)
		if err != nil {
			return err
		}
		if err := fn(session); err != nil {
			return err
		}
		session.UpdatedAt = time.Now().UTC()

		updated, err := json.Marshal(session)
		if err != nil {
			return fmt.Errorf("marshal session: %w", err)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, r.ttl)
			pipe.Expire(ctx, genKey, r.ttl)
			return nil
		})
		if err != nil {
			return err
		}

		result = session
		return nil
	}

	for attempt := 0; attempt < maxTxAttempts; attempt++ {
		err := r.client.Watch(ctx, txf, key, genKey)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			// Ключ изменился между WATCH и EXEC
			r.logger.Debug("Ride session changed concurrently, retrying",
				zap.String("ride_id", id.String()),
				zap.Int("attempt", attempt+1))
			continue
		}
		return nil, err
	}

	r.logger.Warn("Ride session update gave up after concurrent writes",
		zap.String("ride_id", id.String()))
	return nil, fmt.Errorf("session %s: too many concurrent updates: %w", id, redis.TxFailedErr)
}

func decodeSession(data []byte) (*domain.RideSession, error) {
	var session domain.RideSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	if session.Routes.Routes == nil {
		session.Routes.Routes = []domain.Route{}
	}
	return &session, nil
}
