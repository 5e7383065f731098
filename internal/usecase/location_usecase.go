package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
	"github.com/ride-booking/internal/pkg/errors"
	"github.com/ride-booking/internal/usecase/dto"
)

// LocationUseCase - разрешение адресов и позиции пользователя
type LocationUseCase struct {
	geocoder        repository.GeocoderRepository
	cacheRepo       repository.CacheRepository
	logger          *zap.Logger
	cacheTTL        time.Duration
	defaultLocation domain.Coordinate
}

// NewLocationUseCase - создание нового LocationUseCase
func NewLocationUseCase(
	geocoder repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
	defaultLocation domain.Coordinate,
) *LocationUseCase {
	return &LocationUseCase{
		geocoder:        geocoder,
		cacheRepo:       cacheRepo,
		logger:          logger,
		cacheTTL:        cacheTTL,
		defaultLocation: defaultLocation,
	}
}

// Search - прямое геокодирование, используется первый кандидат
func (uc *LocationUseCase) Search(ctx context.Context, req dto.GeocodeSearchRequest) (*dto.GeocodeResponse, error) {
	result, err := uc.ResolveAddress(ctx, req.Query)
	if err != nil {
		return nil, toAppError(err)
	}

	return &dto.GeocodeResponse{
		Lat:         result.Coordinate.Lat,
		Lon:         result.Coordinate.Lon,
		DisplayName: result.DisplayName,
	}, nil
}

// ReverseGeocode - обратное геокодирование координат
func (uc *LocationUseCase) ReverseGeocode(ctx context.Context, req dto.ReverseGeocodeRequest) (*dto.ReverseGeocodeResponse, error) {
	if req.Lat == nil || req.Lon == nil {
		return nil, errors.ErrInvalidCoordinates
	}
	coord := domain.Coordinate{Lat: *req.Lat, Lon: *req.Lon}
	if !coord.Valid() {
		return nil, errors.ErrInvalidCoordinates
	}

	name, err := uc.DisplayName(ctx, coord)
	if err != nil {
		return nil, toAppError(err)
	}

	return &dto.ReverseGeocodeResponse{DisplayName: name}, nil
}

// ResolveAddress возвращает координату первого найденного кандидата.
// Ошибки возвращаются в доменном виде: domain.ErrGeocodeNoMatch или domain.ErrUpstream.
func (uc *LocationUseCase) ResolveAddress(ctx context.Context, query string) (*domain.GeocodeResult, error) {
	normalized := normalizeQuery(query)
	if normalized == "" {
		return nil, fmt.Errorf("%w: empty address", domain.ErrGeocodeNoMatch)
	}

	cacheKey := "geocode:search:" + normalized
	if cached := uc.readCache(ctx, cacheKey); cached != nil {
		var result domain.GeocodeResult
		if err := json.Unmarshal(cached, &result); err == nil && result.Coordinate.Valid() {
			return &result, nil
		}
		uc.logger.Warn("Evicting corrupt geocode cache entry", zap.String("key", cacheKey))
		uc.evictCache(ctx, cacheKey)
	}

	candidates, err := uc.geocoder.Search(ctx, query)
	if err != nil {
		uc.logger.Error("Failed to geocode address", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	if len(candidates) == 0 {
		uc.logger.Info("Geocoder returned no match", zap.String("query", query))
		return nil, fmt.Errorf("%w: %q", domain.ErrGeocodeNoMatch, query)
	}

	result := candidates[0]
	if !result.Coordinate.Valid() {
		uc.logger.Warn("Geocoder returned out-of-range coordinate",
			zap.String("query", query),
			zap.String("coordinate", result.Coordinate.String()))
		return nil, fmt.Errorf("%w: %q", domain.ErrGeocodeNoMatch, query)
	}

	if data, err := json.Marshal(result); err == nil {
		uc.writeCache(ctx, cacheKey, data)
	}

	return &result, nil
}

// DisplayName - обратное геокодирование с кешем
func (uc *LocationUseCase) DisplayName(ctx context.Context, coord domain.Coordinate) (string, error) {
	cacheKey := fmt.Sprintf("geocode:reverse:%.5f,%.5f", coord.Lat, coord.Lon)
	if cached := uc.readCache(ctx, cacheKey); cached != nil {
		return string(cached), nil
	}

	name, err := uc.geocoder.Reverse(ctx, coord)
	if err != nil {
		uc.logger.Error("Failed to reverse geocode",
			zap.String("coordinate", coord.String()),
			zap.Error(err))
		return "", err
	}

	uc.writeCache(ctx, cacheKey, []byte(name))
	return name, nil
}

// ResolveUserLocation возвращает позицию устройства, а если её нет или она некорректна -
// позицию по умолчанию.
func (uc *LocationUseCase) ResolveUserLocation(device *domain.Coordinate) (domain.Coordinate, domain.LocationSource) {
	if device == nil {
		uc.logger.Info("Device location unavailable, using default",
			zap.String("default", uc.defaultLocation.String()))
		return uc.defaultLocation, domain.LocationSourceDefault
	}
	if !device.Valid() {
		uc.logger.Warn("Device location out of range, using default",
			zap.String("device", device.String()))
		return uc.defaultLocation, domain.LocationSourceDefault
	}
	return *device, domain.LocationSourceDevice
}

// Ошибки кеша не должны ломать геокодирование
func (uc *LocationUseCase) readCache(ctx context.Context, key string) []byte {
	if uc.cacheRepo == nil {
		return nil
	}
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("Geocode cache read failed", zap.String("key", key), zap.Error(err))
		return nil
	}
	return data
}

func (uc *LocationUseCase) writeCache(ctx context.Context, key string, data []byte) {
	if uc.cacheRepo == nil || uc.cacheTTL <= 0 {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Geocode cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (uc *LocationUseCase) evictCache(ctx context.Context, key string) {
	if uc.cacheRepo == nil {
		return
	}
	if err := uc.cacheRepo.Delete(ctx, key); err != nil {
		uc.logger.Warn("Geocode cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
