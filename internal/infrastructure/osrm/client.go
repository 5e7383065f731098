package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ride-booking/internal/config"
	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	profile    string
	logger     *zap.Logger
}

// routeResponse - часть ответа /route/v1 с geometries=geojson
type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Type        string      `json:"type"`
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// NewOSRMClient создает клиент для OSRM route service
func NewOSRMClient(cfg *config.RoutingConfig, logger *zap.Logger) repository.RoutingRepository {
	profile := cfg.Profile
	if profile == "" {
		profile = "driving"
	}

	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		profile: profile,
		logger:  logger,
	}
}

// GetRoute запрашивает маршрут с параметром alternatives=<alternative> и берёт из ответа
// маршрут с этим индексом. Если альтернатив меньше, берётся последний вернувшийся маршрут.
func (c *client) GetRoute(ctx context.Context, from, to domain.Coordinate, alternative int) (*domain.Route, error) {
	if alternative < 0 {
		return nil, fmt.Errorf("alternative index cannot be negative: %d", alternative)
	}

	// OSRM принимает координаты в порядке lon,lat
	url := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson&alternatives=%d",
		c.baseURL,
		c.profile,
		from.Lon, from.Lat,
		to.Lon, to.Lat,
		alternative,
	)

	c.logger.Debug("Calling OSRM route API",
		zap.String("url", url),
		zap.Int("alternative", alternative))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to execute request: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("OSRM API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("%w: osrm API error: status %d, body: %s", domain.ErrUpstream, resp.StatusCode, string(body))
	}

	var routeResp routeResponse
	if err := json.NewDecoder(resp.Body).Decode(&routeResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrUpstream, err)
	}

	if routeResp.Code != "Ok" {
		c.logger.Error("OSRM API returned non-OK code",
			zap.String("code", routeResp.Code),
			zap.String("message", routeResp.Message))
		return nil, fmt.Errorf("%w: osrm API returned code: %s", domain.ErrUpstream, routeResp.Code)
	}

	if len(routeResp.Routes) == 0 {
		return nil, fmt.Errorf("%w: osrm API returned no routes", domain.ErrUpstream)
	}

	picked := alternative
	if picked >= len(routeResp.Routes) {
		picked = len(routeResp.Routes) - 1
	}
	raw := routeResp.Routes[picked]

	points := make([]domain.Coordinate, 0, len(raw.Geometry.Coordinates))
	for _, pair := range raw.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		// [lon, lat] -> (lat, lon)
		points = append(points, domain.Coordinate{Lat: pair[1], Lon: pair[0]})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, domain.ErrEmptyRoute)
	}

	c.logger.Debug("OSRM route API call successful",
		zap.Int("alternative", alternative),
		zap.Int("returned_routes", len(routeResp.Routes)),
		zap.Int("picked", picked),
		zap.Int("points", len(points)))

	return &domain.Route{
		Index:           alternative,
		Points:          points,
		Destination:     to,
		DistanceMeters:  raw.Distance,
		DurationSeconds: raw.Duration,
	}, nil
}
