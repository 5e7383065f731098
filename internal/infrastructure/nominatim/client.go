package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ride-booking/internal/config"
	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/domain/repository"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	limit      int
	limiter    *rate.Limiter
	logger     *zap.Logger
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// NewNominatimClient создает клиент для Nominatim (OpenStreetMap).
// Публичный сервер допускает не больше 1 запроса в секунду, поэтому запросы идут через лимитер.
func NewNominatimClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = 1
	}
	searchLimit := cfg.SearchLimit
	if searchLimit <= 0 {
		searchLimit = 5
	}

	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		limit:     searchLimit,
		limiter:   rate.NewLimiter(limit, burst),
		logger:    logger,
	}
}

// Search выполняет прямое геокодирование. Кандидаты с некорректными координатами пропускаются.
func (c *client) Search(ctx context.Context, query string) ([]domain.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(c.limit))

	var raw []searchResult
	if err := c.get(ctx, "/search", params, &raw); err != nil {
		return nil, err
	}

	results := make([]domain.GeocodeResult, 0, len(raw))
	for _, r := range raw {
		coord, err := parseCoordinate(r.Lat, r.Lon)
		if err != nil {
			c.logger.Warn("Skipping Nominatim candidate with bad coordinates",
				zap.String("lat", r.Lat),
				zap.String("lon", r.Lon),
				zap.Error(err))
			continue
		}
		results = append(results, domain.GeocodeResult{
			Coordinate:  coord,
			DisplayName: r.DisplayName,
		})
	}

	c.logger.Debug("Nominatim search successful",
		zap.String("query", query),
		zap.Int("candidates", len(results)))

	return results, nil
}

// Reverse возвращает display_name для координаты
func (c *client) Reverse(ctx context.Context, coord domain.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(coord.Lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(coord.Lon, 'f', -1, 64))
	params.Set("format", "json")

	var raw reverseResult
	if err := c.get(ctx, "/reverse", params, &raw); err != nil {
		return "", err
	}

	// На точку без адреса Nominatim отвечает 200 с полем error
	if raw.Error != "" || raw.DisplayName == "" {
		c.logger.Debug("Nominatim reverse returned no address",
			zap.String("coordinate", coord.String()),
			zap.String("error", raw.Error))
		return "", fmt.Errorf("%w: %s", domain.ErrGeocodeNoMatch, coord)
	}

	return raw.DisplayName, nil
}

func (c *client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %w", domain.ErrUpstream, err)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	c.logger.Debug("Calling Nominatim API", zap.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("%w: failed to execute request: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return fmt.Errorf("%w: nominatim API error: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return fmt.Errorf("%w: failed to decode response: %w", domain.ErrUpstream, err)
	}

	return nil
}

func parseCoordinate(lat, lon string) (domain.Coordinate, error) {
	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse lat: %w", err)
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse lon: %w", err)
	}

	coord := domain.Coordinate{Lat: latF, Lon: lonF}
	if !coord.Valid() {
		return domain.Coordinate{}, fmt.Errorf("coordinate out of range: %s", coord)
	}
	return coord, nil
}
