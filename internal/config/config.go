package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Geocoder  GeocoderConfig
	Routing   RoutingConfig
	Ride      RideConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	Env          string
	AllowOrigins string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	GeocodeCacheTTL time.Duration
	SessionTTL      time.Duration
}

type LogConfig struct {
	Level string
}

// GeocoderConfig - настройки Nominatim
type GeocoderConfig struct {
	BaseURL        string
	UserAgent      string
	RequestTimeout int // seconds
	RatePerSecond  float64
	Burst          int
	SearchLimit    int
}

// RoutingConfig - настройки OSRM
type RoutingConfig struct {
	BaseURL        string
	Profile        string
	RequestTimeout int // seconds
}

type RideConfig struct {
	DefaultLat         float64
	DefaultLon         float64
	EstimateStrategy   string
	QuoteStreamEnabled bool
	QuoteStream        string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load читает .env (если есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает указанный файл конфигурации и переменные окружения.
// Отсутствующий файл не считается ошибкой.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         v.GetString("API_HOST"),
			Port:         v.GetInt("API_PORT"),
			Env:          v.GetString("API_ENV"),
			AllowOrigins: v.GetString("API_ALLOW_ORIGINS"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			GeocodeCacheTTL: time.Duration(v.GetInt("GEOCODE_CACHE_TTL")) * time.Second,
			SessionTTL:      time.Duration(v.GetInt("RIDE_SESSION_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Geocoder: GeocoderConfig{
			BaseURL:        strings.TrimRight(v.GetString("GEOCODER_BASE_URL"), "/"),
			UserAgent:      v.GetString("GEOCODER_USER_AGENT"),
			RequestTimeout: v.GetInt("GEOCODER_REQUEST_TIMEOUT"),
			RatePerSecond:  v.GetFloat64("GEOCODER_RATE_PER_SECOND"),
			Burst:          v.GetInt("GEOCODER_BURST"),
			SearchLimit:    v.GetInt("GEOCODER_SEARCH_LIMIT"),
		},
		Routing: RoutingConfig{
			BaseURL:        strings.TrimRight(v.GetString("ROUTING_BASE_URL"), "/"),
			Profile:        v.GetString("ROUTING_PROFILE"),
			RequestTimeout: v.GetInt("ROUTING_REQUEST_TIMEOUT"),
		},
		Ride: RideConfig{
			DefaultLat:         v.GetFloat64("RIDE_DEFAULT_LAT"),
			DefaultLon:         v.GetFloat64("RIDE_DEFAULT_LON"),
			EstimateStrategy:   v.GetString("ESTIMATE_STRATEGY"),
			QuoteStreamEnabled: v.GetBool("QUOTE_STREAM_ENABLED"),
			QuoteStream:        v.GetString("QUOTE_STREAM"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("API_RATE_LIMIT_RPS"),
			Burst:             v.GetInt("API_RATE_LIMIT_BURST"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("API_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("GEOCODE_CACHE_TTL", 86400)
	v.SetDefault("RIDE_SESSION_TTL", 3600)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	v.SetDefault("GEOCODER_USER_AGENT", "ride-booking/1.0")
	v.SetDefault("GEOCODER_REQUEST_TIMEOUT", 10)
	v.SetDefault("GEOCODER_RATE_PER_SECOND", 1.0)
	v.SetDefault("GEOCODER_BURST", 1)
	v.SetDefault("GEOCODER_SEARCH_LIMIT", 5)

	v.SetDefault("ROUTING_BASE_URL", "https://router.project-osrm.org")
	v.SetDefault("ROUTING_PROFILE", "driving")
	v.SetDefault("ROUTING_REQUEST_TIMEOUT", 15)

	// Центр Индии
	v.SetDefault("RIDE_DEFAULT_LAT", 20.5937)
	v.SetDefault("RIDE_DEFAULT_LON", 78.9629)
	v.SetDefault("ESTIMATE_STRATEGY", "point_count")
	v.SetDefault("QUOTE_STREAM_ENABLED", false)
	v.SetDefault("QUOTE_STREAM", "stream:ride:quoted")

	v.SetDefault("API_RATE_LIMIT_RPS", 10.0)
	v.SetDefault("API_RATE_LIMIT_BURST", 20)
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
