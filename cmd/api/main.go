package main

// @title Ride Booking API
// @version 1.0.0
// @description Сервис бронирования поездки: геокодирование адресов, три альтернативных маршрута,
// @description выбор маршрута на карте и грубая оценка времени и стоимости.
// @description
// @description Основные возможности:
// @description - Геокодирование адреса и обратное геокодирование (Nominatim)
// @description - Загрузка трёх маршрутов параллельно (OSRM)
// @description - Выбор маршрута кликом по линии на карте
// @description - Оценка по числу точек геометрии выбранного маршрута

// @contact.name API Support
// @contact.email support@ride-booking.dev

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/ride-booking/docs"
	"github.com/ride-booking/internal/config"
	httpDelivery "github.com/ride-booking/internal/delivery/http"
	"github.com/ride-booking/internal/delivery/http/handler"
	"github.com/ride-booking/internal/domain"
	"github.com/ride-booking/internal/infrastructure/nominatim"
	"github.com/ride-booking/internal/infrastructure/osrm"
	"github.com/ride-booking/internal/pkg/logger"
	"github.com/ride-booking/internal/repository/cache"
	redisRepo "github.com/ride-booking/internal/repository/redis"
	"github.com/ride-booking/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, cfg.Server.Env)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Ride Booking service")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("geocoder", cfg.Geocoder.BaseURL),
		zap.String("router", cfg.Routing.BaseURL),
		zap.String("estimate_strategy", cfg.Ride.EstimateStrategy),
	)

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// 4. Initialize Repositories
	cacheRepo := cache.NewCacheRepository(redisClient.Client(), log)
	sessionRepo := redisRepo.NewSessionRepository(redisClient.Client(), cfg.Cache.SessionTTL, log)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 5. External geo services
	geocoder := nominatim.NewNominatimClient(&cfg.Geocoder, log)
	router := osrm.NewOSRMClient(&cfg.Routing, log)

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	strategy, err := domain.NewEstimateStrategy(cfg.Ride.EstimateStrategy)
	if err != nil {
		log.Fatal("Invalid estimate strategy", zap.Error(err))
	}

	defaultLocation := domain.Coordinate{Lat: cfg.Ride.DefaultLat, Lon: cfg.Ride.DefaultLon}
	if !defaultLocation.Valid() {
		log.Fatal("Invalid default location", zap.String("location", defaultLocation.String()))
	}

	locationUC := usecase.NewLocationUseCase(
		geocoder,
		cacheRepo,
		log,
		cfg.Cache.GeocodeCacheTTL,
		defaultLocation,
	)

	routeUC := usecase.NewRouteUseCase(router, log)

	rideUC := usecase.NewRideUseCase(
		sessionRepo,
		streamRepo,
		locationUC,
		routeUC,
		strategy,
		usecase.QuoteStreamConfig{
			Enabled: cfg.Ride.QuoteStreamEnabled,
			Stream:  cfg.Ride.QuoteStream,
		},
		log,
	)

	mapUC := usecase.NewMapUseCase(sessionRepo, rideUC, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	locationHandler := handler.NewLocationHandler(locationUC, log)
	rideHandler := handler.NewRideHandler(rideUC, log)
	mapHandler := handler.NewMapHandler(mapUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		redisClient,
		locationHandler,
		rideHandler,
		mapHandler,
	)

	// 9. Start server in goroutine
	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	go func() {
		if err := server.Start(ctx); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	if err := redisClient.Close(); err != nil {
		log.Error("Failed to close Redis", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
