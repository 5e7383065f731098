package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberutils "github.com/gofiber/fiber/v2/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/config"
	"github.com/ride-booking/internal/delivery/http/handler"
	"github.com/ride-booking/internal/delivery/http/middleware"
	"github.com/ride-booking/internal/pkg/errors"
	"github.com/ride-booking/internal/pkg/utils"
)

// HealthChecker - проверка зависимостей для /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app     *fiber.App
	config  *config.Config
	logger  *zap.Logger
	health  HealthChecker
	limiter *middleware.IPRateLimiter

	// Handlers
	locationHandler *handler.LocationHandler
	rideHandler     *handler.RideHandler
	mapHandler      *handler.MapHandler
}

// NewServer - создание нового HTTP сервера. health может быть nil.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	health HealthChecker,
	locationHandler *handler.LocationHandler,
	rideHandler *handler.RideHandler,
	mapHandler *handler.MapHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Ride Booking",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		health:          health,
		limiter:         middleware.NewIPRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, logger),
		locationHandler: locationHandler,
		rideHandler:     rideHandler,
		mapHandler:      mapHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check без лимита
	api.Get("/health", s.healthCheck)

	api.Use(s.limiter.RateLimit())

	// Geocode routes
	geocode := api.Group("/geocode")
	geocode.Get("/search", s.locationHandler.Search)
	geocode.Post("/reverse", s.locationHandler.ReverseGeocode)

	// Ride routes
	rides := api.Group("/rides")
	rides.Post("/", s.rideHandler.CreateRide)
	rides.Get("/:id", s.rideHandler.GetRide)
	rides.Delete("/:id", s.rideHandler.DeleteRide)
	rides.Post("/:id/routes", s.rideHandler.PlanRide)
	rides.Put("/:id/selection", s.rideHandler.SelectRoute)
	rides.Delete("/:id/selection", s.rideHandler.ClearSelection)
	rides.Post("/:id/estimate", s.rideHandler.ConfirmSelection)

	// Map routes
	rides.Get("/:id/map", s.mapHandler.GetMap)
	rides.Post("/:id/map/click", s.mapHandler.Click)
	rides.Put("/:id/map/display", s.mapHandler.SetDisplayMode)
	rides.Post("/:id/map/display/toggle", s.mapHandler.ToggleDisplayMode)
}

// healthCheck godoc
// @Summary Проверка состояния
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (s *Server) healthCheck(c *fiber.Ctx) error {
	status := "healthy"
	code := fiber.StatusOK

	if s.health != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := s.health.Health(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.Error(err))
			status = "unhealthy"
			code = fiber.StatusServiceUnavailable
		}
	}

	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"time":   time.Now(),
	})
}

// App - доступ к fiber.App (используется в тестах)
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера. Очистка лимитеров живёт до отмены ctx.
func (s *Server) Start(ctx context.Context) error {
	go s.limiter.RunCleanup(ctx, time.Minute)

	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки, не обработанные хендлерами (404 маршрута, паники, 405)
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", fiberutils.CopyString(c.Path())), zap.Int("status", fe.Code), zap.Error(err))
			}
			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(httpErrorCode(fe.Code), fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error",
			zap.String("path", fiberutils.CopyString(c.Path())),
			zap.Int("status", fiber.StatusInternalServerError),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func httpErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "INVALID_REQUEST"
	}
	if status >= fiber.StatusInternalServerError {
		return "INTERNAL_SERVER_ERROR"
	}
	return "HTTP_ERROR"
}
