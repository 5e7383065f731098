package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/pkg/utils"
	"github.com/ride-booking/internal/pkg/validator"
	"github.com/ride-booking/internal/usecase"
	"github.com/ride-booking/internal/usecase/dto"
)

// MapHandler - обработчик виджета карты
type MapHandler struct {
	mapUC  *usecase.MapUseCase
	logger *zap.Logger
}

// NewMapHandler - создание нового MapHandler
func NewMapHandler(mapUC *usecase.MapUseCase, logger *zap.Logger) *MapHandler {
	return &MapHandler{
		mapUC:  mapUC,
		logger: logger,
	}
}

// GetMap godoc
// @Summary Модель карты
// @Description Центр, масштаб, маркеры начала и конца, линии маршрутов в GeoJSON.
// @Description Без выбора рисуются все три маршрута (blue, green, red), с выбором только выбранный (#ff7800).
// @Tags Map
// @Produce json
// @Param id path string true "ID сеанса"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Router /api/v1/rides/{id}/map [get]
func (h *MapHandler) GetMap(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.GetMapView(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Click godoc
// @Summary Клик по линии маршрута
// @Description Выбирает маршрут, на линию которого кликнул пользователь, и возвращает обновлённую карту
// @Tags Map
// @Accept json
// @Produce json
// @Param id path string true "ID сеанса"
// @Param request body dto.MapClickRequest true "Индекс линии"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 400 {object} utils.ErrorResponse "INVALID_ROUTE_INDEX"
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Failure 409 {object} utils.ErrorResponse "NO_ROUTES"
// @Router /api/v1/rides/{id}/map/click [post]
func (h *MapHandler) Click(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.MapClickRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.Click(c.UserContext(), id, *req.RouteIndex)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// SetDisplayMode godoc
// @Summary Режим отображения карты
// @Tags Map
// @Accept json
// @Produce json
// @Param id path string true "ID сеанса"
// @Param request body dto.DisplayModeRequest true "embedded или fullscreen"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Router /api/v1/rides/{id}/map/display [put]
func (h *MapHandler) SetDisplayMode(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.DisplayModeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.SetDisplayMode(c.UserContext(), id, req.Mode)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ToggleDisplayMode godoc
// @Summary Переключение embedded / fullscreen
// @Tags Map
// @Produce json
// @Param id path string true "ID сеанса"
// @Success 200 {object} utils.SuccessResponse{data=dto.MapViewResponse}
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Router /api/v1/rides/{id}/map/display/toggle [post]
func (h *MapHandler) ToggleDisplayMode(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.mapUC.ToggleDisplayMode(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
