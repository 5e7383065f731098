package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/pkg/utils"
	"github.com/ride-booking/internal/pkg/validator"
	"github.com/ride-booking/internal/usecase"
	"github.com/ride-booking/internal/usecase/dto"
)

// RideHandler - обработчик сеансов бронирования
type RideHandler struct {
	rideUC *usecase.RideUseCase
	logger *zap.Logger
}

// NewRideHandler - создание нового RideHandler
func NewRideHandler(rideUC *usecase.RideUseCase, logger *zap.Logger) *RideHandler {
	return &RideHandler{
		rideUC: rideUC,
		logger: logger,
	}
}

// CreateRide godoc
// @Summary Новый сеанс бронирования
// @Description Создаёт сеанс на позиции устройства. Без координат используется позиция по умолчанию (центр Индии).
// @Tags Rides
// @Accept json
// @Produce json
// @Param request body dto.CreateRideRequest false "Позиция устройства"
// @Success 201 {object} utils.SuccessResponse{data=dto.RideResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/rides [post]
func (h *RideHandler) CreateRide(c *fiber.Ctx) error {
	var req dto.CreateRideRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rideUC.CreateRide(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	c.Status(fiber.StatusCreated)
	return utils.SendSuccess(c, result, nil)
}

// GetRide godoc
// @Summary Состояние сеанса
// @Tags Rides
// @Produce json
// @Param id path string true "ID сеанса"
// @Success 200 {object} utils.SuccessResponse{data=dto.RideResponse}
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Router /api/v1/rides/{id} [get]
func (h *RideHandler) GetRide(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rideUC.GetRide(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// DeleteRide godoc
// @Summary Удаление сеанса
// @Tags Rides
// @Param id path string true "ID сеанса"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Router /api/v1/rides/{id} [delete]
func (h *RideHandler) DeleteRide(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.rideUC.DeleteRide(c.UserContext(), id); err != nil {
		return utils.SendError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PlanRide godoc
// @Summary Загрузка трёх маршрутов
// @Description Геокодирует адреса и параллельно загружает три альтернативных маршрута.
// @Description Новые маршруты заменяют прежние, выбор и оценка сбрасываются.
// @Description Если за время загрузки был запущен новый запрос, результат отбрасывается (409 STALE_ROUTE_FETCH).
// @Tags Rides
// @Accept json
// @Produce json
// @Param id path string true "ID сеанса"
// @Param request body dto.PlanRideRequest true "Адреса начала и назначения"
// @Success 200 {object} utils.SuccessResponse{data=dto.RideResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND, GEOCODE_NO_MATCH"
// @Failure 409 {object} utils.ErrorResponse "STALE_ROUTE_FETCH"
// @Failure 502 {object} utils.ErrorResponse "UPSTREAM_UNAVAILABLE"
// @Router /api/v1/rides/{id}/routes [post]
func (h *RideHandler) PlanRide(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.PlanRideRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rideUC.PlanRide(c.UserContext(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{Total: len(result.Routes)})
}

// SelectRoute godoc
// @Summary Выбор маршрута
// @Description Выбирает маршрут по индексу 0..2. Прежняя оценка сбрасывается.
// @Tags Rides
// @Accept json
// @Produce json
// @Param id path string true "ID сеанса"
// @Param request body dto.SelectRouteRequest true "Индекс маршрута"
// @Success 200 {object} utils.SuccessResponse{data=dto.RideResponse}
// @Failure 400 {object} utils.ErrorResponse "INVALID_ROUTE_INDEX"
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Failure 409 {object} utils.ErrorResponse "NO_ROUTES"
// @Router /api/v1/rides/{id}/selection [put]
func (h *RideHandler) SelectRoute(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.SelectRouteRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rideUC.SelectRoute(c.UserContext(), id, *req.Index)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ClearSelection godoc
// @Summary Сброс выбора маршрута
// @Tags Rides
// @Produce json
// @Param id path string true "ID сеанса"
// @Success 200 {object} utils.SuccessResponse{data=dto.RideResponse}
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Router /api/v1/rides/{id}/selection [delete]
func (h *RideHandler) ClearSelection(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rideUC.ClearSelection(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ConfirmSelection godoc
// @Summary Оценка времени и стоимости
// @Description Считает оценку для выбранного маршрута по числу точек геометрии:
// @Description duration = P * 0.1 * 2 минут, cost = P * 0.1 * 10.
// @Tags Rides
// @Produce json
// @Param id path string true "ID сеанса"
// @Success 200 {object} utils.SuccessResponse{data=domain.Estimate}
// @Failure 404 {object} utils.ErrorResponse "RIDE_NOT_FOUND"
// @Failure 409 {object} utils.ErrorResponse "NO_SELECTION"
// @Router /api/v1/rides/{id}/estimate [post]
func (h *RideHandler) ConfirmSelection(c *fiber.Ctx) error {
	id, err := rideID(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.rideUC.ConfirmSelection(c.UserContext(), id)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
