package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ride-booking/internal/pkg/utils"
	"github.com/ride-booking/internal/pkg/validator"
	"github.com/ride-booking/internal/usecase"
	"github.com/ride-booking/internal/usecase/dto"
)

// LocationHandler - обработчик для геокодирования
type LocationHandler struct {
	locationUC *usecase.LocationUseCase
	logger     *zap.Logger
}

// NewLocationHandler - создание нового LocationHandler
func NewLocationHandler(locationUC *usecase.LocationUseCase, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{
		locationUC: locationUC,
		logger:     logger,
	}
}

// Search godoc
// @Summary Геокодирование адреса
// @Description Разрешает адрес в координаты. Используется первый кандидат геокодера.
// @Tags Geocode
// @Produce json
// @Param q query string true "Адрес (минимум 2 символа)"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "GEOCODE_NO_MATCH"
// @Failure 502 {object} utils.ErrorResponse "UPSTREAM_UNAVAILABLE"
// @Router /api/v1/geocode/search [get]
func (h *LocationHandler) Search(c *fiber.Ctx) error {
	req := dto.GeocodeSearchRequest{Query: c.Query("q")}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.Search(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// ReverseGeocode godoc
// @Summary Обратное геокодирование
// @Description Возвращает название места по координатам
// @Tags Geocode
// @Accept json
// @Produce json
// @Param request body dto.ReverseGeocodeRequest true "Координаты точки"
// @Success 200 {object} utils.SuccessResponse{data=dto.ReverseGeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse "GEOCODE_NO_MATCH"
// @Failure 502 {object} utils.ErrorResponse "UPSTREAM_UNAVAILABLE"
// @Router /api/v1/geocode/reverse [post]
func (h *LocationHandler) ReverseGeocode(c *fiber.Ctx) error {
	var req dto.ReverseGeocodeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.locationUC.ReverseGeocode(c.UserContext(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
