package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

type MeasurementHandler struct {
	measurementUC *usecase.MeasurementUseCase
	logger        *zap.Logger
}

func NewMeasurementHandler(measurementUC *usecase.MeasurementUseCase, logger *zap.Logger) *MeasurementHandler {
	return &MeasurementHandler{
		measurementUC: measurementUC,
		logger:        logger,
	}
}

// Create godoc
// @Summary Сохранение замера
// @Description Расстояние считает клиент, сервер хранит его как есть
// @Tags Measurements
// @Accept json
// @Produce json
// @Param request body dto.CreateMeasurementRequest true "Замер"
// @Success 200 {object} domain.Measurement
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/measurements [post]
func (h *MeasurementHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMeasurementRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	m, err := h.measurementUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, m)
}

// List godoc
// @Summary Список замеров
// @Tags Measurements
// @Produce json
// @Success 200 {array} domain.Measurement
// @Router /api/measurements [get]
func (h *MeasurementHandler) List(c *fiber.Ctx) error {
	items, err := h.measurementUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, items)
}

// Get godoc
// @Summary Замер по id
// @Tags Measurements
// @Produce json
// @Param id path string true "ID замера"
// @Success 200 {object} domain.Measurement
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/measurements/{id} [get]
func (h *MeasurementHandler) Get(c *fiber.Ctx) error {
	m, err := h.measurementUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, m)
}

// Delete godoc
// @Summary Удаление замера
// @Tags Measurements
// @Produce json
// @Param id path string true "ID замера"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/measurements/{id} [delete]
func (h *MeasurementHandler) Delete(c *fiber.Ctx) error {
	if err := h.measurementUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "Measurement deleted successfully")
}
