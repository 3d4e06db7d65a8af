package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

// WorkAreaHandler - обработчик запросов по рабочим участкам
type WorkAreaHandler struct {
	areaUC *usecase.WorkAreaUseCase
	logger *zap.Logger
}

func NewWorkAreaHandler(areaUC *usecase.WorkAreaUseCase, logger *zap.Logger) *WorkAreaHandler {
	return &WorkAreaHandler{
		areaUC: areaUC,
		logger: logger,
	}
}

// Create godoc
// @Summary Создание участка
// @Tags Work areas
// @Accept json
// @Produce json
// @Param request body dto.CreateWorkAreaRequest true "Участок"
// @Success 200 {object} domain.WorkArea
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/work-areas [post]
func (h *WorkAreaHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkAreaRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	area, err := h.areaUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, area)
}

// List godoc
// @Summary Список участков
// @Description tree_count считается по деревьям на момент запроса
// @Tags Work areas
// @Produce json
// @Success 200 {array} domain.WorkArea
// @Router /api/work-areas [get]
func (h *WorkAreaHandler) List(c *fiber.Ctx) error {
	areas, err := h.areaUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, areas)
}

// Get godoc
// @Summary Участок по id
// @Tags Work areas
// @Produce json
// @Param id path string true "ID участка"
// @Success 200 {object} domain.WorkArea
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/work-areas/{id} [get]
func (h *WorkAreaHandler) Get(c *fiber.Ctx) error {
	area, err := h.areaUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, area)
}

// Update godoc
// @Summary Частичное обновление участка
// @Tags Work areas
// @Accept json
// @Produce json
// @Param id path string true "ID участка"
// @Param request body dto.UpdateWorkAreaRequest true "Изменяемые поля"
// @Success 200 {object} domain.WorkArea
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/work-areas/{id} [put]
func (h *WorkAreaHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateWorkAreaRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	area, err := h.areaUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, area)
}

// Delete godoc
// @Summary Удаление участка
// @Tags Work areas
// @Produce json
// @Param id path string true "ID участка"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/work-areas/{id} [delete]
func (h *WorkAreaHandler) Delete(c *fiber.Ctx) error {
	if err := h.areaUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "Work area deleted successfully")
}
