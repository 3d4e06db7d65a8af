package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

type VectorLayerHandler struct {
	layerUC *usecase.VectorLayerUseCase
	logger  *zap.Logger
}

func NewVectorLayerHandler(layerUC *usecase.VectorLayerUseCase, logger *zap.Logger) *VectorLayerHandler {
	return &VectorLayerHandler{
		layerUC: layerUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Создание векторного слоя
// @Tags Vector layers
// @Accept json
// @Produce json
// @Param request body dto.CreateVectorLayerRequest true "Слой"
// @Success 200 {object} domain.VectorLayer
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/vector-layers [post]
func (h *VectorLayerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVectorLayerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	layer, err := h.layerUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, layer)
}

// List godoc
// @Summary Список векторных слоёв
// @Tags Vector layers
// @Produce json
// @Success 200 {array} domain.VectorLayer
// @Router /api/vector-layers [get]
func (h *VectorLayerHandler) List(c *fiber.Ctx) error {
	layers, err := h.layerUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, layers)
}

// Get godoc
// @Summary Векторный слой по id
// @Tags Vector layers
// @Produce json
// @Param id path string true "ID слоя"
// @Success 200 {object} domain.VectorLayer
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/vector-layers/{id} [get]
func (h *VectorLayerHandler) Get(c *fiber.Ctx) error {
	layer, err := h.layerUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, layer)
}

// Delete godoc
// @Summary Удаление векторного слоя
// @Tags Vector layers
// @Produce json
// @Param id path string true "ID слоя"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/vector-layers/{id} [delete]
func (h *VectorLayerHandler) Delete(c *fiber.Ctx) error {
	if err := h.layerUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "Vector layer deleted successfully")
}
