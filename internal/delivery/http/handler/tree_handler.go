package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

// TreeHandler - обработчик запросов по деревьям и их фото
type TreeHandler struct {
	treeUC  *usecase.TreeUseCase
	photoUC *usecase.PhotoUseCase
	logger  *zap.Logger
}

// NewTreeHandler - создание нового TreeHandler
func NewTreeHandler(treeUC *usecase.TreeUseCase, photoUC *usecase.PhotoUseCase, logger *zap.Logger) *TreeHandler {
	return &TreeHandler{
		treeUC:  treeUC,
		photoUC: photoUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Создание дерева
// @Description Регистрирует дерево. Сервер назначает id, created_at, updated_at и last_check.
// @Tags Trees
// @Accept json
// @Produce json
// @Param request body dto.CreateTreeRequest true "Дерево"
// @Success 200 {object} domain.Tree
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trees [post]
func (h *TreeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTreeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	tree, err := h.treeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tree)
}

// List godoc
// @Summary Список деревьев
// @Tags Trees
// @Produce json
// @Param area_id query string false "Фильтр по участку"
// @Param health query string false "Фильтр по состоянию"
// @Success 200 {array} domain.Tree
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trees [get]
func (h *TreeHandler) List(c *fiber.Ctx) error {
	filter := domain.TreeFilter{
		AreaID: c.Query("area_id"),
		Health: c.Query("health"),
	}

	trees, err := h.treeUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, trees)
}

// Get godoc
// @Summary Дерево по id
// @Tags Trees
// @Produce json
// @Param id path string true "ID дерева"
// @Success 200 {object} domain.Tree
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/trees/{id} [get]
func (h *TreeHandler) Get(c *fiber.Ctx) error {
	tree, err := h.treeUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tree)
}

// Update godoc
// @Summary Частичное обновление дерева
// @Description Меняются только переданные поля. area_id: null снимает привязку к участку.
// @Tags Trees
// @Accept json
// @Produce json
// @Param id path string true "ID дерева"
// @Param request body dto.UpdateTreeRequest true "Изменяемые поля"
// @Success 200 {object} domain.Tree
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/trees/{id} [put]
func (h *TreeHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTreeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	tree, err := h.treeUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tree)
}

// Delete godoc
// @Summary Удаление дерева
// @Tags Trees
// @Produce json
// @Param id path string true "ID дерева"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/trees/{id} [delete]
func (h *TreeHandler) Delete(c *fiber.Ctx) error {
	if err := h.treeUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "Tree deleted successfully")
}

// UploadPhoto godoc
// @Summary Загрузка фото дерева
// @Description Файл сохраняется как {tree_id}_{uuid}.{ext} и доступен по /uploads/{filename}
// @Tags Trees
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "ID дерева"
// @Param file formData file true "Фото"
// @Success 200 {object} domain.Photo
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/trees/{id}/photos [post]
func (h *TreeHandler) UploadPhoto(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, apperrors.ErrMissingFile)
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.logger.Error("Failed to open uploaded file", zap.Error(err))
		return utils.SendError(c, apperrors.ErrStorageError)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		return utils.SendError(c, apperrors.ErrStorageError)
	}

	photo, err := h.photoUC.Upload(c.Context(), c.Params("id"), fileHeader.Filename, content)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, photo)
}
