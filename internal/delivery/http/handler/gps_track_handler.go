package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

type GPSTrackHandler struct {
	trackUC *usecase.GPSTrackUseCase
	logger  *zap.Logger
}

func NewGPSTrackHandler(trackUC *usecase.GPSTrackUseCase, logger *zap.Logger) *GPSTrackHandler {
	return &GPSTrackHandler{
		trackUC: trackUC,
		logger:  logger,
	}
}

// Create godoc
// @Summary Сохранение GPS-трека
// @Description Для track_type=path длина считается по эллипсоиду WGS-84 в метрах
// @Tags GPS tracks
// @Accept json
// @Produce json
// @Param request body dto.CreateGPSTrackRequest true "Трек"
// @Success 200 {object} domain.GPSTrack
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/gps-tracks [post]
func (h *GPSTrackHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateGPSTrackRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	track, err := h.trackUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, track)
}

// List godoc
// @Summary Список GPS-треков
// @Tags GPS tracks
// @Produce json
// @Param track_type query string false "Фильтр по типу трека"
// @Success 200 {array} domain.GPSTrack
// @Router /api/gps-tracks [get]
func (h *GPSTrackHandler) List(c *fiber.Ctx) error {
	tracks, err := h.trackUC.List(c.Context(), domain.GPSTrackFilter{TrackType: c.Query("track_type")})
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, tracks)
}

// Get godoc
// @Summary GPS-трек по id
// @Tags GPS tracks
// @Produce json
// @Param id path string true "ID трека"
// @Success 200 {object} domain.GPSTrack
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/gps-tracks/{id} [get]
func (h *GPSTrackHandler) Get(c *fiber.Ctx) error {
	track, err := h.trackUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, track)
}

// Delete godoc
// @Summary Удаление GPS-трека
// @Tags GPS tracks
// @Produce json
// @Param id path string true "ID трека"
// @Success 200 {object} utils.MessageResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/gps-tracks/{id} [delete]
func (h *GPSTrackHandler) Delete(c *fiber.Ctx) error {
	if err := h.trackUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendMessage(c, "GPS track deleted successfully")
}
