package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase"
)

// AnalyticsHandler обрабатывает запросы агрегированной статистики
type AnalyticsHandler struct {
	analyticsUC *usecase.AnalyticsUseCase
	logger      *zap.Logger
}

// NewAnalyticsHandler создает новый экземпляр AnalyticsHandler
func NewAnalyticsHandler(analyticsUC *usecase.AnalyticsUseCase, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUC: analyticsUC,
		logger:      logger,
	}
}

// Summary godoc
// @Summary Сводная статистика
// @Description Количество деревьев по состоянию, участков, треков и замеров на момент запроса
// @Tags Analytics
// @Produce json
// @Success 200 {object} domain.AnalyticsSummary
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/analytics/summary [get]
func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	h.logger.Debug("Handling analytics summary request")

	summary, err := h.analyticsUC.Summary(c.Context())
	if err != nil {
		h.logger.Error("Failed to get analytics summary", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, summary)
}

// SpeciesDistribution godoc
// @Summary Распределение по породам
// @Description Количество деревьев каждой породы, по убыванию
// @Tags Analytics
// @Produce json
// @Success 200 {array} domain.SpeciesCount
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/analytics/species-distribution [get]
func (h *AnalyticsHandler) SpeciesDistribution(c *fiber.Ctx) error {
	dist, err := h.analyticsUC.SpeciesDistribution(c.Context())
	if err != nil {
		h.logger.Error("Failed to get species distribution", zap.Error(err))
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, dist)
}
