package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/usecase/dto"
)

const (
	serviceName    = "森林管理GIS API"
	serviceVersion = "1.0.0"

	healthTimeout = 2 * time.Second
)

// HealthChecker - зависимость, доступность которой отражается в /health
type HealthChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	checks map[string]HealthChecker
	logger *zap.Logger
}

// NewHealthHandler - checks: имя сервиса -> проверка (database, redis)
func NewHealthHandler(checks map[string]HealthChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// Root godoc
// @Summary Имя и версия сервиса
// @Tags Service
// @Produce json
// @Success 200 {object} dto.RootResponse
// @Router / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(dto.RootResponse{
		Message: serviceName,
		Version: serviceVersion,
	})
}

// Health godoc
// @Summary Проверка доступности зависимостей
// @Tags Service
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	resp := dto.HealthResponse{
		Status:   "healthy",
		Services: make(map[string]string, len(h.checks)),
	}
	status := fiber.StatusOK

	for name, check := range h.checks {
		if err := check.Health(ctx); err != nil {
			h.logger.Warn("Health check failed", zap.String("service", name), zap.Error(err))
			resp.Services[name] = "unhealthy"
			resp.Status = "degraded"
			status = fiber.StatusServiceUnavailable
			continue
		}
		resp.Services[name] = "healthy"
	}

	return c.Status(status).JSON(resp)
}
