package http

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/config"
	"github.com/forest-management-gis/internal/delivery/http/handler"
	"github.com/forest-management-gis/internal/delivery/http/middleware"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/utils"
)

// максимальный размер тела запроса (загрузка фото)
const bodyLimit = 32 * 1024 * 1024

// Handlers - набор обработчиков, которые монтирует сервер
type Handlers struct {
	Health      *handler.HealthHandler
	Tree        *handler.TreeHandler
	WorkArea    *handler.WorkAreaHandler
	GPSTrack    *handler.GPSTrackHandler
	VectorLayer *handler.VectorLayerHandler
	Measurement *handler.MeasurementHandler
	Analytics   *handler.AnalyticsHandler
	Files       *handler.FileHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	handlers Handlers
}

// NewServer - создание нового HTTP сервера
func NewServer(cfg *config.Config, logger *zap.Logger, handlers Handlers) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Forest Management GIS",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    bodyLimit,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		handlers: handlers,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// App - доступ к fiber.App (тесты через app.Test)
func (s *Server) App() *fiber.App {
	return s.app
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Metrics())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	h := s.handlers

	s.app.Get("/", h.Health.Root)
	s.app.Get("/health", h.Health.Health)
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Фото, отчёты и выгрузки
	s.app.Static("/uploads", s.config.Storage.UploadDir)

	api := s.app.Group("/api")

	// Trees
	api.Post("/trees", h.Tree.Create)
	api.Get("/trees", h.Tree.List)
	api.Get("/trees/:id", h.Tree.Get)
	api.Put("/trees/:id", h.Tree.Update)
	api.Delete("/trees/:id", h.Tree.Delete)
	api.Post("/trees/:id/photos", h.Tree.UploadPhoto)

	// Work areas
	api.Post("/work-areas", h.WorkArea.Create)
	api.Get("/work-areas", h.WorkArea.List)
	api.Get("/work-areas/:id", h.WorkArea.Get)
	api.Put("/work-areas/:id", h.WorkArea.Update)
	api.Delete("/work-areas/:id", h.WorkArea.Delete)

	// GPS tracks
	api.Post("/gps-tracks", h.GPSTrack.Create)
	api.Get("/gps-tracks", h.GPSTrack.List)
	api.Get("/gps-tracks/:id", h.GPSTrack.Get)
	api.Delete("/gps-tracks/:id", h.GPSTrack.Delete)

	// Vector layers
	api.Post("/vector-layers", h.VectorLayer.Create)
	api.Get("/vector-layers", h.VectorLayer.List)
	api.Get("/vector-layers/:id", h.VectorLayer.Get)
	api.Delete("/vector-layers/:id", h.VectorLayer.Delete)

	// Measurements
	api.Post("/measurements", h.Measurement.Create)
	api.Get("/measurements", h.Measurement.List)
	api.Get("/measurements/:id", h.Measurement.Get)
	api.Delete("/measurements/:id", h.Measurement.Delete)

	// Analytics
	api.Get("/analytics/summary", h.Analytics.Summary)
	api.Get("/analytics/species-distribution", h.Analytics.SpeciesDistribution)

	// Reports & export
	api.Get("/reports/generate/:report_type", h.Files.GenerateReport)
	api.Get("/export/:format", h.Files.Export)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки fiber (нет маршрута, лимит тела, паника) в общем формате
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			switch fe.Code {
			case fiber.StatusNotFound:
				return utils.SendError(c, apperrors.ErrRouteNotFound)
			case fiber.StatusMethodNotAllowed:
				return utils.SendError(c, apperrors.New("METHOD_NOT_ALLOWED", fe.Message, fe.Code))
			}
			if fe.Code < fiber.StatusInternalServerError {
				return utils.SendError(c, apperrors.New(apperrors.CodeInvalidRequest, fe.Message, fe.Code))
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)

		return utils.SendError(c, apperrors.ErrInternalServer)
	}
}
