package main

// @title Forest Management GIS API
// @version 1.0.0
// @description Учёт деревьев, рабочих участков, GPS-треков, векторных слоёв и замеров.
// @description
// @description Основные возможности:
// @description - CRUD по деревьям, участкам, трекам, слоям и замерам
// @description - Аналитика по состоянию и породам деревьев
// @description - PDF-отчёты и выгрузка данных в JSON/CSV
// @description - Загрузка фото деревьев

// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/forest-management-gis/docs"
	"github.com/forest-management-gis/internal/config"
	httpDelivery "github.com/forest-management-gis/internal/delivery/http"
	"github.com/forest-management-gis/internal/delivery/http/handler"
	"github.com/forest-management-gis/internal/domain/repository"
	"github.com/forest-management-gis/internal/pkg/filestore"
	"github.com/forest-management-gis/internal/pkg/logger"
	"github.com/forest-management-gis/internal/repository/postgres"
	redisRepo "github.com/forest-management-gis/internal/repository/redis"
	"github.com/forest-management-gis/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level, "forest-api")
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Forest Management API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("upload_dir", cfg.Storage.UploadDir),
		zap.Bool("redis_enabled", cfg.Redis.Enabled),
	)

	// 3. Connect to PostgreSQL (document store)
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	checks := map[string]handler.HealthChecker{"database": db}

	// 4. Redis - только для публикации событий, без него API работает
	var streamRepo repository.StreamRepository
	if cfg.Redis.Enabled {
		redisClient, err := redisRepo.NewClient(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()
		streamRepo = redisRepo.NewStreamRepository(redisClient.Raw(), log)
		checks["redis"] = redisClient
		log.Info("Redis connected, events enabled")
	}

	// 5. Upload directory
	files, err := filestore.NewOS(cfg.Storage.UploadDir, log)
	if err != nil {
		log.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// 6. Initialize Repositories
	store := postgres.NewDocumentStore(db.Pool, log)
	treeRepo := postgres.NewTreeRepository(store, log)
	areaRepo := postgres.NewWorkAreaRepository(store, log)
	trackRepo := postgres.NewGPSTrackRepository(store, log)
	layerRepo := postgres.NewVectorLayerRepository(store, log)
	measurementRepo := postgres.NewMeasurementRepository(store, log)
	analyticsRepo := postgres.NewAnalyticsRepository(store, log)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	var events *usecase.EventPublisher
	if streamRepo != nil {
		events = usecase.NewEventPublisher(streamRepo, log)
	}

	treeUC := usecase.NewTreeUseCase(treeRepo, events, log)
	photoUC := usecase.NewPhotoUseCase(treeRepo, files, events, log)
	areaUC := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, log)
	trackUC := usecase.NewGPSTrackUseCase(trackRepo, log)
	layerUC := usecase.NewVectorLayerUseCase(layerRepo, log)
	measurementUC := usecase.NewMeasurementUseCase(measurementRepo, log)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, log)
	reportUC := usecase.NewReportUseCase(analyticsRepo, treeRepo, areaUC, files, cfg.Report, log)
	exportUC := usecase.NewExportUseCase(treeRepo, trackRepo, areaUC, files, log)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	handlers := httpDelivery.Handlers{
		Health:      handler.NewHealthHandler(checks, log),
		Tree:        handler.NewTreeHandler(treeUC, photoUC, log),
		WorkArea:    handler.NewWorkAreaHandler(areaUC, log),
		GPSTrack:    handler.NewGPSTrackHandler(trackUC, log),
		VectorLayer: handler.NewVectorLayerHandler(layerUC, log),
		Measurement: handler.NewMeasurementHandler(measurementUC, log),
		Analytics:   handler.NewAnalyticsHandler(analyticsUC, log),
		Files:       handler.NewFileHandler(reportUC, exportUC, log),
	}

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(cfg, log, handlers)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
