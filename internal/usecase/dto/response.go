package dto

import (
	"time"

	"github.com/forest-management-gis/internal/domain"
)

// RootResponse - ответ корневого эндпоинта
type RootResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}

// HealthResponse - состояние сервиса и его зависимостей
type HealthResponse struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services"`
}

// ExportBundle - полная выгрузка данных
type ExportBundle struct {
	Trees      []*domain.Tree     `json:"trees"`
	WorkAreas  []*domain.WorkArea `json:"work_areas"`
	GPSTracks  []*domain.GPSTrack `json:"gps_tracks"`
	ExportedAt time.Time          `json:"exported_at"`
}

// GeneratedFile - сгенерированный отчёт или выгрузка, сохранённые в директории загрузок
type GeneratedFile struct {
	Filename    string
	Path        string
	ContentType string
	Content     []byte
}
