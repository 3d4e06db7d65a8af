package repository

import (
	"context"

	"github.com/forest-management-gis/internal/domain"
)

// AnalyticsRepository интерфейс для агрегатов по коллекциям
type AnalyticsRepository interface {
	// Summary считает документы по коллекциям на момент вызова
	Summary(ctx context.Context) (*domain.AnalyticsSummary, error)

	// SpeciesDistribution группирует деревья по species, по убыванию количества
	SpeciesDistribution(ctx context.Context) ([]domain.SpeciesCount, error)
}
