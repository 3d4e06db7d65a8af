package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

type analyticsRepository struct {
	store  *DocumentStore
	logger *zap.Logger
}

// NewAnalyticsRepository создает новый экземпляр analytics repository
func NewAnalyticsRepository(store *DocumentStore, logger *zap.Logger) repository.AnalyticsRepository {
	return &analyticsRepository{
		store:  store,
		logger: logger,
	}
}

// Summary считает документы по коллекциям. Каждый счётчик - отдельный запрос,
// общего снимка между ними нет.
func (r *analyticsRepository) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	summary := &domain.AnalyticsSummary{}
	steps := []countStep{
		{domain.CollectionTrees, nil, &summary.TotalTrees},
		{domain.CollectionTrees, domain.Fields{"health": domain.HealthHealthy}, &summary.HealthyTrees},
		{domain.CollectionTrees, domain.Fields{"health": domain.HealthWarning}, &summary.WarningTrees},
		{domain.CollectionTrees, domain.Fields{"health": domain.HealthCritical}, &summary.CriticalTrees},
		{domain.CollectionWorkAreas, nil, &summary.TotalAreas},
		{domain.CollectionGPSTracks, nil, &summary.TotalTracks},
		{domain.CollectionMeasurements, nil, &summary.TotalMeasurements},
	}

	for _, step := range steps {
		count, err := r.store.Count(ctx, step.coll, step.filter)
		if err != nil {
			r.logger.Error("failed to count documents",
				zap.String("collection", step.coll.String()),
				zap.Error(err))
			return nil, fmt.Errorf("count %s: %w", step.coll, err)
		}
		*step.dst = count
	}

	return summary, nil
}

// SpeciesDistribution группирует деревья по species без нормализации
func (r *analyticsRepository) SpeciesDistribution(ctx context.Context) ([]domain.SpeciesCount, error) {
	groups, err := r.store.GroupCount(ctx, domain.CollectionTrees, "species")
	if err != nil {
		r.logger.Error("failed to group trees by species", zap.Error(err))
		return nil, fmt.Errorf("species distribution: %w", err)
	}

	result := make([]domain.SpeciesCount, 0, len(groups))
	for _, g := range groups {
		result = append(result, domain.SpeciesCount{Species: g.Value, Count: g.Count})
	}
	return result, nil
}

type countStep struct {
	coll   domain.Collection
	filter domain.Fields
	dst    *int64
}
