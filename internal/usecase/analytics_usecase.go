package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

// AnalyticsUseCase отдаёт агрегаты, посчитанные на момент запроса, без кеша
type AnalyticsUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	logger        *zap.Logger
}

// NewAnalyticsUseCase создает новый экземпляр AnalyticsUseCase
func NewAnalyticsUseCase(analyticsRepo repository.AnalyticsRepository, logger *zap.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		analyticsRepo: analyticsRepo,
		logger:        logger,
	}
}

func (uc *AnalyticsUseCase) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	summary, err := uc.analyticsRepo.Summary(ctx)
	if err != nil {
		return nil, storeError("analytics summary", err, nil)
	}
	return summary, nil
}

func (uc *AnalyticsUseCase) SpeciesDistribution(ctx context.Context) ([]domain.SpeciesCount, error) {
	dist, err := uc.analyticsRepo.SpeciesDistribution(ctx)
	if err != nil {
		return nil, storeError("species distribution", err, nil)
	}
	return dist, nil
}
