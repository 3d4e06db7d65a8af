package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/usecase/dto"
)

// MeasurementUseCase хранит замеры как есть: distance присылает клиент и не пересчитывается
type MeasurementUseCase struct {
	measurementRepo repository.MeasurementRepository
	logger          *zap.Logger
}

func NewMeasurementUseCase(measurementRepo repository.MeasurementRepository, logger *zap.Logger) *MeasurementUseCase {
	return &MeasurementUseCase{
		measurementRepo: measurementRepo,
		logger:          logger,
	}
}

func (uc *MeasurementUseCase) Create(ctx context.Context, req dto.CreateMeasurementRequest) (*domain.Measurement, error) {
	now := time.Now().UTC()

	m := &domain.Measurement{
		ID:              uuid.NewString(),
		StartPoint:      req.StartPoint,
		EndPoint:        req.EndPoint,
		Distance:        *req.Distance,
		MeasurementType: req.MeasurementType,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if m.MeasurementType == "" {
		m.MeasurementType = domain.MeasurementTypeDistance
	}

	if err := uc.measurementRepo.Create(ctx, m); err != nil {
		return nil, storeError("create measurement", err, nil)
	}
	return m, nil
}

func (uc *MeasurementUseCase) List(ctx context.Context) ([]*domain.Measurement, error) {
	items, err := uc.measurementRepo.List(ctx)
	if err != nil {
		return nil, storeError("list measurements", err, nil)
	}
	return items, nil
}

func (uc *MeasurementUseCase) Get(ctx context.Context, id string) (*domain.Measurement, error) {
	m, err := uc.measurementRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get measurement", err, apperrors.ErrMeasurementNotFound)
	}
	return m, nil
}

func (uc *MeasurementUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.measurementRepo.Delete(ctx, id); err != nil {
		return storeError("delete measurement", err, apperrors.ErrMeasurementNotFound)
	}
	return nil
}
