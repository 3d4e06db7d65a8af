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

type VectorLayerUseCase struct {
	layerRepo repository.VectorLayerRepository
	logger    *zap.Logger
}

func NewVectorLayerUseCase(layerRepo repository.VectorLayerRepository, logger *zap.Logger) *VectorLayerUseCase {
	return &VectorLayerUseCase{
		layerRepo: layerRepo,
		logger:    logger,
	}
}

func (uc *VectorLayerUseCase) Create(ctx context.Context, req dto.CreateVectorLayerRequest) (*domain.VectorLayer, error) {
	now := time.Now().UTC()

	layer := &domain.VectorLayer{
		ID:        uuid.NewString(),
		Name:      req.Name,
		LayerType: req.LayerType,
		Color:     req.Color,
		Data:      req.Data,
		Visible:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Visible != nil {
		layer.Visible = *req.Visible
	}

	if err := uc.layerRepo.Create(ctx, layer); err != nil {
		return nil, storeError("create vector layer", err, nil)
	}

	uc.logger.Info("Vector layer created", zap.String("id", layer.ID), zap.String("layer_type", layer.LayerType))
	return layer, nil
}

func (uc *VectorLayerUseCase) List(ctx context.Context) ([]*domain.VectorLayer, error) {
	layers, err := uc.layerRepo.List(ctx)
	if err != nil {
		return nil, storeError("list vector layers", err, nil)
	}
	return layers, nil
}

func (uc *VectorLayerUseCase) Get(ctx context.Context, id string) (*domain.VectorLayer, error) {
	layer, err := uc.layerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get vector layer", err, apperrors.ErrVectorLayerNotFound)
	}
	return layer, nil
}

func (uc *VectorLayerUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.layerRepo.Delete(ctx, id); err != nil {
		return storeError("delete vector layer", err, apperrors.ErrVectorLayerNotFound)
	}
	return nil
}
