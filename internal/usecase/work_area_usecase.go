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

// WorkAreaUseCase обрабатывает бизнес-логику для участков.
// tree_count пересчитывается при каждом чтении по деревьям с area_id участка.
type WorkAreaUseCase struct {
	areaRepo repository.WorkAreaRepository
	treeRepo repository.TreeRepository
	logger   *zap.Logger
}

func NewWorkAreaUseCase(
	areaRepo repository.WorkAreaRepository,
	treeRepo repository.TreeRepository,
	logger *zap.Logger,
) *WorkAreaUseCase {
	return &WorkAreaUseCase{
		areaRepo: areaRepo,
		treeRepo: treeRepo,
		logger:   logger,
	}
}

func (uc *WorkAreaUseCase) Create(ctx context.Context, req dto.CreateWorkAreaRequest) (*domain.WorkArea, error) {
	now := time.Now().UTC()

	area := &domain.WorkArea{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Status:      req.Status,
		Boundary:    req.Boundary,
		Description: req.Description,
		LastVisit:   now,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if area.Status == "" {
		area.Status = domain.WorkAreaStatusActive
	}

	if err := uc.areaRepo.Create(ctx, area); err != nil {
		return nil, storeError("create work area", err, nil)
	}

	uc.logger.Info("Work area created", zap.String("id", area.ID), zap.String("name", area.Name))
	return area, nil
}

func (uc *WorkAreaUseCase) List(ctx context.Context) ([]*domain.WorkArea, error) {
	areas, err := uc.areaRepo.List(ctx)
	if err != nil {
		return nil, storeError("list work areas", err, nil)
	}

	for _, area := range areas {
		if err := uc.attachTreeCount(ctx, area); err != nil {
			return nil, err
		}
	}
	return areas, nil
}

func (uc *WorkAreaUseCase) Get(ctx context.Context, id string) (*domain.WorkArea, error) {
	area, err := uc.areaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get work area", err, apperrors.ErrWorkAreaNotFound)
	}

	if err := uc.attachTreeCount(ctx, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (uc *WorkAreaUseCase) Update(ctx context.Context, id string, req dto.UpdateWorkAreaRequest) (*domain.WorkArea, error) {
	fields := req.Fields()
	fields["updated_at"] = time.Now().UTC()

	if err := uc.areaRepo.Update(ctx, id, fields); err != nil {
		return nil, storeError("update work area", err, apperrors.ErrWorkAreaNotFound)
	}

	return uc.Get(ctx, id)
}

// Delete удаляет участок. Деревья с этим area_id остаются как есть.
func (uc *WorkAreaUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.areaRepo.Delete(ctx, id); err != nil {
		return storeError("delete work area", err, apperrors.ErrWorkAreaNotFound)
	}

	uc.logger.Info("Work area deleted", zap.String("id", id))
	return nil
}

func (uc *WorkAreaUseCase) attachTreeCount(ctx context.Context, area *domain.WorkArea) error {
	count, err := uc.treeRepo.CountByArea(ctx, area.ID)
	if err != nil {
		return storeError("count area trees", err, nil)
	}
	area.TreeCount = count
	return nil
}
