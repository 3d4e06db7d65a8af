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

// TreeUseCase обрабатывает бизнес-логику для деревьев
type TreeUseCase struct {
	treeRepo repository.TreeRepository
	events   *EventPublisher
	logger   *zap.Logger
}

// NewTreeUseCase создает новый экземпляр TreeUseCase
func NewTreeUseCase(treeRepo repository.TreeRepository, events *EventPublisher, logger *zap.Logger) *TreeUseCase {
	return &TreeUseCase{
		treeRepo: treeRepo,
		events:   events,
		logger:   logger,
	}
}

func (uc *TreeUseCase) Create(ctx context.Context, req dto.CreateTreeRequest) (*domain.Tree, error) {
	now := time.Now().UTC()

	tree := &domain.Tree{
		ID:        uuid.NewString(),
		Species:   req.Species,
		Health:    req.Health,
		Lat:       *req.Lat,
		Lng:       *req.Lng,
		Diameter:  req.Diameter,
		Height:    req.Height,
		Notes:     req.Notes,
		AreaID:    req.AreaID,
		Photos:    []domain.Photo{},
		LastCheck: now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if tree.Health == "" {
		tree.Health = domain.HealthHealthy
	}

	if err := uc.treeRepo.Create(ctx, tree); err != nil {
		return nil, storeError("create tree", err, nil)
	}

	uc.logger.Info("Tree created",
		zap.String("id", tree.ID),
		zap.String("species", tree.Species))
	uc.events.Publish(ctx, domain.EventTreeCreated, tree.ID, domain.EventPayload{})

	return tree, nil
}

func (uc *TreeUseCase) List(ctx context.Context, filter domain.TreeFilter) ([]*domain.Tree, error) {
	trees, err := uc.treeRepo.List(ctx, filter)
	if err != nil {
		return nil, storeError("list trees", err, nil)
	}
	return trees, nil
}

func (uc *TreeUseCase) Get(ctx context.Context, id string) (*domain.Tree, error) {
	tree, err := uc.treeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get tree", err, apperrors.ErrTreeNotFound)
	}
	return tree, nil
}

// Update применяет частичное обновление и перечитывает документ
func (uc *TreeUseCase) Update(ctx context.Context, id string, req dto.UpdateTreeRequest) (*domain.Tree, error) {
	fields := req.Fields()
	fields["updated_at"] = time.Now().UTC()

	if err := uc.treeRepo.Update(ctx, id, fields); err != nil {
		return nil, storeError("update tree", err, apperrors.ErrTreeNotFound)
	}

	return uc.Get(ctx, id)
}

// Delete удаляет дерево. Файлы фото удаляет воркер по событию tree.deleted.
func (uc *TreeUseCase) Delete(ctx context.Context, id string) error {
	tree, err := uc.treeRepo.Delete(ctx, id)
	if err != nil {
		return storeError("delete tree", err, apperrors.ErrTreeNotFound)
	}

	uc.logger.Info("Tree deleted", zap.String("id", id), zap.Int("photos", len(tree.Photos)))
	uc.events.Publish(ctx, domain.EventTreeDeleted, id, domain.EventPayload{PhotoPaths: tree.PhotoPaths()})

	return nil
}
