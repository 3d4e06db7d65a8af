package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

type treeRepository struct {
	store  *DocumentStore
	logger *zap.Logger
}

// NewTreeRepository создает новый экземпляр tree repository
func NewTreeRepository(store *DocumentStore, logger *zap.Logger) repository.TreeRepository {
	return &treeRepository{
		store:  store,
		logger: logger,
	}
}

func treeKey(t *domain.Tree) *string { return &t.StoreKey }

func (r *treeRepository) Create(ctx context.Context, tree *domain.Tree) error {
	tree.StoreKey = ""
	key, err := r.store.Insert(ctx, domain.CollectionTrees, tree.ID, tree)
	if err != nil {
		return fmt.Errorf("create tree: %w", err)
	}
	tree.StoreKey = formatKey(key)
	return nil
}

func (r *treeRepository) List(ctx context.Context, filter domain.TreeFilter) ([]*domain.Tree, error) {
	docs, err := r.store.Find(ctx, domain.CollectionTrees, filter.Fields())
	if err != nil {
		return nil, fmt.Errorf("list trees: %w", err)
	}
	return decodeAll(docs, treeKey)
}

func (r *treeRepository) GetByID(ctx context.Context, id string) (*domain.Tree, error) {
	doc, err := r.store.FindOne(ctx, domain.CollectionTrees, id)
	if err != nil {
		return nil, err
	}
	return decode(*doc, treeKey)
}

func (r *treeRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	matched, err := r.store.Patch(ctx, domain.CollectionTrees, id, fields)
	if err != nil {
		return fmt.Errorf("update tree: %w", err)
	}
	if !matched {
		return fmt.Errorf("tree %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *treeRepository) Delete(ctx context.Context, id string) (*domain.Tree, error) {
	doc, err := r.store.Delete(ctx, domain.CollectionTrees, id)
	if err != nil {
		return nil, err
	}
	return decode(*doc, treeKey)
}

func (r *treeRepository) AddPhoto(ctx context.Context, treeID string, photo *domain.Photo) error {
	matched, err := r.store.Push(ctx, domain.CollectionTrees, treeID, "photos", photo)
	if err != nil {
		return fmt.Errorf("add photo: %w", err)
	}
	if !matched {
		return fmt.Errorf("tree %s: %w", treeID, domain.ErrNotFound)
	}
	return nil
}

func (r *treeRepository) CountByArea(ctx context.Context, areaID string) (int64, error) {
	count, err := r.store.Count(ctx, domain.CollectionTrees, domain.Fields{"area_id": areaID})
	if err != nil {
		return 0, fmt.Errorf("count trees by area: %w", err)
	}
	return count, nil
}
