package postgres

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

// workAreaDocument - хранимая форма участка, без вычисляемого tree_count
type workAreaDocument struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Status      string      `json:"status"`
	Boundary    [][]float64 `json:"boundary"`
	Description string      `json:"description"`
	LastVisit   time.Time   `json:"last_visit"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

type workAreaRepository struct {
	store  *DocumentStore
	logger *zap.Logger
}

func NewWorkAreaRepository(store *DocumentStore, logger *zap.Logger) repository.WorkAreaRepository {
	return &workAreaRepository{
		store:  store,
		logger: logger,
	}
}

func workAreaKey(a *domain.WorkArea) *string { return &a.StoreKey }

func (r *workAreaRepository) Create(ctx context.Context, area *domain.WorkArea) error {
	doc := workAreaDocument{
		ID:          area.ID,
		Name:        area.Name,
		Status:      area.Status,
		Boundary:    area.Boundary,
		Description: area.Description,
		LastVisit:   area.LastVisit,
		CreatedAt:   area.CreatedAt,
		UpdatedAt:   area.UpdatedAt,
	}

	key, err := r.store.Insert(ctx, domain.CollectionWorkAreas, area.ID, doc)
	if err != nil {
		return fmt.Errorf("create work area: %w", err)
	}
	area.StoreKey = formatKey(key)
	return nil
}

func (r *workAreaRepository) List(ctx context.Context) ([]*domain.WorkArea, error) {
	docs, err := r.store.Find(ctx, domain.CollectionWorkAreas, nil)
	if err != nil {
		return nil, fmt.Errorf("list work areas: %w", err)
	}
	return decodeAll(docs, workAreaKey)
}

func (r *workAreaRepository) GetByID(ctx context.Context, id string) (*domain.WorkArea, error) {
	doc, err := r.store.FindOne(ctx, domain.CollectionWorkAreas, id)
	if err != nil {
		return nil, err
	}
	return decode(*doc, workAreaKey)
}

func (r *workAreaRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	delete(fields, "tree_count")

	matched, err := r.store.Patch(ctx, domain.CollectionWorkAreas, id, fields)
	if err != nil {
		return fmt.Errorf("update work area: %w", err)
	}
	if !matched {
		return fmt.Errorf("work area %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *workAreaRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Delete(ctx, domain.CollectionWorkAreas, id); err != nil {
		return err
	}
	return nil
}
