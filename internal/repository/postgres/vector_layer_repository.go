package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

type vectorLayerRepository struct {
	store  *DocumentStore
	logger *zap.Logger
}

func NewVectorLayerRepository(store *DocumentStore, logger *zap.Logger) repository.VectorLayerRepository {
	return &vectorLayerRepository{
		store:  store,
		logger: logger,
	}
}

func vectorLayerKey(l *domain.VectorLayer) *string { return &l.StoreKey }

func (r *vectorLayerRepository) Create(ctx context.Context, layer *domain.VectorLayer) error {
	layer.StoreKey = ""
	key, err := r.store.Insert(ctx, domain.CollectionVectorLayers, layer.ID, layer)
	if err != nil {
		return fmt.Errorf("create vector layer: %w", err)
	}
	layer.StoreKey = formatKey(key)
	return nil
}

func (r *vectorLayerRepository) List(ctx context.Context) ([]*domain.VectorLayer, error) {
	docs, err := r.store.Find(ctx, domain.CollectionVectorLayers, nil)
	if err != nil {
		return nil, fmt.Errorf("list vector layers: %w", err)
	}
	return decodeAll(docs, vectorLayerKey)
}

func (r *vectorLayerRepository) GetByID(ctx context.Context, id string) (*domain.VectorLayer, error) {
	doc, err := r.store.FindOne(ctx, domain.CollectionVectorLayers, id)
	if err != nil {
		return nil, err
	}
	return decode(*doc, vectorLayerKey)
}

func (r *vectorLayerRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Delete(ctx, domain.CollectionVectorLayers, id); err != nil {
		return err
	}
	return nil
}
