package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

type measurementRepository struct {
	store  *DocumentStore
	logger *zap.Logger
}

func NewMeasurementRepository(store *DocumentStore, logger *zap.Logger) repository.MeasurementRepository {
	return &measurementRepository{
		store:  store,
		logger: logger,
	}
}

func measurementKey(m *domain.Measurement) *string { return &m.StoreKey }

func (r *measurementRepository) Create(ctx context.Context, m *domain.Measurement) error {
	m.StoreKey = ""
	key, err := r.store.Insert(ctx, domain.CollectionMeasurements, m.ID, m)
	if err != nil {
		return fmt.Errorf("create measurement: %w", err)
	}
	m.StoreKey = formatKey(key)
	return nil
}

func (r *measurementRepository) List(ctx context.Context) ([]*domain.Measurement, error) {
	docs, err := r.store.Find(ctx, domain.CollectionMeasurements, nil)
	if err != nil {
		return nil, fmt.Errorf("list measurements: %w", err)
	}
	return decodeAll(docs, measurementKey)
}

func (r *measurementRepository) GetByID(ctx context.Context, id string) (*domain.Measurement, error) {
	doc, err := r.store.FindOne(ctx, domain.CollectionMeasurements, id)
	if err != nil {
		return nil, err
	}
	return decode(*doc, measurementKey)
}

func (r *measurementRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Delete(ctx, domain.CollectionMeasurements, id); err != nil {
		return err
	}
	return nil
}
