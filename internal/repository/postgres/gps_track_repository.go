package postgres

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

type gpsTrackRepository struct {
	store  *DocumentStore
	logger *zap.Logger
}

func NewGPSTrackRepository(store *DocumentStore, logger *zap.Logger) repository.GPSTrackRepository {
	return &gpsTrackRepository{
		store:  store,
		logger: logger,
	}
}

func gpsTrackKey(t *domain.GPSTrack) *string { return &t.StoreKey }

func (r *gpsTrackRepository) Create(ctx context.Context, track *domain.GPSTrack) error {
	track.StoreKey = ""
	key, err := r.store.Insert(ctx, domain.CollectionGPSTracks, track.ID, track)
	if err != nil {
		return fmt.Errorf("create gps track: %w", err)
	}
	track.StoreKey = formatKey(key)
	return nil
}

func (r *gpsTrackRepository) List(ctx context.Context, filter domain.GPSTrackFilter) ([]*domain.GPSTrack, error) {
	docs, err := r.store.Find(ctx, domain.CollectionGPSTracks, filter.Fields())
	if err != nil {
		return nil, fmt.Errorf("list gps tracks: %w", err)
	}
	return decodeAll(docs, gpsTrackKey)
}

func (r *gpsTrackRepository) GetByID(ctx context.Context, id string) (*domain.GPSTrack, error) {
	doc, err := r.store.FindOne(ctx, domain.CollectionGPSTracks, id)
	if err != nil {
		return nil, err
	}
	return decode(*doc, gpsTrackKey)
}

func (r *gpsTrackRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.store.Delete(ctx, domain.CollectionGPSTracks, id); err != nil {
		return err
	}
	return nil
}
