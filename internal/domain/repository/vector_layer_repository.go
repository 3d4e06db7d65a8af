package repository

import (
	"context"

	"github.com/forest-management-gis/internal/domain"
)

type VectorLayerRepository interface {
	Create(ctx context.Context, layer *domain.VectorLayer) error
	List(ctx context.Context) ([]*domain.VectorLayer, error)
	GetByID(ctx context.Context, id string) (*domain.VectorLayer, error)
	Delete(ctx context.Context, id string) error
}
