package repository

import (
	"context"

	"github.com/forest-management-gis/internal/domain"
)

type MeasurementRepository interface {
	Create(ctx context.Context, m *domain.Measurement) error
	List(ctx context.Context) ([]*domain.Measurement, error)
	GetByID(ctx context.Context, id string) (*domain.Measurement, error)
	Delete(ctx context.Context, id string) error
}
