package repository

import (
	"context"

	"github.com/forest-management-gis/internal/domain"
)

// WorkAreaRepository интерфейс для работы с участками. tree_count не хранится.
type WorkAreaRepository interface {
	Create(ctx context.Context, area *domain.WorkArea) error
	List(ctx context.Context) ([]*domain.WorkArea, error)
	GetByID(ctx context.Context, id string) (*domain.WorkArea, error)
	Update(ctx context.Context, id string, fields domain.Fields) error
	Delete(ctx context.Context, id string) error
}
