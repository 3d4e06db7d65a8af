package repository

import (
	"context"

	"github.com/forest-management-gis/internal/domain"
)

type GPSTrackRepository interface {
	Create(ctx context.Context, track *domain.GPSTrack) error
	List(ctx context.Context, filter domain.GPSTrackFilter) ([]*domain.GPSTrack, error)
	GetByID(ctx context.Context, id string) (*domain.GPSTrack, error)
	Delete(ctx context.Context, id string) error
}
