package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/utils"
	"github.com/forest-management-gis/internal/usecase/dto"
)

type GPSTrackUseCase struct {
	trackRepo repository.GPSTrackRepository
	logger    *zap.Logger
}

func NewGPSTrackUseCase(trackRepo repository.GPSTrackRepository, logger *zap.Logger) *GPSTrackUseCase {
	return &GPSTrackUseCase{
		trackRepo: trackRepo,
		logger:    logger,
	}
}

// Create сохраняет трек. Для path из двух и более точек distance - сумма
// эллипсоидальных расстояний между соседними точками в метрах, иначе 0.
func (uc *GPSTrackUseCase) Create(ctx context.Context, req dto.CreateGPSTrackRequest) (*domain.GPSTrack, error) {
	now := time.Now().UTC()

	track := &domain.GPSTrack{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Points:    req.Points,
		TrackType: req.TrackType,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if track.TrackType == "" {
		track.TrackType = domain.TrackTypePath
	}

	if track.TrackType == domain.TrackTypePath && len(track.Points) > 1 {
		distance, err := trackDistance(track.Points)
		if err != nil {
			return nil, err
		}
		track.Distance = distance
	}

	if err := uc.trackRepo.Create(ctx, track); err != nil {
		return nil, storeError("create gps track", err, nil)
	}

	uc.logger.Info("GPS track created",
		zap.String("id", track.ID),
		zap.Int("points", len(track.Points)),
		zap.Float64("distance_m", track.Distance))
	return track, nil
}

func (uc *GPSTrackUseCase) List(ctx context.Context, filter domain.GPSTrackFilter) ([]*domain.GPSTrack, error) {
	tracks, err := uc.trackRepo.List(ctx, filter)
	if err != nil {
		return nil, storeError("list gps tracks", err, nil)
	}
	return tracks, nil
}

func (uc *GPSTrackUseCase) Get(ctx context.Context, id string) (*domain.GPSTrack, error) {
	track, err := uc.trackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get gps track", err, apperrors.ErrGPSTrackNotFound)
	}
	return track, nil
}

func (uc *GPSTrackUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.trackRepo.Delete(ctx, id); err != nil {
		return storeError("delete gps track", err, apperrors.ErrGPSTrackNotFound)
	}
	return nil
}

func trackDistance(points []domain.TrackPoint) (float64, error) {
	path := make([]utils.LatLng, 0, len(points))
	for i, p := range points {
		lat, lng, ok := p.LatLng()
		if !ok {
			return 0, apperrors.ErrInvalidTrackPoints.WithDetails(map[string]interface{}{
				"point": fmt.Sprintf("points[%d]", i),
			})
		}
		path = append(path, utils.LatLng{Lat: lat, Lng: lng})
	}
	return utils.PathLength(path), nil
}
