// Package mocks содержит testify-моки репозиториев для тестов use case и хендлеров.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/forest-management-gis/internal/domain"
)

// TreeRepository is a mock of repository.TreeRepository
type TreeRepository struct {
	mock.Mock
}

func (m *TreeRepository) Create(ctx context.Context, tree *domain.Tree) error {
	args := m.Called(ctx, tree)
	return args.Error(0)
}

func (m *TreeRepository) List(ctx context.Context, filter domain.TreeFilter) ([]*domain.Tree, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Tree), args.Error(1)
}

func (m *TreeRepository) GetByID(ctx context.Context, id string) (*domain.Tree, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *TreeRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *TreeRepository) Delete(ctx context.Context, id string) (*domain.Tree, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tree), args.Error(1)
}

func (m *TreeRepository) AddPhoto(ctx context.Context, treeID string, photo *domain.Photo) error {
	args := m.Called(ctx, treeID, photo)
	return args.Error(0)
}

func (m *TreeRepository) CountByArea(ctx context.Context, areaID string) (int64, error) {
	args := m.Called(ctx, areaID)
	return args.Get(0).(int64), args.Error(1)
}

// WorkAreaRepository is a mock of repository.WorkAreaRepository
type WorkAreaRepository struct {
	mock.Mock
}

func (m *WorkAreaRepository) Create(ctx context.Context, area *domain.WorkArea) error {
	args := m.Called(ctx, area)
	return args.Error(0)
}

func (m *WorkAreaRepository) List(ctx context.Context) ([]*domain.WorkArea, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.WorkArea), args.Error(1)
}

func (m *WorkAreaRepository) GetByID(ctx context.Context, id string) (*domain.WorkArea, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WorkArea), args.Error(1)
}

func (m *WorkAreaRepository) Update(ctx context.Context, id string, fields domain.Fields) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *WorkAreaRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// GPSTrackRepository is a mock of repository.GPSTrackRepository
type GPSTrackRepository struct {
	mock.Mock
}

func (m *GPSTrackRepository) Create(ctx context.Context, track *domain.GPSTrack) error {
	args := m.Called(ctx, track)
	return args.Error(0)
}

func (m *GPSTrackRepository) List(ctx context.Context, filter domain.GPSTrackFilter) ([]*domain.GPSTrack, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.GPSTrack), args.Error(1)
}

func (m *GPSTrackRepository) GetByID(ctx context.Context, id string) (*domain.GPSTrack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GPSTrack), args.Error(1)
}

func (m *GPSTrackRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// VectorLayerRepository is a mock of repository.VectorLayerRepository
type VectorLayerRepository struct {
	mock.Mock
}

func (m *VectorLayerRepository) Create(ctx context.Context, layer *domain.VectorLayer) error {
	args := m.Called(ctx, layer)
	return args.Error(0)
}

func (m *VectorLayerRepository) List(ctx context.Context) ([]*domain.VectorLayer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VectorLayer), args.Error(1)
}

func (m *VectorLayerRepository) GetByID(ctx context.Context, id string) (*domain.VectorLayer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VectorLayer), args.Error(1)
}

func (m *VectorLayerRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MeasurementRepository is a mock of repository.MeasurementRepository
type MeasurementRepository struct {
	mock.Mock
}

func (m *MeasurementRepository) Create(ctx context.Context, ms *domain.Measurement) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MeasurementRepository) List(ctx context.Context) ([]*domain.Measurement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Measurement), args.Error(1)
}

func (m *MeasurementRepository) GetByID(ctx context.Context, id string) (*domain.Measurement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Measurement), args.Error(1)
}

func (m *MeasurementRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// AnalyticsRepository is a mock of repository.AnalyticsRepository
type AnalyticsRepository struct {
	mock.Mock
}

func (m *AnalyticsRepository) Summary(ctx context.Context) (*domain.AnalyticsSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AnalyticsSummary), args.Error(1)
}

func (m *AnalyticsRepository) SpeciesDistribution(ctx context.Context) ([]domain.SpeciesCount, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SpeciesCount), args.Error(1)
}

// StreamRepository is a mock of repository.StreamRepository
type StreamRepository struct {
	mock.Mock
}

func (m *StreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *StreamRepository) ClaimStale(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, minIdle, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *StreamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	args := m.Called(ctx, stream, group, messageIDs)
	return args.Error(0)
}

func (m *StreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *StreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}
