package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository/mocks"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

func TestMeasurementUseCase_Create(t *testing.T) {
	ctx := context.Background()
	measurementRepo := &mocks.MeasurementRepository{}
	uc := usecase.NewMeasurementUseCase(measurementRepo, zap.NewNop())

	measurementRepo.On("Create", ctx, mock.AnythingOfType("*domain.Measurement")).Return(nil)

	ms, err := uc.Create(ctx, dto.CreateMeasurementRequest{
		StartPoint: map[string]float64{"lat": 55.0, "lng": 37.0},
		EndPoint:   map[string]float64{"lat": 55.001, "lng": 37.0},
		Distance:   floatPtr(111.2),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.MeasurementTypeDistance, ms.MeasurementType)
	assert.Equal(t, 111.2, ms.Distance)
	assert.Equal(t, 55.001, ms.EndPoint["lat"])
}

func TestMeasurementUseCase_GetDelete(t *testing.T) {
	ctx := context.Background()
	measurementRepo := &mocks.MeasurementRepository{}
	uc := usecase.NewMeasurementUseCase(measurementRepo, zap.NewNop())

	measurementRepo.On("GetByID", ctx, "missing").Return(nil, notFound("get measurement"))
	measurementRepo.On("Delete", ctx, "m1").Return(nil)

	_, err := uc.Get(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrMeasurementNotFound)

	assert.NoError(t, uc.Delete(ctx, "m1"))
	measurementRepo.AssertExpectations(t)
}
