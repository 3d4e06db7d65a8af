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
	"github.com/forest-management-gis/internal/pkg/optional"
	"github.com/forest-management-gis/internal/usecase"
	"github.com/forest-management-gis/internal/usecase/dto"
)

func TestWorkAreaUseCase_Create(t *testing.T) {
	ctx := context.Background()
	areaRepo := &mocks.WorkAreaRepository{}
	treeRepo := &mocks.TreeRepository{}
	uc := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, zap.NewNop())

	areaRepo.On("Create", ctx, mock.AnythingOfType("*domain.WorkArea")).Return(nil)

	area, err := uc.Create(ctx, dto.CreateWorkAreaRequest{
		Name:     "Квартал 12",
		Boundary: [][]float64{{55.1, 37.1}, {55.2, 37.1}, {55.2, 37.2}},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.WorkAreaStatusActive, area.Status)
	assert.Equal(t, "", area.Description)
	assert.Equal(t, area.CreatedAt, area.LastVisit)
	assert.Len(t, area.Boundary, 3)
	areaRepo.AssertExpectations(t)
}

func TestWorkAreaUseCase_List_AttachesTreeCount(t *testing.T) {
	ctx := context.Background()
	areaRepo := &mocks.WorkAreaRepository{}
	treeRepo := &mocks.TreeRepository{}
	uc := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, zap.NewNop())

	areaRepo.On("List", ctx).Return([]*domain.WorkArea{{ID: "a1"}, {ID: "a2"}}, nil)
	treeRepo.On("CountByArea", ctx, "a1").Return(int64(3), nil)
	treeRepo.On("CountByArea", ctx, "a2").Return(int64(0), nil)

	areas, err := uc.List(ctx)

	require.NoError(t, err)
	require.Len(t, areas, 2)
	assert.Equal(t, int64(3), areas[0].TreeCount)
	assert.Equal(t, int64(0), areas[1].TreeCount)
	treeRepo.AssertExpectations(t)
}

func TestWorkAreaUseCase_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		areaRepo := &mocks.WorkAreaRepository{}
		treeRepo := &mocks.TreeRepository{}
		uc := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, zap.NewNop())

		areaRepo.On("GetByID", ctx, "a1").Return(&domain.WorkArea{ID: "a1", Name: "North"}, nil)
		treeRepo.On("CountByArea", ctx, "a1").Return(int64(7), nil)

		area, err := uc.Get(ctx, "a1")

		require.NoError(t, err)
		assert.Equal(t, int64(7), area.TreeCount)
	})

	t.Run("not found", func(t *testing.T) {
		areaRepo := &mocks.WorkAreaRepository{}
		treeRepo := &mocks.TreeRepository{}
		uc := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, zap.NewNop())

		areaRepo.On("GetByID", ctx, "missing").Return(nil, notFound("get work area"))

		_, err := uc.Get(ctx, "missing")

		assert.ErrorIs(t, err, apperrors.ErrWorkAreaNotFound)
		treeRepo.AssertNotCalled(t, "CountByArea", mock.Anything, mock.Anything)
	})
}

func TestWorkAreaUseCase_Update(t *testing.T) {
	ctx := context.Background()
	areaRepo := &mocks.WorkAreaRepository{}
	treeRepo := &mocks.TreeRepository{}
	uc := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, zap.NewNop())

	areaRepo.On("Update", ctx, "a1", mock.MatchedBy(func(f domain.Fields) bool {
		_, hasName := f["name"]
		_, hasUpdatedAt := f["updated_at"]
		return f["status"] == "closed" && !hasName && hasUpdatedAt
	})).Return(nil)
	areaRepo.On("GetByID", ctx, "a1").Return(&domain.WorkArea{ID: "a1", Status: "closed"}, nil)
	treeRepo.On("CountByArea", ctx, "a1").Return(int64(2), nil)

	area, err := uc.Update(ctx, "a1", dto.UpdateWorkAreaRequest{
		Status: optional.Of("closed"),
		Name:   optional.Null[string](),
	})

	require.NoError(t, err)
	assert.Equal(t, "closed", area.Status)
	assert.Equal(t, int64(2), area.TreeCount)
	areaRepo.AssertExpectations(t)
}

func TestWorkAreaUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	areaRepo := &mocks.WorkAreaRepository{}
	treeRepo := &mocks.TreeRepository{}
	uc := usecase.NewWorkAreaUseCase(areaRepo, treeRepo, zap.NewNop())

	areaRepo.On("Delete", ctx, "a1").Return(nil)
	areaRepo.On("Delete", ctx, "missing").Return(notFound("delete work area"))

	assert.NoError(t, uc.Delete(ctx, "a1"))
	assert.ErrorIs(t, uc.Delete(ctx, "missing"), apperrors.ErrWorkAreaNotFound)
}
