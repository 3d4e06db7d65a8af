package usecase_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/forest-management-gis/internal/config"
	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository/mocks"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/usecase"
)

type reportFixture struct {
	analyticsRepo *mocks.AnalyticsRepository
	treeRepo      *mocks.TreeRepository
	areaRepo      *mocks.WorkAreaRepository
	uc            *usecase.ReportUseCase
}

func newReportFixture(t *testing.T, cfg config.ReportConfig) *reportFixture {
	t.Helper()
	return newReportFixtureWithLogger(t, cfg, zap.NewNop())
}

func newReportFixtureWithLogger(t *testing.T, cfg config.ReportConfig, logger *zap.Logger) *reportFixture {
	t.Helper()
	f := &reportFixture{
		analyticsRepo: &mocks.AnalyticsRepository{},
		treeRepo:      &mocks.TreeRepository{},
		areaRepo:      &mocks.WorkAreaRepository{},
	}
	files, _ := newMemFiles(t)
	areas := usecase.NewWorkAreaUseCase(f.areaRepo, f.treeRepo, logger)
	f.uc = usecase.NewReportUseCase(f.analyticsRepo, f.treeRepo, areas, files, cfg, logger)
	return f
}

func manyTrees(n int) []*domain.Tree {
	trees := make([]*domain.Tree, 0, n)
	for i := 0; i < n; i++ {
		trees = append(trees, &domain.Tree{
			ID:       "0123456789abcdef",
			Species:  "Pine",
			Health:   domain.HealthHealthy,
			Diameter: 32.5,
			Height:   18,
		})
	}
	return trees
}

func TestReportUseCase_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("summary", func(t *testing.T) {
		f := newReportFixture(t, config.ReportConfig{})
		f.analyticsRepo.On("Summary", ctx).Return(&domain.AnalyticsSummary{TotalTrees: 4, HealthyTrees: 4}, nil)

		file, err := f.uc.Generate(ctx, usecase.ReportSummary, "")

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
		assert.Equal(t, "application/pdf", file.ContentType)
		assert.True(t, strings.HasPrefix(file.Filename, "report_summary_"))
		assert.True(t, strings.HasSuffix(file.Filename, ".pdf"))
		assert.Equal(t, "uploads/"+file.Filename, file.Path)
		f.treeRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})

	t.Run("trees filtered by area", func(t *testing.T) {
		f := newReportFixture(t, config.ReportConfig{TreeLimit: 20})
		f.treeRepo.On("List", ctx, domain.TreeFilter{AreaID: "a1"}).Return(manyTrees(25), nil)

		file, err := f.uc.Generate(ctx, usecase.ReportTrees, "a1")

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
		f.analyticsRepo.AssertNotCalled(t, "Summary", mock.Anything)
		f.treeRepo.AssertExpectations(t)
	})

	t.Run("full", func(t *testing.T) {
		f := newReportFixture(t, config.ReportConfig{})
		f.analyticsRepo.On("Summary", ctx).Return(&domain.AnalyticsSummary{TotalTrees: 1, TotalAreas: 1}, nil)
		f.treeRepo.On("List", ctx, domain.TreeFilter{}).Return(manyTrees(1), nil)
		f.areaRepo.On("List", ctx).Return([]*domain.WorkArea{
			{ID: "a1", Name: "Квартал 7", Status: "active", Boundary: [][]float64{{1, 2}, {3, 4}}},
		}, nil)
		f.treeRepo.On("CountByArea", ctx, "a1").Return(int64(1), nil)

		file, err := f.uc.Generate(ctx, usecase.ReportFull, "")

		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
		assert.True(t, strings.HasPrefix(file.Filename, "report_full_"))
		f.areaRepo.AssertExpectations(t)
		f.treeRepo.AssertExpectations(t)
	})

	t.Run("invalid type", func(t *testing.T) {
		f := newReportFixture(t, config.ReportConfig{})

		file, err := f.uc.Generate(ctx, "weekly", "")

		assert.Nil(t, file)
		assert.ErrorIs(t, err, apperrors.ErrInvalidReportType)
	})

	t.Run("store error", func(t *testing.T) {
		f := newReportFixture(t, config.ReportConfig{})
		f.analyticsRepo.On("Summary", ctx).Return(nil, assert.AnError)

		_, err := f.uc.Generate(ctx, usecase.ReportSummary, "")

		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
	})
}

func TestReportUseCase_WarnsOnceAboutUnrenderableText(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	f := newReportFixtureWithLogger(t, config.ReportConfig{}, zap.New(core))

	f.treeRepo.On("List", ctx, domain.TreeFilter{}).
		Return([]*domain.Tree{{ID: "0123456789abcdef", Species: "スギ", Health: domain.HealthHealthy}}, nil)

	for i := 0; i < 2; i++ {
		file, err := f.uc.Generate(ctx, usecase.ReportTrees, "")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(file.Content, []byte("%PDF")))
	}

	warnings := logs.FilterMessageSnippet("REPORT_FONT_PATH").All()
	require.Len(t, warnings, 1)
	assert.Equal(t, int64(1), warnings[0].ContextMap()["affected_cells"])
}

func TestReportUseCase_LatinTextDoesNotWarn(t *testing.T) {
	ctx := context.Background()
	core, logs := observer.New(zapcore.WarnLevel)
	f := newReportFixtureWithLogger(t, config.ReportConfig{}, zap.New(core))

	f.treeRepo.On("List", ctx, domain.TreeFilter{}).Return(manyTrees(3), nil)

	_, err := f.uc.Generate(ctx, usecase.ReportTrees, "")

	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}

func TestIsValidReportType(t *testing.T) {
	for _, rt := range []string{"summary", "trees", "areas", "full"} {
		assert.True(t, usecase.IsValidReportType(rt), rt)
	}
	assert.False(t, usecase.IsValidReportType("Summary"))
	assert.False(t, usecase.IsValidReportType(""))
}
