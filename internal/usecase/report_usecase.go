package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/config"
	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/filestore"
	"github.com/forest-management-gis/internal/pkg/metrics"
	"github.com/forest-management-gis/internal/usecase/dto"
)

const (
	ReportSummary = "summary"
	ReportTrees   = "trees"
	ReportAreas   = "areas"
	ReportFull    = "full"

	defaultReportTreeLimit = 20
	fileTimestampLayout    = "20060102_150405"
)

// ReportUseCase генерирует PDF-отчёты и сохраняет их в директорию загрузок
type ReportUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	treeRepo      repository.TreeRepository
	workAreas     *WorkAreaUseCase
	files         *filestore.Store
	cfg           config.ReportConfig
	logger        *zap.Logger

	fontWarning sync.Once
}

func NewReportUseCase(
	analyticsRepo repository.AnalyticsRepository,
	treeRepo repository.TreeRepository,
	workAreas *WorkAreaUseCase,
	files *filestore.Store,
	cfg config.ReportConfig,
	logger *zap.Logger,
) *ReportUseCase {
	if cfg.TreeLimit <= 0 {
		cfg.TreeLimit = defaultReportTreeLimit
	}
	return &ReportUseCase{
		analyticsRepo: analyticsRepo,
		treeRepo:      treeRepo,
		workAreas:     workAreas,
		files:         files,
		cfg:           cfg,
		logger:        logger,
	}
}

func IsValidReportType(reportType string) bool {
	switch reportType {
	case ReportSummary, ReportTrees, ReportAreas, ReportFull:
		return true
	}
	return false
}

// Generate строит отчёт: summary/full - сводная таблица, trees/full - первые деревья
// (с фильтром по участку), areas/full - список участков с текущим числом деревьев
func (uc *ReportUseCase) Generate(ctx context.Context, reportType, areaID string) (*dto.GeneratedFile, error) {
	if !IsValidReportType(reportType) {
		return nil, apperrors.ErrInvalidReportType.WithDetails(map[string]interface{}{
			"report_type": reportType,
		})
	}

	generatedAt := time.Now()
	doc := newReportPDF(uc.cfg.FontPath, generatedAt)
	doc.title(reportTitle)

	if reportType == ReportSummary || reportType == ReportFull {
		summary, err := uc.analyticsRepo.Summary(ctx)
		if err != nil {
			return nil, storeError("report summary", err, nil)
		}
		doc.summary(summary)
	}

	if reportType == ReportTrees || reportType == ReportFull {
		trees, err := uc.treeRepo.List(ctx, domain.TreeFilter{AreaID: areaID})
		if err != nil {
			return nil, storeError("report trees", err, nil)
		}
		if len(trees) > uc.cfg.TreeLimit {
			trees = trees[:uc.cfg.TreeLimit]
		}
		if len(trees) > 0 {
			doc.trees(trees)
		}
	}

	if reportType == ReportAreas || reportType == ReportFull {
		areas, err := uc.workAreas.List(ctx)
		if err != nil {
			return nil, err
		}
		if len(areas) > 0 {
			doc.areas(areas)
		}
	}

	content, err := doc.bytes()
	if err != nil {
		return nil, fmt.Errorf("generate report: %w", err)
	}
	if doc.lost > 0 {
		uc.fontWarning.Do(func() {
			uc.logger.Warn("Report text has characters the built-in PDF fonts cannot render, set REPORT_FONT_PATH to a Unicode TTF",
				zap.String("type", reportType),
				zap.Int("affected_cells", doc.lost))
		})
	}

	filename := fmt.Sprintf("report_%s_%s.pdf", reportType, generatedAt.Format(fileTimestampLayout))
	path, err := uc.files.Save(filename, content)
	if err != nil {
		return nil, fmt.Errorf("save report: %w: %w", apperrors.ErrStorageError, err)
	}

	metrics.RecordGeneratedFile("report")
	uc.logger.Info("Report generated",
		zap.String("type", reportType),
		zap.String("path", path),
		zap.Int("size", len(content)))

	return &dto.GeneratedFile{
		Filename:    filename,
		Path:        path,
		ContentType: "application/pdf",
		Content:     content,
	}, nil
}
