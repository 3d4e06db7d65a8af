package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/filestore"
	"github.com/forest-management-gis/internal/pkg/metrics"
	"github.com/forest-management-gis/internal/usecase/dto"
)

const (
	ExportJSON = "json"
	ExportCSV  = "csv"

	utf8BOM = "\ufeff"
)

// treeCSVHeader - фиксированный порядок колонок CSV. Фото в CSV не выгружаются.
var treeCSVHeader = []string{
	"_id", "species", "health", "lat", "lng", "diameter", "height", "notes",
	"area_id", "id", "created_at", "updated_at", "last_check",
}

// ExportUseCase выгружает данные в JSON (деревья, участки, треки) или CSV (только деревья)
type ExportUseCase struct {
	treeRepo  repository.TreeRepository
	trackRepo repository.GPSTrackRepository
	workAreas *WorkAreaUseCase
	files     *filestore.Store
	logger    *zap.Logger
}

func NewExportUseCase(
	treeRepo repository.TreeRepository,
	trackRepo repository.GPSTrackRepository,
	workAreas *WorkAreaUseCase,
	files *filestore.Store,
	logger *zap.Logger,
) *ExportUseCase {
	return &ExportUseCase{
		treeRepo:  treeRepo,
		trackRepo: trackRepo,
		workAreas: workAreas,
		files:     files,
		logger:    logger,
	}
}

func IsValidExportFormat(format string) bool {
	return format == ExportJSON || format == ExportCSV
}

func (uc *ExportUseCase) Export(ctx context.Context, format string) (*dto.GeneratedFile, error) {
	if !IsValidExportFormat(format) {
		return nil, apperrors.ErrInvalidExportFormat.WithDetails(map[string]interface{}{
			"format": format,
		})
	}

	bundle, err := uc.collect(ctx)
	if err != nil {
		return nil, err
	}

	var (
		content     []byte
		contentType string
	)
	switch format {
	case ExportJSON:
		content, err = json.MarshalIndentWithOption(bundle, "", "  ", json.DisableHTMLEscape())
		contentType = "application/json"
	case ExportCSV:
		content, err = treesCSV(bundle.Trees)
		contentType = "text/csv"
	}
	if err != nil {
		return nil, fmt.Errorf("encode export %s: %w", format, err)
	}

	filename := fmt.Sprintf("forest_data_%s.%s", bundle.ExportedAt.Local().Format(fileTimestampLayout), format)
	path, err := uc.files.Save(filename, content)
	if err != nil {
		return nil, fmt.Errorf("save export: %w: %w", apperrors.ErrStorageError, err)
	}

	metrics.RecordGeneratedFile("export")
	uc.logger.Info("Data exported",
		zap.String("format", format),
		zap.String("path", path),
		zap.Int("trees", len(bundle.Trees)),
		zap.Int("work_areas", len(bundle.WorkAreas)),
		zap.Int("gps_tracks", len(bundle.GPSTracks)))

	return &dto.GeneratedFile{
		Filename:    filename,
		Path:        path,
		ContentType: contentType,
		Content:     content,
	}, nil
}

func (uc *ExportUseCase) collect(ctx context.Context) (*dto.ExportBundle, error) {
	trees, err := uc.treeRepo.List(ctx, domain.TreeFilter{})
	if err != nil {
		return nil, storeError("export trees", err, nil)
	}

	areas, err := uc.workAreas.List(ctx)
	if err != nil {
		return nil, err
	}

	tracks, err := uc.trackRepo.List(ctx, domain.GPSTrackFilter{})
	if err != nil {
		return nil, storeError("export gps tracks", err, nil)
	}

	return &dto.ExportBundle{
		Trees:      trees,
		WorkAreas:  areas,
		GPSTracks:  tracks,
		ExportedAt: time.Now().UTC(),
	}, nil
}

func treesCSV(trees []*domain.Tree) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(utf8BOM)

	w := csv.NewWriter(&buf)
	if err := w.Write(treeCSVHeader); err != nil {
		return nil, err
	}

	for _, t := range trees {
		areaID := ""
		if t.AreaID != nil {
			areaID = *t.AreaID
		}
		row := []string{
			t.StoreKey,
			t.Species,
			t.Health,
			formatFloat(t.Lat),
			formatFloat(t.Lng),
			formatFloat(t.Diameter),
			formatFloat(t.Height),
			t.Notes,
			areaID,
			t.ID,
			t.CreatedAt.Format(time.RFC3339Nano),
			t.UpdatedAt.Format(time.RFC3339Nano),
			t.LastCheck.Format(time.RFC3339Nano),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
