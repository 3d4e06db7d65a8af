package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	apperrors "github.com/forest-management-gis/internal/pkg/errors"
	"github.com/forest-management-gis/internal/pkg/filestore"
	"github.com/forest-management-gis/internal/pkg/metrics"
)

const defaultPhotoExt = "jpg"

// PhotoUseCase сохраняет фото деревьев в директорию загрузок
type PhotoUseCase struct {
	treeRepo repository.TreeRepository
	files    *filestore.Store
	events   *EventPublisher
	logger   *zap.Logger
}

func NewPhotoUseCase(
	treeRepo repository.TreeRepository,
	files *filestore.Store,
	events *EventPublisher,
	logger *zap.Logger,
) *PhotoUseCase {
	return &PhotoUseCase{
		treeRepo: treeRepo,
		files:    files,
		events:   events,
		logger:   logger,
	}
}

// Upload сохраняет файл как {tree_id}_{uuid}.{ext} и добавляет запись в photos дерева
func (uc *PhotoUseCase) Upload(ctx context.Context, treeID, originalName string, content []byte) (*domain.Photo, error) {
	if _, err := uc.treeRepo.GetByID(ctx, treeID); err != nil {
		return nil, storeError("get tree", err, apperrors.ErrTreeNotFound)
	}

	filename := fmt.Sprintf("%s_%s.%s", treeID, uuid.NewString(), photoExt(originalName))
	path, err := uc.files.Save(filename, content)
	if err != nil {
		return nil, fmt.Errorf("save photo: %w: %w", apperrors.ErrStorageError, err)
	}

	photo := &domain.Photo{
		ID:         uuid.NewString(),
		Filename:   filename,
		Path:       path,
		UploadedAt: time.Now().UTC(),
		Size:       int64(len(content)),
	}

	if err := uc.treeRepo.AddPhoto(ctx, treeID, photo); err != nil {
		// дерево могли удалить между проверкой и записью
		if errors.Is(err, domain.ErrNotFound) {
			if rmErr := uc.files.Remove(path); rmErr != nil {
				uc.logger.Warn("Failed to remove orphaned photo", zap.String("path", path), zap.Error(rmErr))
			}
		}
		return nil, storeError("add photo", err, apperrors.ErrTreeNotFound)
	}

	metrics.RecordGeneratedFile("photo")
	uc.logger.Info("Photo uploaded",
		zap.String("tree_id", treeID),
		zap.String("filename", filename),
		zap.Int64("size", photo.Size))
	uc.events.Publish(ctx, domain.EventPhotoUploaded, treeID, domain.EventPayload{Photo: photo})

	return photo, nil
}

// photoExt - часть имени после последней точки, "jpg" если точки нет
func photoExt(originalName string) string {
	name := filepath.Base(filepath.FromSlash(originalName))
	idx := strings.LastIndex(name, ".")
	if idx < 0 || idx == len(name)-1 {
		return defaultPhotoExt
	}
	return name[idx+1:]
}
