package repository

import (
	"context"

	"github.com/forest-management-gis/internal/domain"
)

// TreeRepository интерфейс для работы с деревьями
type TreeRepository interface {
	// Create сохраняет дерево и проставляет StoreKey
	Create(ctx context.Context, tree *domain.Tree) error

	// List возвращает деревья в порядке вставки
	List(ctx context.Context, filter domain.TreeFilter) ([]*domain.Tree, error)

	// GetByID возвращает дерево или domain.ErrNotFound
	GetByID(ctx context.Context, id string) (*domain.Tree, error)

	// Update применяет частичное обновление полей
	Update(ctx context.Context, id string, fields domain.Fields) error

	// Delete удаляет дерево и возвращает удалённый документ
	Delete(ctx context.Context, id string) (*domain.Tree, error)

	// AddPhoto добавляет запись о фото в конец списка photos
	AddPhoto(ctx context.Context, treeID string, photo *domain.Photo) error

	// CountByArea считает деревья с указанным area_id
	CountByArea(ctx context.Context, areaID string) (int64, error)
}
