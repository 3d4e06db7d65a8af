package domain

import "errors"

// ErrNotFound возвращается репозиториями, когда документ с указанным id отсутствует
var ErrNotFound = errors.New("document not found")

// Collection - имя коллекции документного хранилища
type Collection string

const (
	CollectionTrees        Collection = "trees"
	CollectionWorkAreas    Collection = "work_areas"
	CollectionGPSTracks    Collection = "gps_tracks"
	CollectionVectorLayers Collection = "vector_layers"
	CollectionMeasurements Collection = "measurements"
)

// Collections - полный список коллекций в порядке создания таблиц
var Collections = []Collection{
	CollectionTrees,
	CollectionWorkAreas,
	CollectionGPSTracks,
	CollectionVectorLayers,
	CollectionMeasurements,
}

func (c Collection) Valid() bool {
	for _, known := range Collections {
		if c == known {
			return true
		}
	}
	return false
}

func (c Collection) String() string {
	return string(c)
}

// Fields - набор полей документа для частичного обновления или фильтра по равенству
type Fields map[string]any
