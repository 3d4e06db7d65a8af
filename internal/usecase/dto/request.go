package dto

import (
	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/pkg/optional"
)

// CreateTreeRequest - запрос на создание дерева
type CreateTreeRequest struct {
	Species  string   `json:"species" validate:"required"`
	Health   string   `json:"health"`
	Lat      *float64 `json:"lat" validate:"required"`
	Lng      *float64 `json:"lng" validate:"required"`
	Diameter float64  `json:"diameter"`
	Height   float64  `json:"height"`
	Notes    string   `json:"notes"`
	AreaID   *string  `json:"area_id"`
}

// UpdateTreeRequest - частичное обновление дерева.
// Отсутствующие поля и null не меняются, кроме area_id: null снимает привязку к участку.
type UpdateTreeRequest struct {
	Species  optional.Value[string]  `json:"species"`
	Health   optional.Value[string]  `json:"health"`
	Diameter optional.Value[float64] `json:"diameter"`
	Height   optional.Value[float64] `json:"height"`
	Notes    optional.Value[string]  `json:"notes"`
	AreaID   optional.Value[string]  `json:"area_id"`
}

func (r UpdateTreeRequest) Fields() domain.Fields {
	fields := domain.Fields{}
	setIfValue(fields, "species", r.Species)
	setIfValue(fields, "health", r.Health)
	setIfValue(fields, "diameter", r.Diameter)
	setIfValue(fields, "height", r.Height)
	setIfValue(fields, "notes", r.Notes)
	if r.AreaID.IsNull() {
		fields["area_id"] = nil
	} else {
		setIfValue(fields, "area_id", r.AreaID)
	}
	return fields
}

// CreateWorkAreaRequest - запрос на создание участка
type CreateWorkAreaRequest struct {
	Name        string      `json:"name" validate:"required"`
	Status      string      `json:"status"`
	Boundary    [][]float64 `json:"boundary" validate:"required"`
	Description string      `json:"description"`
}

// UpdateWorkAreaRequest - частичное обновление участка
type UpdateWorkAreaRequest struct {
	Name        optional.Value[string]      `json:"name"`
	Status      optional.Value[string]      `json:"status"`
	Boundary    optional.Value[[][]float64] `json:"boundary"`
	Description optional.Value[string]      `json:"description"`
}

func (r UpdateWorkAreaRequest) Fields() domain.Fields {
	fields := domain.Fields{}
	setIfValue(fields, "name", r.Name)
	setIfValue(fields, "status", r.Status)
	setIfValue(fields, "boundary", r.Boundary)
	setIfValue(fields, "description", r.Description)
	return fields
}

// CreateGPSTrackRequest - запрос на сохранение трека
type CreateGPSTrackRequest struct {
	Name      string              `json:"name" validate:"required"`
	Points    []domain.TrackPoint `json:"points" validate:"required"`
	TrackType string              `json:"track_type"`
}

// CreateVectorLayerRequest - запрос на создание слоя
type CreateVectorLayerRequest struct {
	Name      string           `json:"name" validate:"required"`
	LayerType string           `json:"layer_type" validate:"required"`
	Color     string           `json:"color" validate:"required"`
	Data      []map[string]any `json:"data" validate:"required"`
	Visible   *bool            `json:"visible"`
}

// CreateMeasurementRequest - запрос на сохранение замера
type CreateMeasurementRequest struct {
	StartPoint      map[string]float64 `json:"start_point" validate:"required"`
	EndPoint        map[string]float64 `json:"end_point" validate:"required"`
	Distance        *float64           `json:"distance" validate:"required"`
	MeasurementType string             `json:"measurement_type"`
}

func setIfValue[T any](fields domain.Fields, key string, v optional.Value[T]) {
	if val, ok := v.Get(); ok {
		fields[key] = val
	}
}
