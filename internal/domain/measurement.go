package domain

import "time"

const MeasurementTypeDistance = "distance"

// Measurement - замер между двумя точками, distance присылает клиент
type Measurement struct {
	StoreKey        string             `json:"_id,omitempty"`
	ID              string             `json:"id"`
	StartPoint      map[string]float64 `json:"start_point"`
	EndPoint        map[string]float64 `json:"end_point"`
	Distance        float64            `json:"distance"`
	MeasurementType string             `json:"measurement_type"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}
