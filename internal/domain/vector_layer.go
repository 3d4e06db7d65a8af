package domain

import "time"

// VectorLayer - пользовательский слой карты. Data хранится как есть.
type VectorLayer struct {
	StoreKey  string           `json:"_id,omitempty"`
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	LayerType string           `json:"layer_type"`
	Color     string           `json:"color"`
	Data      []map[string]any `json:"data"`
	Visible   bool             `json:"visible"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
