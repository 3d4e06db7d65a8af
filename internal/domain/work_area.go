package domain

import "time"

const WorkAreaStatusActive = "active"

// WorkArea - участок работ. TreeCount вычисляется при каждом чтении и не хранится.
type WorkArea struct {
	StoreKey    string      `json:"_id,omitempty"`
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Status      string      `json:"status"`
	Boundary    [][]float64 `json:"boundary"`
	Description string      `json:"description"`
	TreeCount   int64       `json:"tree_count"`
	LastVisit   time.Time   `json:"last_visit"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}
