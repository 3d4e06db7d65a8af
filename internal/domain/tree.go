package domain

import "time"

const (
	HealthHealthy  = "healthy"
	HealthWarning  = "warning"
	HealthCritical = "critical"
)

// Tree - учётное дерево. Health - свободная строка, значения выше лишь общепринятые.
type Tree struct {
	StoreKey  string    `json:"_id,omitempty"`
	ID        string    `json:"id"`
	Species   string    `json:"species"`
	Health    string    `json:"health"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Diameter  float64   `json:"diameter"`
	Height    float64   `json:"height"`
	Notes     string    `json:"notes"`
	AreaID    *string   `json:"area_id"`
	Photos    []Photo   `json:"photos"`
	LastCheck time.Time `json:"last_check"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PhotoPaths возвращает пути всех файлов фото дерева
func (t *Tree) PhotoPaths() []string {
	paths := make([]string, 0, len(t.Photos))
	for _, p := range t.Photos {
		if p.Path != "" {
			paths = append(paths, p.Path)
		}
	}
	return paths
}

// Photo - метаданные загруженного фото, хранятся внутри документа дерева
type Photo struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Path       string    `json:"file_path"`
	UploadedAt time.Time `json:"uploaded_at"`
	Size       int64     `json:"size"`
}

// TreeFilter - фильтры списка деревьев, пустые значения не применяются
type TreeFilter struct {
	AreaID string
	Health string
}

// Fields переводит фильтр в условие равенства по полям документа
func (f TreeFilter) Fields() Fields {
	fields := Fields{}
	if f.AreaID != "" {
		fields["area_id"] = f.AreaID
	}
	if f.Health != "" {
		fields["health"] = f.Health
	}
	return fields
}
