package domain

import "time"

// StreamForestEvents - стрим изменений учётных данных
const StreamForestEvents = "stream:forest:events"

const (
	EventTreeCreated   = "tree.created"
	EventTreeDeleted   = "tree.deleted"
	EventPhotoUploaded = "photo.uploaded"
)

// ForestEvent - событие изменения данных, публикуется в StreamForestEvents
type ForestEvent struct {
	Type       string       `json:"type"`
	EntityID   string       `json:"entity_id"`
	OccurredAt time.Time    `json:"occurred_at"`
	Payload    EventPayload `json:"payload"`
}

// EventPayload - полезная нагрузка события, набор полей зависит от типа
type EventPayload struct {
	PhotoPaths []string `json:"photo_paths,omitempty"`
	Photo      *Photo   `json:"photo,omitempty"`
}

// HasPhotoCleanup проверяет, что событие требует удаления файлов с диска
func (e *ForestEvent) HasPhotoCleanup() bool {
	return e.Type == EventTreeDeleted && len(e.Payload.PhotoPaths) > 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
