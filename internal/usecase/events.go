package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	"github.com/forest-management-gis/internal/pkg/metrics"
)

// EventPublisher публикует события изменения данных в Redis Stream.
// Публикация best-effort: ошибка логируется, запрос не падает.
// nil-издатель (Redis выключен) ничего не делает.
type EventPublisher struct {
	streamRepo repository.StreamRepository
	logger     *zap.Logger
}

func NewEventPublisher(streamRepo repository.StreamRepository, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		streamRepo: streamRepo,
		logger:     logger,
	}
}

func (p *EventPublisher) Publish(ctx context.Context, eventType, entityID string, payload domain.EventPayload) {
	if p == nil || p.streamRepo == nil {
		return
	}

	event := domain.ForestEvent{
		Type:       eventType,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}

	err := p.streamRepo.PublishToStream(ctx, domain.StreamForestEvents, event)
	metrics.RecordEventPublished(eventType, err)
	if err != nil {
		p.logger.Warn("Failed to publish event",
			zap.String("type", eventType),
			zap.String("entity_id", entityID),
			zap.Error(err))
	}
}
