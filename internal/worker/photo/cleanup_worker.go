package photo

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
	"github.com/forest-management-gis/internal/pkg/filestore"
	"github.com/forest-management-gis/internal/worker"
)

const (
	WorkerName = "photo-cleanup"

	maxBatchSize    = 20
	emptyQueueSleep = 100 * time.Millisecond
	errorSleep      = time.Second
	retryDelay      = 200 * time.Millisecond
	// staleAfter - через сколько неподтверждённое сообщение считается брошенным
	staleAfter = time.Minute
)

// CleanupWorker удаляет файлы фото удалённых деревьев по событиям tree.deleted.
// Остальные события подтверждаются без обработки.
type CleanupWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	files        *filestore.Store
	consumerName string
	maxRetries   int
}

func NewCleanupWorker(
	streamRepo repository.StreamRepository,
	files *filestore.Store,
	consumerGroup string,
	maxRetries int,
	logger *zap.Logger,
) *CleanupWorker {
	hostname, _ := os.Hostname()
	if maxRetries < 1 {
		maxRetries = 1
	}

	return &CleanupWorker{
		BaseWorker:   worker.NewBaseWorker(WorkerName, consumerGroup, logger),
		streamRepo:   streamRepo,
		files:        files,
		consumerName: fmt.Sprintf("%s-%d", hostname, os.Getpid()),
		maxRetries:   maxRetries,
	}
}

func (w *CleanupWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting photo cleanup worker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamForestEvents, w.ConsumerGroup()); err != nil {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	ctx, cancel := w.Context(ctx)
	defer cancel()

	if _, err := w.RecoverPending(ctx); err != nil {
		logger.Warn("Failed to recover pending messages", zap.Error(err))
	}

	for !w.IsStopped() && ctx.Err() == nil {
		processed, err := w.ProcessBatch(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Error("Failed to process batch", zap.Error(err))
			}
			w.Pause(ctx, errorSleep)
			continue
		}
		if processed == 0 {
			w.Pause(ctx, emptyQueueSleep)
		}
	}

	if w.IsStopped() {
		logger.Info("Worker stopped")
		return nil
	}
	logger.Info("Context cancelled")
	return ctx.Err()
}

// ProcessBatch читает пачку событий, удаляет файлы и подтверждает сообщения.
// Возвращает число прочитанных сообщений.
func (w *CleanupWorker) ProcessBatch(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ConsumeBatch(ctx, domain.StreamForestEvents, w.ConsumerGroup(), w.consumerName, maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}
	w.handle(ctx, messages)
	return len(messages), nil
}

// RecoverPending дорабатывает события, оставшиеся в pending после падения
// другого экземпляра воркера
func (w *CleanupWorker) RecoverPending(ctx context.Context) (int, error) {
	messages, err := w.streamRepo.ClaimStale(ctx, domain.StreamForestEvents, w.ConsumerGroup(), w.consumerName, staleAfter, maxBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to claim stale messages: %w", err)
	}
	if len(messages) > 0 {
		w.Logger().Info("Recovering pending events", zap.Int("count", len(messages)))
	}
	w.handle(ctx, messages)
	return len(messages), nil
}

func (w *CleanupWorker) handle(ctx context.Context, messages []domain.StreamMessage) {
	if len(messages) == 0 {
		return
	}
	logger := w.Logger()

	ackIDs := make([]string, 0, len(messages))
	removed := 0
	for _, msg := range messages {
		var event domain.ForestEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			// битое сообщение подтверждаем, чтобы не застревало
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			ackIDs = append(ackIDs, msg.ID)
			continue
		}

		if event.HasPhotoCleanup() {
			removed += w.removePhotos(ctx, event)
		}
		ackIDs = append(ackIDs, msg.ID)
	}

	if err := w.streamRepo.AckMessages(ctx, domain.StreamForestEvents, w.ConsumerGroup(), ackIDs); err != nil {
		logger.Error("Failed to ack messages", zap.Error(err))
	}

	logger.Debug("Batch processed",
		zap.Int("messages", len(messages)),
		zap.Int("files_removed", removed))
}

// removePhotos удаляет файлы события. Отсутствующий файл не ошибка.
func (w *CleanupWorker) removePhotos(ctx context.Context, event domain.ForestEvent) int {
	removed := 0
	for _, path := range event.Payload.PhotoPaths {
		var err error
		for attempt := 1; attempt <= w.maxRetries; attempt++ {
			if err = w.files.Remove(path); err == nil {
				break
			}
			if attempt < w.maxRetries && !w.Pause(ctx, retryDelay) {
				break
			}
		}

		if err != nil {
			w.Logger().Error("Failed to remove photo",
				zap.String("tree_id", event.EntityID),
				zap.String("path", path),
				zap.Error(err))
			continue
		}
		removed++
	}

	w.Logger().Info("Tree photos cleaned up",
		zap.String("tree_id", event.EntityID),
		zap.Int("removed", removed),
		zap.Int("total", len(event.Payload.PhotoPaths)))
	return removed
}
