package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/forest-management-gis/internal/domain"
	"github.com/forest-management-gis/internal/domain/repository"
)

const (
	// consumeBlock - сколько ConsumeBatch ждёт новых сообщений
	consumeBlock = time.Second
	// streamMaxLen - примерный предел длины стрима, старые события вытесняются
	streamMaxLen = 10000
)

type streamRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewStreamRepository создает новый экземпляр StreamRepository
func NewStreamRepository(client *redis.Client, logger *zap.Logger) repository.StreamRepository {
	return &streamRepository{
		client: client,
		logger: logger,
	}
}

// CreateConsumerGroup создаёт consumer group для стрима.
// Группа читает только новые сообщения ("$"), MKSTREAM создаёт стрим при отсутствии.
func (r *streamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	err := r.client.XGroupCreateMkStream(ctx, stream, group, "$").Err()
	if err != nil {
		if strings.HasPrefix(err.Error(), "BUSYGROUP") {
			r.logger.Debug("Consumer group already exists",
				zap.String("stream", stream),
				zap.String("group", group))
			return nil
		}
		r.logger.Error("Failed to create consumer group",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	r.logger.Info("Consumer group created successfully",
		zap.String("stream", stream),
		zap.String("group", group))
	return nil
}

// ConsumeBatch читает до maxCount непрочитанных сообщений группы
func (r *streamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	result, err := r.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(maxCount),
		Block:    consumeBlock,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read from stream: %w", err)
	}

	var raw []redis.XMessage
	for _, st := range result {
		raw = append(raw, st.Messages...)
	}
	return r.toStreamMessages(ctx, stream, group, raw), nil
}

// ClaimStale забирает себе сообщения группы, которые висят в pending дольше minIdle:
// их читатель упал, не успев подтвердить
func (r *streamRepository) ClaimStale(ctx context.Context, stream, group, consumer string, minIdle time.Duration, maxCount int) ([]domain.StreamMessage, error) {
	claimed, _, err := r.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   stream,
		Group:    group,
		Consumer: consumer,
		MinIdle:  minIdle,
		Start:    "0-0",
		Count:    int64(maxCount),
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to claim pending messages: %w", err)
	}

	if len(claimed) > 0 {
		r.logger.Info("Claimed stale messages",
			zap.String("stream", stream),
			zap.String("consumer", consumer),
			zap.Int("count", len(claimed)))
	}
	return r.toStreamMessages(ctx, stream, group, claimed), nil
}

// toStreamMessages достаёт поле "data"; сообщения без него сразу подтверждаются,
// иначе они навсегда остались бы в pending
func (r *streamRepository) toStreamMessages(ctx context.Context, stream, group string, raw []redis.XMessage) []domain.StreamMessage {
	messages := make([]domain.StreamMessage, 0, len(raw))
	for _, msg := range raw {
		data, ok := msg.Values["data"].(string)
		if !ok {
			r.logger.Warn("Message does not contain 'data' field",
				zap.String("message_id", msg.ID))
			if err := r.client.XAck(ctx, stream, group, msg.ID).Err(); err != nil {
				r.logger.Warn("Failed to ack malformed message", zap.String("message_id", msg.ID), zap.Error(err))
			}
			continue
		}
		messages = append(messages, domain.StreamMessage{ID: msg.ID, Data: data})
	}
	return messages
}

// AckMessages подтверждает обработку сообщений
func (r *streamRepository) AckMessages(ctx context.Context, stream, group string, messageIDs []string) error {
	if len(messageIDs) == 0 {
		return nil
	}

	if err := r.client.XAck(ctx, stream, group, messageIDs...).Err(); err != nil {
		r.logger.Error("Failed to acknowledge messages",
			zap.String("stream", stream),
			zap.String("group", group),
			zap.Int("count", len(messageIDs)),
			zap.Error(err))
		return fmt.Errorf("failed to acknowledge messages: %w", err)
	}

	r.logger.Debug("Messages acknowledged", zap.Int("count", len(messageIDs)))
	return nil
}

// PublishToStream публикует сообщение в стрим
func (r *streamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		r.logger.Error("Failed to marshal data",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to marshal data: %w", err)
	}

	result, err := r.client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: streamMaxLen,
		Approx: true,
		Values: map[string]interface{}{
			"data": string(jsonData),
		},
	}).Result()
	if err != nil {
		r.logger.Error("Failed to publish to stream",
			zap.String("stream", stream),
			zap.Error(err))
		return fmt.Errorf("failed to publish to stream: %w", err)
	}

	r.logger.Debug("Message published to stream",
		zap.String("stream", stream),
		zap.String("message_id", result))
	return nil
}
