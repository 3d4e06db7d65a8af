//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/forest-management-gis/internal/domain"
)

// Публикует тестовое событие tree.deleted, чтобы проверить photo-cleanup worker.
//
//	go run scripts/test_publish.go -photos uploads/a.jpg,uploads/b.png
func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	photos := flag.String("photos", "", "comma-separated photo paths to clean up")
	group := flag.String("group", "forest-photo-cleanup", "worker consumer group")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.ForestEvent{
		Type:       domain.EventTreeDeleted,
		EntityID:   uuid.NewString(),
		OccurredAt: time.Now().UTC(),
	}
	if *photos != "" {
		event.Payload.PhotoPaths = strings.Split(*photos, ",")
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamForestEvents,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamForestEvents)
	fmt.Printf("   Message ID: %s\n", result)
	fmt.Printf("   Tree ID: %s\n", event.EntityID)
	fmt.Printf("   Photos: %v\n", event.Payload.PhotoPaths)

	// Ждём, пока worker подтвердит сообщение
	fmt.Printf("\nWaiting for photo-cleanup to ack...\n")

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(1 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("Timeout: message still pending or consumer group missing")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamForestEvents).Result()
			if err != nil {
				continue
			}
			for _, g := range groups {
				// сообщение доставлено группе и уже подтверждено
				if g.Name == *group && g.LastDeliveredID >= result && g.Pending == 0 {
					fmt.Println("Message processed")
					return
				}
			}
		}
	}
}
