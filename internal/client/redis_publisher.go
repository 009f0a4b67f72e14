package client

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"match-service/internal/metrics"
)

const redisPublishEndpoint = "redis:publish"

// UserChannel returns the pub/sub channel the notification service listens on for a user.
func UserChannel(userID fmt.Stringer) string {
	return fmt.Sprintf("notifications:user:%s", userID.String())
}

// redisPublisher fans events out over Redis pub/sub, one channel per target user
type redisPublisher struct {
	rdb     *redis.Client
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// NewRedisPublisher creates a NotificationClient that publishes to Redis
// Publishes are recorded as external calls without an HTTP status.
func NewRedisPublisher(rdb *redis.Client, logger *zap.Logger, m *metrics.Metrics) NotificationClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisPublisher{rdb: rdb, logger: logger, metrics: m}
}

func (p *redisPublisher) SendNotification(ctx context.Context, event NotificationEvent) error {
	return p.SendBulkNotifications(ctx, []NotificationEvent{event})
}

// SendBulkNotifications pipelines one PUBLISH per event
func (p *redisPublisher) SendBulkNotifications(ctx context.Context, events []NotificationEvent) error {
	if len(events) == 0 {
		return nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	pipe := p.rdb.Pipeline()
	for i := range events {
		if events[i].OccurredAt == "" {
			events[i].OccurredAt = now
		}
		payload, err := json.Marshal(events[i])
		if err != nil {
			return fmt.Errorf("failed to marshal notification: %w", err)
		}
		pipe.Publish(ctx, UserChannel(events[i].TargetUserID), payload)
	}

	start := time.Now()
	_, err := pipe.Exec(ctx)
	p.metrics.RecordExternalAPICall(redisPublishEndpoint, "PUBLISH", 0, time.Since(start), err)
	if err != nil {
		return fmt.Errorf("failed to publish notifications: %w", err)
	}

	p.logger.Debug("Notifications published", zap.Int("count", len(events)))
	return nil
}
