package pubsub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"helpdesk/internal/domain/notification"
	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/logger"
)

const notificationChannel = "helpdesk:notification:created"

// NotificationCreatedEvent is the payload broadcast when a notification
// record is created, so connected instances can push it to the bell
// without the client polling.
type NotificationCreatedEvent struct {
	UUID           string `json:"uuid"`
	OrganizationID uint   `json:"organization_id"`
	RecipientID    uint   `json:"recipient_id"`
	TicketID       uint   `json:"ticket_id"`
	Kind           string `json:"kind"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	CreatedAt      int64  `json:"created_at"`
}

// NotificationEventHandler is invoked for each received event.
type NotificationEventHandler func(ctx context.Context, event NotificationCreatedEvent)

// RedisNotificationBus publishes and subscribes notification events over
// Redis Pub/Sub.
type RedisNotificationBus struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisNotificationBus(client *redis.Client, logger logger.Interface) *RedisNotificationBus {
	return &RedisNotificationBus{
		client: client,
		logger: logger,
	}
}

// NewRedisClient builds a client from the redis section of the config.
func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// PublishNotification implements the application layer's Pusher.
func (b *RedisNotificationBus) PublishNotification(ctx context.Context, n *notification.Notification) error {
	event := NotificationCreatedEvent{
		UUID:           n.UUID(),
		OrganizationID: n.OrganizationID(),
		RecipientID:    n.RecipientID(),
		TicketID:       n.TicketID(),
		Kind:           string(n.GetKind()),
		Title:          n.Title(),
		Message:        n.Message(),
		CreatedAt:      n.CreatedAt().UnixMilli(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal notification event: %w", err)
	}

	if err := b.client.Publish(ctx, notificationChannel, data).Err(); err != nil {
		b.logger.Errorw("failed to publish notification event",
			"notification_uuid", event.UUID,
			"recipient_id", event.RecipientID,
			"error", err,
		)
		return fmt.Errorf("failed to publish notification event: %w", err)
	}

	b.logger.Debugw("notification event published",
		"notification_uuid", event.UUID,
		"recipient_id", event.RecipientID,
	)
	return nil
}

// Subscribe blocks consuming notification events until ctx is done.
func (b *RedisNotificationBus) Subscribe(ctx context.Context, handler NotificationEventHandler) error {
	sub := b.client.Subscribe(ctx, notificationChannel)
	defer sub.Close()

	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to notification channel: %w", err)
	}

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event NotificationCreatedEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				b.logger.Warnw("discarding malformed notification event",
					"error", err,
				)
				continue
			}
			handler(ctx, event)
		}
	}
}
