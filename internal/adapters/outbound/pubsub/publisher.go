package pubsub

import (
	"context"
	"strconv"
	"time"

	pubsubV2 "cloud.google.com/go/pubsub/v2"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// NotificationPublisher implements domain.NotificationPublisher using Google Cloud Pub/Sub.
// Every notification is published to a single topic; the notification type travels as
// a message attribute so subscribers can filter on it.
type NotificationPublisher struct {
	client *pubsubV2.Client
	topic  string
}

// NewNotificationPublisher creates a new instance of NotificationPublisher.
func NewNotificationPublisher(client *pubsubV2.Client, topic string) NotificationPublisher {
	return NotificationPublisher{
		client: client,
		topic:  topic,
	}
}

// Publish publishes n and waits for the server acknowledgement.
func (p NotificationPublisher) Publish(ctx context.Context, n domain.Notification) error {
	spanCtx, span := telemetry.Start(ctx,
		trace.WithAttributes(
			attribute.String("notification_id", n.ID.String()),
			attribute.String("notification_type", string(n.Type)),
			attribute.String("topic", p.topic),
		),
	)
	defer span.End()

	result := p.client.Publisher(p.topic).Publish(spanCtx, &pubsubV2.Message{
		Data: n.Payload,
		Attributes: map[string]string{
			"notification_id":   n.ID.String(),
			"notification_type": string(n.Type),
			"entity_type":       n.EntityType,
			"entity_id":         strconv.Itoa(n.EntityID),
			"recipient":         n.Recipient,
			"created_at":        n.CreatedAt.Format(time.RFC3339),
		},
	})

	_, err := result.Get(spanCtx)
	telemetry.RecordErrorAndStatus(span, err)
	return err
}

// InitPublisher registers the Pub/Sub NotificationPublisher.
type InitPublisher struct {
	Client *pubsubV2.Client `resolve:""`
	Topic  string           `config:"NOTIFICATIONS_TOPIC" default:"booking-notifications"`
}

// Initialize registers NotificationPublisher as the implementation of domain.NotificationPublisher.
func (i *InitPublisher) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.NotificationPublisher](NewNotificationPublisher(i.Client, i.Topic))
	return ctx, nil
}
