package usecases

import (
	"context"
	"fmt"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// PublishNotification defines the interface for the PublishNotification use case.
type PublishNotification interface {
	Execute(ctx context.Context, n domain.Notification) error
}

// PublishNotificationImpl is the implementation of the PublishNotification use case.
// It runs as background work, after the operation that produced the notification committed.
type PublishNotificationImpl struct {
	publisher domain.NotificationPublisher
}

// NewPublishNotificationImpl creates a new instance of PublishNotificationImpl.
func NewPublishNotificationImpl(publisher domain.NotificationPublisher) PublishNotificationImpl {
	return PublishNotificationImpl{
		publisher: publisher,
	}
}

// Execute delivers n to the notification transport.
func (p PublishNotificationImpl) Execute(ctx context.Context, n domain.Notification) error {
	spanCtx, span := telemetry.Start(ctx, trace.WithAttributes(
		attribute.String("notification_type", string(n.Type)),
		attribute.Int("entity_id", n.EntityID),
	))
	defer span.End()

	if err := p.publisher.Publish(spanCtx, n); telemetry.RecordErrorAndStatus(span, err) {
		RecordNotificationPublished(spanCtx, string(n.Type), "failed")
		return fmt.Errorf("publish notification %s: %w", n.ID, err)
	}
	RecordNotificationPublished(spanCtx, string(n.Type), "published")
	return nil
}

// InitPublishNotification initializes the PublishNotification use case and registers it in the dependency container.
type InitPublishNotification struct {
	Publisher domain.NotificationPublisher `resolve:""`
}

// Initialize registers the PublishNotificationImpl use case in the dependency container.
func (i InitPublishNotification) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[PublishNotification](NewPublishNotificationImpl(i.Publisher))
	return ctx, nil
}
