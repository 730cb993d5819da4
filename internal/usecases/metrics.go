package usecases

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter                  = otel.Meter("usecases")
	ReservationsCreated    metric.Int64Counter
	ImagesVerified         metric.Int64Counter
	NotificationsPublished metric.Int64Counter
)

func init() {
	var err error
	ReservationsCreated, err = meter.Int64Counter(
		"reservations_created_total",
		metric.WithDescription("Total reservations created"),
	)
	if err != nil {
		panic(err)
	}

	ImagesVerified, err = meter.Int64Counter(
		"hotel_images_verified_total",
		metric.WithDescription("Total hotel images probed by outcome"),
	)
	if err != nil {
		panic(err)
	}

	NotificationsPublished, err = meter.Int64Counter(
		"notifications_published_total",
		metric.WithDescription("Total notifications handed to the transport by type and outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordReservationCreated records a newly created reservation.
func RecordReservationCreated(ctx context.Context) {
	ReservationsCreated.Add(ctx, 1)
}

// RecordImageVerified records the outcome of probing one hotel image.
func RecordImageVerified(ctx context.Context, outcome string) {
	ImagesVerified.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}

// RecordNotificationPublished records the outcome of publishing a notification.
func RecordNotificationPublished(ctx context.Context, notificationType, outcome string) {
	NotificationsPublished.Add(ctx, 1, metric.WithAttributes(
		attribute.String("notification_type", notificationType),
		attribute.String("outcome", outcome),
	))
}
