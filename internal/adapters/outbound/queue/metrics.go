package queue

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter         = otel.Meter("queue")
	QueueDepth    metric.Int64UpDownCounter
	RejectedItems metric.Int64Counter
)

func init() {
	var err error
	QueueDepth, err = meter.Int64UpDownCounter(
		"background_queue_depth",
		metric.WithDescription("Work items waiting in the background task queue"),
	)
	if err != nil {
		panic(err)
	}

	RejectedItems, err = meter.Int64Counter(
		"background_queue_rejected_total",
		metric.WithDescription("Work items rejected because the background task queue was full"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordRejected records a work item rejected by a full queue.
func RecordRejected(ctx context.Context, name string) {
	RejectedItems.Add(ctx, 1, metric.WithAttributes(
		attribute.String("work_item", name),
	))
}
