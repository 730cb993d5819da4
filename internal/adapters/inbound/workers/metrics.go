package workers

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter            = otel.Meter("workers")
	WorkItems        metric.Int64Counter
	WorkItemDuration metric.Float64Histogram
)

func init() {
	var err error
	WorkItems, err = meter.Int64Counter(
		"background_work_items_total",
		metric.WithDescription("Total background work items executed by outcome"),
	)
	if err != nil {
		panic(err)
	}

	WorkItemDuration, err = meter.Float64Histogram(
		"background_work_item_duration_seconds",
		metric.WithDescription("Execution time of background work items"),
		metric.WithUnit("s"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordWorkItem records the outcome and execution time of a work item.
func RecordWorkItem(ctx context.Context, name, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("work_item", name),
		attribute.String("outcome", outcome),
	)
	WorkItems.Add(ctx, 1, attrs)
	WorkItemDuration.Record(ctx, elapsed.Seconds(), attrs)
}
