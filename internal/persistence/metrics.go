package persistence

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

var (
	meter             = otel.Meter("persistence")
	UnitOfWorkCommits metric.Int64Counter
)

func init() {
	var err error
	UnitOfWorkCommits, err = meter.Int64Counter(
		"unit_of_work_commits_total",
		metric.WithDescription("Total unit of work commits by outcome"),
	)
	if err != nil {
		panic(err)
	}
}

// RecordCommit records the outcome of a unit of work commit.
func RecordCommit(ctx context.Context, outcome string) {
	UnitOfWorkCommits.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
	))
}
