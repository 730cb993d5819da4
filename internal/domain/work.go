package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// WorkFunc is the body of a deferred work item.
type WorkFunc func(ctx context.Context) error

// WorkItem is a transient unit of background work. ID and EnqueuedAt are
// stamped by the queue and only serve log correlation.
type WorkItem struct {
	ID         uuid.UUID
	Name       string
	Run        WorkFunc
	EnqueuedAt time.Time
}

// NewWorkItem creates a named work item.
func NewWorkItem(name string, run WorkFunc) WorkItem {
	return WorkItem{
		Name: name,
		Run:  run,
	}
}

// TaskQueue is the producer side of the background task queue.
type TaskQueue interface {
	// Enqueue appends item to the tail of the queue without waiting for it to run.
	Enqueue(item WorkItem) error
}
