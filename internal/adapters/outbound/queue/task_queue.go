// Package queue provides the in-process background task queue shared by
// request-scoped producers and the single background worker.
package queue

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/xbensieve/room-booking-api/internal/domain"
)

// TaskQueue is a concurrency-safe FIFO of work items. Any number of producers
// may call Enqueue; Dequeue is meant for a single consumer.
//
// Items live in memory only: whatever is still queued when the process stops is lost.
type TaskQueue struct {
	mu           sync.Mutex
	items        []domain.WorkItem
	capacity     int
	closed       bool
	notify       chan struct{}
	done         chan struct{}
	timeProvider domain.CurrentTimeProvider
	newID        func() uuid.UUID
}

// NewTaskQueue creates a new TaskQueue. A capacity of zero or less means unbounded.
func NewTaskQueue(capacity int, timeProvider domain.CurrentTimeProvider) *TaskQueue {
	return &TaskQueue{
		capacity:     capacity,
		notify:       make(chan struct{}, 1),
		done:         make(chan struct{}),
		timeProvider: timeProvider,
		newID:        uuid.New,
	}
}

// Enqueue appends item to the tail of the queue. It never waits for the consumer:
// a bounded queue that is full rejects the item with domain.ErrQueueFull.
func (q *TaskQueue) Enqueue(item domain.WorkItem) error {
	if item.Run == nil {
		return domain.NewValidationErr("work item must have a body")
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return domain.ErrQueueClosed
	}
	if q.capacity > 0 && len(q.items) >= q.capacity {
		q.mu.Unlock()
		RecordRejected(context.Background(), item.Name)
		return fmt.Errorf("%w: capacity %d reached", domain.ErrQueueFull, q.capacity)
	}
	if item.ID == uuid.Nil {
		item.ID = q.newID()
	}
	item.EnqueuedAt = q.timeProvider.Now()
	q.items = append(q.items, item)
	q.mu.Unlock()

	QueueDepth.Add(context.Background(), 1)

	select {
	case q.notify <- struct{}{}:
	default:
	}
	return nil
}

// Dequeue removes and returns the head item. While the queue is empty it waits
// until an item arrives or ctx is done, in which case ctx.Err() is returned.
// A closed queue keeps handing out the remaining items and then returns
// domain.ErrQueueClosed.
func (q *TaskQueue) Dequeue(ctx context.Context) (domain.WorkItem, error) {
	for {
		if err := ctx.Err(); err != nil {
			return domain.WorkItem{}, err
		}

		q.mu.Lock()
		if len(q.items) > 0 {
			item := q.items[0]
			q.items[0] = domain.WorkItem{}
			q.items = q.items[1:]
			if len(q.items) == 0 {
				q.items = nil
			}
			q.mu.Unlock()

			QueueDepth.Add(ctx, -1)
			return item, nil
		}
		closed := q.closed
		q.mu.Unlock()

		if closed {
			return domain.WorkItem{}, domain.ErrQueueClosed
		}

		select {
		case <-ctx.Done():
			return domain.WorkItem{}, ctx.Err()
		case <-q.notify:
		case <-q.done:
		}
	}
}

// Len returns the number of items waiting in the queue.
func (q *TaskQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops accepting new items and wakes up a waiting consumer.
// Items already queued can still be dequeued. Calling Close more than once is a no-op.
func (q *TaskQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return
	}
	q.closed = true
	close(q.done)
}

// InitTaskQueue is responsible for initializing the background task queue.
// The same instance is registered twice: producers resolve domain.TaskQueue,
// while the background worker resolves the concrete *TaskQueue to consume it.
type InitTaskQueue struct {
	queue        *TaskQueue
	Logger       *log.Logger                `resolve:""`
	TimeProvider domain.CurrentTimeProvider `resolve:""`
	Capacity     int                        `config:"BACKGROUND_QUEUE_CAPACITY" default:"0"`
}

// Initialize creates the queue and registers it in the dependency container.
func (i *InitTaskQueue) Initialize(ctx context.Context) (context.Context, error) {
	i.queue = NewTaskQueue(i.Capacity, i.TimeProvider)

	depend.Register(i.queue)
	depend.Register[domain.TaskQueue](i.queue)

	if i.Capacity > 0 {
		i.Logger.Printf("InitTaskQueue: bounded background queue with capacity %d", i.Capacity)
	} else {
		i.Logger.Println("InitTaskQueue: unbounded background queue")
	}
	return ctx, nil
}

// Close closes the queue and reports the items that will never run.
func (i *InitTaskQueue) Close() {
	if i.queue == nil {
		return
	}
	i.queue.Close()
	if pending := i.queue.Len(); pending > 0 {
		i.Logger.Printf("InitTaskQueue: %d queued work items discarded on shutdown", pending)
	}
}
