package workers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/xbensieve/room-booking-api/internal/adapters/outbound/queue"
	"github.com/xbensieve/room-booking-api/internal/domain"
	"github.com/xbensieve/room-booking-api/internal/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// WorkerState represents the lifecycle state of the BackgroundWorker.
type WorkerState int32

const (
	// WorkerState_STOPPED means the worker is not consuming the queue.
	WorkerState_STOPPED WorkerState = iota
	// WorkerState_RUNNING means the worker is consuming the queue.
	WorkerState_RUNNING
	// WorkerState_DRAINING means shutdown was requested and the current item is finishing.
	WorkerState_DRAINING
)

// String returns the state name.
func (s WorkerState) String() string {
	switch s {
	case WorkerState_RUNNING:
		return "RUNNING"
	case WorkerState_DRAINING:
		return "DRAINING"
	default:
		return "STOPPED"
	}
}

var errWorkItemPanic = errors.New("work item panicked")

// BackgroundWorker is the single consumer of the background task queue.
// It runs one item at a time in FIFO order. A failing or panicking item is
// logged and counted, and never stops the loop.
type BackgroundWorker struct {
	Queue               *queue.TaskQueue `resolve:""`
	Logger              *log.Logger      `resolve:""`
	ItemTimeout         time.Duration    `config:"BACKGROUND_ITEM_TIMEOUT" default:"0s"`
	state               atomic.Int32
	workerExecutionChan chan struct{}
}

// State returns the current lifecycle state of the worker.
func (w *BackgroundWorker) State() WorkerState {
	return WorkerState(w.state.Load())
}

// Run consumes the queue until ctx is canceled or the queue is closed.
// The item in progress when ctx is canceled runs to completion; items still
// queued at that point are abandoned.
func (w *BackgroundWorker) Run(ctx context.Context) error {
	w.state.Store(int32(WorkerState_RUNNING))
	stopDraining := context.AfterFunc(ctx, func() {
		w.state.CompareAndSwap(int32(WorkerState_RUNNING), int32(WorkerState_DRAINING))
	})
	defer stopDraining()

	w.Logger.Println("BackgroundWorker: running...")
	for {
		item, err := w.Queue.Dequeue(ctx)
		if err != nil {
			if !errors.Is(err, domain.ErrQueueClosed) && ctx.Err() == nil {
				w.Logger.Printf("BackgroundWorker: unexpected dequeue error: %v", err)
			}
			break
		}

		w.process(ctx, item)

		if w.workerExecutionChan != nil {
			w.workerExecutionChan <- struct{}{}
		}
	}

	w.state.Store(int32(WorkerState_STOPPED))
	if abandoned := w.Queue.Len(); abandoned > 0 {
		w.Logger.Printf("BackgroundWorker: stopping, %d queued work items abandoned", abandoned)
	} else {
		w.Logger.Println("BackgroundWorker: stopping...")
	}
	return nil
}

// process executes a single item detached from the shutdown signal, bounded by ItemTimeout when set.
func (w *BackgroundWorker) process(ctx context.Context, item domain.WorkItem) {
	itemCtx := context.WithoutCancel(ctx)
	if w.ItemTimeout > 0 {
		var cancel context.CancelFunc
		itemCtx, cancel = context.WithTimeout(itemCtx, w.ItemTimeout)
		defer cancel()
	}

	spanCtx, span := telemetry.Start(itemCtx, trace.WithAttributes(
		attribute.String("work_item", item.Name),
		attribute.String("work_item_id", item.ID.String()),
	))
	defer span.End()

	start := time.Now()
	err := runSafe(spanCtx, item)
	elapsed := time.Since(start)

	outcome := "succeeded"
	if telemetry.RecordErrorAndStatus(span, err) {
		outcome = "failed"
		if errors.Is(err, errWorkItemPanic) {
			outcome = "panicked"
		}
		w.Logger.Printf("BackgroundWorker: work item %s (%s) %s after %s: %v", item.Name, item.ID, outcome, elapsed, err)
	}
	RecordWorkItem(spanCtx, item.Name, outcome, elapsed)
}

func runSafe(ctx context.Context, item domain.WorkItem) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errWorkItemPanic, r)
		}
	}()
	return item.Run(ctx)
}
