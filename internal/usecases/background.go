package usecases

import (
	"context"
	"log"
	"strings"

	"github.com/xbensieve/room-booking-api/internal/domain"
)

// enqueueAfterCommit hands item to the background queue. The operation that
// produced it has already committed, so a rejected item is only logged.
func enqueueAfterCommit(queue domain.TaskQueue, logger *log.Logger, item domain.WorkItem) {
	if err := queue.Enqueue(item); err != nil {
		logger.Printf("background work %s not scheduled: %v", item.Name, err)
	}
}

// notificationWork wraps the delivery of n into a work item.
func notificationWork(publish PublishNotification, n domain.Notification) domain.WorkItem {
	name := "notify-" + strings.ToLower(strings.ReplaceAll(string(n.Type), ".", "-"))
	return domain.NewWorkItem(name, func(ctx context.Context) error {
		return publish.Execute(ctx, n)
	})
}
