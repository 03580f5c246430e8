package dispatch

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/dmitrymomot/observing/pkg/logger"
)

// Queue schedules tasks for asynchronous execution.
// Async must never block the caller and must be safe for concurrent use.
type Queue interface {
	// Name returns a human-readable queue label used in logs.
	Name() string

	// Async schedules task and returns immediately.
	Async(task func())
}

// runTask executes task and recovers a panic so one failing task cannot stop
// the queue or affect tasks scheduled after it.
func runTask(log *slog.Logger, name string, id uuid.UUID, task func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("dispatch: task panicked",
				logger.Component("dispatch"),
				logger.Queue(name),
				logger.QueueID(id.String()),
				logger.Panic(r),
			)
		}
	}()
	task()
}
