package dispatch

import (
	"log/slog"
	"sync"

	"github.com/dmitrymomot/observing/pkg/logger"
)

var (
	mainMu    sync.RWMutex
	mainQueue Queue
)

// Main returns the process-wide default queue. Containers deliver to it when a
// subscriber does not name a queue. Unless SetMain installed another queue,
// the first call creates a Serial queue configured from the environment.
func Main() Queue {
	mainMu.RLock()
	q := mainQueue
	mainMu.RUnlock()
	if q != nil {
		return q
	}

	mainMu.Lock()
	defer mainMu.Unlock()

	if mainQueue == nil {
		cfg, err := LoadConfig()
		if err != nil {
			slog.Default().Warn("dispatch: falling back to default main queue config",
				logger.Component("dispatch"),
				logger.Error(err),
			)
		}
		mainQueue = NewSerialFromConfig(cfg)
	}
	return mainQueue
}

// SetMain replaces the process-wide default queue and returns the previous
// one (nil if Main was never used). Passing nil makes the next Main call
// create a fresh queue. The previous queue is not closed.
func SetMain(q Queue) Queue {
	mainMu.Lock()
	defer mainMu.Unlock()

	prev := mainQueue
	mainQueue = q
	return prev
}
