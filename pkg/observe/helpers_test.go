package observe

import (
	"context"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/observing/pkg/dispatch"
	"github.com/dmitrymomot/observing/pkg/logger"
)

type mockObserver struct {
	name string
}

func newTestQueue(t *testing.T) *dispatch.Serial {
	t.Helper()
	q := dispatch.NewSerial(t.Name(), dispatch.WithLogger(logger.Discard()))
	t.Cleanup(func() { _ = q.Close() })
	return q
}

func flush(t *testing.T, q *dispatch.Serial) {
	t.Helper()
	require.NoError(t, q.Flush(context.Background()))
}

// collect runs the garbage collector until weak pointers to unreachable
// subscribers are cleared.
func collect() {
	runtime.GC()
	runtime.GC()
}

type recorder[E any] struct {
	mu     sync.Mutex
	events []E
}

func (r *recorder[E]) record(e E) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder[E]) all() []E {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]E, len(r.events))
	copy(out, r.events)
	return out
}
