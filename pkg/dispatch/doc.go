// Package dispatch provides the executor queues that observable containers
// deliver notifications on.
//
// A Queue accepts fire-and-forget tasks through Async, which never blocks.
// Two implementations are provided:
//
//   - Serial runs tasks one at a time in submission order on a dedicated
//     goroutine. Tasks submitted to the same Serial queue observe FIFO order.
//   - Concurrent runs each task on its own goroutine with no ordering.
//
// Main returns a process-wide Serial queue that containers use when no queue
// is named. Its name and drain timeout come from the environment:
//
//	DISPATCH_MAIN_QUEUE_NAME   queue label (default "main")
//	DISPATCH_SHUTDOWN_TIMEOUT  drain bound used by Run (default 5s)
//
// A host with its own event loop can install any Queue with SetMain.
//
// # Failure handling
//
// A panic inside a task is recovered and logged at error level with the
// queue name and id; later tasks still run.
//
// # Usage
//
//	q := dispatch.NewSerial("ui", dispatch.WithLogger(log))
//	defer q.Close()
//
//	q.Async(func() { render() })
//
//	// wait for everything scheduled so far
//	if err := q.Flush(ctx); err != nil {
//	    return err
//	}
//
// Serial.Run plugs into errgroup:
//
//	g, ctx := errgroup.WithContext(ctx)
//	g.Go(q.Run(ctx))
package dispatch
