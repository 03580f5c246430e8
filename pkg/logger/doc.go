// Package logger builds *slog.Logger instances for the observing packages and
// supplies the attribute helpers they log with.
//
// New creates a logger from functional options: output format (text or json),
// minimum level, static attributes and ContextExtractor callbacks that pull
// request-scoped values out of a context.Context on every record. The
// extractors run inside LogHandlerDecorator, which wraps the concrete
// slog.TextHandler or slog.JSONHandler.
//
// Attribute helpers keep key names consistent across packages:
//
//	log.Error("task panicked",
//	    logger.Component("dispatch"),
//	    logger.Queue(q.Name()),
//	    logger.Panic(r),
//	)
//
// Helpers that take an optional value (Error, Panic, QueueID, SubscriptionID)
// return an empty slog.Attr for nil input, so call sites need no nil checks.
//
// Discard returns a logger that drops everything, which is the usual choice in
// tests that do not assert on log output.
package logger
