package logger

import (
	"fmt"
	"log/slog"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Panic records a recovered panic value under the key "panic".
// If v is nil, it returns an empty Attr.
func Panic(v any) slog.Attr {
	if v == nil {
		return slog.Attr{}
	}
	if err, ok := v.(error); ok {
		return slog.String("panic", err.Error())
	}
	return slog.String("panic", fmt.Sprint(v))
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Queue records an executor queue name under the key "queue".
func Queue(name string) slog.Attr {
	return slog.String("queue", name)
}

// QueueID records the executor queue identifier under the key "queue_id".
// If id is nil, it returns an empty Attr.
func QueueID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("queue_id", id)
}

// SubscriptionID records the subscription identifier under the key "subscription_id".
// If id is nil, it returns an empty Attr.
func SubscriptionID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("subscription_id", id)
}

// Change records a change classification under the key "change".
func Change(kind fmt.Stringer) slog.Attr {
	if kind == nil {
		return slog.Attr{}
	}
	return slog.String("change", kind.String())
}

// Index records a sequence position under the key "index".
func Index(i int) slog.Attr {
	return slog.Int("index", i)
}

// Subscribers records a subscription count under the key "subscribers".
func Subscribers(n int) slog.Attr {
	return slog.Int("subscribers", n)
}
