package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/observing/pkg/logger"
)

type kind string

func (k kind) String() string { return string(k) }

func TestGroup(t *testing.T) {
	attr := logger.Group("event", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "event", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestPanic(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{name: "string", value: "boom", want: "boom"},
		{name: "error", value: errors.New("bad emitter"), want: "bad emitter"},
		{name: "other", value: 42, want: "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			attr := logger.Panic(tt.value)
			require.Equal(t, "panic", attr.Key)
			assert.Equal(t, tt.want, attr.Value.String())
		})
	}

	assert.True(t, logger.Panic(nil).Equal(slog.Attr{}))
}

func TestDomainAttrs(t *testing.T) {
	tests := []struct {
		name string
		attr slog.Attr
		key  string
		want any
	}{
		{name: "component", attr: logger.Component("observe"), key: "component", want: "observe"},
		{name: "queue", attr: logger.Queue("main"), key: "queue", want: "main"},
		{name: "queue id", attr: logger.QueueID("q-1"), key: "queue_id", want: "q-1"},
		{name: "subscription id", attr: logger.SubscriptionID("s-1"), key: "subscription_id", want: "s-1"},
		{name: "change", attr: logger.Change(kind("insertion")), key: "change", want: "insertion"},
		{name: "index", attr: logger.Index(3), key: "index", want: int64(3)},
		{name: "subscribers", attr: logger.Subscribers(2), key: "subscribers", want: int64(2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.want, tt.attr.Value.Any())
		})
	}

	assert.True(t, logger.QueueID(nil).Equal(slog.Attr{}))
	assert.True(t, logger.SubscriptionID(nil).Equal(slog.Attr{}))
}
