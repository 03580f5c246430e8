package observe

import (
	"bytes"
	"errors"
	"log/slog"
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/observing/pkg/logger"
)

func watchSequence[T any](t *testing.T, s *Sequence[T]) (*recorder[SequenceEvent[T]], func()) {
	t.Helper()
	obs := &mockObserver{}
	rec := &recorder[SequenceEvent[T]]{}
	Watch(s, obs, func(e SequenceEvent[T], _ *mockObserver) { rec.record(e) })
	return rec, func() { runtime.KeepAlive(obs) }
}

func TestSequence_Accessors(t *testing.T) {
	q := newTestQueue(t)

	empty := NewComparableSequence[int](nil, WithQueue(q))
	assert.True(t, empty.IsEmpty())
	assert.Zero(t, empty.Len())
	_, ok := empty.First()
	assert.False(t, ok)
	_, ok = empty.Last()
	assert.False(t, ok)

	initial := []int{1, 2, 3}
	s := NewComparableSequence(initial, WithQueue(q))
	initial[0] = 100
	assert.Equal(t, []int{1, 2, 3}, s.Values(), "constructor must copy the initial slice")

	values := s.Values()
	values[1] = 200
	assert.Equal(t, []int{1, 2, 3}, s.Values(), "Values must return a copy")

	first, ok := s.First()
	assert.True(t, ok)
	assert.Equal(t, 1, first)
	last, ok := s.Last()
	assert.True(t, ok)
	assert.Equal(t, 3, last)
	assert.Equal(t, 3, s.Len())
	assert.False(t, s.IsEmpty())

	v, err := s.At(1)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	_, err = s.At(3)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = s.At(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestSequence_Append(t *testing.T) {
	q := newTestQueue(t)
	s := NewComparableSequence([]int{1}, WithQueue(q))
	rec, keep := watchSequence(t, s)
	defer keep()

	s.Append(2)
	flush(t, q)

	got := rec.all()
	require.Len(t, got, 1)
	assert.Equal(t, Change[int]{Kind: Insertion, Element: 2, Index: 1}, got[0].Change)
	assert.Len(t, got[0].Old, 1)
	assert.Len(t, got[0].New, 2)
	assert.Equal(t, []int{1, 2}, got[0].New)
}

func TestSequence_Insert(t *testing.T) {
	q := newTestQueue(t)
	s := NewComparableSequence([]int{1, 3}, WithQueue(q))
	rec, keep := watchSequence(t, s)
	defer keep()

	require.NoError(t, s.Insert(1, 2))
	require.NoError(t, s.Insert(0, 0))
	require.NoError(t, s.Insert(4, 4))
	flush(t, q)

	assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Values())
	got := rec.all()
	require.Len(t, got, 3)
	assert.Equal(t, Change[int]{Kind: Insertion, Element: 2, Index: 1}, got[0].Change)
	assert.Equal(t, Change[int]{Kind: Insertion, Element: 0, Index: 0}, got[1].Change)
	assert.Equal(t, Change[int]{Kind: Insertion, Element: 4, Index: 4}, got[2].Change)

	t.Run("out of range", func(t *testing.T) {
		for _, idx := range []int{-1, 6} {
			err := s.Insert(idx, 9)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)

			var ierr *IndexError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, "insert", ierr.Op)
			assert.Equal(t, idx, ierr.Index)
			assert.Equal(t, 5, ierr.Len)
		}
		flush(t, q)
		assert.Len(t, rec.all(), 3, "failed insert must not notify")
		assert.Equal(t, []int{0, 1, 2, 3, 4}, s.Values())
	})
}

func TestSequence_Extend(t *testing.T) {
	q := newTestQueue(t)
	s := NewComparableSequence([]string{"a"}, WithQueue(q))
	rec, keep := watchSequence(t, s)
	defer keep()

	s.Extend("b", "c")
	flush(t, q)

	assert.Equal(t, []string{"a", "b", "c"}, s.Values())
	got := rec.all()
	require.Len(t, got, 2)
	assert.Equal(t, Change[string]{Kind: Insertion, Element: "b", Index: 1}, got[0].Change)
	assert.Equal(t, Change[string]{Kind: Insertion, Element: "c", Index: 2}, got[1].Change)
}

func TestSequence_Replace(t *testing.T) {
	t.Run("different value notifies", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewComparableSequence([]int{1}, WithQueue(q))
		rec, keep := watchSequence(t, s)
		defer keep()

		require.NoError(t, s.Replace(0, 2))
		flush(t, q)

		got := rec.all()
		require.Len(t, got, 1)
		assert.Equal(t, Change[int]{Kind: Replacement, Element: 2, Index: 0}, got[0].Change)
		assert.Equal(t, []int{1}, got[0].Old)
		assert.Equal(t, []int{2}, got[0].New)
	})

	t.Run("equal value is suppressed", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewComparableSequence([]int{1}, WithQueue(q))
		rec, keep := watchSequence(t, s)
		defer keep()

		require.NoError(t, s.Replace(0, 1))
		flush(t, q)

		assert.Empty(t, rec.all())
	})

	t.Run("suppressed replacement is stored", func(t *testing.T) {
		type cell struct {
			key   string
			label string
		}
		q := newTestQueue(t)
		s := NewSequence([]cell{{"a", "old"}}, EqualFunc(func(x, y cell) bool { return x.key == y.key }), WithQueue(q))
		rec, keep := watchSequence(t, s)
		defer keep()

		require.NoError(t, s.Replace(0, cell{"a", "new"}))
		flush(t, q)

		assert.Empty(t, rec.all())
		v, err := s.At(0)
		require.NoError(t, err)
		assert.Equal(t, "new", v.label)
	})

	t.Run("nil policy always notifies", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewSequence([]int{1}, nil, WithQueue(q))
		rec, keep := watchSequence(t, s)
		defer keep()

		require.NoError(t, s.Replace(0, 1))
		flush(t, q)

		assert.Len(t, rec.all(), 1)
	})

	t.Run("out of range", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewComparableSequence([]int{1}, WithQueue(q))

		assert.ErrorIs(t, s.Replace(1, 5), ErrOutOfRange)
		assert.ErrorIs(t, s.Replace(-1, 5), ErrOutOfRange)
		assert.Equal(t, []int{1}, s.Values())
	})
}

func TestSequence_Set(t *testing.T) {
	q := newTestQueue(t)
	s := NewComparableSequence([]int{1}, WithQueue(q))
	rec, keep := watchSequence(t, s)
	defer keep()

	next := []int{2}
	s.Set(next)
	s.Set([]int{2})
	next[0] = 99
	flush(t, q)

	got := rec.all()
	require.Len(t, got, 2, "wholesale assignment is never suppressed")
	for _, e := range got {
		assert.Equal(t, Setting, e.Change.Kind)
		assert.Equal(t, -1, e.Change.Index)
		assert.Equal(t, []int{2}, e.New)
	}
	assert.Equal(t, []int{1}, got[0].Old)
	assert.Equal(t, []int{2}, s.Values(), "Set must copy its argument")

	t.Run("assign sugar", func(t *testing.T) {
		Assign(s, []int{3, 4})
		flush(t, q)
		assert.Equal(t, []int{3, 4}, s.Values())
		assert.Len(t, rec.all(), 3)
	})
}

func TestSequence_Remove(t *testing.T) {
	t.Run("remove at index", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewComparableSequence([]int{1, 2, 3}, WithQueue(q))
		rec, keep := watchSequence(t, s)
		defer keep()

		v, err := s.RemoveAt(1)
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		flush(t, q)

		got := rec.all()
		require.Len(t, got, 1)
		assert.Equal(t, Change[int]{Kind: Removal, Element: 2, Index: 1}, got[0].Change)
		assert.Equal(t, []int{1, 2, 3}, got[0].Old)
		assert.Equal(t, []int{1, 3}, got[0].New)
	})

	t.Run("remove last", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewComparableSequence([]int{1, 2}, WithQueue(q))

		v, err := s.RemoveLast()
		require.NoError(t, err)
		assert.Equal(t, 2, v)
		assert.Equal(t, []int{1}, s.Values())
	})

	t.Run("remove all emits one removal per element from the tail", func(t *testing.T) {
		q := newTestQueue(t)
		s := NewComparableSequence([]int{1, 2, 3}, WithQueue(q))
		rec, keep := watchSequence(t, s)
		defer keep()

		s.RemoveAll()
		flush(t, q)

		assert.Zero(t, s.Len())
		got := rec.all()
		require.Len(t, got, 3)
		assert.Equal(t, Change[int]{Kind: Removal, Element: 3, Index: 2}, got[0].Change)
		assert.Equal(t, Change[int]{Kind: Removal, Element: 2, Index: 1}, got[1].Change)
		assert.Equal(t, Change[int]{Kind: Removal, Element: 1, Index: 0}, got[2].Change)
		assert.Empty(t, got[2].New)
	})

	t.Run("errors leave the sequence unchanged", func(t *testing.T) {
		q := newTestQueue(t)
		empty := NewComparableSequence[int](nil, WithQueue(q))

		_, err := empty.RemoveLast()
		assert.ErrorIs(t, err, ErrEmpty)
		assert.Contains(t, err.Error(), "remove last")

		_, err = empty.RemoveAt(0)
		assert.ErrorIs(t, err, ErrEmpty)

		s := NewComparableSequence([]int{1}, WithQueue(q))
		_, err = s.RemoveAt(1)
		assert.ErrorIs(t, err, ErrOutOfRange)
		assert.NotErrorIs(t, err, ErrEmpty)
		assert.Equal(t, []int{1}, s.Values())
	})
}

func TestSequence_SnapshotsAreStable(t *testing.T) {
	q := newTestQueue(t)
	s := NewComparableSequence([]int{1}, WithQueue(q))
	obs := &mockObserver{}

	gate := make(chan struct{})
	q.Async(func() { <-gate })

	var rec recorder[SequenceEvent[int]]
	Watch(s, obs, func(e SequenceEvent[int], _ *mockObserver) {
		rec.record(e)
	})
	WatchOn(s, obs, q, func(e SequenceEvent[int], _ *mockObserver) {
		if len(e.New) > 0 {
			e.New[0] = -1
		}
	})

	s.Append(2)
	require.NoError(t, s.Replace(0, 10))
	s.RemoveAll()
	close(gate)
	flush(t, q)

	got := rec.all()
	require.Len(t, got, 4)
	assert.Equal(t, []int{1, 2}, got[0].New, "later mutations must not change delivered events")
	assert.Equal(t, []int{10, 2}, got[1].New)
	assert.Equal(t, []int{1, 2}, got[1].Old)
	runtime.KeepAlive(obs)
}

func TestSequence_UnwatchAndExpiry(t *testing.T) {
	q := newTestQueue(t)
	s := NewComparableSequence([]int{1}, WithQueue(q))
	gone := &mockObserver{}
	stays := &mockObserver{}

	var goneCalls, stayCalls atomic.Int32
	Watch(s, gone, func(SequenceEvent[int], *mockObserver) { goneCalls.Add(1) })
	Watch(s, stays, func(SequenceEvent[int], *mockObserver) { stayCalls.Add(1) })

	s.Unwatch(gone)
	s.Set([]int{2})
	flush(t, q)

	assert.Zero(t, goneCalls.Load())
	assert.Equal(t, int32(1), stayCalls.Load())
	assert.Same(t, q, s.DefaultQueue())
	runtime.KeepAlive(gone)
	runtime.KeepAlive(stays)
}

func TestSequence_LogsChanges(t *testing.T) {
	buf := &bytes.Buffer{}
	q := newTestQueue(t)
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
	s := NewComparableSequence([]string{"a"}, WithQueue(q), WithLogger(log))

	require.NoError(t, s.Insert(1, "b"))

	assert.Contains(t, buf.String(), "sequence changed")
	assert.Contains(t, buf.String(), `"change":"insertion"`)
	assert.Contains(t, buf.String(), `"index":1`)
}
