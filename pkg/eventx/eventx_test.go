package eventx

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEvent(t *testing.T) {
	ev, err := NewEvent("application.created", kernel.DemoUserID, map[string]string{"id": "42"})
	require.NoError(t, err)

	assert.NotEmpty(t, ev.ID)
	assert.Equal(t, "application.created", ev.Type)
	assert.Equal(t, kernel.DemoUserID, ev.UserID)
	assert.JSONEq(t, `{"id":"42"}`, string(ev.Payload))
	assert.False(t, ev.OccurredAt.IsZero())

	_, err = NewEvent("bad", kernel.DemoUserID, make(chan int))
	assert.Error(t, err)
}

func TestMemoryQueue(t *testing.T) {
	ctx := context.Background()

	t.Run("enqueue and dequeue", func(t *testing.T) {
		q := NewMemoryQueue(2)
		ev := &Event{ID: "e1", Type: "x"}
		require.NoError(t, q.Enqueue(ctx, ev))

		got, err := q.Dequeue(ctx, 10*time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, ev, got)
	})

	t.Run("timeout returns nil", func(t *testing.T) {
		q := NewMemoryQueue(1)
		got, err := q.Dequeue(ctx, 5*time.Millisecond)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("full queue", func(t *testing.T) {
		q := NewMemoryQueue(1)
		require.NoError(t, q.Enqueue(ctx, &Event{ID: "a"}))
		assert.ErrorIs(t, q.Enqueue(ctx, &Event{ID: "b"}), ErrQueueFull)
	})

	t.Run("delayed events move when due", func(t *testing.T) {
		q := NewMemoryQueue(4)
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		q.now = func() time.Time { return now }

		require.NoError(t, q.EnqueueDelayed(ctx, &Event{ID: "soon"}, time.Second))
		require.NoError(t, q.EnqueueDelayed(ctx, &Event{ID: "later"}, time.Hour))

		moved, err := q.MoveDelayedToReady(ctx)
		require.NoError(t, err)
		assert.Zero(t, moved)

		now = now.Add(2 * time.Second)
		moved, err = q.MoveDelayedToReady(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, moved)

		stats, err := q.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, QueueStats{Ready: 1, Delayed: 1}, stats)

		got, err := q.Dequeue(ctx, time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, kernel.EventID("soon"), got.ID)
	})
}

type flakyPublisher struct {
	mu        sync.Mutex
	failTimes int
	calls     int
	published []*Event
}

func (p *flakyPublisher) Publish(ctx context.Context, ev *Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	if p.calls <= p.failTimes {
		return errors.New("broker unavailable")
	}
	p.published = append(p.published, ev)
	return nil
}

func (p *flakyPublisher) snapshot() (int, []*Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls, append([]*Event(nil), p.published...)
}

func fastConfig(maxAttempts int) DispatcherConfig {
	return DispatcherConfig{
		Workers:         1,
		PollTimeout:     5 * time.Millisecond,
		DelayedInterval: 5 * time.Millisecond,
		BaseBackoff:     time.Millisecond,
		MaxAttempts:     maxAttempts,
	}
}

func TestDispatcherPublishesWithRetry(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewMemoryQueue(8)
	pub := &flakyPublisher{failTimes: 2}
	d := NewDispatcher(q, pub, fastConfig(5))
	d.Start(ctx)

	Emit(ctx, q, "application.updated", "user-1", map[string]string{"id": "1"})

	require.Eventually(t, func() bool {
		_, published := pub.snapshot()
		return len(published) == 1
	}, 2*time.Second, 5*time.Millisecond)

	calls, published := pub.snapshot()
	assert.Equal(t, 3, calls)
	assert.Equal(t, 2, published[0].Attempts)
	assert.Equal(t, "application.updated", published[0].Type)

	cancel()
	d.Wait()
}

func TestDispatcherDropsAfterMaxAttempts(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	q := NewMemoryQueue(8)
	pub := &flakyPublisher{failTimes: 100}
	d := NewDispatcher(q, pub, fastConfig(3))
	d.Start(ctx)

	require.NoError(t, q.Enqueue(ctx, &Event{ID: "e1", Type: "application.deleted", Payload: json.RawMessage(`{}`)}))

	require.Eventually(t, func() bool {
		calls, _ := pub.snapshot()
		return calls == 3
	}, 2*time.Second, 5*time.Millisecond)

	// no further attempts once dropped
	time.Sleep(50 * time.Millisecond)
	calls, published := pub.snapshot()
	assert.Equal(t, 3, calls)
	assert.Empty(t, published)

	cancel()
	d.Wait()
}

func TestEmitNilQueue(t *testing.T) {
	assert.NotPanics(t, func() {
		Emit(context.Background(), nil, "x", kernel.DemoUserID, nil)
	})
}
