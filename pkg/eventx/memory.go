package eventx

import (
	"context"
	"sync"
	"time"
)

type delayedEvent struct {
	readyAt time.Time
	event   *Event
}

// MemoryQueue is an in-process Queue used when Redis is not configured.
// Events are lost on restart.
type MemoryQueue struct {
	ready chan *Event

	mu      sync.Mutex
	delayed []delayedEvent
	now     func() time.Time
}

var (
	_ Queue         = (*MemoryQueue)(nil)
	_ StatsReporter = (*MemoryQueue)(nil)
)

func NewMemoryQueue(size int) *MemoryQueue {
	if size <= 0 {
		size = 256
	}
	return &MemoryQueue{
		ready: make(chan *Event, size),
		now:   time.Now,
	}
}

func (q *MemoryQueue) Enqueue(ctx context.Context, ev *Event) error {
	select {
	case q.ready <- ev:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *MemoryQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Event, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev := <-q.ready:
		return ev, nil
	case <-timer.C:
		return nil, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (q *MemoryQueue) EnqueueDelayed(ctx context.Context, ev *Event, delay time.Duration) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.delayed = append(q.delayed, delayedEvent{readyAt: q.now().Add(delay), event: ev})
	return nil
}

// MoveDelayedToReady moves due events to the ready channel. Events that do
// not fit stay delayed until the next call.
func (q *MemoryQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.now()
	moved := 0
	pending := q.delayed[:0]
	for _, d := range q.delayed {
		if d.readyAt.After(now) {
			pending = append(pending, d)
			continue
		}
		select {
		case q.ready <- d.event:
			moved++
		default:
			pending = append(pending, d)
		}
	}
	q.delayed = pending
	return moved, nil
}

func (q *MemoryQueue) Stats(ctx context.Context) (QueueStats, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return QueueStats{Ready: int64(len(q.ready)), Delayed: int64(len(q.delayed))}, nil
}
