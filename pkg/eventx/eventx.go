// Package eventx carries domain events from request handlers to the message broker.
// Handlers enqueue, a Dispatcher drains the queue and publishes with delayed retries.
package eventx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careersync/pkg/kernel"
	"github.com/Abraxas-365/careersync/pkg/logx"
	"github.com/google/uuid"
)

var ErrQueueFull = errors.New("eventx: queue is full")

type Event struct {
	ID         kernel.EventID  `json:"id"`
	Type       string          `json:"type"`
	UserID     kernel.UserID   `json:"userId"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurredAt"`
	Attempts   int             `json:"attempts"`
}

// NewEvent builds an event with a fresh id and the JSON form of payload
func NewEvent(eventType string, userID kernel.UserID, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return &Event{
		ID:         kernel.NewEventID(uuid.NewString()),
		Type:       eventType,
		UserID:     userID,
		Payload:    data,
		OccurredAt: time.Now().UTC(),
	}, nil
}

// ============================================================================
// Ports
// ============================================================================

// Enqueuer is what services depend on to emit events
type Enqueuer interface {
	Enqueue(ctx context.Context, ev *Event) error
}

// Queue is the buffer between request handlers and the dispatcher
type Queue interface {
	Enqueuer
	// Dequeue blocks up to timeout. It returns nil, nil when nothing arrived.
	Dequeue(ctx context.Context, timeout time.Duration) (*Event, error)
	EnqueueDelayed(ctx context.Context, ev *Event, delay time.Duration) error
	MoveDelayedToReady(ctx context.Context) (int, error)
}

// QueueStats are the queue sizes reported by /health
type QueueStats struct {
	Ready   int64 `json:"ready"`
	Delayed int64 `json:"delayed"`
}

// StatsReporter is implemented by queues that can report their sizes
type StatsReporter interface {
	Stats(ctx context.Context) (QueueStats, error)
}

// Publisher delivers an event to its final destination
type Publisher interface {
	Publish(ctx context.Context, ev *Event) error
}

// Emit enqueues an event and logs failures. It never fails the caller.
func Emit(ctx context.Context, q Enqueuer, eventType string, userID kernel.UserID, payload any) {
	if q == nil {
		return
	}
	ev, err := NewEvent(eventType, userID, payload)
	if err != nil {
		logx.Errorf("Failed to build event %s: %v", eventType, err)
		return
	}
	if err := q.Enqueue(ctx, ev); err != nil {
		logx.Errorf("Failed to enqueue event %s (%s): %v", ev.Type, ev.ID, err)
	}
}

// LogPublisher writes events to the log. Used when no broker is configured.
type LogPublisher struct{}

func (LogPublisher) Publish(ctx context.Context, ev *Event) error {
	logx.With("event_id", ev.ID, "user_id", ev.UserID, "attempts", ev.Attempts).
		Infof("event %s: %s", ev.Type, logx.TruncateForLog(string(ev.Payload), 512))
	return nil
}
