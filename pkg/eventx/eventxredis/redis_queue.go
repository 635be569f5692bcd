package eventxredis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Abraxas-365/careersync/pkg/eventx"
	"github.com/redis/go-redis/v9"
)

// RedisQueue implements eventx.Queue on a Redis list plus a delayed sorted set
type RedisQueue struct {
	client    redis.UniversalClient
	queueName string
}

var (
	_ eventx.Queue         = (*RedisQueue)(nil)
	_ eventx.StatsReporter = (*RedisQueue)(nil)
)

func NewRedisQueue(client redis.UniversalClient, queueName string) *RedisQueue {
	return &RedisQueue{
		client:    client,
		queueName: queueName,
	}
}

func (q *RedisQueue) delayedKey() string {
	return q.queueName + ":delayed"
}

// Enqueue adds an event to the ready list
func (q *RedisQueue) Enqueue(ctx context.Context, ev *eventx.Event) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event %s: %w", ev.ID, err)
	}

	if err := q.client.LPush(ctx, q.queueName, data).Err(); err != nil {
		return fmt.Errorf("enqueue event %s: %w", ev.ID, err)
	}
	return nil
}

// Dequeue pops an event, blocking up to timeout
func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*eventx.Event, error) {
	result, err := q.client.BRPop(ctx, timeout, q.queueName).Result()
	if err != nil {
		// redis.Nil means the timeout elapsed
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("dequeue event: %w", err)
	}

	if len(result) < 2 {
		return nil, fmt.Errorf("invalid result from queue: expected 2 elements, got %d", len(result))
	}

	var ev eventx.Event
	if err := json.Unmarshal([]byte(result[1]), &ev); err != nil {
		return nil, fmt.Errorf("decode event: %w", err)
	}
	return &ev, nil
}

// EnqueueDelayed schedules an event for a later retry
func (q *RedisQueue) EnqueueDelayed(ctx context.Context, ev *eventx.Event, delay time.Duration) error {
	data, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal delayed event %s: %w", ev.ID, err)
	}

	score := float64(time.Now().Add(delay).Unix())
	if err := q.client.ZAdd(ctx, q.delayedKey(), redis.Z{
		Score:  score,
		Member: data,
	}).Err(); err != nil {
		return fmt.Errorf("enqueue delayed event %s: %w", ev.ID, err)
	}
	return nil
}

// MoveDelayedToReady moves due events to the ready list
func (q *RedisQueue) MoveDelayedToReady(ctx context.Context) (int, error) {
	now := float64(time.Now().Unix())

	events, err := q.client.ZRangeByScore(ctx, q.delayedKey(), &redis.ZRangeBy{
		Min: "-inf",
		Max: fmt.Sprintf("%f", now),
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("get delayed events: %w", err)
	}

	if len(events) == 0 {
		return 0, nil
	}

	pipe := q.client.TxPipeline()
	for _, ev := range events {
		pipe.LPush(ctx, q.queueName, ev)
		pipe.ZRem(ctx, q.delayedKey(), ev)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("move delayed events to ready: %w", err)
	}
	return len(events), nil
}

// Stats returns queue sizes for the health endpoint
func (q *RedisQueue) Stats(ctx context.Context) (eventx.QueueStats, error) {
	ready, err := q.client.LLen(ctx, q.queueName).Result()
	if err != nil {
		return eventx.QueueStats{}, fmt.Errorf("get queue size: %w", err)
	}

	delayed, err := q.client.ZCard(ctx, q.delayedKey()).Result()
	if err != nil {
		return eventx.QueueStats{}, fmt.Errorf("get delayed queue size: %w", err)
	}

	return eventx.QueueStats{Ready: ready, Delayed: delayed}, nil
}
