package eventx

import (
	"context"
	"sync"
	"time"

	"github.com/Abraxas-365/careersync/pkg/logx"
)

type DispatcherConfig struct {
	Workers         int
	PollTimeout     time.Duration
	DelayedInterval time.Duration
	BaseBackoff     time.Duration
	MaxAttempts     int
}

func DefaultDispatcherConfig() DispatcherConfig {
	return DispatcherConfig{
		Workers:         2,
		PollTimeout:     5 * time.Second,
		DelayedInterval: 30 * time.Second,
		BaseBackoff:     10 * time.Second,
		MaxAttempts:     5,
	}
}

// Dispatcher runs a worker pool that moves events from a Queue to a Publisher
type Dispatcher struct {
	queue     Queue
	publisher Publisher
	cfg       DispatcherConfig
	wg        sync.WaitGroup
}

func NewDispatcher(queue Queue, publisher Publisher, cfg DispatcherConfig) *Dispatcher {
	def := DefaultDispatcherConfig()
	if cfg.Workers <= 0 {
		cfg.Workers = def.Workers
	}
	if cfg.PollTimeout <= 0 {
		cfg.PollTimeout = def.PollTimeout
	}
	if cfg.DelayedInterval <= 0 {
		cfg.DelayedInterval = def.DelayedInterval
	}
	if cfg.BaseBackoff <= 0 {
		cfg.BaseBackoff = def.BaseBackoff
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = def.MaxAttempts
	}
	return &Dispatcher{queue: queue, publisher: publisher, cfg: cfg}
}

// Start launches the workers and the delayed-event mover. They stop when ctx is done.
func (d *Dispatcher) Start(ctx context.Context) {
	logx.Infof("Starting %d event workers", d.cfg.Workers)

	d.wg.Add(1)
	go d.moveDelayedEvents(ctx)

	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.processEvents(ctx, i)
	}
}

// Wait blocks until every goroutine started by Start has returned
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) processEvents(ctx context.Context, workerID int) {
	defer d.wg.Done()
	logx.Debugf("Event worker %d started", workerID)

	for {
		if ctx.Err() != nil {
			logx.Debugf("Event worker %d stopping", workerID)
			return
		}

		ev, err := d.queue.Dequeue(ctx, d.cfg.PollTimeout)
		if err != nil {
			if ctx.Err() == nil {
				logx.Errorf("Event worker %d dequeue error: %v", workerID, err)
				// avoid spinning on a broken connection
				time.Sleep(time.Second)
			}
			continue
		}
		if ev == nil {
			continue
		}

		d.handle(ctx, workerID, ev)
	}
}

func (d *Dispatcher) handle(ctx context.Context, workerID int, ev *Event) {
	err := d.publisher.Publish(ctx, ev)
	if err == nil {
		logx.Debugf("Event worker %d published %s (%s)", workerID, ev.Type, ev.ID)
		return
	}

	ev.Attempts++
	if ev.Attempts >= d.cfg.MaxAttempts {
		logx.Errorf("Dropping event %s (%s) after %d attempts: %v", ev.Type, ev.ID, ev.Attempts, err)
		return
	}

	delay := d.backoff(ev.Attempts)
	logx.Warnf("Publish of event %s (%s) failed, retrying in %s: %v", ev.Type, ev.ID, delay, err)
	if err := d.queue.EnqueueDelayed(ctx, ev, delay); err != nil {
		logx.Errorf("Failed to schedule retry for event %s: %v", ev.ID, err)
	}
}

// backoff doubles the base delay per attempt
func (d *Dispatcher) backoff(attempt int) time.Duration {
	delay := d.cfg.BaseBackoff
	for i := 1; i < attempt; i++ {
		delay *= 2
	}
	return delay
}

func (d *Dispatcher) moveDelayedEvents(ctx context.Context) {
	defer d.wg.Done()

	ticker := time.NewTicker(d.cfg.DelayedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := d.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed events: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed events to ready queue", count)
			}
		}
	}
}
