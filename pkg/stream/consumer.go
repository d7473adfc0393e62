package stream

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Handler processes one consumed event. A nil return acknowledges the event.
// A retryable error republishes it with retry_count+1 while under the retry
// limit; a non-retryable error (see NonRetryable) or an exhausted retry
// budget moves it to the DLQ.
type Handler func(ctx context.Context, ev Event) error

// ConsumerStats counts policy outcomes. Exactly one outcome is recorded per
// handled event.
type ConsumerStats struct {
	Acked        int64
	Republished  int64
	DeadLettered int64
}

// Consumer runs a consume loop for one stream and group, applying the
// failure policy around a Handler.
type Consumer struct {
	client     *Client
	stream     string
	group      string
	name       string
	handler    Handler
	maxRetries int

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	acked        atomic.Int64
	republished  atomic.Int64
	deadLettered atomic.Int64
}

// NewConsumer creates a consumer for stream within group. name identifies
// this member of the group and must be unique per process.
func NewConsumer(client *Client, stream, group, name string, maxRetries int, handler Handler) *Consumer {
	return &Consumer{
		client:     client,
		stream:     stream,
		group:      group,
		name:       name,
		handler:    handler,
		maxRetries: maxRetries,
		stopCh:     make(chan struct{}),
	}
}

// Start ensures the consumer group exists and begins the consume loop.
func (c *Consumer) Start(ctx context.Context) error {
	if err := c.client.EnsureGroup(ctx, c.stream, c.group); err != nil {
		return err
	}
	c.wg.Add(1)
	go c.run(ctx)
	return nil
}

// Stop signals the loop to stop and waits for in-flight work to finish.
// Safe to call multiple times.
func (c *Consumer) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
	c.wg.Wait()
}

// Stats returns a snapshot of policy outcome counters.
func (c *Consumer) Stats() ConsumerStats {
	return ConsumerStats{
		Acked:        c.acked.Load(),
		Republished:  c.republished.Load(),
		DeadLettered: c.deadLettered.Load(),
	}
}

func (c *Consumer) run(ctx context.Context) {
	defer c.wg.Done()

	log := slog.With("stream", c.stream, "group", c.group, "consumer", c.name)
	log.Info("Stream consumer started")

	for {
		select {
		case <-c.stopCh:
			log.Info("Stream consumer shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, stream consumer shutting down")
			return
		default:
			events, err := c.client.Consume(ctx, c.stream, c.group, c.name)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Error("Consume failed", "error", err)
				c.sleep(time.Second)
				continue
			}
			for _, ev := range events {
				c.handleEvent(ctx, ev, log)
			}
		}
	}
}

// handleEvent applies the failure policy: ack on success, republish with an
// incremented retry count while retryable and under budget, DLQ otherwise.
func (c *Consumer) handleEvent(ctx context.Context, ev Event, log *slog.Logger) {
	err := c.handler(ctx, ev)
	if err == nil {
		if ackErr := c.client.Ack(ctx, ev.Stream, c.group, ev.ID); ackErr != nil {
			log.Warn("Ack failed, event stays pending", "event_id", ev.ID, "error", ackErr)
			return
		}
		c.acked.Add(1)
		return
	}

	if IsRetryable(err) && ev.RetryCount < c.maxRetries {
		id, pubErr := c.client.Republish(ctx, c.group, ev)
		if pubErr != nil {
			log.Error("Republish failed, event stays pending", "event_id", ev.ID, "error", pubErr)
			return
		}
		c.republished.Add(1)
		log.Warn("Event republished for retry",
			"event_id", ev.ID, "new_id", id, "retry_count", ev.RetryCount+1, "error", err)
		return
	}

	if dlqErr := c.client.MoveToDLQ(ctx, c.group, ev, err.Error()); dlqErr != nil {
		log.Error("DLQ move failed, event stays pending", "event_id", ev.ID, "error", dlqErr)
		return
	}
	c.deadLettered.Add(1)
	log.Warn("Event moved to DLQ",
		"event_id", ev.ID, "dlq", c.client.DLQ(ev.Stream), "retry_count", ev.RetryCount, "error", err)
}

// sleep waits for d or until stop is signalled.
func (c *Consumer) sleep(d time.Duration) {
	select {
	case <-c.stopCh:
	case <-time.After(d):
	}
}
