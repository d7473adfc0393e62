package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/waddlebot/waddlebot-core/pkg/config"
)

// Client exposes the stream operations over one Redis connection. When the
// stream is disabled by configuration, publishes return a synthetic id and
// consumes yield empty batches, so single-node operation degrades cleanly.
type Client struct {
	rdb *redis.Client
	cfg config.StreamConfig
}

// NewClient creates a stream client. rdb may be nil only when the stream is
// disabled.
func NewClient(rdb *redis.Client, cfg config.StreamConfig) *Client {
	return &Client{rdb: rdb, cfg: cfg}
}

// Enabled reports whether the stream is active.
func (c *Client) Enabled() bool { return c.cfg.Enabled }

// DLQ returns the dead-letter stream name for stream.
func (c *Client) DLQ(stream string) string {
	return fmt.Sprintf("%s:%s", c.cfg.DLQPrefix, stream)
}

// Publish serializes payload and appends it to stream with retry_count 0.
// The stream is trimmed approximately to the configured max length.
func (c *Client) Publish(ctx context.Context, stream string, payload any) (string, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshaling payload for %s: %w", stream, err)
	}
	return c.publish(ctx, stream, data, 0)
}

func (c *Client) publish(ctx context.Context, stream string, data []byte, retryCount int) (string, error) {
	if !c.cfg.Enabled {
		return "noop-" + uuid.NewString(), nil
	}

	id, err := c.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		MaxLen: c.cfg.MaxLen,
		Approx: true,
		Values: entryValues(data, retryCount),
	}).Result()
	if err != nil {
		return "", fmt.Errorf("publishing to %s: %w", stream, err)
	}
	return id, nil
}

// EnsureGroup creates the consumer group if it does not exist. An existing
// group is a successful outcome.
func (c *Client) EnsureGroup(ctx context.Context, stream, group string) error {
	if !c.cfg.Enabled {
		return nil
	}

	err := c.rdb.XGroupCreateMkStream(ctx, stream, group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("creating group %s on %s: %w", group, stream, err)
	}
	return nil
}

// Consume claims up to the configured batch size of new events for consumer
// within group, blocking up to the configured interval. An empty batch is a
// normal outcome, not an error.
func (c *Client) Consume(ctx context.Context, stream, group, consumer string) ([]Event, error) {
	if !c.cfg.Enabled {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.cfg.BlockDuration()):
			return nil, nil
		}
	}

	res, err := c.rdb.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    group,
		Consumer: consumer,
		Streams:  []string{stream, ">"},
		Count:    int64(c.cfg.BatchSize),
		Block:    c.cfg.BlockDuration(),
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("consuming %s as %s/%s: %w", stream, group, consumer, err)
	}

	var events []Event
	for _, s := range res {
		for _, msg := range s.Messages {
			ev, err := eventFromMessage(s.Stream, msg)
			if err != nil {
				// Malformed entries cannot be processed by anyone. Dead-letter
				// them here so they stop blocking the group.
				if dlqErr := c.deadLetterRaw(ctx, s.Stream, group, msg, err.Error()); dlqErr != nil {
					return events, dlqErr
				}
				continue
			}
			events = append(events, ev)
		}
	}
	return events, nil
}

// Ack acknowledges one event within a consumer group.
func (c *Client) Ack(ctx context.Context, stream, group, id string) error {
	if !c.cfg.Enabled {
		return nil
	}
	if err := c.rdb.XAck(ctx, stream, group, id).Err(); err != nil {
		return fmt.Errorf("acking %s on %s: %w", id, stream, err)
	}
	return nil
}

// Pending lists unacknowledged events for a group. consumer narrows the
// listing to one consumer when non-empty.
func (c *Client) Pending(ctx context.Context, stream, group, consumer string) ([]PendingEntry, error) {
	if !c.cfg.Enabled {
		return nil, nil
	}

	args := &redis.XPendingExtArgs{
		Stream: stream,
		Group:  group,
		Start:  "-",
		End:    "+",
		Count:  int64(c.cfg.BatchSize),
	}
	if consumer != "" {
		args.Consumer = consumer
	}

	res, err := c.rdb.XPendingExt(ctx, args).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("listing pending on %s/%s: %w", stream, group, err)
	}

	entries := make([]PendingEntry, 0, len(res))
	for _, p := range res {
		entries = append(entries, PendingEntry{
			ID:            p.ID,
			Consumer:      p.Consumer,
			Idle:          p.Idle,
			DeliveryCount: p.RetryCount,
		})
	}
	return entries, nil
}

// MoveToDLQ copies a failed event to dlq:<stream> with its failure reason and
// releases the claim on the original entry. The original payload stays
// recoverable from the DLQ entry.
func (c *Client) MoveToDLQ(ctx context.Context, group string, ev Event, reason string) error {
	if !c.cfg.Enabled {
		return nil
	}

	pipe := c.rdb.TxPipeline()
	pipe.XAdd(ctx, &redis.XAddArgs{
		Stream: c.DLQ(ev.Stream),
		MaxLen: c.cfg.MaxLen,
		Approx: true,
		Values: map[string]any{
			fieldOriginalStream: ev.Stream,
			fieldOriginalID:     ev.ID,
			fieldFailureReason:  reason,
			fieldRetryCount:     ev.RetryCount,
			fieldFailedAt:       time.Now().UTC().Format(time.RFC3339Nano),
			fieldData:           string(ev.Data),
		},
	})
	pipe.XAck(ctx, ev.Stream, group, ev.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("moving %s to DLQ: %w", ev.ID, err)
	}
	return nil
}

// deadLetterRaw dead-letters a message that could not even be decoded.
func (c *Client) deadLetterRaw(ctx context.Context, stream, group string, msg redis.XMessage, reason string) error {
	data, _ := msg.Values[fieldData].(string)

	pipe := c.rdb.TxPipeline()
	pipe.XAdd(ctx, &redis.XAddArgs{
		Stream: c.DLQ(stream),
		MaxLen: c.cfg.MaxLen,
		Approx: true,
		Values: map[string]any{
			fieldOriginalStream: stream,
			fieldOriginalID:     msg.ID,
			fieldFailureReason:  reason,
			fieldRetryCount:     0,
			fieldFailedAt:       time.Now().UTC().Format(time.RFC3339Nano),
			fieldData:           data,
		},
	})
	pipe.XAck(ctx, stream, group, msg.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("dead-lettering malformed %s: %w", msg.ID, err)
	}
	return nil
}

// Republish appends the event back onto its stream with retry_count+1 and
// releases the claim on the original entry.
func (c *Client) Republish(ctx context.Context, group string, ev Event) (string, error) {
	if !c.cfg.Enabled {
		return "noop-" + uuid.NewString(), nil
	}

	pipe := c.rdb.TxPipeline()
	add := pipe.XAdd(ctx, &redis.XAddArgs{
		Stream: ev.Stream,
		MaxLen: c.cfg.MaxLen,
		Approx: true,
		Values: entryValues(ev.Data, ev.RetryCount+1),
	})
	pipe.XAck(ctx, ev.Stream, group, ev.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", fmt.Errorf("republishing %s: %w", ev.ID, err)
	}
	return add.Val(), nil
}

// TrimBefore drops entries older than cutoff from stream. Stream entry ids
// start with a millisecond timestamp, so MINID trimming is time trimming.
func (c *Client) TrimBefore(ctx context.Context, stream string, cutoff time.Time) (int64, error) {
	if !c.cfg.Enabled {
		return 0, nil
	}

	minID := fmt.Sprintf("%d-0", cutoff.UnixMilli())
	n, err := c.rdb.XTrimMinID(ctx, stream, minID).Result()
	if err != nil {
		return 0, fmt.Errorf("trimming %s: %w", stream, err)
	}
	return n, nil
}

// Info returns length, group count, and boundary ids for a stream. A stream
// that does not exist yet reports zero values.
func (c *Client) Info(ctx context.Context, stream string) (StreamInfo, error) {
	if !c.cfg.Enabled {
		return StreamInfo{}, nil
	}

	res, err := c.rdb.XInfoStream(ctx, stream).Result()
	if err != nil {
		if strings.Contains(err.Error(), "no such key") {
			return StreamInfo{}, nil
		}
		return StreamInfo{}, fmt.Errorf("inspecting %s: %w", stream, err)
	}

	info := StreamInfo{
		Length: res.Length,
		Groups: res.Groups,
	}
	if res.FirstEntry.ID != "" {
		info.FirstID = res.FirstEntry.ID
	}
	if res.LastEntry.ID != "" {
		info.LastID = res.LastEntry.ID
	}
	return info, nil
}
