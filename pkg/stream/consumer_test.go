package stream

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupConsumerTest(t *testing.T) (*Client, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return NewClient(rdb, testStreamConfig()), rdb
}

func TestConsumerAcksOnSuccess(t *testing.T) {
	client, _ := setupConsumerTest(t)
	ctx := context.Background()

	var handled atomic.Int64
	consumer := NewConsumer(client, "events:commands", "mods", "mod-1", 3,
		func(ctx context.Context, ev Event) error {
			handled.Add(1)
			return nil
		})

	require.NoError(t, consumer.Start(ctx))
	defer consumer.Stop()

	_, err := client.Publish(ctx, "events:commands", testPayload{Kind: "cmd", Seq: 1})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return consumer.Stats().Acked == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.EqualValues(t, 1, handled.Load())
	assert.EqualValues(t, 0, consumer.Stats().Republished)
	assert.EqualValues(t, 0, consumer.Stats().DeadLettered)

	pending, err := client.Pending(ctx, "events:commands", "mods", "")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestConsumerRetriesThenDeadLetters(t *testing.T) {
	client, rdb := setupConsumerTest(t)
	ctx := context.Background()

	var attempts atomic.Int64
	consumer := NewConsumer(client, "events:commands", "mods", "mod-1", 3,
		func(ctx context.Context, ev Event) error {
			attempts.Add(1)
			return errors.New("downstream unavailable")
		})

	require.NoError(t, consumer.Start(ctx))
	defer consumer.Stop()

	_, err := client.Publish(ctx, "events:commands", testPayload{Kind: "cmd", Seq: 1})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return consumer.Stats().DeadLettered == 1
	}, 5*time.Second, 10*time.Millisecond)

	// Initial delivery plus one per republish.
	assert.EqualValues(t, 4, attempts.Load())
	assert.EqualValues(t, 3, consumer.Stats().Republished)
	assert.EqualValues(t, 0, consumer.Stats().Acked)

	dlqMsgs, err := rdb.XRange(ctx, "dlq:events:commands", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, dlqMsgs, 1)
	assert.Equal(t, "downstream unavailable", dlqMsgs[0].Values["failure_reason"])
	assert.Equal(t, "3", dlqMsgs[0].Values["retry_count"])
}

func TestConsumerDeadLettersNonRetryableImmediately(t *testing.T) {
	client, rdb := setupConsumerTest(t)
	ctx := context.Background()

	consumer := NewConsumer(client, "events:commands", "mods", "mod-1", 3,
		func(ctx context.Context, ev Event) error {
			return NonRetryable(errors.New("unknown command schema"))
		})

	require.NoError(t, consumer.Start(ctx))
	defer consumer.Stop()

	_, err := client.Publish(ctx, "events:commands", testPayload{Kind: "cmd", Seq: 9})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return consumer.Stats().DeadLettered == 1
	}, 2*time.Second, 10*time.Millisecond)

	assert.EqualValues(t, 0, consumer.Stats().Republished)
	assert.EqualValues(t, 0, consumer.Stats().Acked)

	// Original payload is recoverable from the DLQ entry.
	dlqMsgs, err := rdb.XRange(ctx, "dlq:events:commands", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, dlqMsgs, 1)
	assert.Equal(t, "unknown command schema", dlqMsgs[0].Values["failure_reason"])
	assert.Contains(t, dlqMsgs[0].Values["data"], `"seq":9`)
}

func TestConsumerStopIsIdempotent(t *testing.T) {
	client, _ := setupConsumerTest(t)

	consumer := NewConsumer(client, "events:commands", "mods", "mod-1", 3,
		func(ctx context.Context, ev Event) error { return nil })

	require.NoError(t, consumer.Start(context.Background()))
	consumer.Stop()
	consumer.Stop()
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, IsRetryable(errors.New("plain failure")))
	assert.False(t, IsRetryable(NonRetryable(errors.New("bad payload"))))

	wrapped := NonRetryable(errors.New("inner"))
	assert.False(t, IsRetryable(wrapped))
	assert.Equal(t, "inner", wrapped.Error())
	assert.Nil(t, NonRetryable(nil))
}
