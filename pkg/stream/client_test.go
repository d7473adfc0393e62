package stream

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
)

func testStreamConfig() config.StreamConfig {
	return config.StreamConfig{
		Enabled:    true,
		Prefix:     "events",
		DLQPrefix:  "dlq",
		MaxRetries: 3,
		BatchSize:  10,
		BlockMS:    20,
		MaxLen:     10000,
	}
}

func setupClient(t *testing.T) (*Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	return NewClient(rdb, testStreamConfig()), mr
}

type testPayload struct {
	Kind string `json:"kind"`
	Seq  int    `json:"seq"`
}

func TestPublishConsumeAck(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	id1, err := client.Publish(ctx, "events:inbound", testPayload{Kind: "chat", Seq: 1})
	require.NoError(t, err)
	require.NotEmpty(t, id1)

	id2, err := client.Publish(ctx, "events:inbound", testPayload{Kind: "chat", Seq: 2})
	require.NoError(t, err)

	require.NoError(t, client.EnsureGroup(ctx, "events:inbound", "routers"))

	events, err := client.Consume(ctx, "events:inbound", "routers", "router-1")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.Equal(t, id1, events[0].ID)
	assert.Equal(t, id2, events[1].ID)
	assert.Equal(t, 0, events[0].RetryCount)
	assert.WithinDuration(t, time.Now(), events[0].Timestamp, time.Minute)

	var p testPayload
	require.NoError(t, events[0].Decode(&p))
	assert.Equal(t, "chat", p.Kind)
	assert.Equal(t, 1, p.Seq)

	for _, ev := range events {
		require.NoError(t, client.Ack(ctx, ev.Stream, "routers", ev.ID))
	}

	pending, err := client.Pending(ctx, "events:inbound", "routers", "")
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestEnsureGroupIdempotent(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	require.NoError(t, client.EnsureGroup(ctx, "events:commands", "mods"))
	require.NoError(t, client.EnsureGroup(ctx, "events:commands", "mods"))
}

func TestPendingListsUnackedEvents(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	_, err := client.Publish(ctx, "events:commands", testPayload{Kind: "cmd", Seq: 1})
	require.NoError(t, err)
	require.NoError(t, client.EnsureGroup(ctx, "events:commands", "mods"))

	events, err := client.Consume(ctx, "events:commands", "mods", "mod-1")
	require.NoError(t, err)
	require.Len(t, events, 1)

	pending, err := client.Pending(ctx, "events:commands", "mods", "")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, events[0].ID, pending[0].ID)
	assert.Equal(t, "mod-1", pending[0].Consumer)
	assert.EqualValues(t, 1, pending[0].DeliveryCount)

	byConsumer, err := client.Pending(ctx, "events:commands", "mods", "mod-1")
	require.NoError(t, err)
	assert.Len(t, byConsumer, 1)
}

func TestMoveToDLQPreservesOriginal(t *testing.T) {
	client, mr := setupClient(t)
	ctx := context.Background()

	_, err := client.Publish(ctx, "events:commands", testPayload{Kind: "cmd", Seq: 7})
	require.NoError(t, err)
	require.NoError(t, client.EnsureGroup(ctx, "events:commands", "mods"))

	events, err := client.Consume(ctx, "events:commands", "mods", "mod-1")
	require.NoError(t, err)
	require.Len(t, events, 1)

	require.NoError(t, client.MoveToDLQ(ctx, "mods", events[0], "schema mismatch"))

	// Claim is released, nothing left pending.
	pending, err := client.Pending(ctx, "events:commands", "mods", "")
	require.NoError(t, err)
	assert.Empty(t, pending)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	dlqMsgs, err := rdb.XRange(ctx, "dlq:events:commands", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, dlqMsgs, 1)
	assert.Equal(t, "events:commands", dlqMsgs[0].Values["original_stream"])
	assert.Equal(t, events[0].ID, dlqMsgs[0].Values["original_msg_id"])
	assert.Equal(t, "schema mismatch", dlqMsgs[0].Values["failure_reason"])
	assert.Contains(t, dlqMsgs[0].Values["data"], `"seq":7`)

	srcMsgs, err := rdb.XRange(ctx, "events:commands", "-", "+").Result()
	require.NoError(t, err)
	assert.Len(t, srcMsgs, 1)
}

func TestRepublishIncrementsRetryCount(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	_, err := client.Publish(ctx, "events:responses", testPayload{Kind: "resp", Seq: 1})
	require.NoError(t, err)
	require.NoError(t, client.EnsureGroup(ctx, "events:responses", "routers"))

	events, err := client.Consume(ctx, "events:responses", "routers", "router-1")
	require.NoError(t, err)
	require.Len(t, events, 1)

	newID, err := client.Republish(ctx, "routers", events[0])
	require.NoError(t, err)
	require.NotEmpty(t, newID)

	events, err = client.Consume(ctx, "events:responses", "routers", "router-1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, newID, events[0].ID)
	assert.Equal(t, 1, events[0].RetryCount)

	var p testPayload
	require.NoError(t, events[0].Decode(&p))
	assert.Equal(t, 1, p.Seq)
}

func TestDisabledModeIsNoOp(t *testing.T) {
	cfg := testStreamConfig()
	cfg.Enabled = false
	client := NewClient(nil, cfg)
	ctx := context.Background()

	id, err := client.Publish(ctx, "events:inbound", testPayload{Kind: "chat", Seq: 1})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(id, "noop-"))

	events, err := client.Consume(ctx, "events:inbound", "routers", "router-1")
	require.NoError(t, err)
	assert.Empty(t, events)

	require.NoError(t, client.EnsureGroup(ctx, "events:inbound", "routers"))
	require.NoError(t, client.Ack(ctx, "events:inbound", "routers", "0-0"))

	info, err := client.Info(ctx, "events:inbound")
	require.NoError(t, err)
	assert.Zero(t, info.Length)
}

func TestInfoReportsLengthAndBounds(t *testing.T) {
	client, _ := setupClient(t)
	ctx := context.Background()

	var firstID, lastID string
	for i := 0; i < 3; i++ {
		id, err := client.Publish(ctx, "events:inbound", testPayload{Kind: "chat", Seq: i})
		require.NoError(t, err)
		if i == 0 {
			firstID = id
		}
		lastID = id
	}

	info, err := client.Info(ctx, "events:inbound")
	require.NoError(t, err)
	assert.EqualValues(t, 3, info.Length)
	assert.Equal(t, firstID, info.FirstID)
	assert.Equal(t, lastID, info.LastID)
}
