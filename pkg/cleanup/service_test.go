package cleanup

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

type fakePurger struct {
	calls  atomic.Int64
	purged int
	err    error
}

func (f *fakePurger) PurgeBefore(_ context.Context, _ time.Time) (int, error) {
	f.calls.Add(1)
	return f.purged, f.err
}

func setupCleanup(t *testing.T, cfg Config, purger SessionPurger) (*Service, *redis.Client, stream.Topics) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	sc := stream.NewClient(rdb, config.StreamConfig{
		Enabled:    true,
		Prefix:     "events",
		DLQPrefix:  "dlq",
		MaxRetries: 3,
		BatchSize:  10,
		BlockMS:    20,
		MaxLen:     10000,
	})
	topics := stream.NewTopics("events")

	return NewService(cfg, purger, sc, topics), rdb, topics
}

func TestSweepPurgesAndTrims(t *testing.T) {
	purger := &fakePurger{purged: 3}
	svc, rdb, topics := setupCleanup(t, DefaultConfig(), purger)

	ctx := context.Background()
	dlq := "dlq:" + topics.Inbound()

	// One entry well past the retention window, one fresh.
	oldID := fmt.Sprintf("%d-0", time.Now().Add(-8*24*time.Hour).UnixMilli())
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{Stream: dlq, ID: oldID, Values: map[string]any{"data": "old"}}).Result()
	require.NoError(t, err)
	_, err = rdb.XAdd(ctx, &redis.XAddArgs{Stream: dlq, Values: map[string]any{"data": "fresh"}}).Result()
	require.NoError(t, err)

	svc.sweep(ctx)

	assert.Equal(t, int64(1), purger.calls.Load())

	msgs, err := rdb.XRange(ctx, dlq, "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	assert.Equal(t, "fresh", msgs[0].Values["data"])
}

func TestSweepContinuesPastPurgeFailure(t *testing.T) {
	purger := &fakePurger{err: fmt.Errorf("connection refused")}
	svc, rdb, topics := setupCleanup(t, DefaultConfig(), purger)

	ctx := context.Background()
	dlq := "dlq:" + topics.Commands()
	oldID := fmt.Sprintf("%d-0", time.Now().Add(-8*24*time.Hour).UnixMilli())
	_, err := rdb.XAdd(ctx, &redis.XAddArgs{Stream: dlq, ID: oldID, Values: map[string]any{"data": "old"}}).Result()
	require.NoError(t, err)

	svc.sweep(ctx)

	msgs, err := rdb.XRange(ctx, dlq, "-", "+").Result()
	require.NoError(t, err)
	assert.Empty(t, msgs, "DLQ trim must run even when the session purge fails")
}

func TestStartStopSweepLoop(t *testing.T) {
	purger := &fakePurger{}
	cfg := DefaultConfig()
	cfg.Interval = 20 * time.Millisecond
	svc, _, _ := setupCleanup(t, cfg, purger)

	svc.Start(context.Background())

	assert.Eventually(t, func() bool {
		return purger.calls.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond, "initial sweep plus at least one ticked sweep")

	svc.Stop()
	after := purger.calls.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, purger.calls.Load(), "no sweeps after Stop")
}
