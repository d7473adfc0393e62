package services

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
	"github.com/waddlebot/waddlebot-core/test/util"
)

// setupClient provisions an isolated database schema for one test.
func setupClient(t *testing.T) *ent.Client {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	return client
}

// setupStream backs a stream client with miniredis so tests can assert on
// published entries.
func setupStream(t *testing.T) (*stream.Client, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.StreamConfig{
		Enabled:    true,
		Prefix:     "events",
		DLQPrefix:  "dlq",
		MaxRetries: 3,
		BatchSize:  10,
		BlockMS:    50,
		MaxLen:     1000,
	}
	return stream.NewClient(rdb, cfg), rdb
}

// createTestCommunity inserts a community with an owner membership.
func createTestCommunity(t *testing.T, client *ent.Client, name, ownerID string) *ent.Community {
	t.Helper()

	comm, err := NewCommunityService(client).CreateCommunity(context.Background(), CreateCommunityRequest{
		Name:    name,
		OwnerID: ownerID,
	})
	require.NoError(t, err)
	return comm
}
