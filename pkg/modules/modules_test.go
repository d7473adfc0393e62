package modules

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/router"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

func testCommand(module, message string, args ...string) models.ModuleCommand {
	return models.ModuleCommand{
		Session: models.SessionContext{
			SessionID:   "sess-1",
			CommunityID: "community-1",
			Platform:    models.PlatformTwitch,
			ChannelID:   "chan-1",
			UserID:      "u1",
			Username:    "penguin",
			Role:        models.RoleMember,
		},
		ModuleName: module,
		Message:    message,
		Args:       args,
		EventType:  models.MessageTypeChat,
		IssuedAt:   time.Now().UTC(),
	}
}

func TestHelpListsCommands(t *testing.T) {
	registry := router.NewRegistry()
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!song", Module: "music"})
	registry.Register(router.Trigger{Kind: router.TriggerCommand, Pattern: "!so", Module: "shoutout", MinRole: models.RoleMember})

	h := NewHelp(registry)

	resp, err := h.Handle(context.Background(), testCommand("help", "!help"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Available commands: !so, !song", resp.ResponseData["text"])

	resp, err = h.Handle(context.Background(), testCommand("help", "!help so", "so"))
	require.NoError(t, err)
	assert.Equal(t, "!so is handled by the shoutout module (requires member).", resp.ResponseData["text"])

	resp, err = h.Handle(context.Background(), testCommand("help", "!help nope", "nope"))
	require.NoError(t, err)
	assert.Contains(t, resp.ResponseData["text"], "Unknown command !nope")
}

func TestHelpEmptyRegistry(t *testing.T) {
	h := NewHelp(router.NewRegistry())

	resp, err := h.Handle(context.Background(), testCommand("help", "!help"))
	require.NoError(t, err)
	assert.Equal(t, "No commands are registered yet.", resp.ResponseData["text"])
}

func TestShoutout(t *testing.T) {
	s := NewShoutout()

	resp, err := s.Handle(context.Background(), testCommand("shoutout", "!so @walrus", "@walrus"))
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Go check out @walrus, they're great! (shoutout from penguin)", resp.ResponseData["text"])

	_, err = s.Handle(context.Background(), testCommand("shoutout", "!so"))
	assert.Error(t, err)
}

func TestMusicPlaybackLifecycle(t *testing.T) {
	m := NewMusic()
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	ctx := context.Background()

	resp, err := m.Handle(ctx, testCommand("music", "!song play never gonna", "play", "never", "gonna"))
	require.NoError(t, err)
	assert.Equal(t, "Now playing: never gonna", resp.ResponseData["text"])

	resp, err = m.Handle(ctx, testCommand("music", "!song play other", "play", "other"))
	require.NoError(t, err)
	assert.Equal(t, "Queued other (position 1)", resp.ResponseData["text"])

	resp, err = m.Handle(ctx, testCommand("music", "!song pause", "pause"))
	require.NoError(t, err)
	assert.Equal(t, "Paused: never gonna", resp.ResponseData["text"])

	now = now.Add(90 * time.Second)
	resp, err = m.Handle(ctx, testCommand("music", "!song status", "status"))
	require.NoError(t, err)
	assert.Equal(t, "paused: never gonna for 1m30s (1 queued)", resp.ResponseData["text"])

	resp, err = m.Handle(ctx, testCommand("music", "!song resume", "resume"))
	require.NoError(t, err)
	assert.Equal(t, "Resumed: never gonna", resp.ResponseData["text"])

	resp, err = m.Handle(ctx, testCommand("music", "!song skip", "skip"))
	require.NoError(t, err)
	assert.Equal(t, "Skipped never gonna. Now playing: other", resp.ResponseData["text"])

	resp, err = m.Handle(ctx, testCommand("music", "!song skip", "skip"))
	require.NoError(t, err)
	assert.Equal(t, "Skipped other. Queue is empty.", resp.ResponseData["text"])

	_, err = m.Handle(ctx, testCommand("music", "!song pause", "pause"))
	assert.Error(t, err, "pause with nothing playing")
}

func TestMusicStateIsPerCommunity(t *testing.T) {
	m := NewMusic()
	ctx := context.Background()

	first := testCommand("music", "!song play one", "play", "one")

	second := testCommand("music", "!song play two", "play", "two")
	second.Session.CommunityID = "community-2"

	_, err := m.Handle(ctx, first)
	require.NoError(t, err)

	resp, err := m.Handle(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "Now playing: two", resp.ResponseData["text"], "other community has its own player")
}

func TestMusicUnknownSubcommand(t *testing.T) {
	m := NewMusic()

	_, err := m.Handle(context.Background(), testCommand("music", "!song dance", "dance"))
	assert.Error(t, err)
}

func TestWorkerRoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	client := stream.NewClient(rdb, config.StreamConfig{
		Enabled:    true,
		Prefix:     "events",
		DLQPrefix:  "dlq",
		MaxRetries: 3,
		BatchSize:  10,
		BlockMS:    20,
		MaxLen:     10000,
	})
	topics := stream.NewTopics("events")

	worker := NewWorker(client, topics, "worker-1", 3, NewShoutout())
	require.NoError(t, worker.Start(context.Background()))
	t.Cleanup(worker.Stop)

	// Addressed to another module: acknowledged, no response.
	_, err = client.Publish(context.Background(), topics.Commands(), testCommand("music", "!song status", "status"))
	require.NoError(t, err)

	_, err = client.Publish(context.Background(), topics.Commands(), testCommand("shoutout", "!so walrus", "walrus"))
	require.NoError(t, err)

	resp := awaitResponse(t, rdb, topics.Responses())
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Equal(t, "shoutout", resp.ModuleName)
	assert.True(t, resp.Success)
	assert.Equal(t, string(models.ActionChatMessage), resp.ResponseAction)
	assert.Equal(t, "Go check out @walrus, they're great! (shoutout from penguin)", resp.ResponseData["text"])

	msgs, err := rdb.XRange(context.Background(), topics.Responses(), "-", "+").Result()
	require.NoError(t, err)
	assert.Len(t, msgs, 1, "foreign command must not produce a response")
}

func TestWorkerReportsHandlerFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	client := stream.NewClient(rdb, config.StreamConfig{
		Enabled:    true,
		Prefix:     "events",
		DLQPrefix:  "dlq",
		MaxRetries: 3,
		BatchSize:  10,
		BlockMS:    20,
		MaxLen:     10000,
	})
	topics := stream.NewTopics("events")

	worker := NewWorker(client, topics, "worker-1", 3, NewShoutout())
	require.NoError(t, worker.Start(context.Background()))
	t.Cleanup(worker.Stop)

	_, err = client.Publish(context.Background(), topics.Commands(), testCommand("shoutout", "!so"))
	require.NoError(t, err)

	resp := awaitResponse(t, rdb, topics.Responses())
	assert.False(t, resp.Success)
	assert.Contains(t, resp.ErrorMessage, "usage: !so <username>")
}

func awaitResponse(t *testing.T, rdb *redis.Client, streamName string) models.ModuleResponse {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		msgs, err := rdb.XRange(context.Background(), streamName, "-", "+").Result()
		require.NoError(t, err)
		if len(msgs) > 0 {
			var resp models.ModuleResponse
			require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &resp))
			return resp
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("timed out waiting for module response")
	return models.ModuleResponse{}
}
