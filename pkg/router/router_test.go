package router

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/services"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

type fakeGateways struct {
	gw  *ent.Gateway
	err error
}

func (f *fakeGateways) Resolve(ctx context.Context, platform models.Platform, serverID, channelID string) (*ent.Gateway, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.gw, nil
}

type fakeAliases struct {
	exp *services.Expansion
	err error
}

func (f *fakeAliases) Resolve(ctx context.Context, entityID, message, username string) (*services.Expansion, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.exp, nil
}

type fakeSessions struct {
	mu        sync.Mutex
	states    []models.SessionState
	completed map[string][]string
	failed    map[string]string
	rejected  map[string]string
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		completed: make(map[string][]string),
		failed:    make(map[string]string),
		rejected:  make(map[string]string),
	}
}

func (f *fakeSessions) RecordReceipt(ctx context.Context, sess *models.Session) (*ent.SessionRecord, error) {
	return &ent.SessionRecord{}, nil
}

func (f *fakeSessions) MarkResolved(ctx context.Context, sessionID, entityID, communityID string) error {
	return nil
}

func (f *fakeSessions) UpdateStatus(ctx context.Context, sessionID string, state models.SessionState) error {
	f.mu.Lock()
	f.states = append(f.states, state)
	f.mu.Unlock()
	return nil
}

func (f *fakeSessions) Complete(ctx context.Context, sessionID string, modulesInvoked []string) error {
	f.mu.Lock()
	f.completed[sessionID] = modulesInvoked
	f.mu.Unlock()
	return nil
}

func (f *fakeSessions) Fail(ctx context.Context, sessionID, reason string) error {
	f.mu.Lock()
	f.failed[sessionID] = reason
	f.mu.Unlock()
	return nil
}

func (f *fakeSessions) Reject(ctx context.Context, sessionID, reason string) error {
	f.mu.Lock()
	f.rejected[sessionID] = reason
	f.mu.Unlock()
	return nil
}

func (f *fakeSessions) completedModules(sessionID string) ([]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	mods, ok := f.completed[sessionID]
	return mods, ok
}

func (f *fakeSessions) rejectedReason(sessionID string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reason, ok := f.rejected[sessionID]
	return reason, ok
}

type fakeCommunities struct {
	settings map[string]any
}

func (f *fakeCommunities) GetCommunity(ctx context.Context, communityID string) (*ent.Community, error) {
	return &ent.Community{ID: communityID, Settings: f.settings}, nil
}

type routerFixture struct {
	router   *Router
	client   *stream.Client
	topics   stream.Topics
	rdb      *redis.Client
	sessions *fakeSessions
	registry *Registry
}

func setupRouter(t *testing.T, tweak func(*Deps)) *routerFixture {
	t.Helper()

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
	sessions := newFakeSessions()
	registry := NewRegistry()

	deps := Deps{
		Stream:       client,
		Topics:       topics,
		Gateways:     &fakeGateways{gw: &ent.Gateway{ID: "entity-1", CommunityID: "comm-1"}},
		Aliases:      &fakeAliases{err: services.ErrNotFound},
		Sessions:     sessions,
		Communities:  &fakeCommunities{},
		Policy:       NewPolicy(&fakeMembers{role: models.RoleMember}, nil, rate.Inf, 0),
		Registry:     registry,
		Aggregator:   NewAggregator(2*time.Second, 4*time.Second),
		ConsumerName: "router-test",
		MaxRetries:   3,
	}
	if tweak != nil {
		tweak(&deps)
	}

	r := New(deps)
	require.NoError(t, r.Start(context.Background()))
	t.Cleanup(r.Stop)

	return &routerFixture{
		router:   r,
		client:   client,
		topics:   topics,
		rdb:      rdb,
		sessions: sessions,
		registry: registry,
	}
}

func testEnvelope(message string) models.EventEnvelope {
	return models.EventEnvelope{
		SessionID:   "sess-e2e",
		UserID:      "user-1",
		Username:    "penguin",
		Message:     message,
		MessageType: models.MessageTypeChat,
		Platform:    models.PlatformTwitch,
		ChannelID:   "chan-1",
		ServerID:    "srv-1",
	}
}

// actionsOn decodes every action emitted so far on the platform stream.
func actionsOn(t *testing.T, rdb *redis.Client, streamName string) []models.Action {
	t.Helper()
	msgs, err := rdb.XRange(context.Background(), streamName, "-", "+").Result()
	require.NoError(t, err)

	actions := make([]models.Action, 0, len(msgs))
	for _, msg := range msgs {
		var a models.Action
		require.NoError(t, json.Unmarshal([]byte(msg.Values["data"].(string)), &a))
		actions = append(actions, a)
	}
	return actions
}

func TestRouterDispatchCollectEmit(t *testing.T) {
	fx := setupRouter(t, func(d *Deps) {
		d.Registry.Register(Trigger{Kind: TriggerCommand, Pattern: "!ping", Module: "pingmod"})
	})
	ctx := context.Background()

	// A fake module: consume the dispatched command and answer.
	moduleDone := make(chan models.ModuleCommand, 1)
	go func() {
		deadline := time.Now().Add(3 * time.Second)
		for time.Now().Before(deadline) {
			msgs, err := fx.rdb.XRange(ctx, fx.topics.Commands(), "-", "+").Result()
			if err == nil && len(msgs) > 0 {
				var cmd models.ModuleCommand
				if json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &cmd) == nil {
					moduleDone <- cmd
					_, _ = fx.client.Publish(ctx, fx.topics.Responses(), models.ModuleResponse{
						SessionID:      cmd.Session.SessionID,
						ModuleName:     "pingmod",
						Success:        true,
						ResponseAction: "chat_message",
						ResponseData:   map[string]any{"text": "pong"},
					})
				}
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
	}()

	_, err := fx.client.Publish(ctx, fx.topics.Inbound(), testEnvelope("!ping stats"))
	require.NoError(t, err)

	var cmd models.ModuleCommand
	select {
	case cmd = <-moduleDone:
	case <-time.After(3 * time.Second):
		t.Fatal("command never dispatched")
	}
	assert.Equal(t, "sess-e2e", cmd.Session.SessionID)
	assert.Equal(t, "comm-1", cmd.Session.CommunityID)
	assert.Equal(t, []string{"stats"}, cmd.Args)
	assert.Equal(t, models.RoleMember, cmd.Session.Role)

	require.Eventually(t, func() bool {
		_, ok := fx.sessions.completedModules("sess-e2e")
		return ok
	}, 3*time.Second, 20*time.Millisecond)

	mods, _ := fx.sessions.completedModules("sess-e2e")
	assert.Equal(t, []string{"pingmod"}, mods)

	actions := actionsOn(t, fx.rdb, fx.topics.Actions(models.PlatformTwitch))
	require.Len(t, actions, 1)
	assert.Equal(t, "sess-e2e", actions[0].SessionID)
	assert.Equal(t, "pingmod", actions[0].ModuleName)
	assert.Equal(t, models.ActionChatMessage, actions[0].Type)
	assert.Equal(t, "pong", actions[0].Text)
}

func TestRouterRejectsUnknownEntity(t *testing.T) {
	fx := setupRouter(t, func(d *Deps) {
		d.Gateways = &fakeGateways{err: services.ErrNotFound}
	})
	ctx := context.Background()

	_, err := fx.client.Publish(ctx, fx.topics.Inbound(), testEnvelope("hello"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, ok := fx.sessions.rejectedReason("sess-e2e")
		return ok
	}, 3*time.Second, 20*time.Millisecond)

	reason, _ := fx.sessions.rejectedReason("sess-e2e")
	assert.Equal(t, "unknown_entity", reason)
	assert.Empty(t, actionsOn(t, fx.rdb, fx.topics.Actions(models.PlatformTwitch)))
}

func TestRouterDirectAliasShortCircuits(t *testing.T) {
	fx := setupRouter(t, func(d *Deps) {
		d.Aliases = &fakeAliases{exp: &services.Expansion{
			Alias:   &ent.Alias{Alias: "!welcome"},
			Message: "Welcome to the pond, penguin!",
			Direct:  true,
		}}
		// A registered command must not fire for a direct alias.
		d.Registry.Register(Trigger{Kind: TriggerWildcard, Module: "logger"})
	})
	ctx := context.Background()

	_, err := fx.client.Publish(ctx, fx.topics.Inbound(), testEnvelope("!welcome"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, ok := fx.sessions.completedModules("sess-e2e")
		return ok
	}, 3*time.Second, 20*time.Millisecond)

	actions := actionsOn(t, fx.rdb, fx.topics.Actions(models.PlatformTwitch))
	require.Len(t, actions, 1)
	assert.Equal(t, "alias", actions[0].ModuleName)
	assert.Equal(t, "Welcome to the pond, penguin!", actions[0].Text)

	cmds, err := fx.rdb.XRange(ctx, fx.topics.Commands(), "-", "+").Result()
	require.NoError(t, err)
	assert.Empty(t, cmds, "direct alias must not dispatch modules")
}

func TestRouterCommandAliasRewritesDispatch(t *testing.T) {
	fx := setupRouter(t, func(d *Deps) {
		d.Aliases = &fakeAliases{exp: &services.Expansion{
			Alias:   &ent.Alias{Alias: "!sr"},
			Message: "!songrequest penguin",
		}}
		d.Registry.Register(Trigger{Kind: TriggerCommand, Pattern: "!songrequest", Module: "music"})
	})
	ctx := context.Background()

	_, err := fx.client.Publish(ctx, fx.topics.Inbound(), testEnvelope("!sr"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		msgs, err := fx.rdb.XRange(ctx, fx.topics.Commands(), "-", "+").Result()
		return err == nil && len(msgs) > 0
	}, 3*time.Second, 20*time.Millisecond)

	msgs, err := fx.rdb.XRange(ctx, fx.topics.Commands(), "-", "+").Result()
	require.NoError(t, err)
	var cmd models.ModuleCommand
	require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &cmd))
	assert.Equal(t, "music", cmd.ModuleName)
	assert.Equal(t, "!songrequest penguin", cmd.Message)
}

func TestRouterModuleTimeoutStillCompletes(t *testing.T) {
	fx := setupRouter(t, func(d *Deps) {
		d.Registry.Register(Trigger{Kind: TriggerCommand, Pattern: "!slow", Module: "sleeper"})
		d.Aggregator = NewAggregator(60*time.Millisecond, 200*time.Millisecond)
	})
	ctx := context.Background()

	_, err := fx.client.Publish(ctx, fx.topics.Inbound(), testEnvelope("!slow"))
	require.NoError(t, err)

	// No module ever answers; the session completes after the deadline
	// with the dispatched module recorded and no actions emitted.
	require.Eventually(t, func() bool {
		_, ok := fx.sessions.completedModules("sess-e2e")
		return ok
	}, 3*time.Second, 20*time.Millisecond)

	mods, _ := fx.sessions.completedModules("sess-e2e")
	assert.Equal(t, []string{"sleeper"}, mods)
	assert.Empty(t, actionsOn(t, fx.rdb, fx.topics.Actions(models.PlatformTwitch)))
}

func TestRouterNoTriggerCompletesQuietly(t *testing.T) {
	fx := setupRouter(t, nil)
	ctx := context.Background()

	_, err := fx.client.Publish(ctx, fx.topics.Inbound(), testEnvelope("just chatting"))
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, ok := fx.sessions.completedModules("sess-e2e")
		return ok
	}, 3*time.Second, 20*time.Millisecond)

	mods, _ := fx.sessions.completedModules("sess-e2e")
	assert.Empty(t, mods)
	assert.Empty(t, actionsOn(t, fx.rdb, fx.topics.Actions(models.PlatformTwitch)))
}

func TestRouterMalformedEnvelopeDeadLetters(t *testing.T) {
	fx := setupRouter(t, nil)
	ctx := context.Background()

	_, err := fx.rdb.XAdd(ctx, &redis.XAddArgs{
		Stream: fx.topics.Inbound(),
		Values: map[string]any{"data": "{not json", "timestamp": time.Now().Format(time.RFC3339Nano), "retry_count": "0"},
	}).Result()
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		msgs, err := fx.rdb.XRange(ctx, "dlq:events:inbound", "-", "+").Result()
		return err == nil && len(msgs) == 1
	}, 3*time.Second, 20*time.Millisecond)
}
