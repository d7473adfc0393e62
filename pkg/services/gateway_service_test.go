package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

func TestCreateGateway(t *testing.T) {
	client := setupClient(t)
	sc, rdb := setupStream(t)
	topics := stream.NewTopics("events")
	svc := NewGatewayService(client, sc, topics)
	ctx := context.Background()
	comm := createTestCommunity(t, client, "gw-test", "owner-1")

	t.Run("creates gateway and queues onboarding message", func(t *testing.T) {
		gw, err := svc.CreateGateway(ctx, CreateGatewayRequest{
			CommunityID: comm.ID,
			Platform:    models.PlatformTwitch,
			ChannelID:   "chan-1",
			CreatedBy:   "owner-1",
		})
		require.NoError(t, err)
		assert.False(t, gw.Activated)
		assert.Len(t, gw.ActivationCode, 8)

		msgs, err := rdb.XRange(ctx, topics.Actions(models.PlatformTwitch), "-", "+").Result()
		require.NoError(t, err)
		require.Len(t, msgs, 1)

		var action models.Action
		require.NoError(t, json.Unmarshal([]byte(msgs[0].Values["data"].(string)), &action))
		assert.Equal(t, "chan-1", action.ChannelID)
		assert.Contains(t, action.Text, gw.ActivationCode)
	})

	t.Run("duplicate location conflicts", func(t *testing.T) {
		_, err := svc.CreateGateway(ctx, CreateGatewayRequest{
			CommunityID: comm.ID,
			Platform:    models.PlatformTwitch,
			ChannelID:   "chan-1",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("unknown community", func(t *testing.T) {
		_, err := svc.CreateGateway(ctx, CreateGatewayRequest{
			CommunityID: "missing",
			Platform:    models.PlatformTwitch,
			ChannelID:   "chan-2",
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid platform", func(t *testing.T) {
		_, err := svc.CreateGateway(ctx, CreateGatewayRequest{
			CommunityID: comm.ID,
			Platform:    "myspace",
			ChannelID:   "chan-3",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestActivateAndResolveGateway(t *testing.T) {
	client := setupClient(t)
	sc, _ := setupStream(t)
	svc := NewGatewayService(client, sc, stream.NewTopics("events"))
	ctx := context.Background()
	comm := createTestCommunity(t, client, "activate-test", "owner-1")

	gw, err := svc.CreateGateway(ctx, CreateGatewayRequest{
		CommunityID: comm.ID,
		Platform:    models.PlatformDiscord,
		ServerID:    "guild-1",
		ChannelID:   "chan-9",
	})
	require.NoError(t, err)

	t.Run("inactive gateway does not resolve", func(t *testing.T) {
		_, err := svc.Resolve(ctx, models.PlatformDiscord, "guild-1", "chan-9")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("activation", func(t *testing.T) {
		activated, err := svc.Activate(ctx, gw.ActivationCode)
		require.NoError(t, err)
		assert.True(t, activated.Activated)
		require.NotNil(t, activated.ActivatedAt)

		// A code redeems once.
		_, err = svc.Activate(ctx, gw.ActivationCode)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("resolve after activation", func(t *testing.T) {
		resolved, err := svc.Resolve(ctx, models.PlatformDiscord, "guild-1", "chan-9")
		require.NoError(t, err)
		assert.Equal(t, gw.ID, resolved.ID)
		assert.Equal(t, comm.ID, resolved.CommunityID)
	})

	t.Run("unknown code", func(t *testing.T) {
		_, err := svc.Activate(ctx, "NOPE1234")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteGateway(t *testing.T) {
	client := setupClient(t)
	sc, rdb := setupStream(t)
	topics := stream.NewTopics("events")
	svc := NewGatewayService(client, sc, topics)
	ctx := context.Background()
	comm := createTestCommunity(t, client, "delete-test", "owner-1")

	gw, err := svc.CreateGateway(ctx, CreateGatewayRequest{
		CommunityID: comm.ID,
		Platform:    models.PlatformTwitch,
		ChannelID:   "chan-del",
	})
	require.NoError(t, err)
	_, err = svc.Activate(ctx, gw.ActivationCode)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteGateway(ctx, gw.ID))

	_, err = svc.GetGateway(ctx, gw.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Onboarding plus farewell.
	msgs, err := rdb.XRange(ctx, topics.Actions(models.PlatformTwitch), "-", "+").Result()
	require.NoError(t, err)
	assert.Len(t, msgs, 2)

	// Deleting again tolerates the missing row.
	assert.NoError(t, svc.DeleteGateway(ctx, gw.ID))
}
