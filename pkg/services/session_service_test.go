package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

func testSession(id string) *models.Session {
	return &models.Session{
		ID:    id,
		State: models.StateReceived,
		Envelope: models.EventEnvelope{
			UserID:      "user-1",
			Username:    "alice",
			Message:     "!help",
			MessageType: models.MessageTypeChat,
			Platform:    models.PlatformTwitch,
			ChannelID:   "chan-1",
		},
	}
}

func TestSessionLifecycleRows(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	t.Run("receipt row", func(t *testing.T) {
		rec, err := svc.RecordReceipt(ctx, testSession("sess-1"))
		require.NoError(t, err)
		assert.Equal(t, "received", string(rec.Status))

		_, err = svc.RecordReceipt(ctx, testSession("sess-1"))
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("resolution attaches gateway and community", func(t *testing.T) {
		require.NoError(t, svc.MarkResolved(ctx, "sess-1", "gw-1", "comm-1"))

		rec, err := svc.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "gw-1", rec.EntityID)
		assert.Equal(t, "comm-1", rec.CommunityID)
		assert.Equal(t, "resolving", string(rec.Status))
	})

	t.Run("fine-grained states collapse onto the stored enum", func(t *testing.T) {
		require.NoError(t, svc.UpdateStatus(ctx, "sess-1", models.StatePolicy))
		rec, err := svc.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "resolving", string(rec.Status))

		require.NoError(t, svc.UpdateStatus(ctx, "sess-1", models.StateEmitting))
		rec, err = svc.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "collecting", string(rec.Status))
	})

	t.Run("completion records invoked modules", func(t *testing.T) {
		require.NoError(t, svc.Complete(ctx, "sess-1", []string{"help", "shoutout"}))

		rec, err := svc.GetSession(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, "completed", string(rec.Status))
		assert.Equal(t, []string{"help", "shoutout"}, rec.ModulesInvoked)
		assert.NotNil(t, rec.CompletedAt)
	})
}

func TestSessionFailureAndRejection(t *testing.T) {
	client := setupClient(t)
	svc := NewSessionService(client)
	ctx := context.Background()

	_, err := svc.RecordReceipt(ctx, testSession("sess-f"))
	require.NoError(t, err)
	require.NoError(t, svc.Fail(ctx, "sess-f", "shutdown"))

	rec, err := svc.GetSession(ctx, "sess-f")
	require.NoError(t, err)
	assert.Equal(t, "failed", string(rec.Status))
	require.NotNil(t, rec.ErrorMessage)
	assert.Equal(t, "shutdown", *rec.ErrorMessage)

	_, err = svc.RecordReceipt(ctx, testSession("sess-r"))
	require.NoError(t, err)
	require.NoError(t, svc.Reject(ctx, "sess-r", "unknown_entity"))

	rec, err = svc.GetSession(ctx, "sess-r")
	require.NoError(t, err)
	assert.Equal(t, "rejected", string(rec.Status))

	assert.ErrorIs(t, svc.Fail(ctx, "missing", "x"), ErrNotFound)
	_, err = svc.GetSession(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
