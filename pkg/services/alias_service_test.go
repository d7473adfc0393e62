package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAlias(t *testing.T) {
	client := setupClient(t)
	svc := NewAliasService(client)
	ctx := context.Background()

	t.Run("creates command alias", func(t *testing.T) {
		a, err := svc.CreateAlias(ctx, CreateAliasRequest{
			EntityID:      "gw-1",
			Alias:         "!so",
			CommandType:   "command",
			ActionCommand: "!shoutout {arg1}",
			CreatedBy:     "mod-1",
		})
		require.NoError(t, err)
		assert.True(t, a.IsActive)
		assert.Zero(t, a.UsageCount)
	})

	t.Run("duplicate active alias conflicts", func(t *testing.T) {
		_, err := svc.CreateAlias(ctx, CreateAliasRequest{
			EntityID:      "gw-1",
			Alias:         "!so",
			CommandType:   "command",
			ActionCommand: "!shoutout {arg1}",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("same alias on another entity is fine", func(t *testing.T) {
		_, err := svc.CreateAlias(ctx, CreateAliasRequest{
			EntityID:      "gw-2",
			Alias:         "!so",
			CommandType:   "command",
			ActionCommand: "!shoutout {arg1}",
		})
		assert.NoError(t, err)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.CreateAlias(ctx, CreateAliasRequest{EntityID: "gw-1", Alias: "so"})
		assert.True(t, IsValidationError(err), "alias must start with !")

		_, err = svc.CreateAlias(ctx, CreateAliasRequest{EntityID: "gw-1", Alias: "!two words"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateAlias(ctx, CreateAliasRequest{
			EntityID: "gw-1", Alias: "!txt", CommandType: "text"})
		assert.True(t, IsValidationError(err), "text alias needs response text")
	})
}

func TestRemoveAliasSoftDelete(t *testing.T) {
	client := setupClient(t)
	svc := NewAliasService(client)
	ctx := context.Background()

	_, err := svc.CreateAlias(ctx, CreateAliasRequest{
		EntityID:     "gw-1",
		Alias:        "!hi",
		CommandType:  "text",
		ResponseText: "hello there",
	})
	require.NoError(t, err)

	require.NoError(t, svc.RemoveAlias(ctx, "gw-1", "!hi"))

	// Gone from listings and resolution...
	aliases, err := svc.ListAliases(ctx, "gw-1")
	require.NoError(t, err)
	assert.Empty(t, aliases)

	_, err = svc.Resolve(ctx, "gw-1", "!hi", "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	// ...but re-creation works because the old row is only inactive.
	_, err = svc.CreateAlias(ctx, CreateAliasRequest{
		EntityID:     "gw-1",
		Alias:        "!hi",
		CommandType:  "text",
		ResponseText: "hi again",
	})
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.RemoveAlias(ctx, "gw-1", "!missing"), ErrNotFound)
}

func TestResolveAlias(t *testing.T) {
	client := setupClient(t)
	svc := NewAliasService(client)
	ctx := context.Background()

	_, err := svc.CreateAlias(ctx, CreateAliasRequest{
		EntityID:      "gw-1",
		Alias:         "!so",
		CommandType:   "command",
		ActionCommand: "!shoutout {arg1} from {user}",
	})
	require.NoError(t, err)

	t.Run("expands placeholders", func(t *testing.T) {
		exp, err := svc.Resolve(ctx, "gw-1", "!so streamer99 extra", "alice")
		require.NoError(t, err)
		assert.Equal(t, "!shoutout streamer99 from alice", exp.Message)
		assert.False(t, exp.Direct)
	})

	t.Run("missing args render empty", func(t *testing.T) {
		exp, err := svc.Resolve(ctx, "gw-1", "!so", "alice")
		require.NoError(t, err)
		assert.Equal(t, "!shoutout  from alice", exp.Message)
	})

	t.Run("usage count increments", func(t *testing.T) {
		aliases, err := svc.ListAliases(ctx, "gw-1")
		require.NoError(t, err)
		require.Len(t, aliases, 1)
		assert.Equal(t, 2, aliases[0].UsageCount)
		assert.NotNil(t, aliases[0].LastUsed)
	})

	t.Run("text alias is a direct response", func(t *testing.T) {
		_, err := svc.CreateAlias(ctx, CreateAliasRequest{
			EntityID:     "gw-1",
			Alias:        "!discord",
			CommandType:  "text",
			ResponseText: "join us: discord.gg/waddle",
		})
		require.NoError(t, err)

		exp, err := svc.Resolve(ctx, "gw-1", "!discord", "bob")
		require.NoError(t, err)
		assert.True(t, exp.Direct)
		assert.Equal(t, "join us: discord.gg/waddle", exp.Message)
	})

	t.Run("all_args placeholder", func(t *testing.T) {
		_, err := svc.CreateAlias(ctx, CreateAliasRequest{
			EntityID:      "gw-1",
			Alias:         "!say",
			CommandType:   "command",
			ActionCommand: "!announce {all_args}",
		})
		require.NoError(t, err)

		exp, err := svc.Resolve(ctx, "gw-1", "!say hello to everyone", "mod")
		require.NoError(t, err)
		assert.Equal(t, "!announce hello to everyone", exp.Message)
	})

	t.Run("no match", func(t *testing.T) {
		_, err := svc.Resolve(ctx, "gw-1", "just chatting", "bob")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = svc.Resolve(ctx, "gw-1", "", "bob")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
