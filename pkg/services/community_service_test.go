package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

func TestCreateCommunity(t *testing.T) {
	client := setupClient(t)
	svc := NewCommunityService(client)
	ctx := context.Background()

	t.Run("creates community with owner membership", func(t *testing.T) {
		comm, err := svc.CreateCommunity(ctx, CreateCommunityRequest{
			Name:    "penguin-palace",
			OwnerID: "user-1",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, comm.ID)
		assert.Equal(t, "penguin-palace", comm.Name)

		role, err := svc.GetRole(ctx, comm.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, models.RoleOwner, role)
	})

	t.Run("validates required fields", func(t *testing.T) {
		_, err := svc.CreateCommunity(ctx, CreateCommunityRequest{OwnerID: "user-1"})
		assert.True(t, IsValidationError(err))

		_, err = svc.CreateCommunity(ctx, CreateCommunityRequest{Name: "x"})
		assert.True(t, IsValidationError(err))
	})
}

func TestCommunitySettings(t *testing.T) {
	client := setupClient(t)
	svc := NewCommunityService(client)
	ctx := context.Background()
	comm := createTestCommunity(t, client, "settings-test", "owner-1")

	updated, err := svc.UpdateSettings(ctx, comm.ID, map[string]any{
		"translation_enabled": true,
		"target_lang":         "en",
	})
	require.NoError(t, err)
	assert.Equal(t, true, updated.Settings["translation_enabled"])

	// Patch merges; nil removes.
	updated, err = svc.UpdateSettings(ctx, comm.ID, map[string]any{
		"target_lang": nil,
		"ai_mode":     "uncertain",
	})
	require.NoError(t, err)
	assert.Equal(t, true, updated.Settings["translation_enabled"])
	assert.Equal(t, "uncertain", updated.Settings["ai_mode"])
	assert.NotContains(t, updated.Settings, "target_lang")

	_, err = svc.UpdateSettings(ctx, "missing", map[string]any{"a": 1})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMembershipRoles(t *testing.T) {
	client := setupClient(t)
	svc := NewCommunityService(client)
	ctx := context.Background()
	comm := createTestCommunity(t, client, "roles-test", "owner-1")

	t.Run("unknown user is a visitor", func(t *testing.T) {
		role, err := svc.GetRole(ctx, comm.ID, "stranger")
		require.NoError(t, err)
		assert.Equal(t, models.RoleVisitor, role)
	})

	t.Run("ensure member defaults to member role", func(t *testing.T) {
		m, err := svc.EnsureMember(ctx, comm.ID, "user-2")
		require.NoError(t, err)
		assert.Equal(t, "member", string(m.Role))

		// Idempotent.
		again, err := svc.EnsureMember(ctx, comm.ID, "user-2")
		require.NoError(t, err)
		assert.Equal(t, m.ID, again.ID)
	})

	t.Run("set role", func(t *testing.T) {
		_, err := svc.EnsureMember(ctx, comm.ID, "user-3")
		require.NoError(t, err)

		m, err := svc.SetRole(ctx, comm.ID, "user-3", models.RoleModerator)
		require.NoError(t, err)
		assert.Equal(t, "moderator", string(m.Role))

		role, err := svc.GetRole(ctx, comm.ID, "user-3")
		require.NoError(t, err)
		assert.True(t, role.AtLeast(models.RoleModerator))
	})

	t.Run("owner cannot be demoted", func(t *testing.T) {
		_, err := svc.SetRole(ctx, comm.ID, "owner-1", models.RoleMember)
		assert.True(t, IsValidationError(err))
	})

	t.Run("set role on non-member", func(t *testing.T) {
		_, err := svc.SetRole(ctx, comm.ID, "nobody", models.RoleAdmin)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestCapabilityGrants(t *testing.T) {
	client := setupClient(t)
	svc := NewCommunityService(client)
	ctx := context.Background()
	comm := createTestCommunity(t, client, "caps-test", "owner-1")

	_, err := svc.EnsureMember(ctx, comm.ID, "user-2")
	require.NoError(t, err)

	m, err := svc.GrantCapability(ctx, comm.ID, "user-2", "calendar:event:42:admin")
	require.NoError(t, err)
	assert.Contains(t, m.Capabilities, "calendar:event:42:admin")

	// Granting twice keeps one entry.
	m, err = svc.GrantCapability(ctx, comm.ID, "user-2", "calendar:event:42:admin")
	require.NoError(t, err)
	assert.Len(t, m.Capabilities, 1)

	_, err = svc.GrantCapability(ctx, comm.ID, "ghost", "x:y")
	assert.ErrorIs(t, err, ErrNotFound)
}
