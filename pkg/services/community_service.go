// Package services contains business logic service layer implementations.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/community"
	"github.com/waddlebot/waddlebot-core/ent/member"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// CommunityService manages communities, their settings map, and membership.
type CommunityService struct {
	client *ent.Client
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(client *ent.Client) *CommunityService {
	return &CommunityService{client: client}
}

// CreateCommunityRequest carries the fields for a new community.
type CreateCommunityRequest struct {
	Name     string
	OwnerID  string
	Settings map[string]any
}

// CreateCommunity creates a community and its owner membership row.
func (s *CommunityService) CreateCommunity(httpCtx context.Context, req CreateCommunityRequest) (*ent.Community, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if req.OwnerID == "" {
		return nil, NewValidationError("owner_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	comm, err := s.client.Community.Create().
		SetID(uuid.New().String()).
		SetName(req.Name).
		SetOwnerID(req.OwnerID).
		SetSettings(req.Settings).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create community: %w", err)
	}

	_, err = s.client.Member.Create().
		SetCommunityID(comm.ID).
		SetUserID(req.OwnerID).
		SetRole(member.RoleOwner).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create owner membership: %w", err)
	}
	return comm, nil
}

// GetCommunity returns one community by id.
func (s *CommunityService) GetCommunity(httpCtx context.Context, communityID string) (*ent.Community, error) {
	if communityID == "" {
		return nil, NewValidationError("community_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	comm, err := s.client.Community.Get(ctx, communityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	return comm, nil
}

// UpdateSettings merges patch into the community settings map. Keys set to
// nil in the patch are removed.
func (s *CommunityService) UpdateSettings(httpCtx context.Context, communityID string, patch map[string]any) (*ent.Community, error) {
	if communityID == "" {
		return nil, NewValidationError("community_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	comm, err := s.client.Community.Get(ctx, communityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	settings := comm.Settings
	if settings == nil {
		settings = make(map[string]any, len(patch))
	}
	for k, v := range patch {
		if v == nil {
			delete(settings, k)
			continue
		}
		settings[k] = v
	}

	updated, err := s.client.Community.UpdateOneID(communityID).
		SetSettings(settings).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}
	return updated, nil
}

// GetRole returns the user's role in the community. Non-members are
// visitors, not an error.
func (s *CommunityService) GetRole(httpCtx context.Context, communityID, userID string) (models.Role, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	m, err := s.client.Member.Query().
		Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return models.RoleVisitor, nil
		}
		return "", fmt.Errorf("failed to get membership: %w", err)
	}
	return models.Role(m.Role), nil
}

// Capabilities returns the user's delegated grants. Non-members have none.
func (s *CommunityService) Capabilities(httpCtx context.Context, communityID, userID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	m, err := s.client.Member.Query().
		Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	return m.Capabilities, nil
}

// EnsureMember records a membership with the default role if none exists.
// The existing row wins a creation race.
func (s *CommunityService) EnsureMember(httpCtx context.Context, communityID, userID string) (*ent.Member, error) {
	if communityID == "" {
		return nil, NewValidationError("community_id", "required")
	}
	if userID == "" {
		return nil, NewValidationError("user_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	existing, err := s.client.Member.Query().
		Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
		Only(ctx)
	if err == nil {
		return existing, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query membership: %w", err)
	}

	m, err := s.client.Member.Create().
		SetCommunityID(communityID).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			existing, queryErr := s.client.Member.Query().
				Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
				Only(ctx)
			if queryErr != nil {
				return nil, fmt.Errorf("failed to query membership after constraint error: %w", queryErr)
			}
			return existing, nil
		}
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return m, nil
}

// SetRole updates a member's role. The community owner cannot be demoted
// through this path.
func (s *CommunityService) SetRole(httpCtx context.Context, communityID, userID string, role models.Role) (*ent.Member, error) {
	if !role.Valid() {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	comm, err := s.client.Community.Get(ctx, communityID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}
	if comm.OwnerID == userID && role != models.RoleOwner {
		return nil, NewValidationError("role", "community owner role cannot be changed")
	}

	n, err := s.client.Member.Update().
		Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
		SetRole(member.Role(role)).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update role: %w", err)
	}
	if n == 0 {
		return nil, ErrNotFound
	}

	m, err := s.client.Member.Query().
		Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload membership: %w", err)
	}
	return m, nil
}

// GrantCapability appends a delegated per-resource grant to the membership,
// e.g. "calendar:event:42:admin". Granting twice is idempotent.
func (s *CommunityService) GrantCapability(httpCtx context.Context, communityID, userID, capability string) (*ent.Member, error) {
	if capability == "" {
		return nil, NewValidationError("capability", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	m, err := s.client.Member.Query().
		Where(member.CommunityIDEQ(communityID), member.UserIDEQ(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	for _, c := range m.Capabilities {
		if c == capability {
			return m, nil
		}
	}

	updated, err := m.Update().
		SetCapabilities(append(m.Capabilities, capability)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to grant capability: %w", err)
	}
	return updated, nil
}

// ListMembers returns the community membership ordered by join time.
func (s *CommunityService) ListMembers(httpCtx context.Context, communityID string) ([]*ent.Member, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	members, err := s.client.Member.Query().
		Where(member.CommunityIDEQ(communityID)).
		Order(ent.Asc(member.FieldJoinedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// communityExists is shared by services that only need an existence check.
func communityExists(ctx context.Context, client *ent.Client, communityID string) error {
	ok, err := client.Community.Query().
		Where(community.IDEQ(communityID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to check community: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
