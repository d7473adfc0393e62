package services

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/gateway"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
)

// activationAlphabet excludes ambiguous characters (0/O, 1/I/L).
const activationAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// GatewayService creates and tears down gateways: the platform locations a
// community is activated on. Creation is a small saga — community check,
// activation code, gateway row, onboarding message — and deletion reverses
// it tolerating partial cleanup.
type GatewayService struct {
	client *ent.Client
	stream *stream.Client
	topics stream.Topics
}

// NewGatewayService creates a new GatewayService
func NewGatewayService(client *ent.Client, sc *stream.Client, topics stream.Topics) *GatewayService {
	return &GatewayService{client: client, stream: sc, topics: topics}
}

// CreateGatewayRequest carries the fields for a new gateway.
type CreateGatewayRequest struct {
	CommunityID string
	Platform    models.Platform
	ServerID    string
	ChannelID   string
	CreatedBy   string
}

// CreateGateway registers a platform location for a community and queues the
// onboarding message carrying the activation code. The gateway stays
// inactive until the code is redeemed.
func (s *GatewayService) CreateGateway(httpCtx context.Context, req CreateGatewayRequest) (*ent.Gateway, error) {
	if req.CommunityID == "" {
		return nil, NewValidationError("community_id", "required")
	}
	if !req.Platform.Valid() {
		return nil, NewValidationError("platform", fmt.Sprintf("unknown platform %q", req.Platform))
	}
	if req.ChannelID == "" {
		return nil, NewValidationError("channel_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if err := communityExists(ctx, s.client, req.CommunityID); err != nil {
		return nil, err
	}

	code, err := newActivationCode()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate activation code: %w", err)
	}

	gw, err := s.client.Gateway.Create().
		SetID(uuid.New().String()).
		SetCommunityID(req.CommunityID).
		SetPlatform(gateway.Platform(req.Platform)).
		SetServerID(req.ServerID).
		SetChannelID(req.ChannelID).
		SetActivationCode(code).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}

	// Onboarding failure leaves a usable gateway; the operator can fetch
	// the code again, so log and keep going.
	if err := s.sendOnboarding(ctx, gw); err != nil {
		slog.Warn("Onboarding message not delivered",
			"gateway_id", gw.ID, "platform", gw.Platform, "error", err)
	}
	return gw, nil
}

func (s *GatewayService) sendOnboarding(ctx context.Context, gw *ent.Gateway) error {
	action := models.Action{
		ModuleName: "gateway_creator",
		Platform:   models.Platform(gw.Platform),
		ChannelID:  gw.ChannelID,
		ServerID:   gw.ServerID,
		Type:       models.ActionChatMessage,
		Text:       fmt.Sprintf("WaddleBot is almost ready! Activate this channel with code %s", gw.ActivationCode),
		EmittedAt:  time.Now(),
	}
	_, err := s.stream.Publish(ctx, s.topics.Actions(models.Platform(gw.Platform)), action)
	return err
}

// Activate redeems an activation code and marks the gateway live.
func (s *GatewayService) Activate(httpCtx context.Context, code string) (*ent.Gateway, error) {
	if code == "" {
		return nil, NewValidationError("activation_code", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	gw, err := s.client.Gateway.Query().
		Where(gateway.ActivationCodeEQ(code), gateway.Activated(false)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up activation code: %w", err)
	}

	updated, err := gw.Update().
		SetActivated(true).
		SetActivatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to activate gateway: %w", err)
	}
	return updated, nil
}

// Resolve looks up the gateway for a platform location. The router calls
// this (through its cache) for every inbound event.
func (s *GatewayService) Resolve(httpCtx context.Context, platform models.Platform, serverID, channelID string) (*ent.Gateway, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	gw, err := s.client.Gateway.Query().
		Where(
			gateway.PlatformEQ(gateway.Platform(platform)),
			gateway.ServerIDEQ(serverID),
			gateway.ChannelIDEQ(channelID),
			gateway.Activated(true),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve gateway: %w", err)
	}
	return gw, nil
}

// GetGateway returns one gateway by id.
func (s *GatewayService) GetGateway(httpCtx context.Context, gatewayID string) (*ent.Gateway, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	gw, err := s.client.Gateway.Get(ctx, gatewayID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get gateway: %w", err)
	}
	return gw, nil
}

// DeleteGateway removes a gateway and notifies the channel. Each step
// tolerates the previous one having partially completed: a missing row is
// still a successful delete, and a failed farewell message never blocks it.
func (s *GatewayService) DeleteGateway(httpCtx context.Context, gatewayID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	gw, err := s.client.Gateway.Get(ctx, gatewayID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to get gateway: %w", err)
	}

	if gw.Activated {
		action := models.Action{
			ModuleName: "gateway_creator",
			Platform:   models.Platform(gw.Platform),
			ChannelID:  gw.ChannelID,
			ServerID:   gw.ServerID,
			Type:       models.ActionChatMessage,
			Text:       "WaddleBot has left this channel.",
			EmittedAt:  time.Now(),
		}
		if _, err := s.stream.Publish(ctx, s.topics.Actions(models.Platform(gw.Platform)), action); err != nil {
			slog.Warn("Farewell message not delivered", "gateway_id", gw.ID, "error", err)
		}
	}

	if err := s.client.Gateway.DeleteOneID(gatewayID).Exec(ctx); err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to delete gateway: %w", err)
	}
	return nil
}

// ListGateways returns a community's gateways.
func (s *GatewayService) ListGateways(httpCtx context.Context, communityID string) ([]*ent.Gateway, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	gws, err := s.client.Gateway.Query().
		Where(gateway.CommunityIDEQ(communityID)).
		Order(ent.Asc(gateway.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list gateways: %w", err)
	}
	return gws, nil
}

// newActivationCode draws an 8-character code from the unambiguous alphabet.
func newActivationCode() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = activationAlphabet[int(b)%len(activationAlphabet)]
	}
	return string(buf), nil
}
