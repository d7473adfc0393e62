package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/botscore"
)

// recalculationInterval is how long a computed score stays fresh.
const recalculationInterval = 24 * time.Hour

// Service serves bot scores from the BotScore cache, recomputing from the
// ActivitySource when a row is missing or past its recalculation time.
type Service struct {
	client *ent.Client
	source ActivitySource

	// now is swappable in tests.
	now func() time.Time
}

// NewService creates a new analytics Service.
func NewService(client *ent.Client, source ActivitySource) *Service {
	return &Service{client: client, source: source, now: time.Now}
}

// GetScore returns the community's bot score, recomputing if stale. A
// recompute failure with a cached row falls back to the stale value.
func (s *Service) GetScore(ctx context.Context, communityID string) (*ent.BotScore, error) {
	row, err := s.client.BotScore.Query().
		Where(botscore.CommunityIDEQ(communityID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query bot score: %w", err)
	}

	if row != nil && s.now().Before(row.NextRecalculation) {
		return row, nil
	}

	fresh, err := s.Recalculate(ctx, communityID)
	if err != nil {
		if row != nil {
			slog.Warn("Bot score recompute failed, serving stale score",
				"community_id", communityID, "error", err)
			return row, nil
		}
		return nil, err
	}
	return fresh, nil
}

// Recalculate computes and stores a fresh score regardless of cache state.
func (s *Service) Recalculate(ctx context.Context, communityID string) (*ent.BotScore, error) {
	activity, err := s.source.Activity(ctx, communityID, activityWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to read activity for %s: %w", communityID, err)
	}

	now := s.now()
	score := Compute(activity, now)

	err = s.client.BotScore.Create().
		SetCommunityID(communityID).
		SetOverall(score.Overall).
		SetGrade(score.Grade).
		SetSizeCategory(botscore.SizeCategory(score.Size)).
		SetBadActorScore(score.BadActor).
		SetReputationScore(score.Reputation).
		SetSecurityScore(score.Security).
		SetAiBehavioralScore(score.AIBehavioral).
		SetWeights(score.Weights).
		SetCalculatedAt(now).
		SetNextRecalculation(now.Add(recalculationInterval)).
		OnConflictColumns(botscore.FieldCommunityID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to store bot score: %w", err)
	}

	row, err := s.client.BotScore.Query().
		Where(botscore.CommunityIDEQ(communityID)).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to reload bot score: %w", err)
	}
	return row, nil
}
