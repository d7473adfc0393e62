package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
)

// SessionActivitySource derives the activity window from session records.
// It only sees the routing plane, so the auth and AI components read zero
// until a richer source feeds them.
type SessionActivitySource struct {
	client *ent.Client
}

func NewSessionActivitySource(client *ent.Client) *SessionActivitySource {
	return &SessionActivitySource{client: client}
}

// Activity aggregates the community's session records inside the window.
func (s *SessionActivitySource) Activity(ctx context.Context, communityID string, window time.Duration) (Activity, error) {
	since := time.Now().Add(-window)
	scoped := func() *ent.SessionRecordQuery {
		return s.client.SessionRecord.Query().
			Where(
				sessionrecord.CommunityIDEQ(communityID),
				sessionrecord.CreatedAtGTE(since),
			)
	}

	messages, err := scoped().Count(ctx)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to count sessions: %w", err)
	}

	users, err := scoped().
		Unique(true).
		Select(sessionrecord.FieldUserID).
		Strings(ctx)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to count active users: %w", err)
	}

	rateLimited, err := scoped().
		Where(
			sessionrecord.StatusEQ(sessionrecord.StatusRejected),
			sessionrecord.ErrorMessageContains("rate limit"),
		).
		Count(ctx)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to count rate-limited sessions: %w", err)
	}

	policyDenied, err := scoped().
		Where(
			sessionrecord.StatusEQ(sessionrecord.StatusRejected),
			sessionrecord.ErrorMessageNotNil(),
			sessionrecord.Not(sessionrecord.ErrorMessageContains("rate limit")),
		).
		Count(ctx)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to count policy denials: %w", err)
	}

	webhookFailures, err := scoped().
		Where(
			sessionrecord.StatusEQ(sessionrecord.StatusFailed),
			sessionrecord.ErrorMessageContains("webhook"),
		).
		Count(ctx)
	if err != nil {
		return Activity{}, fmt.Errorf("failed to count webhook failures: %w", err)
	}

	return Activity{
		DistinctActiveUsers: len(users),
		Messages:            messages,
		ModerationActions:   policyDenied,
		SpamIncidents:       rateLimited,
		WebhookFailures:     webhookFailures,
	}, nil
}
