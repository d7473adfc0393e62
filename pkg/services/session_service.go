package services

import (
	"context"
	"fmt"
	"time"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/ent/sessionrecord"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// SessionService persists the correlation row each session leaves behind.
// The row is written at receipt and updated as the router advances; the
// in-memory session stays the source of truth until a terminal state.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// RecordReceipt writes the initial correlation row for an inbound event.
func (s *SessionService) RecordReceipt(httpCtx context.Context, sess *models.Session) (*ent.SessionRecord, error) {
	if sess.ID == "" {
		return nil, NewValidationError("session_id", "required")
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rec, err := s.client.SessionRecord.Create().
		SetID(sess.ID).
		SetPlatform(sessionrecord.Platform(sess.Envelope.Platform)).
		SetUserID(sess.Envelope.UserID).
		SetUsername(sess.Envelope.Username).
		SetMessageType(string(sess.Envelope.MessageType)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to record session: %w", err)
	}
	return rec, nil
}

// MarkResolved attaches the resolved gateway and community once the router
// leaves the Resolving state.
func (s *SessionService) MarkResolved(httpCtx context.Context, sessionID, entityID, communityID string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.SessionRecord.UpdateOneID(sessionID).
		SetEntityID(entityID).
		SetCommunityID(communityID).
		SetStatus(sessionrecord.StatusResolving).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark session resolved: %w", err)
	}
	return nil
}

// UpdateStatus records a coarse state transition. The router's fine-grained
// states collapse onto the persisted enum.
func (s *SessionService) UpdateStatus(httpCtx context.Context, sessionID string, state models.SessionState) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.SessionRecord.UpdateOneID(sessionID).
		SetStatus(persistedStatus(state)).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update session status: %w", err)
	}
	return nil
}

// Complete marks a session finished and records which modules ran.
func (s *SessionService) Complete(httpCtx context.Context, sessionID string, modulesInvoked []string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.SessionRecord.UpdateOneID(sessionID).
		SetStatus(sessionrecord.StatusCompleted).
		SetModulesInvoked(modulesInvoked).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete session: %w", err)
	}
	return nil
}

// Fail marks a session failed with its reason.
func (s *SessionService) Fail(httpCtx context.Context, sessionID, reason string) error {
	return s.finish(httpCtx, sessionID, sessionrecord.StatusFailed, reason)
}

// Reject marks a session rejected (unknown entity, policy denial).
func (s *SessionService) Reject(httpCtx context.Context, sessionID, reason string) error {
	return s.finish(httpCtx, sessionID, sessionrecord.StatusRejected, reason)
}

func (s *SessionService) finish(httpCtx context.Context, sessionID string, status sessionrecord.Status, reason string) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.SessionRecord.UpdateOneID(sessionID).
		SetStatus(status).
		SetErrorMessage(reason).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to finish session: %w", err)
	}
	return nil
}

// GetSession returns one correlation row.
func (s *SessionService) GetSession(httpCtx context.Context, sessionID string) (*ent.SessionRecord, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rec, err := s.client.SessionRecord.Get(ctx, sessionID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return rec, nil
}

// PurgeBefore deletes terminal correlation rows created before cutoff.
// Non-terminal rows stay regardless of age so stuck sessions remain
// visible for inspection.
func (s *SessionService) PurgeBefore(httpCtx context.Context, cutoff time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 30*time.Second)
	defer cancel()

	n, err := s.client.SessionRecord.Delete().
		Where(
			sessionrecord.CreatedAtLT(cutoff),
			sessionrecord.StatusIn(
				sessionrecord.StatusCompleted,
				sessionrecord.StatusFailed,
				sessionrecord.StatusRejected,
			),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge session records: %w", err)
	}
	return n, nil
}

// persistedStatus collapses router states onto the stored enum: every
// pre-dispatch state persists as resolving, the collection and emission
// phases as collecting.
func persistedStatus(state models.SessionState) sessionrecord.Status {
	switch state {
	case models.StateReceived:
		return sessionrecord.StatusReceived
	case models.StateResolving, models.StatePolicy, models.StateClassifying, models.StateResolvingAlias:
		return sessionrecord.StatusResolving
	case models.StateDispatching:
		return sessionrecord.StatusDispatching
	case models.StateCollecting, models.StateEmitting:
		return sessionrecord.StatusCollecting
	case models.StateCompleted:
		return sessionrecord.StatusCompleted
	case models.StateFailed:
		return sessionrecord.StatusFailed
	case models.StateRejected:
		return sessionrecord.StatusRejected
	default:
		return sessionrecord.StatusReceived
	}
}
