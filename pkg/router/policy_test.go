package router

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

type fakeMembers struct {
	role  models.Role
	err   error
	calls atomic.Int64
}

func (f *fakeMembers) GetRole(ctx context.Context, communityID, userID string) (models.Role, error) {
	f.calls.Add(1)
	return f.role, f.err
}

type fakeCapabilities struct {
	caps []string
	err  error
}

func (f *fakeCapabilities) Capabilities(ctx context.Context, communityID, userID string) ([]string, error) {
	return f.caps, f.err
}

func policySession() *models.Session {
	return &models.Session{
		ID:          "sess-1",
		CommunityID: "comm-1",
		Envelope:    models.EventEnvelope{UserID: "user-1", Username: "penguin"},
	}
}

func TestPolicyRateLimitDenies(t *testing.T) {
	p := NewPolicy(&fakeMembers{role: models.RoleMember}, nil, rate.Limit(1), 1)
	trig := Trigger{Module: "songs"}
	ctx := context.Background()

	first := p.Check(ctx, policySession(), trig, nil)
	assert.True(t, first.Allowed)

	second := p.Check(ctx, policySession(), trig, nil)
	assert.False(t, second.Allowed)
	assert.Equal(t, waddleerr.KindRateLimited, second.Kind)
	assert.Contains(t, second.Reason, "rate limit")
}

func TestPolicyRateLimitBucketsPerModule(t *testing.T) {
	p := NewPolicy(&fakeMembers{role: models.RoleMember}, nil, rate.Limit(1), 1)
	ctx := context.Background()

	assert.True(t, p.Check(ctx, policySession(), Trigger{Module: "songs"}, nil).Allowed)
	// A different module draws from a different bucket.
	assert.True(t, p.Check(ctx, policySession(), Trigger{Module: "quotes"}, nil).Allowed)
}

func TestPolicyRoleDenied(t *testing.T) {
	p := NewPolicy(&fakeMembers{role: models.RoleMember}, nil, rate.Inf, 0)
	trig := Trigger{Module: "moderation", MinRole: models.RoleModerator}

	decision := p.Check(context.Background(), policySession(), trig, nil)
	assert.False(t, decision.Allowed)
	assert.Equal(t, waddleerr.KindPolicyDenied, decision.Kind)
	assert.Contains(t, decision.Reason, "requires role")
}

func TestPolicyCapabilityOverridesRole(t *testing.T) {
	caps := &fakeCapabilities{caps: []string{"module:moderation"}}
	p := NewPolicy(&fakeMembers{role: models.RoleMember}, caps, rate.Inf, 0)
	trig := Trigger{Module: "moderation", MinRole: models.RoleModerator}

	assert.True(t, p.Check(context.Background(), policySession(), trig, nil).Allowed)

	// The grant is module-scoped.
	other := Trigger{Module: "bans", MinRole: models.RoleModerator}
	assert.False(t, p.Check(context.Background(), policySession(), other, nil).Allowed)
}

func TestPolicyBlanketCapability(t *testing.T) {
	caps := &fakeCapabilities{caps: []string{"module:*"}}
	p := NewPolicy(&fakeMembers{role: models.RoleVisitor}, caps, rate.Inf, 0)
	trig := Trigger{Module: "anything", MinRole: models.RoleAdmin}

	assert.True(t, p.Check(context.Background(), policySession(), trig, nil).Allowed)
}

func TestPolicyDisabledModuleDenied(t *testing.T) {
	p := NewPolicy(&fakeMembers{role: models.RoleOwner}, nil, rate.Inf, 0)
	settings := map[string]any{"disabled_modules": []any{"songs"}}

	decision := p.Check(context.Background(), policySession(), Trigger{Module: "songs"}, settings)
	assert.False(t, decision.Allowed)
	assert.Equal(t, waddleerr.KindPolicyDenied, decision.Kind)

	assert.True(t, p.Check(context.Background(), policySession(), Trigger{Module: "quotes"}, settings).Allowed)
}

func TestPolicyRoleLookupFailureFallsBackToVisitor(t *testing.T) {
	members := &fakeMembers{err: errors.New("connection refused")}
	p := NewPolicy(members, nil, rate.Inf, 0)

	sess := policySession()
	decision := p.Check(context.Background(), sess, Trigger{Module: "chatter"}, nil)
	assert.True(t, decision.Allowed)
	assert.Equal(t, models.RoleVisitor, sess.Role)

	// Visitor still cannot pass a role gate.
	gated := p.Check(context.Background(), sess, Trigger{Module: "admin", MinRole: models.RoleAdmin}, nil)
	assert.False(t, gated.Allowed)
}

func TestPolicyRoleCaching(t *testing.T) {
	members := &fakeMembers{role: models.RoleModerator}
	p := NewPolicy(members, nil, rate.Inf, 0)
	ctx := context.Background()

	p.Check(ctx, policySession(), Trigger{Module: "m"}, nil)
	p.Check(ctx, policySession(), Trigger{Module: "m"}, nil)
	assert.Equal(t, int64(1), members.calls.Load())

	p.InvalidateRole("comm-1", "user-1")
	p.Check(ctx, policySession(), Trigger{Module: "m"}, nil)
	assert.Equal(t, int64(2), members.calls.Load())
}

func TestPolicySetsSessionRole(t *testing.T) {
	p := NewPolicy(&fakeMembers{role: models.RoleAdmin}, nil, rate.Inf, 0)

	sess := policySession()
	p.Check(context.Background(), sess, Trigger{Module: "m"}, nil)
	assert.Equal(t, models.RoleAdmin, sess.Role)
}
