package router

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// MemberSource supplies a user's membership within a community.
// CommunityService satisfies it.
type MemberSource interface {
	GetRole(ctx context.Context, communityID, userID string) (models.Role, error)
}

// CapabilitySource lists a member's delegated grants. Optional; a nil
// source means role checks alone decide.
type CapabilitySource interface {
	Capabilities(ctx context.Context, communityID, userID string) ([]string, error)
}

// Decision is one policy outcome. Denials carry the reason written to the
// audit log and surfaced on the session.
type Decision struct {
	Allowed bool
	Reason  string
	Kind    waddleerr.Kind
}

var allowed = Decision{Allowed: true}

// Policy applies the admission pipeline to a session and a matched trigger:
// rate limit, then role, then delegated grants, then community feature
// flags. The first denial wins.
type Policy struct {
	members      MemberSource
	capabilities CapabilitySource

	defaultLimit rate.Limit
	defaultBurst int

	mu       sync.Mutex
	limiters map[string]*limiterEntry

	roleMu    sync.Mutex
	roleCache map[string]cachedRole
	roleTTL   time.Duration
}

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type cachedRole struct {
	role     models.Role
	cachedAt time.Time
}

// NewPolicy creates a policy engine. defaultLimit applies to triggers that
// declare no rate limit of their own.
func NewPolicy(members MemberSource, capabilities CapabilitySource, defaultLimit rate.Limit, defaultBurst int) *Policy {
	return &Policy{
		members:      members,
		capabilities: capabilities,
		defaultLimit: defaultLimit,
		defaultBurst: defaultBurst,
		limiters:     make(map[string]*limiterEntry),
		roleCache:    make(map[string]cachedRole),
		roleTTL:      30 * time.Second,
	}
}

// Check runs the pipeline for one (session, trigger) pair. Every decision
// is audit-logged with the session id and elapsed time.
func (p *Policy) Check(ctx context.Context, sess *models.Session, trig Trigger, settings map[string]any) Decision {
	started := time.Now()
	decision := p.check(ctx, sess, trig, settings)

	logger := slog.With(
		"session_id", sess.ID,
		"community_id", sess.CommunityID,
		"user_id", sess.Envelope.UserID,
		"module", trig.Module,
		"elapsed", time.Since(started),
	)
	if decision.Allowed {
		logger.Debug("Policy allowed")
	} else {
		logger.Info("Policy denied", "reason", decision.Reason)
	}
	return decision
}

func (p *Policy) check(ctx context.Context, sess *models.Session, trig Trigger, settings map[string]any) Decision {
	if !p.allowRate(sess.CommunityID, sess.Envelope.UserID, trig) {
		return Decision{
			Reason: fmt.Sprintf("rate limit exceeded for module %s", trig.Module),
			Kind:   waddleerr.KindRateLimited,
		}
	}

	role, err := p.role(ctx, sess.CommunityID, sess.Envelope.UserID)
	if err != nil {
		// Membership lookup failing closed would silence whole communities
		// on a database blip; treat the user as a visitor instead.
		slog.Warn("Role lookup failed, treating user as visitor",
			"session_id", sess.ID, "error", err)
		role = models.RoleVisitor
	}
	sess.Role = role

	if trig.MinRole != "" && !role.AtLeast(trig.MinRole) {
		if !p.hasCapability(ctx, sess, trig) {
			return Decision{
				Reason: fmt.Sprintf("requires role %s", trig.MinRole),
				Kind:   waddleerr.KindPolicyDenied,
			}
		}
	}

	if moduleDisabled(settings, trig.Module) {
		return Decision{
			Reason: fmt.Sprintf("module %s disabled for community", trig.Module),
			Kind:   waddleerr.KindPolicyDenied,
		}
	}

	return allowed
}

// allowRate consumes one token from the (community, user, module) bucket.
func (p *Policy) allowRate(communityID, userID string, trig Trigger) bool {
	limit := trig.RateLimit
	burst := trig.Burst
	if limit == 0 {
		limit = p.defaultLimit
	}
	if burst == 0 {
		burst = p.defaultBurst
	}
	if limit == rate.Inf || limit == 0 {
		return true
	}

	key := communityID + ":" + userID + ":" + trig.Module

	p.mu.Lock()
	entry, ok := p.limiters[key]
	if !ok {
		entry = &limiterEntry{limiter: rate.NewLimiter(limit, burst)}
		p.limiters[key] = entry
		if len(p.limiters) > 100000 {
			p.evictIdleLimiters()
		}
	}
	entry.lastSeen = time.Now()
	limiter := entry.limiter
	p.mu.Unlock()

	return limiter.Allow()
}

// evictIdleLimiters drops buckets idle for over an hour. Caller holds mu.
func (p *Policy) evictIdleLimiters() {
	cutoff := time.Now().Add(-time.Hour)
	for key, entry := range p.limiters {
		if entry.lastSeen.Before(cutoff) {
			delete(p.limiters, key)
		}
	}
}

// role reads the member role through a short-TTL cache so a chat burst does
// not turn into a query storm.
func (p *Policy) role(ctx context.Context, communityID, userID string) (models.Role, error) {
	key := communityID + ":" + userID

	p.roleMu.Lock()
	if cached, ok := p.roleCache[key]; ok && time.Since(cached.cachedAt) < p.roleTTL {
		p.roleMu.Unlock()
		return cached.role, nil
	}
	p.roleMu.Unlock()

	role, err := p.members.GetRole(ctx, communityID, userID)
	if err != nil {
		return "", err
	}

	p.roleMu.Lock()
	p.roleCache[key] = cachedRole{role: role, cachedAt: time.Now()}
	p.roleMu.Unlock()
	return role, nil
}

// InvalidateRole drops a cached role, for role-change paths.
func (p *Policy) InvalidateRole(communityID, userID string) {
	p.roleMu.Lock()
	delete(p.roleCache, communityID+":"+userID)
	p.roleMu.Unlock()
}

// hasCapability checks delegated grants of the form "module:<name>" (or a
// blanket "module:*").
func (p *Policy) hasCapability(ctx context.Context, sess *models.Session, trig Trigger) bool {
	if p.capabilities == nil {
		return false
	}
	caps, err := p.capabilities.Capabilities(ctx, sess.CommunityID, sess.Envelope.UserID)
	if err != nil {
		slog.Warn("Capability lookup failed", "session_id", sess.ID, "error", err)
		return false
	}
	want := "module:" + trig.Module
	for _, c := range caps {
		if c == want || c == "module:*" {
			return true
		}
	}
	return false
}

// moduleDisabled reads the community's disabled_modules feature flag.
func moduleDisabled(settings map[string]any, module string) bool {
	raw, ok := settings["disabled_modules"]
	if !ok {
		return false
	}
	list, ok := raw.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		if s, _ := item.(string); s == module {
			return true
		}
	}
	return false
}
