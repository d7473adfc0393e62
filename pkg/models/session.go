package models

import "time"

// SessionState tracks a session through the router state machine.
type SessionState string

const (
	StateReceived       SessionState = "received"
	StateResolving      SessionState = "resolving"
	StatePolicy         SessionState = "policy"
	StateClassifying    SessionState = "classifying"
	StateResolvingAlias SessionState = "resolving_alias"
	StateDispatching    SessionState = "dispatching"
	StateCollecting     SessionState = "collecting"
	StateEmitting       SessionState = "emitting"
	StateCompleted      SessionState = "completed"
	StateFailed         SessionState = "failed"
	StateRejected       SessionState = "rejected"
)

// Terminal reports whether the state ends a session.
func (s SessionState) Terminal() bool {
	return s == StateCompleted || s == StateFailed || s == StateRejected
}

// Session is the execution context of one inbound event from receipt through
// action emission. The router owns the session; modules see only the
// SessionContext carried on command events.
type Session struct {
	ID          string
	State       SessionState
	Envelope    EventEnvelope
	CommunityID string
	EntityID    string
	User        UserContext
	Role        Role

	// ResolvedMessage is the message after alias expansion. Equal to
	// Envelope.Message when no alias matched.
	ResolvedMessage string
	AliasApplied    string

	ModulesInvoked []string
	FailureReason  string
	CreatedAt      time.Time
	CompletedAt    time.Time
}

// Context snapshots the session fields a module needs to act on a command.
func (s *Session) Context() SessionContext {
	return SessionContext{
		SessionID:   s.ID,
		CommunityID: s.CommunityID,
		EntityID:    s.EntityID,
		Platform:    s.Envelope.Platform,
		ChannelID:   s.Envelope.ChannelID,
		ServerID:    s.Envelope.ServerID,
		UserID:      s.Envelope.UserID,
		Username:    s.Envelope.Username,
		DisplayName: s.Envelope.DisplayName,
		Role:        s.Role,
	}
}

// SessionContext is the module-visible slice of a session.
type SessionContext struct {
	SessionID   string   `json:"session_id"`
	CommunityID string   `json:"community_id"`
	EntityID    string   `json:"entity_id"`
	Platform    Platform `json:"platform"`
	ChannelID   string   `json:"channel_id"`
	ServerID    string   `json:"server_id,omitempty"`
	UserID      string   `json:"user_id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name,omitempty"`
	Role        Role     `json:"role"`
}

// Role is a community membership role.
type Role string

const (
	RoleOwner     Role = "owner"
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleMember    Role = "member"
	RoleVisitor   Role = "visitor"
)

// roleRank orders roles from weakest to strongest.
var roleRank = map[Role]int{
	RoleVisitor:   0,
	RoleMember:    1,
	RoleModerator: 2,
	RoleAdmin:     3,
	RoleOwner:     4,
}

// AtLeast reports whether r grants at least the privileges of required.
func (r Role) AtLeast(required Role) bool {
	return roleRank[r] >= roleRank[required]
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}
