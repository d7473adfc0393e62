// Package router implements the central state machine: it consumes inbound
// platform events, resolves them to a community, applies policy, expands
// aliases, dispatches module commands, aggregates responses, and emits
// platform actions. The router owns every session; modules only ever see
// the session id and context.
package router

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/time/rate"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// TriggerKind tells the matcher how to interpret a trigger.
type TriggerKind string

const (
	// TriggerCommand matches the first token of a chat or slash message.
	TriggerCommand TriggerKind = "command"
	// TriggerKeyword matches any of a keyword set anywhere in the message.
	TriggerKeyword TriggerKind = "keyword"
	// TriggerQuestion matches messages ending in a question mark, gated by
	// the community's question flag.
	TriggerQuestion TriggerKind = "question"
	// TriggerEvent matches non-chat events by message type.
	TriggerEvent TriggerKind = "event"
	// TriggerWildcard matches any chat message no other trigger claimed.
	TriggerWildcard TriggerKind = "wildcard"
)

// Trigger routes matching events to one module.
type Trigger struct {
	Kind      TriggerKind
	Pattern   string
	Keywords  []string
	EventType models.MessageType
	Module    string
	Priority  int
	MinRole   models.Role
	// RateLimit caps events per user; zero means the policy default.
	RateLimit rate.Limit
	Burst     int

	// order is the registration sequence, the final tiebreaker.
	order int
}

// Registry holds the registered triggers. Registration normally happens at
// startup but is safe at runtime.
type Registry struct {
	mu       sync.RWMutex
	triggers []Trigger
	next     int
}

// NewRegistry creates an empty trigger registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a trigger. Patterns are matched case-insensitively.
func (r *Registry) Register(t Trigger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t.Pattern = strings.ToLower(t.Pattern)
	for i, kw := range t.Keywords {
		t.Keywords[i] = strings.ToLower(kw)
	}
	t.order = r.next
	r.next++
	r.triggers = append(r.triggers, t)
}

// MatchInput is one classified message presented to the registry.
type MatchInput struct {
	MessageType models.MessageType
	Message     string
	// QuestionsEnabled gates question triggers, from community settings.
	QuestionsEnabled bool
}

// Match returns every trigger claiming the input, at most one per module,
// ordered by priority (higher first) then registration order. Wildcards
// only fire when nothing specific matched.
func (r *Registry) Match(in MatchInput) []Trigger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lower := strings.ToLower(strings.TrimSpace(in.Message))
	firstToken := ""
	if fields := strings.Fields(lower); len(fields) > 0 {
		firstToken = fields[0]
	}

	var matched []Trigger
	var wildcards []Trigger
	for _, t := range r.triggers {
		switch t.Kind {
		case TriggerCommand:
			if chatLike(in.MessageType) && firstToken == t.Pattern {
				matched = append(matched, t)
			}
		case TriggerKeyword:
			if chatLike(in.MessageType) && containsKeyword(lower, t.Keywords) {
				matched = append(matched, t)
			}
		case TriggerQuestion:
			if chatLike(in.MessageType) && in.QuestionsEnabled && strings.HasSuffix(lower, "?") {
				matched = append(matched, t)
			}
		case TriggerEvent:
			if in.MessageType == t.EventType {
				matched = append(matched, t)
			}
		case TriggerWildcard:
			if chatLike(in.MessageType) {
				wildcards = append(wildcards, t)
			}
		}
	}
	if len(matched) == 0 {
		matched = wildcards
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].order < matched[j].order
	})

	return dedupeByModule(matched)
}

// Commands lists the command triggers, for the command listing endpoint.
func (r *Registry) Commands() []Trigger {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var cmds []Trigger
	for _, t := range r.triggers {
		if t.Kind == TriggerCommand {
			cmds = append(cmds, t)
		}
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Pattern < cmds[j].Pattern })
	return cmds
}

func chatLike(mt models.MessageType) bool {
	return mt == models.MessageTypeChat || mt == models.MessageTypeSlash
}

func containsKeyword(message string, keywords []string) bool {
	for _, field := range strings.Fields(message) {
		field = strings.Trim(field, ".,!?;:")
		for _, kw := range keywords {
			if field == kw {
				return true
			}
		}
	}
	return false
}

// dedupeByModule keeps the strongest trigger per module, preserving order.
func dedupeByModule(triggers []Trigger) []Trigger {
	seen := make(map[string]bool, len(triggers))
	out := triggers[:0]
	for _, t := range triggers {
		if seen[t.Module] {
			continue
		}
		seen[t.Module] = true
		out = append(out, t)
	}
	return out
}
