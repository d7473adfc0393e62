package router

import (
	"context"
	"sync"
	"time"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// CollectionResult is what dispatch gets back for one session: the
// responses that arrived in time and the modules that never answered.
type CollectionResult struct {
	Responses []models.ModuleResponse
	TimedOut  []string
}

// pendingSession tracks one session awaiting module responses. The
// aggregator owns the map; the waiting dispatcher owns done.
type pendingSession struct {
	expected  map[string]bool
	responses []models.ModuleResponse
	done      chan struct{}
	startedAt time.Time
}

// Aggregator collects module responses by session id. Exactly one waiter
// owns each session; deliveries for unknown or already-finished sessions
// are reported back to the caller as unclaimed.
type Aggregator struct {
	mu            sync.Mutex
	pending       map[string]*pendingSession
	moduleTimeout time.Duration
	globalTimeout time.Duration
}

// NewAggregator creates an aggregator with the per-module and global
// session deadlines.
func NewAggregator(moduleTimeout, globalTimeout time.Duration) *Aggregator {
	if moduleTimeout <= 0 {
		moduleTimeout = 30 * time.Second
	}
	if globalTimeout <= 0 {
		globalTimeout = 60 * time.Second
	}
	return &Aggregator{
		pending:       make(map[string]*pendingSession),
		moduleTimeout: moduleTimeout,
		globalTimeout: globalTimeout,
	}
}

// Expect registers a session awaiting responses from the named modules.
func (a *Aggregator) Expect(sessionID string, modules []string) {
	expected := make(map[string]bool, len(modules))
	for _, m := range modules {
		expected[m] = true
	}

	a.mu.Lock()
	a.pending[sessionID] = &pendingSession{
		expected:  expected,
		done:      make(chan struct{}),
		startedAt: time.Now(),
	}
	a.mu.Unlock()
}

// Deliver routes one module response to its waiting session. The return
// reports whether a session claimed it; unclaimed responses are the
// caller's to log and drop.
func (a *Aggregator) Deliver(resp models.ModuleResponse) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, ok := a.pending[resp.SessionID]
	if !ok {
		return false
	}
	if !p.expected[resp.ModuleName] {
		// Duplicate or unsolicited module response.
		return false
	}
	delete(p.expected, resp.ModuleName)
	p.responses = append(p.responses, resp)
	if len(p.expected) == 0 {
		close(p.done)
	}
	return true
}

// Wait blocks until every expected module responded or a deadline passed,
// then releases the session. Responses arriving afterwards are unclaimed.
func (a *Aggregator) Wait(ctx context.Context, sessionID string) CollectionResult {
	a.mu.Lock()
	p, ok := a.pending[sessionID]
	a.mu.Unlock()
	if !ok {
		return CollectionResult{}
	}

	deadline := a.moduleTimeout
	if remaining := a.globalTimeout - time.Since(p.startedAt); remaining < deadline {
		deadline = remaining
	}

	timer := time.NewTimer(deadline)
	defer timer.Stop()
	select {
	case <-p.done:
	case <-timer.C:
	case <-ctx.Done():
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.pending, sessionID)

	result := CollectionResult{Responses: p.responses}
	for module := range p.expected {
		result.TimedOut = append(result.TimedOut, module)
	}
	return result
}

// Abort releases a session without waiting, for shutdown paths.
func (a *Aggregator) Abort(sessionID string) {
	a.mu.Lock()
	delete(a.pending, sessionID)
	a.mu.Unlock()
}

// PendingCount reports how many sessions are collecting, for shutdown
// draining and introspection.
func (a *Aggregator) PendingCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.pending)
}
