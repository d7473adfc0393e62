package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/bus"
	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/services"
	"github.com/waddlebot/waddlebot-core/pkg/stream"
	"github.com/waddlebot/waddlebot-core/pkg/translation"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
	"github.com/waddlebot/waddlebot-core/pkg/workflow"
)

// GatewayResolver resolves a platform location to its gateway.
type GatewayResolver interface {
	Resolve(ctx context.Context, platform models.Platform, serverID, channelID string) (*ent.Gateway, error)
}

// AliasResolver expands entity-scoped aliases.
type AliasResolver interface {
	Resolve(ctx context.Context, entityID, message, username string) (*services.Expansion, error)
}

// SessionStore persists session correlation rows.
type SessionStore interface {
	RecordReceipt(ctx context.Context, sess *models.Session) (*ent.SessionRecord, error)
	MarkResolved(ctx context.Context, sessionID, entityID, communityID string) error
	UpdateStatus(ctx context.Context, sessionID string, state models.SessionState) error
	Complete(ctx context.Context, sessionID string, modulesInvoked []string) error
	Fail(ctx context.Context, sessionID, reason string) error
	Reject(ctx context.Context, sessionID, reason string) error
}

// CommunityReader supplies community settings.
type CommunityReader interface {
	GetCommunity(ctx context.Context, communityID string) (*ent.Community, error)
}

// WorkflowSource lists a community's active workflow definitions.
type WorkflowSource interface {
	ActiveWorkflows(ctx context.Context, communityID string) ([]services.StoredWorkflow, error)
}

// Translator runs the optional translation preprocessing step.
// translation.Service satisfies it.
type Translator interface {
	Translate(ctx context.Context, text string, platform models.Platform, channelID string, set translation.Settings) (*translation.Result, error)
}

// Deps bundles the router's collaborators.
type Deps struct {
	Stream      *stream.Client
	Topics      stream.Topics
	Gateways    GatewayResolver
	Aliases     AliasResolver
	Sessions    SessionStore
	Communities CommunityReader
	Workflows   WorkflowSource
	Translator  Translator
	Policy      *Policy
	Registry    *Registry
	Aggregator  *Aggregator
	Engine      *workflow.Engine
	Bus         *bus.Bus

	// ConsumerName identifies this process in the consumer groups.
	ConsumerName string
	MaxRetries   int
}

// Router is the event-routing core. One Router runs per process; it owns
// the inbound and response consumers and every live session.
type Router struct {
	deps Deps

	inbound   *stream.Consumer
	responses *stream.Consumer

	// sessionCtx is cancelled on Stop so collecting sessions fail fast
	// with a shutdown reason instead of waiting out their deadlines.
	sessionCtx    context.Context
	cancelSession context.CancelFunc
	draining      bool
	mu            sync.Mutex
}

const routerGroup = "router"

// New creates a router over its dependencies.
func New(deps Deps) *Router {
	ctx, cancel := context.WithCancel(context.Background())
	r := &Router{
		deps:          deps,
		sessionCtx:    ctx,
		cancelSession: cancel,
	}
	r.inbound = stream.NewConsumer(
		deps.Stream, deps.Topics.Inbound(), routerGroup, deps.ConsumerName, deps.MaxRetries, r.processInbound)
	r.responses = stream.NewConsumer(
		deps.Stream, deps.Topics.Responses(), routerGroup, deps.ConsumerName, deps.MaxRetries, r.processResponse)
	return r
}

// Start begins consuming inbound events and module responses.
func (r *Router) Start(ctx context.Context) error {
	if err := r.responses.Start(ctx); err != nil {
		return fmt.Errorf("starting response consumer: %w", err)
	}
	if err := r.inbound.Start(ctx); err != nil {
		return fmt.Errorf("starting inbound consumer: %w", err)
	}
	slog.Info("Router started", "consumer", r.deps.ConsumerName)
	return nil
}

// Stop drains the router: no new sessions are accepted, collecting
// sessions fail with a shutdown reason after their in-flight events are
// acknowledged, then the response consumer stops.
func (r *Router) Stop() {
	r.mu.Lock()
	r.draining = true
	r.mu.Unlock()

	r.cancelSession()
	r.inbound.Stop()
	r.responses.Stop()
	slog.Info("Router stopped")
}

func (r *Router) isDraining() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draining
}

// processInbound drives one session through the full state machine. The
// returned error feeds the stream failure policy: retryable errors
// republish the event, the rest dead-letter it.
func (r *Router) processInbound(ctx context.Context, ev stream.Event) error {
	var envelope models.EventEnvelope
	if err := json.Unmarshal(ev.Data, &envelope); err != nil {
		return stream.NonRetryable(waddleerr.Wrap(waddleerr.KindValidation, "malformed event envelope", err))
	}
	if !envelope.Platform.Valid() {
		return stream.NonRetryable(waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("unknown platform %q", envelope.Platform)))
	}
	if !envelope.MessageType.Valid() {
		return stream.NonRetryable(waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("unknown message type %q", envelope.MessageType)))
	}

	sess := &models.Session{
		ID:        envelope.SessionID,
		State:     models.StateReceived,
		Envelope:  envelope,
		CreatedAt: time.Now(),
	}
	if sess.ID == "" {
		sess.ID = uuid.New().String()
	}
	sess.ResolvedMessage = envelope.Message

	logger := slog.With("session_id", sess.ID, "platform", envelope.Platform, "user", envelope.Username)

	if _, err := r.deps.Sessions.RecordReceipt(ctx, sess); err != nil && !errors.Is(err, services.ErrAlreadyExists) {
		return waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "recording session", err)
	}

	// Resolving: the gateway lookup is the tenant boundary. An unknown
	// location is rejected, not retried.
	sess.State = models.StateResolving
	gw, err := r.deps.Gateways.Resolve(ctx, envelope.Platform, envelope.ServerID, envelope.ChannelID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return r.reject(ctx, sess, "unknown_entity", logger)
		}
		return waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "resolving gateway", err)
	}
	sess.EntityID = gw.ID
	sess.CommunityID = gw.CommunityID
	if err := r.deps.Sessions.MarkResolved(ctx, sess.ID, gw.ID, gw.CommunityID); err != nil {
		logger.Warn("Session resolution not recorded", "error", err)
	}

	settings := r.communitySettings(ctx, sess.CommunityID, logger)

	// Policy: the session-level gate. Per-module role checks run again at
	// dispatch; a user flooding the community is cut off here.
	sess.State = models.StatePolicy
	if decision := r.deps.Policy.Check(ctx, sess, sessionTrigger, settings); !decision.Allowed {
		return r.reject(ctx, sess, decision.Reason, logger)
	}

	sess.State = models.StateClassifying
	r.recordState(ctx, sess)

	// Resolving Alias.
	sess.State = models.StateResolvingAlias
	if done, err := r.resolveAlias(ctx, sess, logger); err != nil {
		return err
	} else if done {
		return r.complete(ctx, sess, nil, logger)
	}

	r.translate(ctx, sess, settings, logger)

	// Dispatching.
	sess.State = models.StateDispatching
	r.recordState(ctx, sess)

	workflowMessages := r.runWorkflows(ctx, sess, logger)

	triggers := r.matchTriggers(ctx, sess, settings)
	if len(triggers) == 0 && len(workflowMessages) == 0 {
		// Nothing claimed the event; that is a completed session with no
		// actions, not a failure.
		return r.complete(ctx, sess, nil, logger)
	}

	for _, msg := range workflowMessages {
		r.emitAction(ctx, sess, models.Action{
			SessionID:  sess.ID,
			ModuleName: "workflow",
			Platform:   sess.Envelope.Platform,
			ChannelID:  sess.Envelope.ChannelID,
			ServerID:   sess.Envelope.ServerID,
			Type:       models.ActionChatMessage,
			Text:       msg.Message,
			EmittedAt:  time.Now(),
		}, logger)
	}

	if len(triggers) == 0 {
		return r.complete(ctx, sess, []string{"workflow"}, logger)
	}

	modules := r.dispatch(ctx, sess, triggers, logger)
	if len(modules) == 0 {
		return r.complete(ctx, sess, nil, logger)
	}

	// Collecting.
	sess.State = models.StateCollecting
	r.recordState(ctx, sess)
	collectCtx, releaseScope := r.sessionScope(ctx)
	result := r.deps.Aggregator.Wait(collectCtx, sess.ID)
	releaseScope()

	if r.isDraining() {
		return r.fail(ctx, sess, "shutdown", logger)
	}
	for _, module := range result.TimedOut {
		logger.Warn("Module response deadline passed", "module", module)
	}

	// Emitting.
	sess.State = models.StateEmitting
	r.recordState(ctx, sess)
	for _, resp := range result.Responses {
		if action, ok := r.actionFromResponse(sess, resp); ok {
			r.emitAction(ctx, sess, action, logger)
		}
	}

	return r.complete(ctx, sess, modules, logger)
}

// sessionTrigger is the pseudo-trigger for the session-level policy gate.
var sessionTrigger = Trigger{Module: "_session"}

// processResponse routes one module response into the aggregator. Late and
// unsolicited responses are dropped with a log line.
func (r *Router) processResponse(ctx context.Context, ev stream.Event) error {
	var resp models.ModuleResponse
	if err := json.Unmarshal(ev.Data, &resp); err != nil {
		return stream.NonRetryable(waddleerr.Wrap(waddleerr.KindValidation, "malformed module response", err))
	}
	if resp.SessionID == "" || resp.ModuleName == "" {
		return stream.NonRetryable(waddleerr.New(waddleerr.KindValidation, "module response missing session_id or module_name"))
	}

	if !r.deps.Aggregator.Deliver(resp) {
		slog.Info("Dropping unclaimed module response",
			"session_id", resp.SessionID, "module", resp.ModuleName)
	}
	return nil
}

// resolveAlias expands the alias, if any. A direct alias (stored text) is
// emitted immediately and finishes the session.
func (r *Router) resolveAlias(ctx context.Context, sess *models.Session, logger *slog.Logger) (done bool, err error) {
	if !strings.HasPrefix(strings.TrimSpace(sess.Envelope.Message), "!") {
		return false, nil
	}

	exp, err := r.deps.Aliases.Resolve(ctx, sess.EntityID, sess.Envelope.Message, sess.Envelope.Username)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return false, nil
		}
		return false, waddleerr.Wrap(waddleerr.KindDependencyUnavailable, "resolving alias", err)
	}

	sess.AliasApplied = exp.Alias.Alias
	if exp.Direct {
		r.emitAction(ctx, sess, models.Action{
			SessionID:  sess.ID,
			ModuleName: "alias",
			Platform:   sess.Envelope.Platform,
			ChannelID:  sess.Envelope.ChannelID,
			ServerID:   sess.Envelope.ServerID,
			Type:       models.ActionChatMessage,
			Text:       exp.Message,
			EmittedAt:  time.Now(),
		}, logger)
		return true, nil
	}

	sess.ResolvedMessage = exp.Message
	logger.Debug("Alias expanded", "alias", exp.Alias.Alias)
	return false, nil
}

// translate runs the optional translation step when the community enables
// it. Translation failures never block routing.
func (r *Router) translate(ctx context.Context, sess *models.Session, settings map[string]any, logger *slog.Logger) {
	if r.deps.Translator == nil {
		return
	}
	enabled, _ := settings["translation_enabled"].(bool)
	if !enabled {
		return
	}
	target, _ := settings["translation_target_lang"].(string)

	res, err := r.deps.Translator.Translate(ctx, sess.ResolvedMessage,
		sess.Envelope.Platform, sess.Envelope.ChannelID,
		translation.Settings{Enabled: true, TargetLang: target})
	if err != nil {
		logger.Warn("Translation failed, routing original text", "error", err)
		return
	}
	if res == nil {
		return
	}
	sess.ResolvedMessage = res.TranslatedText
	logger.Debug("Message translated",
		"from", res.DetectedLang, "to", res.TargetLang, "provider", res.Provider, "cached", res.Cached)
}

// matchTriggers matches the resolved message and filters by per-trigger
// policy. A denial drops the trigger, not the session.
func (r *Router) matchTriggers(ctx context.Context, sess *models.Session, settings map[string]any) []Trigger {
	questions, _ := settings["question_triggers_enabled"].(bool)
	matched := r.deps.Registry.Match(MatchInput{
		MessageType:      sess.Envelope.MessageType,
		Message:          sess.ResolvedMessage,
		QuestionsEnabled: questions,
	})

	kept := matched[:0]
	for _, trig := range matched {
		if decision := r.deps.Policy.Check(ctx, sess, trig, settings); decision.Allowed {
			kept = append(kept, trig)
		}
	}
	return kept
}

// dispatch publishes one command per matched module and registers the
// aggregation. It returns the module names actually dispatched.
func (r *Router) dispatch(ctx context.Context, sess *models.Session, triggers []Trigger, logger *slog.Logger) []string {
	modules := make([]string, 0, len(triggers))
	commands := make([]models.ModuleCommand, 0, len(triggers))
	for _, trig := range triggers {
		modules = append(modules, trig.Module)
		commands = append(commands, models.ModuleCommand{
			Session:    sess.Context(),
			ModuleName: trig.Module,
			Message:    sess.ResolvedMessage,
			Args:       commandArgs(sess.ResolvedMessage),
			EventType:  sess.Envelope.MessageType,
			Metadata:   sess.Envelope.Metadata,
			IssuedAt:   time.Now(),
		})
	}

	// Register before publishing so a fast module cannot respond into a
	// session nobody is waiting on.
	r.deps.Aggregator.Expect(sess.ID, modules)

	dispatched := modules[:0]
	for i, cmd := range commands {
		if _, err := r.deps.Stream.Publish(ctx, r.deps.Topics.Commands(), cmd); err != nil {
			logger.Error("Command publish failed", "module", cmd.ModuleName, "error", err)
			continue
		}
		dispatched = append(dispatched, modules[i])
	}
	if len(dispatched) == 0 {
		r.deps.Aggregator.Abort(sess.ID)
	}
	sess.ModulesInvoked = dispatched
	return dispatched
}

// runWorkflows executes the community's active workflows whose command
// trigger matches. Engine failures skip that workflow only.
func (r *Router) runWorkflows(ctx context.Context, sess *models.Session, logger *slog.Logger) []workflow.ChatMessage {
	if r.deps.Workflows == nil || r.deps.Engine == nil {
		return nil
	}
	stored, err := r.deps.Workflows.ActiveWorkflows(ctx, sess.CommunityID)
	if err != nil {
		logger.Warn("Workflow listing failed", "error", err)
		return nil
	}
	if len(stored) == 0 {
		return nil
	}

	firstToken := ""
	if fields := strings.Fields(strings.ToLower(sess.ResolvedMessage)); len(fields) > 0 {
		firstToken = fields[0]
	}

	vars := map[string]any{
		"message":  sess.ResolvedMessage,
		"args":     toAnySlice(commandArgs(sess.ResolvedMessage)),
		"user":     map[string]any{"id": sess.Envelope.UserID, "name": sess.Envelope.Username, "role": string(sess.Role)},
		"platform": string(sess.Envelope.Platform),
		"channel":  sess.Envelope.ChannelID,
	}

	var messages []workflow.ChatMessage
	for _, wf := range stored {
		for _, trig := range wf.Definition.Triggers() {
			if trig.ConfigString("trigger_type") != "command" {
				continue
			}
			if strings.ToLower(trig.ConfigString("command")) != firstToken || firstToken == "" {
				continue
			}
			res, err := r.deps.Engine.Run(ctx, wf.Definition, trig.ID, vars)
			if err != nil {
				logger.Warn("Workflow run failed", "workflow", wf.Name, "error", err)
				continue
			}
			messages = append(messages, res.Messages...)
		}
	}
	return messages
}

// actionFromResponse converts a successful module response into a platform
// action. Failed responses and responses without text produce none.
func (r *Router) actionFromResponse(sess *models.Session, resp models.ModuleResponse) (models.Action, bool) {
	if !resp.Success {
		return models.Action{}, false
	}
	text, _ := resp.ResponseData["text"].(string)
	if text == "" {
		return models.Action{}, false
	}

	actionType := models.ActionType(resp.ResponseAction)
	switch actionType {
	case models.ActionChatMessage, models.ActionReply, models.ActionWhisper, models.ActionMediaEvent:
	default:
		actionType = models.ActionChatMessage
	}

	return models.Action{
		SessionID:  sess.ID,
		ModuleName: resp.ModuleName,
		Platform:   sess.Envelope.Platform,
		ChannelID:  sess.Envelope.ChannelID,
		ServerID:   sess.Envelope.ServerID,
		Type:       actionType,
		Text:       text,
		Data:       resp.ResponseData,
		EmittedAt:  time.Now(),
	}, true
}

func (r *Router) emitAction(ctx context.Context, sess *models.Session, action models.Action, logger *slog.Logger) {
	if _, err := r.deps.Stream.Publish(ctx, r.deps.Topics.Actions(action.Platform), action); err != nil {
		logger.Error("Action publish failed", "module", action.ModuleName, "error", err)
	}
}

func (r *Router) communitySettings(ctx context.Context, communityID string, logger *slog.Logger) map[string]any {
	if r.deps.Communities == nil {
		return nil
	}
	comm, err := r.deps.Communities.GetCommunity(ctx, communityID)
	if err != nil {
		logger.Warn("Community settings unavailable", "error", err)
		return nil
	}
	return comm.Settings
}

// complete finishes a session successfully and announces it on the bus.
func (r *Router) complete(ctx context.Context, sess *models.Session, modules []string, logger *slog.Logger) error {
	sess.State = models.StateCompleted
	sess.CompletedAt = time.Now()
	if err := r.deps.Sessions.Complete(ctx, sess.ID, modules); err != nil {
		logger.Warn("Session completion not recorded", "error", err)
	}
	r.publishLifecycle(sess)
	logger.Info("Session completed", "modules", modules, "elapsed", time.Since(sess.CreatedAt))
	return nil
}

// fail finishes a session unsuccessfully. The inbound event is still acked:
// a failed session is a handled event.
func (r *Router) fail(ctx context.Context, sess *models.Session, reason string, logger *slog.Logger) error {
	sess.State = models.StateFailed
	sess.FailureReason = reason
	if err := r.deps.Sessions.Fail(ctx, sess.ID, reason); err != nil {
		logger.Warn("Session failure not recorded", "error", err)
	}
	r.publishLifecycle(sess)
	logger.Warn("Session failed", "reason", reason)
	return nil
}

// reject finishes a session at the admission boundary.
func (r *Router) reject(ctx context.Context, sess *models.Session, reason string, logger *slog.Logger) error {
	sess.State = models.StateRejected
	sess.FailureReason = reason
	if err := r.deps.Sessions.Reject(ctx, sess.ID, reason); err != nil {
		logger.Warn("Session rejection not recorded", "error", err)
	}
	r.publishLifecycle(sess)
	logger.Info("Session rejected", "reason", reason)
	return nil
}

func (r *Router) publishLifecycle(sess *models.Session) {
	if r.deps.Bus == nil {
		return
	}
	r.deps.Bus.Publish(bus.TopicSessionCompleted, bus.SessionCompletedPayload{
		SessionID: sess.ID,
		State:     string(sess.State),
	})
}

func (r *Router) recordState(ctx context.Context, sess *models.Session) {
	if err := r.deps.Sessions.UpdateStatus(ctx, sess.ID, sess.State); err != nil {
		slog.Debug("Session state not recorded", "session_id", sess.ID, "state", sess.State, "error", err)
	}
}

// sessionScope ties the collection wait to router shutdown.
func (r *Router) sessionScope(ctx context.Context) (context.Context, context.CancelFunc) {
	merged, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(r.sessionCtx, cancel)
	return merged, func() {
		stop()
		cancel()
	}
}

// commandArgs returns the tokens after the command word.
func commandArgs(message string) []string {
	fields := strings.Fields(message)
	if len(fields) <= 1 {
		return nil
	}
	return fields[1:]
}

func toAnySlice(in []string) []any {
	out := make([]any, len(in))
	for i, s := range in {
		out[i] = s
	}
	return out
}
