package workflow

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

const (
	// defaultNodeBudget bounds total node executions per run, including
	// re-executions inside loops.
	defaultNodeBudget = 1000
	// defaultRunDeadline bounds one run end to end.
	defaultRunDeadline = 60 * time.Second
	// maxLoopIterations bounds a single loop node regardless of input size.
	maxLoopIterations = 100
)

// ChatMessage is an emitted chat action waiting for dispatch.
type ChatMessage struct {
	Message string `json:"message"`
	Channel string `json:"channel,omitempty"`
}

// RunResult is the outcome of one workflow execution.
type RunResult struct {
	Completed     bool           `json:"completed"`
	NodesExecuted int            `json:"nodes_executed"`
	Messages      []ChatMessage  `json:"messages,omitempty"`
	Variables     map[string]any `json:"variables,omitempty"`
	Webhooks      []ExecutionResult
}

// Engine walks a validated workflow graph from a matched trigger, threading
// a variable context through conditions, transforms, loops, and actions.
type Engine struct {
	webhooks   *WebhookExecutor
	nodeBudget int
	deadline   time.Duration
}

// NewEngine builds an engine. webhooks may be nil when the caller knows the
// definitions carry no webhook nodes (validation-only deployments).
func NewEngine(webhooks *WebhookExecutor) *Engine {
	return &Engine{
		webhooks:   webhooks,
		nodeBudget: defaultNodeBudget,
		deadline:   defaultRunDeadline,
	}
}

// Run executes def starting at the trigger node with the given initial
// variables. The definition must already have passed validation; a malformed
// graph fails the run rather than panicking.
func (e *Engine) Run(ctx context.Context, def *Definition, triggerID string, vars map[string]any) (*RunResult, error) {
	trigger, ok := def.Nodes[triggerID]
	if !ok || trigger.Type != NodeTrigger {
		return nil, waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("node %q is not a trigger", triggerID))
	}

	ctx, cancel := context.WithTimeout(ctx, e.deadline)
	defer cancel()

	run := &runState{
		engine: e,
		def:    def,
		vars:   cloneVars(vars),
		result: &RunResult{},
	}

	err := run.followOutputs(ctx, trigger.ID, "")
	run.result.Variables = run.vars
	if err != nil {
		return run.result, err
	}
	run.result.Completed = true
	return run.result, nil
}

// runState is the mutable context of one execution.
type runState struct {
	engine *Engine
	def    *Definition
	vars   map[string]any
	result *RunResult
}

// followOutputs executes every node downstream of (nodeID, port).
func (r *runState) followOutputs(ctx context.Context, nodeID, port string) error {
	for _, conn := range r.def.outgoing(nodeID, port) {
		next, ok := r.def.Nodes[conn.ToNode]
		if !ok {
			return waddleerr.New(waddleerr.KindValidation,
				fmt.Sprintf("connection references unknown node %q", conn.ToNode))
		}
		if err := r.execute(ctx, next); err != nil {
			return err
		}
	}
	return nil
}

func (r *runState) execute(ctx context.Context, n Node) error {
	if err := ctx.Err(); err != nil {
		return waddleerr.Wrap(waddleerr.KindTimeout, "workflow run deadline exceeded", err)
	}
	r.result.NodesExecuted++
	if r.result.NodesExecuted > r.engine.nodeBudget {
		return waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("workflow exceeded node budget of %d", r.engine.nodeBudget))
	}

	switch n.Type {
	case NodeCondition:
		return r.executeCondition(ctx, n)
	case NodeTransform:
		return r.executeTransform(ctx, n)
	case NodeLoop:
		return r.executeLoop(ctx, n)
	case NodeActionWebhook:
		return r.executeWebhook(ctx, n)
	case NodeActionChatMessage:
		return r.executeChatMessage(ctx, n)
	case NodeFlowEnd:
		return nil
	case NodeTrigger:
		// Triggers mid-graph are validator warnings; skip at runtime.
		return nil
	default:
		return waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("node %q has unknown type %q", n.ID, n.Type))
	}
}

// executeCondition evaluates the node's rules and follows the true or false
// output port.
func (r *runState) executeCondition(ctx context.Context, n Node) error {
	matched, err := r.evaluateRules(n)
	if err != nil {
		return err
	}
	port := "false"
	if matched {
		port = "true"
	}
	return r.followOutputs(ctx, n.ID, port)
}

// evaluateRules combines the node's rules with all/any semantics. Default
// match mode is all.
func (r *runState) evaluateRules(n Node) (bool, error) {
	rules, _ := n.Config["rules"].([]any)
	anyMode := n.ConfigString("match") == "any"

	for _, raw := range rules {
		rule, ok := raw.(map[string]any)
		if !ok {
			return false, waddleerr.New(waddleerr.KindValidation,
				fmt.Sprintf("node %q has a malformed rule", n.ID))
		}
		hit, err := r.evaluateRule(n.ID, rule)
		if err != nil {
			return false, err
		}
		if anyMode && hit {
			return true, nil
		}
		if !anyMode && !hit {
			return false, nil
		}
	}
	return !anyMode, nil
}

func (r *runState) evaluateRule(nodeID string, rule map[string]any) (bool, error) {
	resolve := func(key string) (string, error) {
		raw, _ := rule[key].(string)
		return Substitute(raw, r.vars)
	}
	left, err := resolve("left")
	if err != nil {
		return false, err
	}
	right, err := resolve("right")
	if err != nil {
		return false, err
	}

	op, _ := rule["op"].(string)
	switch op {
	case "eq", "":
		return left == right, nil
	case "ne":
		return left != right, nil
	case "contains":
		return left != "" && right != "" && containsFold(left, right), nil
	case "gt", "gte", "lt", "lte":
		return compareNumeric(left, right, op)
	default:
		return false, waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("node %q uses unknown operator %q", nodeID, op))
	}
}

// executeTransform evaluates the expression and stores it under the target
// variable, then follows the default output.
func (r *runState) executeTransform(ctx context.Context, n Node) error {
	target := n.ConfigString("variable")
	expr := n.ConfigString("expression")

	val, err := Evaluate(expr, r.vars)
	if err != nil {
		return waddleerr.Wrap(waddleerr.KindValidation,
			fmt.Sprintf("transform %q failed", n.ID), err)
	}
	r.vars[target] = val
	return r.followOutputs(ctx, n.ID, "")
}

// executeLoop resolves the iterable, runs the loop port once per item with
// the item bound to the configured variable, then follows the done port.
func (r *runState) executeLoop(ctx context.Context, n Node) error {
	itemsPath := n.ConfigString("items")
	itemVar := n.ConfigString("variable")
	if itemVar == "" {
		itemVar = "item"
	}

	raw, ok := LookupPath(r.vars, itemsPath)
	if !ok {
		slog.Debug("Loop iterable missing, skipping body", "node", n.ID, "path", itemsPath)
		return r.followOutputs(ctx, n.ID, "done")
	}
	items, ok := raw.([]any)
	if !ok {
		return waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("loop %q iterable %q is not an array", n.ID, itemsPath))
	}
	if len(items) > maxLoopIterations {
		items = items[:maxLoopIterations]
	}

	for i, item := range items {
		r.vars[itemVar] = item
		r.vars[itemVar+"_index"] = i
		if err := r.followOutputs(ctx, n.ID, "loop"); err != nil {
			return err
		}
	}
	delete(r.vars, itemVar)
	delete(r.vars, itemVar+"_index")
	return r.followOutputs(ctx, n.ID, "done")
}

// executeWebhook substitutes the node config, runs the call, merges the
// extracted variables into the context, and follows success or failure.
func (r *runState) executeWebhook(ctx context.Context, n Node) error {
	if r.engine.webhooks == nil {
		return waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("webhook node %q but no executor configured", n.ID))
	}

	req, err := r.buildWebhookRequest(n)
	if err != nil {
		return err
	}

	res := r.engine.webhooks.Execute(ctx, req)
	r.result.Webhooks = append(r.result.Webhooks, res)
	for name, val := range res.Extracted {
		r.vars[name] = val
	}

	port := "failure"
	if res.Success {
		port = "success"
	}
	return r.followOutputs(ctx, n.ID, port)
}

func (r *runState) buildWebhookRequest(n Node) (WebhookRequest, error) {
	url, err := Substitute(n.ConfigString("url"), r.vars)
	if err != nil {
		return WebhookRequest{}, err
	}

	headers := make(map[string]string)
	if raw, ok := n.Config["headers"].(map[string]any); ok {
		for k, v := range raw {
			s, _ := v.(string)
			sub, err := Substitute(s, r.vars)
			if err != nil {
				return WebhookRequest{}, err
			}
			headers[k] = sub
		}
	}

	var body map[string]any
	if raw, ok := n.Config["body"].(map[string]any); ok {
		sub, err := SubstituteValue(raw, r.vars)
		if err != nil {
			return WebhookRequest{}, err
		}
		body, _ = sub.(map[string]any)
	}

	extract := make(map[string]string)
	if raw, ok := n.Config["extract"].(map[string]any); ok {
		for name, path := range raw {
			s, _ := path.(string)
			extract[name] = s
		}
	}

	// Absent means the executor's configured default budget.
	retries := -1
	if f, ok := n.Config["max_retries"].(float64); ok && f >= 0 {
		retries = int(f)
	}
	var timeout time.Duration
	if f, ok := n.Config["timeout_ms"].(float64); ok && f > 0 {
		timeout = time.Duration(f) * time.Millisecond
	}

	return WebhookRequest{
		URL:           url,
		Method:        n.ConfigString("method"),
		Headers:       headers,
		Body:          body,
		Timeout:       timeout,
		MaxRetries:    retries,
		HMACSecret:    n.ConfigString("hmac_secret"),
		HMACAlgorithm: n.ConfigString("hmac_algorithm"),
		HMACHeader:    n.ConfigString("hmac_header"),
		Extract:       extract,
	}, nil
}

// executeChatMessage substitutes the message template and queues it.
func (r *runState) executeChatMessage(ctx context.Context, n Node) error {
	msg, err := Substitute(n.ConfigString("message"), r.vars)
	if err != nil {
		return waddleerr.Wrap(waddleerr.KindValidation,
			fmt.Sprintf("chat message %q failed", n.ID), err)
	}
	channel, err := Substitute(n.ConfigString("channel"), r.vars)
	if err != nil {
		return err
	}
	r.result.Messages = append(r.result.Messages, ChatMessage{Message: msg, Channel: channel})
	return r.followOutputs(ctx, n.ID, "")
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// compareNumeric parses both sides as numbers; non-numeric operands fail the
// rule rather than the run.
func compareNumeric(left, right, op string) (bool, error) {
	l, errL := strconv.ParseFloat(left, 64)
	r, errR := strconv.ParseFloat(right, 64)
	if errL != nil || errR != nil {
		return false, nil
	}
	switch op {
	case "gt":
		return l > r, nil
	case "gte":
		return l >= r, nil
	case "lt":
		return l < r, nil
	default:
		return l <= r, nil
	}
}

func cloneVars(vars map[string]any) map[string]any {
	out := make(map[string]any, len(vars)+4)
	for k, v := range vars {
		out[k] = v
	}
	return out
}
