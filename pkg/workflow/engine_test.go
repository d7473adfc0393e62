package workflow

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineDef(nodes map[string]Node, conns ...Connection) *Definition {
	return &Definition{Nodes: nodes, Connections: conns}
}

func TestEngineConditionBranching(t *testing.T) {
	def := engineDef(map[string]Node{
		"t1": {ID: "t1", Type: NodeTrigger},
		"c1": {ID: "c1", Type: NodeCondition, Config: map[string]any{
			"rules": []any{
				map[string]any{"left": "${user.role}", "op": "eq", "right": "mod"},
			},
		}},
		"yes": {ID: "yes", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "welcome ${user.name}"}},
		"no": {ID: "no", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "denied"}},
	},
		conn("t1", "out", "c1", "in"),
		conn("c1", "true", "yes", "in"),
		conn("c1", "false", "no", "in"),
	)

	engine := NewEngine(nil)

	t.Run("true branch", func(t *testing.T) {
		res, err := engine.Run(context.Background(), def, "t1",
			map[string]any{"user": map[string]any{"role": "mod", "name": "alice"}})
		require.NoError(t, err)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, "welcome alice", res.Messages[0].Message)
		assert.True(t, res.Completed)
	})

	t.Run("false branch", func(t *testing.T) {
		res, err := engine.Run(context.Background(), def, "t1",
			map[string]any{"user": map[string]any{"role": "viewer"}})
		require.NoError(t, err)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, "denied", res.Messages[0].Message)
	})
}

func TestEngineTransformAndNumericRules(t *testing.T) {
	def := engineDef(map[string]Node{
		"t1": {ID: "t1", Type: NodeTrigger},
		"x1": {ID: "x1", Type: NodeTransform, Config: map[string]any{
			"variable":   "total",
			"expression": "base * 2",
		}},
		"c1": {ID: "c1", Type: NodeCondition, Config: map[string]any{
			"rules": []any{
				map[string]any{"left": "${total}", "op": "gte", "right": "10"},
			},
		}},
		"big": {ID: "big", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "total is ${total}"}},
	},
		conn("t1", "out", "x1", "in"),
		conn("x1", "out", "c1", "in"),
		conn("c1", "true", "big", "in"),
	)

	res, err := NewEngine(nil).Run(context.Background(), def, "t1",
		map[string]any{"base": float64(6)})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "total is 12", res.Messages[0].Message)
	assert.Equal(t, float64(12), res.Variables["total"])
}

func TestEngineLoop(t *testing.T) {
	def := engineDef(map[string]Node{
		"t1": {ID: "t1", Type: NodeTrigger},
		"l1": {ID: "l1", Type: NodeLoop, Config: map[string]any{
			"items":    "winners",
			"variable": "winner",
		}},
		"each": {ID: "each", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "congrats ${winner}"}},
		"done": {ID: "done", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "all done"}},
	},
		conn("t1", "out", "l1", "in"),
		conn("l1", "loop", "each", "in"),
		conn("l1", "done", "done", "in"),
	)

	res, err := NewEngine(nil).Run(context.Background(), def, "t1",
		map[string]any{"winners": []any{"ann", "bob"}})
	require.NoError(t, err)
	require.Len(t, res.Messages, 3)
	assert.Equal(t, "congrats ann", res.Messages[0].Message)
	assert.Equal(t, "congrats bob", res.Messages[1].Message)
	assert.Equal(t, "all done", res.Messages[2].Message)
	assert.NotContains(t, res.Variables, "winner", "loop variable is scoped to the loop")
}

func TestEngineWebhookFlow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ticket": "T-99"}`))
	}))
	t.Cleanup(srv.Close)

	def := engineDef(map[string]Node{
		"t1": {ID: "t1", Type: NodeTrigger},
		"w1": {ID: "w1", Type: NodeActionWebhook, Config: map[string]any{
			"url":     srv.URL,
			"body":    map[string]any{"user": "${user}"},
			"extract": map[string]any{"ticket": "ticket"},
		}},
		"ok": {ID: "ok", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "created ${ticket}"}},
		"fail": {ID: "fail", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "webhook failed"}},
	},
		conn("t1", "out", "w1", "in"),
		conn("w1", "success", "ok", "in"),
		conn("w1", "failure", "fail", "in"),
	)

	res, err := NewEngine(newTestExecutor()).Run(context.Background(), def, "t1",
		map[string]any{"user": "alice"})
	require.NoError(t, err)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "created T-99", res.Messages[0].Message)
	require.Len(t, res.Webhooks, 1)
	assert.True(t, res.Webhooks[0].Success)
}

func TestEngineWebhookDefaultRetryBudget(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)

	// No max_retries in the node config: the executor's configured budget
	// applies.
	def := engineDef(map[string]Node{
		"t1": {ID: "t1", Type: NodeTrigger},
		"w1": {ID: "w1", Type: NodeActionWebhook, Config: map[string]any{"url": srv.URL}},
		"fail": {ID: "fail", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "webhook failed"}},
	},
		conn("t1", "out", "w1", "in"),
		conn("w1", "failure", "fail", "in"),
	)

	res, err := NewEngine(newTestExecutor()).Run(context.Background(), def, "t1", nil)
	require.NoError(t, err)
	require.Len(t, res.Webhooks, 1)
	assert.False(t, res.Webhooks[0].Success)
	assert.Equal(t, 4, res.Webhooks[0].Attempts, "default budget of 3 retries means 4 attempts")
	assert.EqualValues(t, 4, atomic.LoadInt32(&calls))
	require.Len(t, res.Messages, 1)
	assert.Equal(t, "webhook failed", res.Messages[0].Message)
}

func TestEngineNodeBudget(t *testing.T) {
	// Self-feeding loop body: each iteration re-runs the chat node, but the
	// budget caps runaway graphs that slipped past validation.
	def := engineDef(map[string]Node{
		"t1": {ID: "t1", Type: NodeTrigger},
		"m1": {ID: "m1", Type: NodeActionChatMessage,
			Config: map[string]any{"message": "x"}},
	},
		conn("t1", "out", "m1", "in"),
		conn("m1", "out", "m1", "in"),
	)

	engine := NewEngine(nil)
	engine.nodeBudget = 10

	_, err := engine.Run(context.Background(), def, "t1", nil)
	assert.Error(t, err)
}

func TestEngineRejectsNonTriggerStart(t *testing.T) {
	def := engineDef(map[string]Node{
		"m1": {ID: "m1", Type: NodeActionChatMessage, Config: map[string]any{"message": "x"}},
	})

	_, err := NewEngine(nil).Run(context.Background(), def, "m1", nil)
	assert.Error(t, err)
}
