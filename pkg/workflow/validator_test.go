package workflow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
)

func testLimits() config.WorkflowConfig {
	return config.WorkflowConfig{MaxNodes: 100, MaxConnections: 200, MaxDepth: 20}
}

func triggerNode(id string) Node {
	return Node{
		ID:      id,
		Type:    NodeTrigger,
		Config:  map[string]any{"trigger_type": "command", "command": "!go"},
		Outputs: []Port{{Name: "out", Type: TypeObject}},
	}
}

func chatNode(id string) Node {
	return Node{
		ID:      id,
		Type:    NodeActionChatMessage,
		Config:  map[string]any{"message": "hello"},
		Inputs:  []Port{{Name: "in", Type: TypeObject}},
		Outputs: []Port{{Name: "out", Type: TypeObject}},
	}
}

func conn(from, fromPort, to, toPort string) Connection {
	return Connection{FromNode: from, FromPort: fromPort, ToNode: to, ToPort: toPort}
}

func TestValidateAcceptsLinearWorkflow(t *testing.T) {
	def := &Definition{
		Metadata: Metadata{Name: "greet"},
		Nodes: map[string]Node{
			"t1": triggerNode("t1"),
			"m1": chatNode("m1"),
		},
		Connections: []Connection{conn("t1", "out", "m1", "in")},
	}

	report := NewValidator(testLimits()).Validate(def)
	assert.True(t, report.IsValid, "errors: %v node errors: %v", report.Errors, report.NodeErrors)
	assert.Empty(t, report.Errors)
	assert.Empty(t, report.NodeErrors)
}

func TestValidateRejectsCycle(t *testing.T) {
	a := chatNode("a")
	b := chatNode("b")
	def := &Definition{
		Nodes: map[string]Node{
			"t1": triggerNode("t1"),
			"a":  a,
			"b":  b,
		},
		Connections: []Connection{
			conn("t1", "out", "a", "in"),
			conn("a", "out", "b", "in"),
			conn("b", "out", "a", "in"),
		},
	}

	report := NewValidator(testLimits()).Validate(def)
	assert.False(t, report.IsValid)
	require.NotEmpty(t, report.Errors)
	assert.Contains(t, report.Errors[0], "cycle")
}

func TestValidateRequiresTrigger(t *testing.T) {
	def := &Definition{Nodes: map[string]Node{"m1": chatNode("m1")}}

	report := NewValidator(testLimits()).Validate(def)
	assert.False(t, report.IsValid)
	assert.Contains(t, report.Errors, "workflow has no trigger node")
}

func TestValidateConnectionChecks(t *testing.T) {
	t.Run("unknown node", func(t *testing.T) {
		def := &Definition{
			Nodes:       map[string]Node{"t1": triggerNode("t1")},
			Connections: []Connection{conn("t1", "out", "ghost", "in")},
		}
		report := NewValidator(testLimits()).Validate(def)
		assert.False(t, report.IsValid)
	})

	t.Run("unknown port", func(t *testing.T) {
		def := &Definition{
			Nodes: map[string]Node{
				"t1": triggerNode("t1"),
				"m1": chatNode("m1"),
			},
			Connections: []Connection{conn("t1", "nope", "m1", "in")},
		}
		report := NewValidator(testLimits()).Validate(def)
		assert.False(t, report.IsValid)
	})

	t.Run("incompatible port types", func(t *testing.T) {
		from := triggerNode("t1")
		from.Outputs = []Port{{Name: "out", Type: TypeNumber}}
		to := chatNode("m1")
		to.Inputs = []Port{{Name: "in", Type: TypeBoolean}}
		def := &Definition{
			Nodes:       map[string]Node{"t1": from, "m1": to},
			Connections: []Connection{conn("t1", "out", "m1", "in")},
		}
		report := NewValidator(testLimits()).Validate(def)
		assert.False(t, report.IsValid)
	})

	t.Run("object port accepts anything", func(t *testing.T) {
		from := triggerNode("t1")
		from.Outputs = []Port{{Name: "out", Type: TypeNumber}}
		def := &Definition{
			Nodes:       map[string]Node{"t1": from, "m1": chatNode("m1")},
			Connections: []Connection{conn("t1", "out", "m1", "in")},
		}
		report := NewValidator(testLimits()).Validate(def)
		assert.True(t, report.IsValid, "errors: %v", report.Errors)
	})
}

func TestValidateComplexityCaps(t *testing.T) {
	limits := config.WorkflowConfig{MaxNodes: 3, MaxConnections: 2, MaxDepth: 2}

	nodes := map[string]Node{"t1": triggerNode("t1")}
	var conns []Connection
	prev := "t1"
	for i := 0; i < 4; i++ {
		id := fmt.Sprintf("m%d", i)
		nodes[id] = chatNode(id)
		conns = append(conns, conn(prev, "out", id, "in"))
		prev = id
	}
	def := &Definition{Nodes: nodes, Connections: conns}

	report := NewValidator(limits).Validate(def)
	assert.False(t, report.IsValid)
	assert.Len(t, report.Errors, 3, "node, connection, and depth caps should all fire: %v", report.Errors)
}

func TestValidateUnreachableNodeWarns(t *testing.T) {
	def := &Definition{
		Nodes: map[string]Node{
			"t1":     triggerNode("t1"),
			"m1":     chatNode("m1"),
			"orphan": chatNode("orphan"),
		},
		Connections: []Connection{conn("t1", "out", "m1", "in")},
	}

	report := NewValidator(testLimits()).Validate(def)
	assert.True(t, report.IsValid, "unreachable nodes warn, not fail")
	require.Len(t, report.Warnings, 1)
	assert.Contains(t, report.Warnings[0], "orphan")
}

func TestValidateNodeConfigs(t *testing.T) {
	t.Run("schedule trigger cron", func(t *testing.T) {
		good := Node{ID: "t1", Type: NodeTrigger,
			Config: map[string]any{"trigger_type": "schedule", "cron": "*/5 * * * *"}}
		assert.Empty(t, validateNodeConfig(good))

		bad := Node{ID: "t1", Type: NodeTrigger,
			Config: map[string]any{"trigger_type": "schedule", "cron": "not a cron"}}
		assert.NotEmpty(t, validateNodeConfig(bad))
	})

	t.Run("command trigger needs command", func(t *testing.T) {
		n := Node{ID: "t1", Type: NodeTrigger, Config: map[string]any{"trigger_type": "command"}}
		assert.NotEmpty(t, validateNodeConfig(n))
	})

	t.Run("webhook url scheme", func(t *testing.T) {
		n := Node{ID: "w1", Type: NodeActionWebhook, Config: map[string]any{"url": "ftp://example.com"}}
		assert.NotEmpty(t, validateNodeConfig(n))

		n.Config["url"] = "https://example.com/hook"
		assert.Empty(t, validateNodeConfig(n))
	})

	t.Run("condition needs rules", func(t *testing.T) {
		n := Node{ID: "c1", Type: NodeCondition, Config: map[string]any{}}
		assert.NotEmpty(t, validateNodeConfig(n))
	})
}

func TestValidateSecurityDenyList(t *testing.T) {
	cases := []string{
		`eval(payload)`,
		`require("fs")`,
		`exec("rm -rf /")`,
		"`touch pwned`",
		`new Function("return 1")()`,
	}
	for _, expr := range cases {
		def := &Definition{
			Nodes: map[string]Node{
				"t1": triggerNode("t1"),
				"x1": {ID: "x1", Type: NodeTransform,
					Config: map[string]any{"variable": "out", "expression": expr}},
			},
		}
		report := NewValidator(testLimits()).Validate(def)
		assert.False(t, report.IsValid, "expected rejection of %q", expr)
		assert.NotEmpty(t, report.NodeErrors["x1"], "expected node error for %q", expr)
	}
}
