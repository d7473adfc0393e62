package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/waddlebot/waddlebot-core/pkg/config"
	"github.com/waddlebot/waddlebot-core/pkg/workflow"
)

func testWorkflowService(t *testing.T) *WorkflowService {
	t.Helper()
	client := setupClient(t)
	validator := workflow.NewValidator(config.WorkflowConfig{
		MaxNodes:       100,
		MaxConnections: 200,
		MaxDepth:       20,
	})
	return NewWorkflowService(client, validator)
}

// greetDefinition is a minimal valid graph: command trigger into a chat
// message action.
func greetDefinition() map[string]any {
	return map[string]any{
		"metadata": map[string]any{"name": "greet"},
		"nodes": map[string]any{
			"t1": map[string]any{
				"node_id": "t1",
				"type":    "trigger",
				"config":  map[string]any{"trigger_type": "command", "command": "!greet"},
				"outputs": []any{map[string]any{"name": "out", "type": "object"}},
			},
			"m1": map[string]any{
				"node_id": "m1",
				"type":    "action_chat_message",
				"config":  map[string]any{"message": "hello {user}"},
				"inputs":  []any{map[string]any{"name": "in", "type": "object"}},
			},
		},
		"connections": []any{
			map[string]any{"from_node": "t1", "from_port": "out", "to_node": "m1", "to_port": "in"},
		},
	}
}

func TestCreateWorkflow(t *testing.T) {
	svc := testWorkflowService(t)
	comm := createTestCommunity(t, svc.client, "penguins", "owner-1")
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
		CommunityID: comm.ID,
		Name:        "greet",
		Definition:  greetDefinition(),
		CreatedBy:   "owner-1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, wf.ID)
	assert.True(t, wf.IsActive)
	assert.Equal(t, 1, wf.Version)
}

func TestCreateWorkflowValidation(t *testing.T) {
	svc := testWorkflowService(t)
	comm := createTestCommunity(t, svc.client, "penguins", "owner-1")
	ctx := context.Background()

	t.Run("missing name", func(t *testing.T) {
		_, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
			CommunityID: comm.ID,
			Definition:  greetDefinition(),
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "name", verr.Field)
	})

	t.Run("unknown community", func(t *testing.T) {
		_, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
			CommunityID: "ghost",
			Name:        "greet",
			Definition:  greetDefinition(),
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("triggerless graph rejected", func(t *testing.T) {
		def := greetDefinition()
		nodes := def["nodes"].(map[string]any)
		delete(nodes, "t1")
		def["connections"] = []any{}

		_, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
			CommunityID: comm.ID,
			Name:        "greet",
			Definition:  def,
		})
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "definition", verr.Field)
		assert.Contains(t, verr.Message, "trigger")
	})
}

func TestUpdateDefinitionBumpsVersion(t *testing.T) {
	svc := testWorkflowService(t)
	comm := createTestCommunity(t, svc.client, "penguins", "owner-1")
	ctx := context.Background()

	wf, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
		CommunityID: comm.ID,
		Name:        "greet",
		Definition:  greetDefinition(),
		CreatedBy:   "owner-1",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateDefinition(ctx, wf.ID, greetDefinition())
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Version)

	// An invalid replacement never lands; the stored row keeps version 2.
	def := greetDefinition()
	nodes := def["nodes"].(map[string]any)
	delete(nodes, "t1")
	def["connections"] = []any{}
	_, err = svc.UpdateDefinition(ctx, wf.ID, def)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = svc.UpdateDefinition(ctx, "missing", greetDefinition())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestActiveWorkflows(t *testing.T) {
	svc := testWorkflowService(t)
	comm := createTestCommunity(t, svc.client, "penguins", "owner-1")
	ctx := context.Background()

	first, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
		CommunityID: comm.ID,
		Name:        "greet",
		Definition:  greetDefinition(),
		CreatedBy:   "owner-1",
	})
	require.NoError(t, err)

	second, err := svc.CreateWorkflow(ctx, CreateWorkflowRequest{
		CommunityID: comm.ID,
		Name:        "farewell",
		Definition:  greetDefinition(),
		CreatedBy:   "owner-1",
	})
	require.NoError(t, err)

	active, err := svc.ActiveWorkflows(ctx, comm.ID)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	require.NotNil(t, active[0].Definition)
	assert.Len(t, active[0].Definition.Triggers(), 1)

	require.NoError(t, svc.SetActive(ctx, second.ID, false))

	active, err = svc.ActiveWorkflows(ctx, comm.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "greet", active[0].Name)

	assert.ErrorIs(t, svc.SetActive(ctx, "missing", true), ErrNotFound)
}
