package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/waddlebot/waddlebot-core/ent"
	entworkflow "github.com/waddlebot/waddlebot-core/ent/workflow"
	"github.com/waddlebot/waddlebot-core/pkg/workflow"
)

// WorkflowService stores workflow definitions. Every write re-validates the
// graph; an invalid definition never reaches the engine.
type WorkflowService struct {
	client    *ent.Client
	validator *workflow.Validator
}

// NewWorkflowService creates a new WorkflowService
func NewWorkflowService(client *ent.Client, validator *workflow.Validator) *WorkflowService {
	return &WorkflowService{client: client, validator: validator}
}

// CreateWorkflowRequest carries the fields for a new workflow.
type CreateWorkflowRequest struct {
	CommunityID string
	Name        string
	Definition  map[string]any
	CreatedBy   string
}

// CreateWorkflow validates and stores a definition.
func (s *WorkflowService) CreateWorkflow(httpCtx context.Context, req CreateWorkflowRequest) (*ent.Workflow, error) {
	if req.CommunityID == "" {
		return nil, NewValidationError("community_id", "required")
	}
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := s.validate(req.Definition); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	if err := communityExists(ctx, s.client, req.CommunityID); err != nil {
		return nil, err
	}

	wf, err := s.client.Workflow.Create().
		SetID(uuid.New().String()).
		SetCommunityID(req.CommunityID).
		SetName(req.Name).
		SetDefinition(req.Definition).
		SetCreatedBy(req.CreatedBy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create workflow: %w", err)
	}
	return wf, nil
}

// UpdateDefinition replaces a workflow's graph and bumps its version.
func (s *WorkflowService) UpdateDefinition(httpCtx context.Context, workflowID string, definition map[string]any) (*ent.Workflow, error) {
	if err := s.validate(definition); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	wf, err := s.client.Workflow.UpdateOneID(workflowID).
		SetDefinition(definition).
		AddVersion(1).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update workflow: %w", err)
	}
	return wf, nil
}

// SetActive toggles a workflow without touching its definition.
func (s *WorkflowService) SetActive(httpCtx context.Context, workflowID string, active bool) error {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	err := s.client.Workflow.UpdateOneID(workflowID).
		SetIsActive(active).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to toggle workflow: %w", err)
	}
	return nil
}

// ActiveWorkflows returns the community's active definitions, parsed and
// ready for the engine.
func (s *WorkflowService) ActiveWorkflows(httpCtx context.Context, communityID string) ([]StoredWorkflow, error) {
	ctx, cancel := context.WithTimeout(httpCtx, 5*time.Second)
	defer cancel()

	rows, err := s.client.Workflow.Query().
		Where(
			entworkflow.CommunityIDEQ(communityID),
			entworkflow.IsActive(true),
		).
		Order(ent.Asc(entworkflow.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workflows: %w", err)
	}

	out := make([]StoredWorkflow, 0, len(rows))
	for _, row := range rows {
		def, err := parseStoredDefinition(row.Definition)
		if err != nil {
			// A stored row that no longer parses is skipped, not fatal:
			// one broken workflow must not take the community offline.
			continue
		}
		out = append(out, StoredWorkflow{ID: row.ID, Name: row.Name, Definition: def})
	}
	return out, nil
}

// StoredWorkflow pairs a parsed definition with its row identity.
type StoredWorkflow struct {
	ID         string
	Name       string
	Definition *workflow.Definition
}

func (s *WorkflowService) validate(raw map[string]any) error {
	def, err := parseStoredDefinition(raw)
	if err != nil {
		return NewValidationError("definition", err.Error())
	}
	report := s.validator.Validate(def)
	if !report.IsValid {
		msg := "definition failed validation"
		if len(report.Errors) > 0 {
			msg = report.Errors[0]
		} else {
			for _, errs := range report.NodeErrors {
				if len(errs) > 0 {
					msg = errs[0]
					break
				}
			}
		}
		return NewValidationError("definition", msg)
	}
	return nil
}

// parseStoredDefinition round-trips the JSON map into the graph types.
func parseStoredDefinition(raw map[string]any) (*workflow.Definition, error) {
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	return workflow.ParseDefinition(data)
}
