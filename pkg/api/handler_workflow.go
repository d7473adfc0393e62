package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/services"
)

// CreateWorkflowBody is the request body for POST /api/v1/workflows.
type CreateWorkflowBody struct {
	CommunityID string         `json:"community_id"`
	Name        string         `json:"name"`
	Definition  map[string]any `json:"definition"`
}

// WorkflowResponse is the API shape of a workflow row.
type WorkflowResponse struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
	Name        string `json:"name"`
	IsActive    bool   `json:"is_active"`
	Version     int    `json:"version"`
}

func workflowResponse(wf *ent.Workflow) *WorkflowResponse {
	return &WorkflowResponse{
		ID:          wf.ID,
		CommunityID: wf.CommunityID,
		Name:        wf.Name,
		IsActive:    wf.IsActive,
		Version:     wf.Version,
	}
}

// createWorkflowHandler handles POST /api/v1/workflows. The definition is
// validated against the node-graph rules before it is stored.
func (s *Server) createWorkflowHandler(c *echo.Context) error {
	if s.workflows == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "workflow management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	var body CreateWorkflowBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	wf, err := s.workflows.CreateWorkflow(c.Request().Context(), services.CreateWorkflowRequest{
		CommunityID: body.CommunityID,
		Name:        body.Name,
		Definition:  body.Definition,
		CreatedBy:   currentUser(c).Subject,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, workflowResponse(wf))
}

// UpdateWorkflowBody is the request body for PUT /api/v1/workflows/:id.
type UpdateWorkflowBody struct {
	Definition map[string]any `json:"definition"`
}

// updateWorkflowHandler handles PUT /api/v1/workflows/:id.
func (s *Server) updateWorkflowHandler(c *echo.Context) error {
	if s.workflows == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "workflow management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	var body UpdateWorkflowBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	wf, err := s.workflows.UpdateDefinition(c.Request().Context(), c.Param("id"), body.Definition)
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, workflowResponse(wf))
}

// SetWorkflowActiveBody is the request body for POST /api/v1/workflows/:id/active.
type SetWorkflowActiveBody struct {
	Active bool `json:"active"`
}

// setWorkflowActiveHandler handles POST /api/v1/workflows/:id/active.
func (s *Server) setWorkflowActiveHandler(c *echo.Context) error {
	if s.workflows == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "workflow management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	var body SetWorkflowActiveBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := s.workflows.SetActive(c.Request().Context(), c.Param("id"), body.Active); err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusOK, map[string]any{"id": c.Param("id"), "active": body.Active})
}
