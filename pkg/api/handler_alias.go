package api

import (
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/services"
)

// CreateAliasBody is the request body for POST /api/v1/entities/:entity/aliases.
type CreateAliasBody struct {
	Alias         string `json:"alias"`
	CommandType   string `json:"command_type"`
	ResponseText  string `json:"response_text,omitempty"`
	ActionCommand string `json:"action_command,omitempty"`
}

// AliasResponse is the API shape of an alias row.
type AliasResponse struct {
	Alias         string `json:"alias"`
	CommandType   string `json:"command_type"`
	ResponseText  string `json:"response_text,omitempty"`
	ActionCommand string `json:"action_command,omitempty"`
	UsageCount    int    `json:"usage_count"`
}

func aliasResponse(a *ent.Alias) *AliasResponse {
	return &AliasResponse{
		Alias:         a.Alias,
		CommandType:   string(a.CommandType),
		ResponseText:  a.ResponseText,
		ActionCommand: a.ActionCommand,
		UsageCount:    a.UsageCount,
	}
}

// createAliasHandler handles POST /api/v1/entities/:entity/aliases.
func (s *Server) createAliasHandler(c *echo.Context) error {
	if s.aliases == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "alias management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	var body CreateAliasBody
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	a, err := s.aliases.CreateAlias(c.Request().Context(), services.CreateAliasRequest{
		EntityID:      c.Param("entity"),
		Alias:         body.Alias,
		CommandType:   body.CommandType,
		ResponseText:  body.ResponseText,
		ActionCommand: body.ActionCommand,
		CreatedBy:     currentUser(c).Subject,
	})
	if err != nil {
		return mapServiceError(err)
	}
	return c.JSON(http.StatusCreated, aliasResponse(a))
}

// listAliasesHandler handles GET /api/v1/entities/:entity/aliases.
func (s *Server) listAliasesHandler(c *echo.Context) error {
	if s.aliases == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "alias management unavailable")
	}

	rows, err := s.aliases.ListAliases(c.Request().Context(), c.Param("entity"))
	if err != nil {
		return mapServiceError(err)
	}

	out := make([]*AliasResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, aliasResponse(a))
	}
	return c.JSON(http.StatusOK, out)
}

// removeAliasHandler handles DELETE /api/v1/entities/:entity/aliases/:alias.
func (s *Server) removeAliasHandler(c *echo.Context) error {
	if s.aliases == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "alias management unavailable")
	}
	if err := requirePermission(c, "manage"); err != nil {
		return err
	}

	if err := s.aliases.RemoveAlias(c.Request().Context(), c.Param("entity"), c.Param("alias")); err != nil {
		return mapServiceError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
