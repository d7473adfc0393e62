package api

import (
	"fmt"
	"net/http"

	echo "github.com/labstack/echo/v5"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// CommandInfo describes one registered command trigger.
type CommandInfo struct {
	Command  string `json:"command"`
	Module   string `json:"module"`
	MinRole  string `json:"min_role,omitempty"`
	Priority int    `json:"priority"`
}

// CommandListResponse is returned by GET /api/v1/commands.
type CommandListResponse struct {
	Platform string        `json:"platform,omitempty"`
	Commands []CommandInfo `json:"commands"`
}

// listCommandsHandler handles GET /api/v1/commands?platform=. The command
// set is shared across platforms; the parameter is validated and echoed so
// collector modules can scope their own registration.
func (s *Server) listCommandsHandler(c *echo.Context) error {
	platform := c.QueryParam("platform")
	if platform != "" && !models.Platform(platform).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("unknown platform %q", platform))
	}

	triggers := s.registry.Commands()
	commands := make([]CommandInfo, 0, len(triggers))
	for _, t := range triggers {
		commands = append(commands, CommandInfo{
			Command:  t.Pattern,
			Module:   t.Module,
			MinRole:  string(t.MinRole),
			Priority: t.Priority,
		})
	}

	return c.JSON(http.StatusOK, &CommandListResponse{Platform: platform, Commands: commands})
}
