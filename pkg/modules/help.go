package modules

import (
	"context"
	"fmt"
	"strings"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/router"
)

// Help lists the registered command triggers. It reads the same registry
// the dispatcher matches against, so the listing is always current.
type Help struct {
	registry *router.Registry
}

func NewHelp(registry *router.Registry) *Help {
	return &Help{registry: registry}
}

func (h *Help) Name() string { return "help" }

func (h *Help) Handle(_ context.Context, cmd models.ModuleCommand) (models.ModuleResponse, error) {
	commands := h.registry.Commands()
	if len(commands) == 0 {
		return textResponse("No commands are registered yet."), nil
	}

	var b strings.Builder
	b.WriteString("Available commands: ")
	for i, c := range commands {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.Pattern)
	}

	// "!help <command>" narrows to one command's details.
	if len(cmd.Args) > 0 {
		want := cmd.Args[0]
		if !strings.HasPrefix(want, "!") {
			want = "!" + want
		}
		for _, c := range commands {
			if strings.EqualFold(c.Pattern, want) {
				role := c.MinRole
				if role == "" {
					role = models.RoleVisitor
				}
				return textResponse(fmt.Sprintf("%s is handled by the %s module (requires %s).",
					c.Pattern, c.Module, role)), nil
			}
		}
		return textResponse(fmt.Sprintf("Unknown command %s. %s", want, b.String())), nil
	}

	return textResponse(b.String()), nil
}

func textResponse(text string) models.ModuleResponse {
	return models.ModuleResponse{
		Success:        true,
		ResponseAction: string(models.ActionChatMessage),
		ResponseData:   map[string]any{"text": text},
	}
}
