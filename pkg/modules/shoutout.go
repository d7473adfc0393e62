package modules

import (
	"context"
	"fmt"
	"strings"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// Shoutout promotes another user in chat.
type Shoutout struct{}

func NewShoutout() *Shoutout { return &Shoutout{} }

func (s *Shoutout) Name() string { return "shoutout" }

func (s *Shoutout) Handle(_ context.Context, cmd models.ModuleCommand) (models.ModuleResponse, error) {
	if len(cmd.Args) == 0 {
		return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation, "usage: !so <username>")
	}

	target := strings.TrimPrefix(cmd.Args[0], "@")
	if target == "" {
		return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation, "usage: !so <username>")
	}

	return textResponse(fmt.Sprintf("Go check out @%s, they're great! (shoutout from %s)",
		target, cmd.Session.Username)), nil
}
