package modules

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/waddlebot/waddlebot-core/pkg/models"
	"github.com/waddlebot/waddlebot-core/pkg/waddleerr"
)

// playback is one community's player state. All fields are guarded by the
// owning Music mutex.
type playback struct {
	track     string
	queue     []string
	paused    bool
	startedAt time.Time
}

// Music is a minimal song-request player. State is per community and held
// in memory; it exists to exercise the full dispatch loop, not to talk to
// a real media backend.
type Music struct {
	mu    sync.Mutex
	rooms map[string]*playback
	now   func() time.Time
}

func NewMusic() *Music {
	return &Music{
		rooms: make(map[string]*playback),
		now:   time.Now,
	}
}

func (m *Music) Name() string { return "music" }

func (m *Music) Handle(_ context.Context, cmd models.ModuleCommand) (models.ModuleResponse, error) {
	if len(cmd.Args) == 0 {
		return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation,
			"usage: !song play <title> | pause | resume | skip | status")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	room := m.rooms[cmd.Session.CommunityID]
	if room == nil {
		room = &playback{}
		m.rooms[cmd.Session.CommunityID] = room
	}

	verb := strings.ToLower(cmd.Args[0])
	switch verb {
	case "play":
		title := strings.Join(cmd.Args[1:], " ")
		if title == "" {
			return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation, "usage: !song play <title>")
		}
		if room.track == "" {
			room.track = title
			room.paused = false
			room.startedAt = m.now()
			return textResponse(fmt.Sprintf("Now playing: %s", title)), nil
		}
		room.queue = append(room.queue, title)
		return textResponse(fmt.Sprintf("Queued %s (position %d)", title, len(room.queue))), nil

	case "pause":
		if room.track == "" {
			return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation, "nothing is playing")
		}
		if room.paused {
			return textResponse("Already paused."), nil
		}
		room.paused = true
		return textResponse(fmt.Sprintf("Paused: %s", room.track)), nil

	case "resume":
		if room.track == "" {
			return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation, "nothing is playing")
		}
		if !room.paused {
			return textResponse(fmt.Sprintf("Already playing: %s", room.track)), nil
		}
		room.paused = false
		return textResponse(fmt.Sprintf("Resumed: %s", room.track)), nil

	case "skip":
		if room.track == "" {
			return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation, "nothing is playing")
		}
		skipped := room.track
		if len(room.queue) > 0 {
			room.track = room.queue[0]
			room.queue = room.queue[1:]
			room.paused = false
			room.startedAt = m.now()
			return textResponse(fmt.Sprintf("Skipped %s. Now playing: %s", skipped, room.track)), nil
		}
		room.track = ""
		room.paused = false
		return textResponse(fmt.Sprintf("Skipped %s. Queue is empty.", skipped)), nil

	case "status":
		if room.track == "" {
			return textResponse("Nothing is playing."), nil
		}
		state := "playing"
		if room.paused {
			state = "paused"
		}
		elapsed := m.now().Sub(room.startedAt).Round(time.Second)
		return textResponse(fmt.Sprintf("%s: %s for %s (%d queued)", state, room.track, elapsed, len(room.queue))), nil

	default:
		return models.ModuleResponse{}, waddleerr.New(waddleerr.KindValidation,
			fmt.Sprintf("unknown subcommand %q", verb))
	}
}
