package translation

import (
	"sync"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// EmoteRegistry holds known emote names per platform, with optional
// channel-scoped sets layered on top. Lookups are exact and case-sensitive,
// matching how platforms render emote codes.
type EmoteRegistry struct {
	mu       sync.RWMutex
	global   map[models.Platform]map[string]struct{}
	channels map[models.Platform]map[string]map[string]struct{}
}

// NewEmoteRegistry creates an empty registry.
func NewEmoteRegistry() *EmoteRegistry {
	return &EmoteRegistry{
		global:   make(map[models.Platform]map[string]struct{}),
		channels: make(map[models.Platform]map[string]map[string]struct{}),
	}
}

// AddGlobal registers platform-wide emote codes.
func (r *EmoteRegistry) AddGlobal(platform models.Platform, codes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	set, ok := r.global[platform]
	if !ok {
		set = make(map[string]struct{})
		r.global[platform] = set
	}
	for _, c := range codes {
		set[c] = struct{}{}
	}
}

// AddChannel registers channel-scoped emote codes.
func (r *EmoteRegistry) AddChannel(platform models.Platform, channelID string, codes ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	byChannel, ok := r.channels[platform]
	if !ok {
		byChannel = make(map[string]map[string]struct{})
		r.channels[platform] = byChannel
	}
	set, ok := byChannel[channelID]
	if !ok {
		set = make(map[string]struct{})
		byChannel[channelID] = set
	}
	for _, c := range codes {
		set[c] = struct{}{}
	}
}

// IsEmote reports whether word is a known emote for the platform, checking
// the channel-scoped set first when channelID is non-empty.
func (r *EmoteRegistry) IsEmote(platform models.Platform, channelID, word string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if channelID != "" {
		if set, ok := r.channels[platform][channelID]; ok {
			if _, hit := set[word]; hit {
				return true
			}
		}
	}
	if set, ok := r.global[platform]; ok {
		_, hit := set[word]
		return hit
	}
	return false
}
