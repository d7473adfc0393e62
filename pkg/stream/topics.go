package stream

import (
	"fmt"

	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// Topics builds the stream names used by the router and modules from the
// configured prefix.
type Topics struct {
	prefix string
}

// NewTopics creates a topic namer for the given prefix.
func NewTopics(prefix string) Topics {
	return Topics{prefix: prefix}
}

// Inbound is the stream of raw platform events entering the router.
func (t Topics) Inbound() string { return t.prefix + ":inbound" }

// Commands is the stream of module commands dispatched by the router.
func (t Topics) Commands() string { return t.prefix + ":commands" }

// Responses is the stream of module responses awaiting aggregation.
func (t Topics) Responses() string { return t.prefix + ":responses" }

// Actions is the per-platform stream of outbound actions.
func (t Topics) Actions(p models.Platform) string {
	return fmt.Sprintf("%s:actions:%s", t.prefix, p)
}
