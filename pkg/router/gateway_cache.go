package router

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/waddlebot/waddlebot-core/ent"
	"github.com/waddlebot/waddlebot-core/pkg/cache"
	"github.com/waddlebot/waddlebot-core/pkg/models"
)

// CachedGatewayResolver fronts a GatewayResolver with an in-process LRU.
// Gateway rows change on activation and deletion only, so a short TTL keeps
// the hot path off the database without a cross-process invalidation
// channel. Misses (ErrNotFound) are not cached: an entity usually becomes
// known moments after its first event, during onboarding.
type CachedGatewayResolver struct {
	inner GatewayResolver
	cache *cache.L1Cache
}

// cachedGateway is the subset of the gateway row the router reads.
type cachedGateway struct {
	ID          string `json:"id"`
	CommunityID string `json:"community_id"`
}

// NewCachedGatewayResolver wraps inner with an LRU of maxSize entries and
// the given TTL.
func NewCachedGatewayResolver(inner GatewayResolver, maxSize int, ttl time.Duration) *CachedGatewayResolver {
	return &CachedGatewayResolver{
		inner: inner,
		cache: cache.NewL1Cache(maxSize, ttl),
	}
}

// Resolve looks the gateway up through the cache.
func (r *CachedGatewayResolver) Resolve(ctx context.Context, platform models.Platform, serverID, channelID string) (*ent.Gateway, error) {
	key := fmt.Sprintf("%s:%s:%s", platform, serverID, channelID)

	if data, ok := r.cache.Get(key); ok {
		var cg cachedGateway
		if err := json.Unmarshal(data, &cg); err == nil {
			return &ent.Gateway{ID: cg.ID, CommunityID: cg.CommunityID}, nil
		}
	}

	gw, err := r.inner.Resolve(ctx, platform, serverID, channelID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(cachedGateway{ID: gw.ID, CommunityID: gw.CommunityID}); err == nil {
		r.cache.Set(key, data)
	}
	return gw, nil
}

// Invalidate drops one cached location, for deactivation paths.
func (r *CachedGatewayResolver) Invalidate(platform models.Platform, serverID, channelID string) {
	r.cache.Delete(fmt.Sprintf("%s:%s:%s", platform, serverID, channelID))
}
