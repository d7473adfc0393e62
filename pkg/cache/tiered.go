package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Tier identifies which cache level served a hit.
type Tier int

const (
	TierNone Tier = iota
	TierL1
	TierL2
	TierL3
)

// String returns the tier name for logging.
func (t Tier) String() string {
	switch t {
	case TierL1:
		return "l1"
	case TierL2:
		return "l2"
	case TierL3:
		return "l3"
	default:
		return "none"
	}
}

// DurableStore is the L3 tier: an indefinite store with insert-or-update
// writes. Implementations record access counts so a separate GC pass can
// remove low-use rows.
type DurableStore interface {
	// Get fetches the value for key and records the access.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Put inserts or updates the value for key.
	Put(ctx context.Context, key string, value []byte) error
}

// TriTier is the three-level cache. Reads check L1, then L2, then L3,
// promoting hits upward; writes go through every configured tier. The rdb
// and store tiers are both optional, so a single node degrades to L1 only.
type TriTier struct {
	l1     *L1Cache
	rdb    *redis.Client
	prefix string
	l2TTL  time.Duration
	store  DurableStore
}

// NewTriTier assembles the cache. rdb may be nil (no shared tier) and store
// may be nil (no durable tier).
func NewTriTier(l1 *L1Cache, rdb *redis.Client, prefix string, l2TTL time.Duration, store DurableStore) *TriTier {
	return &TriTier{
		l1:     l1,
		rdb:    rdb,
		prefix: prefix,
		l2TTL:  l2TTL,
		store:  store,
	}
}

func (c *TriTier) l2Key(key string) string {
	return c.prefix + ":" + key
}

// Get looks key up through the tiers and unmarshals the hit into v. The
// returned Tier reports which level answered.
func (c *TriTier) Get(ctx context.Context, key string, v any) (bool, Tier, error) {
	if data, ok := c.l1.Get(key); ok {
		if err := json.Unmarshal(data, v); err != nil {
			return false, TierNone, fmt.Errorf("decoding L1 entry %s: %w", key, err)
		}
		return true, TierL1, nil
	}

	if c.rdb != nil {
		data, err := c.rdb.Get(ctx, c.l2Key(key)).Bytes()
		switch {
		case err == nil:
			c.l1.Set(key, data)
			if err := json.Unmarshal(data, v); err != nil {
				return false, TierNone, fmt.Errorf("decoding L2 entry %s: %w", key, err)
			}
			return true, TierL2, nil
		case err != redis.Nil:
			slog.Warn("L2 cache read failed", "key", key, "error", err)
		}
	}

	if c.store != nil {
		data, ok, err := c.store.Get(ctx, key)
		if err != nil {
			return false, TierNone, fmt.Errorf("reading durable tier for %s: %w", key, err)
		}
		if ok {
			c.promote(ctx, key, data)
			if err := json.Unmarshal(data, v); err != nil {
				return false, TierNone, fmt.Errorf("decoding L3 entry %s: %w", key, err)
			}
			return true, TierL3, nil
		}
	}

	return false, TierNone, nil
}

// promote writes an L3 hit into L2 and L1 so subsequent reads stay local.
func (c *TriTier) promote(ctx context.Context, key string, data []byte) {
	c.l1.Set(key, data)
	if c.rdb != nil {
		if err := c.rdb.Set(ctx, c.l2Key(key), data, c.l2TTL).Err(); err != nil {
			slog.Warn("L2 promotion failed", "key", key, "error", err)
		}
	}
}

// Set writes v through every configured tier. A shared-tier failure is
// logged and not fatal; a durable-tier failure is returned because it
// breaks convergence for other processes.
func (c *TriTier) Set(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding cache entry %s: %w", key, err)
	}

	c.l1.Set(key, data)

	if c.rdb != nil {
		if err := c.rdb.Set(ctx, c.l2Key(key), data, c.l2TTL).Err(); err != nil {
			slog.Warn("L2 cache write failed", "key", key, "error", err)
		}
	}

	if c.store != nil {
		if err := c.store.Put(ctx, key, data); err != nil {
			return fmt.Errorf("writing durable tier for %s: %w", key, err)
		}
	}
	return nil
}

// Delete removes key from L1 and L2. Durable rows are left for the GC pass.
func (c *TriTier) Delete(ctx context.Context, key string) {
	c.l1.Delete(key)
	if c.rdb != nil {
		if err := c.rdb.Del(ctx, c.l2Key(key)).Err(); err != nil && err != redis.Nil {
			slog.Warn("L2 cache delete failed", "key", key, "error", err)
		}
	}
}
