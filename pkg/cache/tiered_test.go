package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mapStore is an in-memory DurableStore for tests.
type mapStore struct {
	mu       sync.Mutex
	rows     map[string][]byte
	accesses map[string]int
}

func newMapStore() *mapStore {
	return &mapStore{rows: make(map[string][]byte), accesses: make(map[string]int)}
}

func (s *mapStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.rows[key]
	if ok {
		s.accesses[key]++
	}
	return data, ok, nil
}

func (s *mapStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rows[key] = value
	return nil
}

type cachedValue struct {
	Text string `json:"text"`
	N    int    `json:"n"`
}

func setupTriTier(t *testing.T) (*TriTier, *redis.Client, *mapStore) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() {
		_ = rdb.Close()
		mr.Close()
	})

	store := newMapStore()
	return NewTriTier(NewL1Cache(100, time.Hour), rdb, "wb", time.Hour, store), rdb, store
}

func TestTriTierWriteThrough(t *testing.T) {
	tc, rdb, store := setupTriTier(t)
	ctx := context.Background()

	v := cachedValue{Text: "hello", N: 1}
	require.NoError(t, tc.Set(ctx, "k1", v))

	// Every tier holds the value after a write.
	var out cachedValue
	hit, tier, err := tc.Get(ctx, "k1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, TierL1, tier)
	assert.Equal(t, v, out)

	l2, err := rdb.Get(ctx, "wb:k1").Result()
	require.NoError(t, err)
	assert.JSONEq(t, `{"text":"hello","n":1}`, l2)

	store.mu.Lock()
	_, inStore := store.rows["k1"]
	store.mu.Unlock()
	assert.True(t, inStore)
}

func TestTriTierFallsBackToL2(t *testing.T) {
	tc, _, _ := setupTriTier(t)
	ctx := context.Background()

	require.NoError(t, tc.Set(ctx, "k1", cachedValue{Text: "shared", N: 2}))
	tc.l1.Delete("k1")

	var out cachedValue
	hit, tier, err := tc.Get(ctx, "k1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, TierL2, tier)
	assert.Equal(t, "shared", out.Text)

	// The L2 hit refilled L1.
	hit, tier, err = tc.Get(ctx, "k1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, TierL1, tier)
}

func TestTriTierPromotesFromDurable(t *testing.T) {
	tc, rdb, store := setupTriTier(t)
	ctx := context.Background()

	// Seed only the durable tier, as another process would have.
	require.NoError(t, store.Put(ctx, "k3", []byte(`{"text":"durable","n":3}`)))

	var out cachedValue
	hit, tier, err := tc.Get(ctx, "k3", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, TierL3, tier)
	assert.Equal(t, "durable", out.Text)

	// Promotion populated both upper tiers.
	_, err = rdb.Get(ctx, "wb:k3").Result()
	require.NoError(t, err)

	hit, tier, err = tc.Get(ctx, "k3", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, TierL1, tier)

	store.mu.Lock()
	assert.Equal(t, 1, store.accesses["k3"])
	store.mu.Unlock()
}

func TestTriTierMiss(t *testing.T) {
	tc, _, _ := setupTriTier(t)

	var out cachedValue
	hit, tier, err := tc.Get(context.Background(), "absent", &out)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, TierNone, tier)
}

func TestTriTierWorksWithoutSharedTiers(t *testing.T) {
	tc := NewTriTier(NewL1Cache(10, time.Hour), nil, "wb", time.Hour, nil)
	ctx := context.Background()

	require.NoError(t, tc.Set(ctx, "k1", cachedValue{Text: "local", N: 4}))

	var out cachedValue
	hit, tier, err := tc.Get(ctx, "k1", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, TierL1, tier)
	assert.Equal(t, "local", out.Text)
}

func TestTriTierDelete(t *testing.T) {
	tc, rdb, _ := setupTriTier(t)
	ctx := context.Background()

	require.NoError(t, tc.Set(ctx, "k1", cachedValue{Text: "gone", N: 5}))
	tc.Delete(ctx, "k1")

	_, ok := tc.l1.Get("k1")
	assert.False(t, ok)

	_, err := rdb.Get(ctx, "wb:k1").Result()
	assert.Equal(t, redis.Nil, err)
}
