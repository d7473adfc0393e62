// Package cache implements the tri-tier read-through cache: an in-process
// LRU, a shared Redis tier, and an optional durable store with promotion on
// hit and write-through on miss.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// l1Entry holds one cached value with its insertion time for TTL expiry.
type l1Entry struct {
	key      string
	value    []byte
	storedAt time.Time
}

// L1Cache is a bounded in-process LRU with TTL expiration. Expired entries
// are cleaned up lazily on Get; eviction happens on Set when the bound is
// exceeded. One mutex guards the list and the index.
type L1Cache struct {
	mu      sync.Mutex
	maxSize int
	ttl     time.Duration
	order   *list.List
	index   map[string]*list.Element
}

// NewL1Cache creates an LRU bounded to maxSize entries with the given TTL.
func NewL1Cache(maxSize int, ttl time.Duration) *L1Cache {
	return &L1Cache{
		maxSize: maxSize,
		ttl:     ttl,
		order:   list.New(),
		index:   make(map[string]*list.Element),
	}
}

// Get returns the cached value if present and not expired.
func (c *L1Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*l1Entry)
	if time.Since(entry.storedAt) > c.ttl {
		c.order.Remove(elem)
		delete(c.index, key)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return entry.value, true
}

// Set stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *L1Cache) Set(key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		entry := elem.Value.(*l1Entry)
		entry.value = value
		entry.storedAt = time.Now()
		c.order.MoveToFront(elem)
		return
	}

	c.index[key] = c.order.PushFront(&l1Entry{
		key:      key,
		value:    value,
		storedAt: time.Now(),
	})

	if c.order.Len() > c.maxSize {
		oldest := c.order.Back()
		if oldest != nil {
			evicted := oldest.Value.(*l1Entry)
			c.order.Remove(oldest)
			delete(c.index, evicted.key)
		}
	}
}

// Delete removes key if present.
func (c *L1Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[key]; ok {
		c.order.Remove(elem)
		delete(c.index, key)
	}
}

// Len returns the current entry count, including not-yet-collected expired
// entries.
func (c *L1Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
