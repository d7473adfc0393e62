package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestL1GetSet(t *testing.T) {
	c := NewL1Cache(10, time.Minute)

	_, ok := c.Get("missing")
	assert.False(t, ok)

	c.Set("a", []byte("one"))
	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	c.Set("a", []byte("two"))
	got, _ = c.Get("a")
	assert.Equal(t, []byte("two"), got)
	assert.Equal(t, 1, c.Len())
}

func TestL1EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewL1Cache(2, time.Minute)

	c.Set("a", []byte("1"))
	c.Set("b", []byte("2"))

	// Touch "a" so "b" becomes the eviction candidate.
	_, ok := c.Get("a")
	assert.True(t, ok)

	c.Set("c", []byte("3"))

	_, ok = c.Get("b")
	assert.False(t, ok)
	_, ok = c.Get("a")
	assert.True(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 2, c.Len())
}

func TestL1ExpiresEntries(t *testing.T) {
	c := NewL1Cache(10, 30*time.Millisecond)

	c.Set("a", []byte("1"))
	time.Sleep(50 * time.Millisecond)

	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestL1Delete(t *testing.T) {
	c := NewL1Cache(10, time.Minute)

	c.Set("a", []byte("1"))
	c.Delete("a")
	c.Delete("a")

	_, ok := c.Get("a")
	assert.False(t, ok)
}
