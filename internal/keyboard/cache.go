package keyboard

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize holds every variant a single locale realistically
// cycles through (alpha/symbols x a handful of modes).
const DefaultCacheSize = 8

// Builder constructs the keyboard for an identity on a cache miss.
type Builder func(id ID) (*Keyboard, error)

// Cache is a bounded ID-to-Keyboard cache with wholesale invalidation.
//
// The underlying LRU is itself synchronized; GetOrBuild may race two
// builders for the same ID under concurrent use, in which case the
// later result wins. The intended host calls it from a single input
// goroutine, where lookup-or-insert is atomic enough.
type Cache struct {
	entries *lru.Cache[ID, *Keyboard]
	build   Builder
}

// NewCache creates a cache of the given size backed by the builder.
// Size <= 0 selects DefaultCacheSize.
func NewCache(size int, build Builder) (*Cache, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	entries, err := lru.New[ID, *Keyboard](size)
	if err != nil {
		return nil, fmt.Errorf("creating keyboard cache: %w", err)
	}
	return &Cache{entries: entries, build: build}, nil
}

// GetOrBuild returns the keyboard for id, building and caching it on a
// miss.
func (c *Cache) GetOrBuild(id ID) (*Keyboard, error) {
	if kbd, ok := c.entries.Get(id); ok {
		return kbd, nil
	}
	kbd, err := c.build(id)
	if err != nil {
		return nil, fmt.Errorf("building keyboard %s: %w", id, err)
	}
	c.entries.Add(id, kbd)
	return kbd, nil
}

// Peek returns the cached keyboard for id without building or touching
// recency.
func (c *Cache) Peek(id ID) (*Keyboard, bool) {
	return c.entries.Peek(id)
}

// Len returns the number of cached keyboards.
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Purge drops every cached keyboard. Called whenever display width or
// voice/extension flags change, since any cached geometry is stale
// after those.
func (c *Cache) Purge() {
	c.entries.Purge()
}
