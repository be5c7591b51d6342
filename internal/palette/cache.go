package palette

import "sync"

// Cache memoizes derived palettes by Source.Hash. It keeps the most recent
// size entries in a ring and evicts the oldest. Returned palettes are shared
// and must be treated as read-only.
type Cache struct {
	mapper *Mapper

	mu      sync.Mutex
	size    int
	entries map[string]*Palette
	keys    []string
	next    int
	hits    int64
	misses  int64
}

// CacheStats reports cache usage.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// NewCache returns a cache over mapper holding up to size palettes.
func NewCache(mapper *Mapper, size int) *Cache {
	if size <= 0 {
		size = 1
	}
	if mapper == nil {
		mapper = NewMapper()
	}
	return &Cache{
		mapper:  mapper,
		size:    size,
		entries: make(map[string]*Palette, size),
		keys:    make([]string, size),
	}
}

// Map returns the palette for src, deriving it on a miss.
func (c *Cache) Map(src Source) *Palette {
	key := src.Hash()

	c.mu.Lock()
	if p, ok := c.entries[key]; ok {
		c.hits++
		c.mu.Unlock()
		return p
	}
	c.misses++
	c.mu.Unlock()

	p := c.mapper.Map(src)

	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.entries[key]; ok {
		return existing
	}
	if old := c.keys[c.next]; old != "" {
		delete(c.entries, old)
	}
	c.keys[c.next] = key
	c.entries[key] = p
	c.next = (c.next + 1) % c.size
	return p
}

// Contains reports whether src is cached.
func (c *Cache) Contains(src Source) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[src.Hash()]
	return ok
}

// Stats returns a snapshot of cache counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{Entries: len(c.entries), Hits: c.hits, Misses: c.misses}
}

// Purge drops every cached palette.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Palette, c.size)
	c.keys = make([]string, c.size)
	c.next = 0
}
