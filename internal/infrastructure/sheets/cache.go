package sheets

import (
	"strings"
	"sync"
	"time"
)

const DefaultCacheTTL = 60 * time.Second

type cacheEntry struct {
	records []Record
	expires time.Time
}

// Cache holds scan results for a fixed TTL. Keys are "<Table>:<shape>" so a
// write to a table can drop every entry of that table.
//
// Every invalidation bumps the table generation. A scan that started before
// a write carries the old generation and its result is not stored.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
	gens    map[string]uint64
	epoch   uint64
}

// NewCache returns a cache; ttl <= 0 disables caching.
func NewCache(ttl time.Duration) *Cache {
	return &Cache{ttl: ttl, now: time.Now, entries: make(map[string]cacheEntry), gens: make(map[string]uint64)}
}

// Generation changes whenever table is invalidated or the cache is cleared.
func (c *Cache) Generation(table string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epoch + c.gens[table]
}

func (c *Cache) Get(key string) ([]Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return e.records, true
}

func (c *Cache) Set(key string, records []Record) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{records: records, expires: c.now().Add(c.ttl)}
}

// SetIfCurrent stores records only when table is still at generation gen.
func (c *Cache) SetIfCurrent(table string, gen uint64, key string, records []Record) bool {
	if c.ttl <= 0 {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.epoch+c.gens[table] != gen {
		return false
	}
	c.entries[key] = cacheEntry{records: records, expires: c.now().Add(c.ttl)}
	return true
}

// InvalidateTable drops every entry keyed under table.
func (c *Cache) InvalidateTable(table string) {
	prefix := table + ":"
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gens[table]++
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.epoch++
	c.entries = make(map[string]cacheEntry)
}

func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func cacheKey(table, shape string) string {
	return table + ":" + shape
}
