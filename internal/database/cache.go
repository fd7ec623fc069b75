package database

import (
	"fmt"
	"strings"
	"sync"
)

// QueryCache memoizes decoded read results for the lifetime of the
// process. Keys combine the query text with its rendered parameters,
// so identical reads are served without touching the database until
// the next write clears everything.
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]any)}
}

// Key renders a cache key from a query and its parameters.
func Key(query string, args ...any) string {
	if len(args) == 0 {
		return query
	}
	var b strings.Builder
	b.WriteString(query)
	for _, a := range args {
		b.WriteByte('|')
		fmt.Fprintf(&b, "%v", a)
	}
	return b.String()
}

func (c *QueryCache) Get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *QueryCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// Clear drops every entry. Wholesale invalidation keeps reads correct
// after any write without per-key bookkeeping.
func (c *QueryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]any)
}

func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
