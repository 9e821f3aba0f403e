package cache

import (
	"strings"
	"sync"

	"github.com/mantrachain/dapp-template/internal/usecase"
)

// QueryCache is an in-memory QueryCache for the lifetime of one command
type QueryCache struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewQueryCache creates an empty QueryCache
func NewQueryCache() *QueryCache {
	return &QueryCache{entries: make(map[string]any)}
}

// Get returns the cached value for key
func (c *QueryCache) Get(key usecase.QueryKey) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key.String()]
	return v, ok
}

// Set stores value under key
func (c *QueryCache) Set(key usecase.QueryKey, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key.String()] = value
}

// Invalidate drops key prefix and everything below it. A prefix matches whole
// key segments only, so ("useCounter") does not drop ("useCounterX").
func (c *QueryCache) Invalidate(prefix usecase.QueryKey) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	p := prefix.String()
	n := 0
	for k := range c.entries {
		if k == p || strings.HasPrefix(k, p+"/") {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of cached entries
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

var _ usecase.QueryCache = (*QueryCache)(nil)
