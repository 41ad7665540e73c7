// Package cache holds the process-local search result cache.
package cache

import (
	"strings"
	"sync"

	"github.com/marecop/yellowair-sub000/internal/domain"
)

// DefaultCapacity is the number of searches kept when no capacity is configured.
const DefaultCapacity = 100

// Key builds the composite cache key for a search. Codes and class are
// expected to be normalized already.
func Key(from, to, date string, class domain.CabinClass) string {
	return strings.Join([]string{from, to, date, string(class)}, "|")
}

// FIFO is a bounded map that evicts the oldest inserted entry once full.
// Entries never expire and are never updated in place. It is safe for
// concurrent use.
type FIFO[V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]V
	order    []string
	clone    func(V) V
}

// NewFIFO returns a cache holding at most capacity entries. Values are
// passed through clone on the way in and out so callers cannot mutate
// cached data; a nil clone stores values as is. A capacity below one falls
// back to DefaultCapacity.
func NewFIFO[V any](capacity int, clone func(V) V) *FIFO[V] {
	if capacity < 1 {
		capacity = DefaultCapacity
	}
	if clone == nil {
		clone = func(v V) V { return v }
	}
	return &FIFO[V]{
		capacity: capacity,
		entries:  make(map[string]V, capacity),
		order:    make([]string, 0, capacity),
		clone:    clone,
	}
}

// NewFlightCache returns a FIFO for search results.
func NewFlightCache(capacity int) *FIFO[[]domain.Flight] {
	return NewFIFO(capacity, domain.CloneFlights)
}

// Get returns the value stored under key.
func (c *FIFO[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	return c.clone(v), true
}

// Put stores v under key, evicting the oldest entry if the cache is full.
// A key that is already present keeps its original value and position.
func (c *FIFO[V]) Put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; ok {
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}
	c.entries[key] = c.clone(v)
	c.order = append(c.order, key)
}

// Len returns the number of cached entries.
func (c *FIFO[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.order)
}

// Capacity returns the maximum number of entries.
func (c *FIFO[V]) Capacity() int { return c.capacity }
