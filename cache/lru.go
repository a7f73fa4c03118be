package cache

import (
	"container/list"
	"sync"
)

var _ Cache[string, any] = (*LRU[string, any])(nil)

type lruEntry[K comparable, V any] struct {
	key   K
	value V
}

// LRU evicts the entry whose most recent Put or Get is the oldest.
// The front of the list is the most recently used entry.
type LRU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	items    map[K]*list.Element
	order    *list.List
}

// NewLRU creates an LRU cache holding at most capacity entries.
// A capacity of zero or less yields a cache that never stores anything.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	size := capacity
	if size < 0 {
		size = 0
	}
	return &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*list.Element, size),
		order:    list.New(),
	}
}

// Put inserts or overwrites key and marks it most recently used.
func (c *LRU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.capacity <= 0 {
		return
	}

	if el, ok := c.items[key]; ok {
		el.Value.(*lruEntry[K, V]).value = value
		c.order.MoveToFront(el)
		return
	}

	c.items[key] = c.order.PushFront(&lruEntry[K, V]{key: key, value: value})
	if c.order.Len() > c.capacity {
		c.evict()
	}
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry[K, V]).value, true
}

// Remove deletes key without touching the order of the remaining entries.
func (c *LRU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.items[key]; ok {
		c.order.Remove(el)
		delete(c.items, key)
	}
}

// Len reports the number of cached entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// evict drops the tail of the list. Callers hold mu.
func (c *LRU[K, V]) evict() {
	el := c.order.Back()
	if el == nil {
		return
	}
	c.order.Remove(el)
	delete(c.items, el.Value.(*lruEntry[K, V]).key)
}
