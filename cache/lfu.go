package cache

import (
	"container/list"
	"sync"
)

var _ Cache[string, any] = (*LFU[string, any])(nil)

type lfuEntry[K comparable, V any] struct {
	value V
	freq  int
	// el is the entry's position inside buckets[freq].
	el *list.Element
}

// LFU evicts the entry with the lowest access count. Entries sharing the
// lowest count are evicted in the order they entered that count.
//
// Every key in entries is present in exactly one bucket, buckets[entry.freq].
// Buckets are never left empty in the map.
type LFU[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	entries  map[K]*lfuEntry[K, V]
	buckets  map[int]*list.List
	minFreq  int
}

// NewLFU creates an LFU cache holding at most capacity entries.
// A capacity of zero or less yields a cache that never stores anything.
func NewLFU[K comparable, V any](capacity int) *LFU[K, V] {
	size := capacity
	if size < 0 {
		size = 0
	}
	return &LFU[K, V]{
		capacity: capacity,
		entries:  make(map[K]*lfuEntry[K, V], size),
		buckets:  make(map[int]*list.List),
	}
}

// Put overwrites the value of an existing key without changing its
// frequency. A new key enters with frequency 1, evicting first when full.
func (c *LFU[K, V]) Put(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.value = value
		return
	}
	if c.capacity <= 0 {
		return
	}
	if len(c.entries) >= c.capacity {
		c.evict()
	}

	e := &lfuEntry[K, V]{value: value, freq: 1}
	e.el = c.bucket(1).PushBack(key)
	c.entries[key] = e
	c.minFreq = 1
}

// Get returns the value for key and moves it to the next frequency bucket.
func (c *LFU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	f := e.freq
	if c.unlink(e) && f == c.minFreq {
		c.minFreq++
	}
	e.freq = f + 1
	e.el = c.bucket(e.freq).PushBack(key)
	return e.value, true
}

// Remove deletes key from all three indexes.
func (c *LFU[K, V]) Remove(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)
	if c.unlink(e) && e.freq == c.minFreq {
		c.minFreq++
		if _, ok := c.buckets[c.minFreq]; !ok {
			c.recomputeMinFreq()
		}
	}
}

// Len reports the number of cached entries.
func (c *LFU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evict drops the oldest key of the lowest frequency bucket. Callers hold mu.
func (c *LFU[K, V]) evict() {
	b, ok := c.buckets[c.minFreq]
	if !ok {
		c.recomputeMinFreq()
		if b, ok = c.buckets[c.minFreq]; !ok {
			return
		}
	}

	front := b.Front()
	key := front.Value.(K)
	b.Remove(front)
	if b.Len() == 0 {
		delete(c.buckets, c.minFreq)
	}
	delete(c.entries, key)
}

// unlink removes the entry from its bucket and reports whether the bucket emptied.
func (c *LFU[K, V]) unlink(e *lfuEntry[K, V]) bool {
	b := c.buckets[e.freq]
	b.Remove(e.el)
	e.el = nil
	if b.Len() > 0 {
		return false
	}
	delete(c.buckets, e.freq)
	return true
}

func (c *LFU[K, V]) bucket(freq int) *list.List {
	b, ok := c.buckets[freq]
	if !ok {
		b = list.New()
		c.buckets[freq] = b
	}
	return b
}

// recomputeMinFreq scans the live buckets. It is only reached when a removal
// leaves a gap between frequencies; an empty cache resets minFreq to 0.
func (c *LFU[K, V]) recomputeMinFreq() {
	lowest := 0
	for f := range c.buckets {
		if lowest == 0 || f < lowest {
			lowest = f
		}
	}
	c.minFreq = lowest
}
