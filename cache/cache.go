package cache

// Cache is a bounded in-process key/value store for entity snapshots.
//
// Get is not side-effect free: strategies that rank entries by usage update
// the key's standing on every hit. A miss is reported by the second return
// value and never changes state.
//
// Implementations are safe for concurrent use.
type Cache[K comparable, V any] interface {
	// Put inserts or overwrites the mapping for key.
	Put(key K, value V)
	// Get returns the value stored for key and whether it was present.
	Get(key K) (V, bool)
	// Remove deletes the mapping for key. Removing an absent key is a no-op.
	Remove(key K)
	// Len reports the number of entries currently held.
	Len() int
}
