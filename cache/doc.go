// Package cache provides the in-process entity caches and the query cache
// contracts used by the service decorators.
//
// # Entity caches
//
// Cache is a bounded key/value store with two eviction strategies:
//
//   - LRU evicts the entry whose last Put or Get is the oldest.
//   - LFU evicts the entry with the lowest access count, oldest first among equals.
//
// Both take a mutex around every operation. Get updates recency or frequency,
// so it is a write as far as the internal bookkeeping is concerned.
//
// The strategy is chosen by configuration:
//
//	cfg := cache.Config{Algorithm: cache.AlgorithmLRU, Capacity: 100}
//	houses, ok := cache.New[uuid.UUID, domain.HouseResponse](cfg)
//	if !ok {
//		// caching disabled
//	}
//
// Call New once per entity type; instances never share state.
//
// # Query caches
//
// CacheService is a read-through TTL cache for results that are not keyed by
// a single identifier, such as paginated listings. Keys are produced by a
// KeySerializer; the default one renders arguments deterministically and
// digests long argument lists with xxhash.
package cache
