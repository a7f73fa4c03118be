package cache

// Algorithm selects the eviction strategy of an entity cache.
type Algorithm string

const (
	// AlgorithmLRU evicts the least recently used entry.
	AlgorithmLRU Algorithm = "LRUCache"
	// AlgorithmLFU evicts the least frequently used entry.
	AlgorithmLFU Algorithm = "LFUCache"
	// AlgorithmNone disables entity caching.
	AlgorithmNone Algorithm = ""
)

// DefaultCapacity is the per-entity-type capacity used when none is configured.
const DefaultCapacity = 10

// Config describes one entity cache. The same Config is typically used to
// build one independent instance per cached entity type.
type Config struct {
	Algorithm Algorithm
	Capacity  int
}

// DefaultConfig returns an LFU cache of DefaultCapacity entries.
func DefaultConfig() Config {
	return Config{
		Algorithm: AlgorithmLFU,
		Capacity:  DefaultCapacity,
	}
}

// Known reports whether a is one of the supported strategies.
func (a Algorithm) Known() bool {
	return a == AlgorithmLRU || a == AlgorithmLFU
}

// Enabled reports whether the configuration installs a cache at all.
func (c Config) Enabled() bool {
	return c.Algorithm.Known()
}

// New builds a fresh cache for cfg. The boolean is false when cfg selects no
// known algorithm, in which case caching is disabled and the cache is nil.
func New[K comparable, V any](cfg Config) (Cache[K, V], bool) {
	switch cfg.Algorithm {
	case AlgorithmLRU:
		return NewLRU[K, V](cfg.Capacity), true
	case AlgorithmLFU:
		return NewLFU[K, V](cfg.Capacity), true
	default:
		return nil, false
	}
}
