package servicecache

import (
	"github.com/Nikolay1992167/SpringMVC-sub000/cache"
	"go.uber.org/zap"
)

// Option configures a CachedService.
type Option func(*settings)

type settings struct {
	logger        *zap.Logger
	queries       cache.CacheService
	keySerializer cache.KeySerializer
	name          string
}

// WithLogger sets the logger used for hit/miss and invalidation events.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithQueryCache enables caching of paginated FindAll results. A nil
// serializer falls back to cache.NewDefaultKeySerializer.
func WithQueryCache(queries cache.CacheService, keySerializer cache.KeySerializer) Option {
	return func(s *settings) {
		s.queries = queries
		if keySerializer != nil {
			s.keySerializer = keySerializer
		}
	}
}

// WithName sets the namespace for query cache keys. It is converted to
// snake_case.
func WithName(name string) Option {
	return func(s *settings) { s.name = name }
}
