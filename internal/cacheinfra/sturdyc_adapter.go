package cacheinfra

import (
	"context"
	"strings"

	"github.com/Nikolay1992167/SpringMVC-sub000/cache"
	"github.com/jmgilman/go/errors"
	"github.com/viccon/sturdyc"
)

var _ cache.CacheService = (*SturdycService)(nil)

// SturdycService is the sturdyc-backed cache.CacheService.
type SturdycService struct {
	client *sturdyc.Client[any]
}

// NewSturdycService validates cfg and builds the underlying sturdyc client.
func NewSturdycService(cfg Config) (*SturdycService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	client := sturdyc.New[any](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		cfg.options()...,
	)
	return &SturdycService{client: client}, nil
}

// GetOrFetch returns the cached value for key, calling fetchFn on a miss.
// Errors from fetchFn are returned and nothing is stored.
func (s *SturdycService) GetOrFetch(ctx context.Context, key string, fetchFn cache.FetchFn[any]) (any, error) {
	if fetchFn == nil {
		return nil, errors.New(errors.CodeInvalidInput, "query cache: fetch function is nil")
	}
	return s.client.GetOrFetch(ctx, key, sturdyc.FetchFn[any](fetchFn))
}

// Delete removes a single entry.
func (s *SturdycService) Delete(ctx context.Context, key string) error {
	s.client.Delete(key)
	return nil
}

// DeleteByPrefix removes every entry whose key starts with prefix.
func (s *SturdycService) DeleteByPrefix(ctx context.Context, prefix string) error {
	for _, key := range s.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			s.client.Delete(key)
		}
	}
	return nil
}

