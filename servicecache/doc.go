// Package servicecache decorates entity services with the in-process entity
// cache from package cache.
//
// CachedService implements the same EntityService contract as the service it
// wraps:
//
//   - FindByID answers from the cache when it can. A miss loads from the
//     wrapped service and stores the result. Errors, including not-found, are
//     returned as-is and nothing is cached.
//   - Save and Update call the wrapped service first and store the returned
//     entity only on success.
//   - Delete calls the wrapped service first and removes the cache entry only
//     on success.
//
// A failed write therefore never changes the cache.
//
// Paginated FindAll results can additionally be cached in a TTL query cache:
//
//	houses, _ := cache.New[uuid.UUID, domain.HouseResponse](cache.DefaultConfig())
//	cached := servicecache.New[domain.HouseRequest, domain.HouseResponse](
//		base, houses, domain.HouseKey,
//		servicecache.WithQueryCache(queries, cache.NewDefaultKeySerializer()),
//		servicecache.WithLogger(logger),
//	)
//
// Every successful write drops the query cache keys of that entity.
//
// WithCacheBypass forces FindByID to reload from the wrapped service; the
// fresh value still replaces the cached one.
package servicecache
