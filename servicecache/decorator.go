package servicecache

import (
	"context"
	"reflect"
	"strings"

	"github.com/Nikolay1992167/SpringMVC-sub000/cache"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/paging"
	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v3"
	"go.uber.org/zap"
)

// CachedService decorates an EntityService with an entity cache. Reads are
// read-through and writes are write-through: the cache is only touched after
// the underlying service succeeded.
type CachedService[Req, Resp any] struct {
	base        EntityService[Req, Resp]
	entities    cache.Cache[uuid.UUID, Resp]
	keyFn       func(Resp) uuid.UUID
	settings    settings
	namespace   string
	keyRegistry *xsync.MapOf[string, struct{}]
}

// New wraps base with the entities cache. keyFn extracts the identifier a
// response is stored under after Save and Update.
func New[Req, Resp any](base EntityService[Req, Resp], entities cache.Cache[uuid.UUID, Resp], keyFn func(Resp) uuid.UUID, opts ...Option) *CachedService[Req, Resp] {
	s := settings{
		logger:        zap.NewNop(),
		keySerializer: cache.NewDefaultKeySerializer(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	name := s.name
	if name == "" {
		name = strings.TrimSuffix(reflect.TypeFor[Resp]().Name(), "Response")
	}
	namespace := toSnake(name)

	return &CachedService[Req, Resp]{
		base:        base,
		entities:    entities,
		keyFn:       keyFn,
		settings:    s,
		namespace:   namespace,
		keyRegistry: xsync.NewMapOf[string, struct{}](),
	}
}

// FindByID returns the cached entity when present, otherwise loads it from
// the base service and caches it. Errors are returned unchanged and never
// cached.
func (c *CachedService[Req, Resp]) FindByID(ctx context.Context, id uuid.UUID) (Resp, error) {
	if !IsCacheBypassed(ctx) {
		if v, ok := c.entities.Get(id); ok {
			c.settings.logger.Debug("entity cache hit", zap.String("entity", c.namespace), zap.Stringer("uuid", id))
			return v, nil
		}
	}

	v, err := c.base.FindByID(ctx, id)
	if err != nil {
		return v, err
	}
	c.entities.Put(id, v)
	c.settings.logger.Debug("entity cache fill", zap.String("entity", c.namespace), zap.Stringer("uuid", id))
	return v, nil
}

// FindAll serves paginated listings from the query cache when one is
// configured. Without it the call goes straight to the base service.
func (c *CachedService[Req, Resp]) FindAll(ctx context.Context, page paging.Page) (paging.Result[Resp], error) {
	if c.settings.queries == nil {
		return c.base.FindAll(ctx, page)
	}

	page = page.Normalize()
	key := c.settings.keySerializer.SerializeKey(c.listPrefix(), page)
	c.trackKey(key)
	return cache.GetOrFetch(ctx, c.settings.queries, key, func(ctx context.Context) (paging.Result[Resp], error) {
		return c.base.FindAll(ctx, page)
	})
}

// Save persists req and caches the created entity.
func (c *CachedService[Req, Resp]) Save(ctx context.Context, req Req) (Resp, error) {
	v, err := c.base.Save(ctx, req)
	if err == nil {
		c.entities.Put(c.keyFn(v), v)
		c.invalidateLists(ctx)
	}
	return v, err
}

// Update persists req and replaces the cached entity.
func (c *CachedService[Req, Resp]) Update(ctx context.Context, id uuid.UUID, req Req) (Resp, error) {
	v, err := c.base.Update(ctx, id, req)
	if err == nil {
		c.entities.Put(c.keyFn(v), v)
		c.invalidateLists(ctx)
	}
	return v, err
}

// Delete removes the entity and drops it from the cache.
func (c *CachedService[Req, Resp]) Delete(ctx context.Context, id uuid.UUID) error {
	err := c.base.Delete(ctx, id)
	if err == nil {
		c.entities.Remove(id)
		c.invalidateLists(ctx)
	}
	return err
}

func (c *CachedService[Req, Resp]) listPrefix() string {
	return c.namespace + cache.KeySeparator + "List"
}

// trackKey registers a query cache key for later invalidation
func (c *CachedService[Req, Resp]) trackKey(key string) {
	c.keyRegistry.Store(key, struct{}{})
}

func (c *CachedService[Req, Resp]) invalidateLists(ctx context.Context) {
	if c.settings.queries == nil {
		return
	}
	c.invalidateByPrefix(ctx, c.listPrefix())
}

// invalidateByPrefix removes all tracked keys that start with prefix
func (c *CachedService[Req, Resp]) invalidateByPrefix(ctx context.Context, prefix string) {
	var keysToDelete []string
	c.keyRegistry.Range(func(key string, _ struct{}) bool {
		if strings.HasPrefix(key, prefix) {
			keysToDelete = append(keysToDelete, key)
		}
		return true
	})

	for _, key := range keysToDelete {
		if err := c.settings.queries.Delete(ctx, key); err != nil {
			c.settings.logger.Warn("query cache invalidation failed", zap.String("key", key), zap.Error(err))
		}
		c.keyRegistry.Delete(key)
	}
	if len(keysToDelete) > 0 {
		c.settings.logger.Debug("query cache invalidated", zap.String("prefix", prefix), zap.Int("keys", len(keysToDelete)))
	}
}
