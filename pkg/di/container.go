package di

import (
	"context"
	"net/http"

	"github.com/Nikolay1992167/SpringMVC-sub000/cache"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/cacheinfra"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/config"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/domain"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/httpapi"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/service"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/store"
	"github.com/Nikolay1992167/SpringMVC-sub000/servicecache"
	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// Container owns the process-wide components and wires them together:
// database, stores, services, entity caches, the query cache and the router.
type Container struct {
	config        config.Config
	logger        *zap.Logger
	db            *bun.DB
	queryCache    cache.CacheService
	keySerializer cache.KeySerializer
	houses        httpapi.HouseService
	persons       httpapi.PersonService
	handler       http.Handler
}

// NewContainer opens the database, creates the schema and builds every
// service. Entity caches are installed only when cfg.Cache selects a known
// algorithm.
func NewContainer(ctx context.Context, cfg config.Config, logger *zap.Logger) (*Container, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := store.Open(ctx, cfg.Database.Store(), logger)
	if err != nil {
		return nil, err
	}
	if err := store.CreateSchema(ctx, db); err != nil {
		db.Close()
		return nil, errors.Wrap(err, errors.CodeDatabase, "create schema")
	}

	c := &Container{
		config:        cfg,
		logger:        logger,
		db:            db,
		keySerializer: cache.NewDefaultKeySerializer(),
	}

	if cfg.QueryCache.Enabled {
		queries, err := cacheinfra.NewSturdycService(cfg.QueryCache.Infra())
		if err != nil {
			db.Close()
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "query cache")
		}
		c.queryCache = queries
	}

	houseStore := store.New(store.NewHouseRepository(db), "House")
	personStore := store.New(store.NewPersonRepository(db), "Person")

	c.houses = NewCachedService[domain.HouseRequest, domain.HouseResponse](c,
		service.NewHouseService(houseStore, personStore, service.WithLogger(logger)),
		domain.HouseKey, "house")
	c.persons = NewCachedService[domain.PersonRequest, domain.PersonResponse](c,
		service.NewPersonService(personStore, houseStore, service.WithLogger(logger)),
		domain.PersonKey, "person")

	c.handler = httpapi.NewRouter(c.houses, c.persons, logger).Setup()
	return c, nil
}

// NewCachedService wraps base with a fresh entity cache built from the
// container's cache configuration. When caching is disabled base is returned
// as-is.
//
// Since Go methods cannot have type parameters, this is provided as a package-level function.
func NewCachedService[Req, Resp any](c *Container, base servicecache.EntityService[Req, Resp], keyFn func(Resp) uuid.UUID, name string) servicecache.EntityService[Req, Resp] {
	cacheCfg := c.config.Cache.Entity()
	entities, ok := cache.New[uuid.UUID, Resp](cacheCfg)
	if !ok {
		if cacheCfg.Algorithm != cache.AlgorithmNone {
			c.logger.Warn("unknown cache algorithm, caching disabled",
				zap.String("entity", name), zap.String("algorithm", string(cacheCfg.Algorithm)))
		}
		return base
	}

	c.logger.Info("entity cache enabled",
		zap.String("entity", name),
		zap.String("algorithm", string(cacheCfg.Algorithm)),
		zap.Int("capacity", cacheCfg.Capacity))

	opts := []servicecache.Option{servicecache.WithLogger(c.logger), servicecache.WithName(name)}
	if c.queryCache != nil {
		opts = append(opts, servicecache.WithQueryCache(c.queryCache, c.keySerializer))
	}
	return servicecache.New(base, entities, keyFn, opts...)
}

// Houses returns the house service, cached when enabled.
func (c *Container) Houses() httpapi.HouseService {
	return c.houses
}

// Persons returns the person service, cached when enabled.
func (c *Container) Persons() httpapi.PersonService {
	return c.persons
}

// Handler returns the HTTP handler serving the API.
func (c *Container) Handler() http.Handler {
	return c.handler
}

// QueryCache returns the list-query cache, or nil when disabled.
func (c *Container) QueryCache() cache.CacheService {
	return c.queryCache
}

// KeySerializer returns the key serializer shared by the query caches.
func (c *Container) KeySerializer() cache.KeySerializer {
	return c.keySerializer
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() config.Config {
	return c.config
}

// DB returns the underlying database handle.
func (c *Container) DB() *bun.DB {
	return c.db
}

// Close releases the database.
func (c *Container) Close() error {
	return c.db.Close()
}
