// Package config loads the server configuration from a YAML file with
// APP_-prefixed environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/Nikolay1992167/SpringMVC-sub000/cache"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/cacheinfra"
	"github.com/Nikolay1992167/SpringMVC-sub000/internal/store"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/jmgilman/go/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "APP_"

// Config holds all server configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Database   DatabaseConfig   `yaml:"database"`
	Cache      CacheConfig      `yaml:"cache"`
	QueryCache QueryCacheConfig `yaml:"query_cache"`
}

type ServerConfig struct {
	Address         string        `yaml:"address"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DatabaseConfig struct {
	Driver       string `yaml:"driver"`
	DSN          string `yaml:"dsn"`
	MaxOpenConns int    `yaml:"max_open_conns"`
	LogQueries   bool   `yaml:"log_queries"`
}

// CacheConfig selects the entity cache. An empty algorithm disables it.
type CacheConfig struct {
	Algorithm string `yaml:"algorithm"`
	Capacity  int    `yaml:"capacity"`
}

type QueryCacheConfig struct {
	Enabled            bool          `yaml:"enabled"`
	Capacity           int           `yaml:"capacity"`
	Shards             int           `yaml:"shards"`
	TTL                time.Duration `yaml:"ttl"`
	EvictionPercentage int           `yaml:"eviction_percentage"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	entity := cache.DefaultConfig()
	query := cacheinfra.DefaultConfig()
	return Config{
		Server: ServerConfig{Address: ":8080", ShutdownTimeout: 10 * time.Second},
		Log:    LogConfig{Level: "info", Format: "json"},
		Database: DatabaseConfig{
			Driver:       store.DriverSQLite,
			DSN:          "file:registry.db?cache=shared",
			MaxOpenConns: 1,
		},
		Cache: CacheConfig{Algorithm: string(entity.Algorithm), Capacity: entity.Capacity},
		QueryCache: QueryCacheConfig{
			Enabled:            true,
			Capacity:           query.Capacity,
			Shards:             query.NumShards,
			TTL:                query.TTL,
			EvictionPercentage: query.EvictionPercentage,
		},
	}
}

// Load reads path on top of Default, applies environment overrides and
// validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, errors.CodeInvalidConfig, "parse config %s", path)
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, errors.CodeInvalidConfig, "invalid configuration")
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Server),
		validation.Field(&c.Log),
		validation.Field(&c.Database),
		validation.Field(&c.Cache),
		validation.Field(&c.QueryCache),
	)
}

func (s ServerConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Address, validation.Required),
		validation.Field(&s.ShutdownTimeout, validation.Min(time.Duration(0))),
	)
}

func (l LogConfig) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Level, validation.Required, validation.In("debug", "info", "warn", "error")),
		validation.Field(&l.Format, validation.In("json", "console")),
	)
}

func (d DatabaseConfig) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Driver, validation.Required, validation.In(store.DriverSQLite, store.DriverPostgres)),
		validation.Field(&d.DSN, validation.Required),
		validation.Field(&d.MaxOpenConns, validation.Min(0)),
	)
}

// Validate accepts an unknown algorithm; the container logs it and runs
// without an entity cache.
func (c CacheConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Capacity, validation.When(c.Algorithm != "", validation.Required, validation.Min(1))),
	)
}

func (q QueryCacheConfig) Validate() error {
	if !q.Enabled {
		return nil
	}
	return q.Infra().Validate()
}

// Entity returns the entity cache factory configuration.
func (c CacheConfig) Entity() cache.Config {
	return cache.Config{Algorithm: cache.Algorithm(c.Algorithm), Capacity: c.Capacity}
}

// Infra returns the sturdyc configuration for the query cache.
func (q QueryCacheConfig) Infra() cacheinfra.Config {
	cfg := cacheinfra.DefaultConfig()
	cfg.Capacity = q.Capacity
	cfg.NumShards = q.Shards
	cfg.TTL = q.TTL
	cfg.EvictionPercentage = q.EvictionPercentage
	return cfg
}

// Store returns the database configuration for store.Open.
func (d DatabaseConfig) Store() store.Config {
	return store.Config{Driver: d.Driver, DSN: d.DSN, MaxOpenConns: d.MaxOpenConns, LogQueries: d.LogQueries}
}

type lookupFunc func(string) (string, bool)

func (c *Config) applyEnv(lookup lookupFunc) error {
	strs := map[string]*string{
		"SERVER_ADDRESS":  &c.Server.Address,
		"LOG_LEVEL":       &c.Log.Level,
		"LOG_FORMAT":      &c.Log.Format,
		"DATABASE_DRIVER": &c.Database.Driver,
		"DATABASE_DSN":    &c.Database.DSN,
		"CACHE_ALGORITHM": &c.Cache.Algorithm,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"DATABASE_MAX_OPEN_CONNS": &c.Database.MaxOpenConns,
		"CACHE_CAPACITY":          &c.Cache.Capacity,
		"QUERY_CACHE_CAPACITY":    &c.QueryCache.Capacity,
	}
	for name, dst := range ints {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return envError(name, v, err)
		}
		*dst = n
	}

	bools := map[string]*bool{
		"DATABASE_LOG_QUERIES": &c.Database.LogQueries,
		"QUERY_CACHE_ENABLED":  &c.QueryCache.Enabled,
	}
	for name, dst := range bools {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return envError(name, v, err)
		}
		*dst = b
	}

	if v, ok := lookup(EnvPrefix + "QUERY_CACHE_TTL"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return envError("QUERY_CACHE_TTL", v, err)
		}
		c.QueryCache.TTL = d
	}
	return nil
}

func envError(name, value string, err error) error {
	return errors.WithContext(
		errors.Wrap(err, errors.CodeInvalidConfig, fmt.Sprintf("invalid value for %s%s", EnvPrefix, name)),
		"value", value,
	)
}
