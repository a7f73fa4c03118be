package config

import (
	"testing"
	"time"

	"github.com/Nikolay1992167/SpringMVC-sub000/cache"
	"github.com/Nikolay1992167/SpringMVC-sub000/pkg/testsupport"
	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, string(cache.AlgorithmLFU), cfg.Cache.Algorithm)
	assert.Equal(t, cache.DefaultCapacity, cfg.Cache.Capacity)
	assert.True(t, cfg.QueryCache.Enabled)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := testsupport.WriteFile(t, "config.yaml", []byte(`
server:
  address: ":9090"
log:
  level: debug
  format: console
cache:
  algorithm: LRUCache
  capacity: 50
query_cache:
  enabled: true
  capacity: 200
  shards: 4
  ttl: 30s
  eviction_percentage: 20
`))
	t.Setenv("APP_CACHE_CAPACITY", "25")
	t.Setenv("APP_QUERY_CACHE_TTL", "2m")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, cache.Config{Algorithm: cache.AlgorithmLRU, Capacity: 25}, cfg.Cache.Entity())
	assert.Equal(t, 2*time.Minute, cfg.QueryCache.TTL)

	infra := cfg.QueryCache.Infra()
	assert.Equal(t, 200, infra.Capacity)
	assert.Equal(t, 4, infra.NumShards)
	assert.Equal(t, 20, infra.EvictionPercentage)
}

func TestLoad_EmptyAlgorithmDisablesCache(t *testing.T) {
	t.Setenv("APP_CACHE_ALGORITHM", "")
	t.Setenv("APP_CACHE_CAPACITY", "0")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Cache.Entity().Enabled())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "zero capacity with algorithm", env: map[string]string{"APP_CACHE_CAPACITY": "0"}},
		{name: "non-numeric capacity", env: map[string]string{"APP_CACHE_CAPACITY": "ten"}},
		{name: "unknown driver", env: map[string]string{"APP_DATABASE_DRIVER": "oracle"}},
		{name: "bad log level", env: map[string]string{"APP_LOG_LEVEL": "loud"}},
		{name: "bad bool", env: map[string]string{"APP_QUERY_CACHE_ENABLED": "maybe"}},
		{name: "bad ttl", env: map[string]string{"APP_QUERY_CACHE_TTL": "soon"}},
		{name: "query cache capacity", env: map[string]string{"APP_QUERY_CACHE_CAPACITY": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			require.Error(t, err)
			assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
		})
	}
}

func TestLoad_DisabledQueryCacheSkipsValidation(t *testing.T) {
	t.Setenv("APP_QUERY_CACHE_ENABLED", "false")
	t.Setenv("APP_QUERY_CACHE_CAPACITY", "0")

	_, err := Load("")
	assert.NoError(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.yaml")
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidConfig, errors.GetCode(err))
}

func TestLoad_UnknownAlgorithmIsAccepted(t *testing.T) {
	t.Setenv("APP_CACHE_ALGORITHM", "ARCCache")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.Cache.Entity().Enabled())
}
