package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SelectsAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		enabled bool
		want    any
	}{
		{name: "lru", cfg: Config{Algorithm: AlgorithmLRU, Capacity: 3}, enabled: true, want: &LRU[string, int]{}},
		{name: "lfu", cfg: Config{Algorithm: AlgorithmLFU, Capacity: 3}, enabled: true, want: &LFU[string, int]{}},
		{name: "unset", cfg: Config{Capacity: 3}},
		{name: "unknown", cfg: Config{Algorithm: "ARCCache", Capacity: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := New[string, int](tt.cfg)
			assert.Equal(t, tt.enabled, ok)
			assert.Equal(t, tt.enabled, tt.cfg.Enabled())
			if !tt.enabled {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			assert.IsType(t, tt.want, c)
		})
	}
}

func TestNew_InstancesAreIndependent(t *testing.T) {
	cfg := DefaultConfig()
	houses, ok := New[string, string](cfg)
	require.True(t, ok)
	persons, ok := New[string, string](cfg)
	require.True(t, ok)

	houses.Put("k", "house")
	_, found := persons.Get("k")
	assert.False(t, found)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, AlgorithmLFU, cfg.Algorithm)
	assert.Equal(t, DefaultCapacity, cfg.Capacity)
}
