package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krisalay/lfu-cache/config"
	"github.com/krisalay/lfu-cache/eviction"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 128, cfg.Capacity)
	assert.Equal(t, eviction.LFU, cfg.PolicyType())
	assert.True(t, cfg.CountUpdates)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, config.BenchConfig{Goroutines: 16, Ops: 100000, Keys: 1024}, cfg.Bench)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LFUCACHE_CAPACITY", "7")
	t.Setenv("LFUCACHE_POLICY", "lru")
	t.Setenv("LFUCACHE_COUNT_UPDATES", "false")
	t.Setenv("LFUCACHE_LOGGING_LEVEL", "DEBUG")

	cfg, err := config.Load(config.NewViper(), "")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Capacity)
	assert.Equal(t, "LRU", cfg.Policy)
	assert.False(t, cfg.CountUpdates)
	assert.Equal(t, zerolog.DebugLevel, cfg.LogConfig().Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lfucache.yaml")
	body := "capacity: 3\npolicy: fifo\nlogging:\n  format: json\nbench:\n  keys: 10\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := config.Load(config.NewViper(), path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Capacity)
	assert.Equal(t, eviction.FIFO, cfg.PolicyType())
	assert.Equal(t, "json", cfg.LogConfig().Format)
	assert.Equal(t, 10, cfg.Bench.Keys)
	assert.Equal(t, 16, cfg.Bench.Goroutines)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(config.NewViper(), filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  any
		want error
	}{
		{"negative capacity", "capacity", -1, config.ErrInvalidCapacity},
		{"unknown policy", "policy", "MRU", eviction.ErrUnknownPolicy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := config.NewViper()
			v.Set(tt.key, tt.val)

			_, err := config.Load(v, "")
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidationRejectsBadLogging(t *testing.T) {
	for key, val := range map[string]string{
		"logging.level":  "loud",
		"logging.format": "xml",
	} {
		v := config.NewViper()
		v.Set(key, val)

		_, err := config.Load(v, "")
		assert.Error(t, err, key)
	}
}

func TestZeroCapacityIsValid(t *testing.T) {
	v := config.NewViper()
	v.Set("capacity", 0)

	cfg, err := config.Load(v, "")
	require.NoError(t, err)
	assert.Zero(t, cfg.Capacity)
}
