package batchplan

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/arloliu/batchplan/split"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.False(t, cfg.Cache.Disabled)
	require.Equal(t, 4096, cfg.Cache.MaxEntries)
	require.Equal(t, 50*time.Millisecond, cfg.SlowPlanThreshold)
	require.Equal(t, 1<<20, cfg.MaxInputLength)
	require.Equal(t, 1<<20, cfg.MaxOutputLength)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("applies defaults to empty config", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		require.Equal(t, DefaultConfig(), cfg)
	})

	t.Run("preserves custom values", func(t *testing.T) {
		cfg := Config{
			Cache:             CacheConfig{Disabled: true, MaxEntries: 10},
			SlowPlanThreshold: time.Second,
			MaxInputLength:    100,
		}
		SetDefaults(&cfg)

		require.True(t, cfg.Cache.Disabled)
		require.Equal(t, 10, cfg.Cache.MaxEntries)
		require.Equal(t, time.Second, cfg.SlowPlanThreshold)
		require.Equal(t, 100, cfg.MaxInputLength)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{"zero max entries", func(c *Config) { c.Cache.MaxEntries = 0 }, "cache.maxEntries"},
		{"negative max entries", func(c *Config) { c.Cache.MaxEntries = -1 }, "cache.maxEntries"},
		{"negative slow threshold", func(c *Config) { c.SlowPlanThreshold = -time.Millisecond }, "slowPlanThreshold"},
		{"zero input length", func(c *Config) { c.MaxInputLength = 0 }, "maxInputLength"},
		{"negative output length", func(c *Config) { c.MaxOutputLength = -1 }, "maxOutputLength"},
		{"output length above the split limit", func(c *Config) { c.MaxOutputLength = split.MaxPlanLength + 1 }, "maxOutputLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			require.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_ValidateWithWarnings(t *testing.T) {
	t.Run("defaults produce no warnings", func(t *testing.T) {
		logger := &recordingLogger{}
		cfg := DefaultConfig()

		cfg.ValidateWithWarnings(logger)

		require.Empty(t, logger.messages("WARN"))
	})

	t.Run("small cache and tiny threshold warn", func(t *testing.T) {
		logger := &recordingLogger{}
		cfg := DefaultConfig()
		cfg.Cache.MaxEntries = 8
		cfg.SlowPlanThreshold = time.Microsecond

		cfg.ValidateWithWarnings(logger)

		warnings := logger.messages("WARN")
		require.Len(t, warnings, 2)
		require.Contains(t, warnings[0], "cache.maxEntries")
		require.Contains(t, warnings[1], "slowPlanThreshold")
	})

	t.Run("small cache is fine when disabled", func(t *testing.T) {
		logger := &recordingLogger{}
		cfg := DefaultConfig()
		cfg.Cache.Disabled = true
		cfg.Cache.MaxEntries = 8

		cfg.ValidateWithWarnings(logger)

		require.Empty(t, logger.messages("WARN"))
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Equal(t, 64, cfg.Cache.MaxEntries)
}

func TestConfig_YAML(t *testing.T) {
	yamlConfig := `
cache:
  disabled: true
  maxEntries: 128
slowPlanThreshold: 5ms
maxInputLength: 2048
maxOutputLength: 512
`

	var cfg Config
	require.NoError(t, yaml.Unmarshal([]byte(yamlConfig), &cfg))

	require.True(t, cfg.Cache.Disabled)
	require.Equal(t, 128, cfg.Cache.MaxEntries)
	require.Equal(t, 5*time.Millisecond, cfg.SlowPlanThreshold)
	require.Equal(t, 2048, cfg.MaxInputLength)
	require.Equal(t, 512, cfg.MaxOutputLength)
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadConfig(t *testing.T) {
	t.Run("partial file gets defaults", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "slowPlanThreshold: 200ms\n")

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		require.Equal(t, 200*time.Millisecond, cfg.SlowPlanThreshold)
		require.Equal(t, 4096, cfg.Cache.MaxEntries)
	})

	t.Run("invalid values are rejected", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "maxInputLength: -3\n")

		_, err := LoadConfig(path)
		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeFile(t, "config.yaml", "cache: [\n")

		_, err := LoadConfig(path)
		require.ErrorContains(t, err, "failed to parse config file")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestLoadRequests(t *testing.T) {
	t.Run("parses every policy field", func(t *testing.T) {
		path := writeFile(t, "requests.yaml", `
requests:
  - policy: by_count
    total: 50
    numBatches: 8
  - policy: weighted
    total: 100
    weights: [10, 20, 30, 40]
  - policy: merge
    batches: [3, 3, 2, 2, 2]
    mergeCount: 2
  - policy: range
    total: 100
    minBatchSize: 30
    maxBatchSize: 40
`)

		reqs, err := LoadRequests(path)
		require.NoError(t, err)
		require.Len(t, reqs, 4)

		require.Equal(t, Request{Policy: PolicyByCount, Total: 50, NumBatches: 8}, reqs[0])
		require.Equal(t, []int64{10, 20, 30, 40}, reqs[1].Weights)
		require.Equal(t, []int{3, 3, 2, 2, 2}, reqs[2].Batches.Ints())
		require.Equal(t, 2, reqs[2].MergeCount)
		require.Equal(t, 30, reqs[3].MinBatchSize)
		require.Equal(t, 40, reqs[3].MaxBatchSize)
	})

	t.Run("unknown policy", func(t *testing.T) {
		path := writeFile(t, "requests.yaml", "requests:\n  - policy: shuffle\n")

		_, err := LoadRequests(path)
		require.ErrorIs(t, err, ErrUnknownPolicy)
	})

	t.Run("non-positive input batch", func(t *testing.T) {
		path := writeFile(t, "requests.yaml", "requests:\n  - policy: rebalance\n    batches: [4, 0]\n")

		_, err := LoadRequests(path)
		require.ErrorIs(t, err, ErrInvalidParameter)
	})

	t.Run("empty document", func(t *testing.T) {
		path := writeFile(t, "requests.yaml", "requests: []\n")

		_, err := LoadRequests(path)
		require.ErrorContains(t, err, "holds no requests")
	})
}
