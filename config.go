package batchplan

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/batchplan/split"
)

// CacheConfig controls memoization of computed plans.
type CacheConfig struct {
	// Disabled turns the plan cache off. Every request is then computed.
	Disabled bool `yaml:"disabled"`

	// MaxEntries bounds the number of cached results. When the bound is reached
	// the cache is reset.
	//
	// Default: 4096
	MaxEntries int `yaml:"maxEntries"`
}

// Config is the configuration for the Planner.
//
// Duration fields accept standard Go duration strings like "50ms" or "1s".
type Config struct {
	// Cache controls memoization of computed plans.
	Cache CacheConfig `yaml:"cache"`

	// SlowPlanThreshold is the computation time above which a plan is logged at
	// Warn level.
	//
	// Default: 50ms
	SlowPlanThreshold time.Duration `yaml:"slowPlanThreshold"`

	// MaxInputLength bounds the number of weights or input batches a single
	// request may carry. Longer requests are rejected with ErrInvalidParameter.
	//
	// Default: 1048576
	MaxInputLength int `yaml:"maxInputLength"`

	// MaxOutputLength bounds the number of batches, ranges or configurations
	// a single plan may produce. Larger plans are rejected with
	// ErrInfeasibleConstraint. It cannot exceed split.MaxPlanLength.
	//
	// Default: 1048576
	MaxOutputLength int `yaml:"maxOutputLength"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Cache: CacheConfig{
			Disabled:   false,
			MaxEntries: 4096,
		},
		SlowPlanThreshold: 50 * time.Millisecond,
		MaxInputLength:    1 << 20,
		MaxOutputLength:   1 << 20,
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Cache.MaxEntries == 0 {
		cfg.Cache.MaxEntries = defaults.Cache.MaxEntries
	}
	if cfg.SlowPlanThreshold == 0 {
		cfg.SlowPlanThreshold = defaults.SlowPlanThreshold
	}
	if cfg.MaxInputLength == 0 {
		cfg.MaxInputLength = defaults.MaxInputLength
	}
	if cfg.MaxOutputLength == 0 {
		cfg.MaxOutputLength = defaults.MaxOutputLength
	}
}

// Validate checks configuration constraints.
//
// Rules:
//   - Cache.MaxEntries > 0
//   - SlowPlanThreshold > 0
//   - MaxInputLength > 0
//   - 0 < MaxOutputLength <= split.MaxPlanLength
//
// Returns:
//   - error: Validation error wrapping ErrInvalidConfig, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Cache.MaxEntries <= 0 {
		return fmt.Errorf("%w: cache.maxEntries must be > 0, got %d", ErrInvalidConfig, cfg.Cache.MaxEntries)
	}

	if cfg.SlowPlanThreshold <= 0 {
		return fmt.Errorf("%w: slowPlanThreshold must be > 0, got %v", ErrInvalidConfig, cfg.SlowPlanThreshold)
	}

	if cfg.MaxInputLength <= 0 {
		return fmt.Errorf("%w: maxInputLength must be > 0, got %d", ErrInvalidConfig, cfg.MaxInputLength)
	}

	if cfg.MaxOutputLength <= 0 || cfg.MaxOutputLength > split.MaxPlanLength {
		return fmt.Errorf("%w: maxOutputLength must be in (0, %d], got %d",
			ErrInvalidConfig, split.MaxPlanLength, cfg.MaxOutputLength)
	}

	return nil
}

// ValidateWithWarnings logs warnings for legal but questionable values.
//
// This is called after Validate() in NewPlanner().
//
// Parameters:
//   - logger: Logger instance for warning output
func (cfg *Config) ValidateWithWarnings(logger Logger) {
	if !cfg.Cache.Disabled && cfg.Cache.MaxEntries < 64 {
		logger.Warn(
			"cache.maxEntries is very small, the cache will reset frequently",
			"maxEntries", cfg.Cache.MaxEntries,
			"recommended", 1024,
		)
	}

	if cfg.SlowPlanThreshold < time.Millisecond {
		logger.Warn(
			"slowPlanThreshold is below 1ms, most large plans will be reported as slow",
			"slowPlanThreshold", cfg.SlowPlanThreshold,
		)
	}
}

// TestConfig returns a configuration for tests.
//
// The cache is kept small so eviction paths are exercised.
//
// Returns:
//   - Config: Configuration for tests
func TestConfig() Config {
	cfg := DefaultConfig()
	cfg.Cache.MaxEntries = 64
	cfg.MaxInputLength = 1 << 12
	cfg.MaxOutputLength = 1 << 12

	return cfg
}

// LoadConfig loads a Config from a YAML file.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if the file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	SetDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// requestFile is the YAML document read by LoadRequests.
type requestFile struct {
	Requests []Request `yaml:"requests"`
}

// LoadRequests reads a list of plan requests from a YAML file.
//
// The file holds a single "requests" sequence:
//
//	requests:
//	  - policy: by_count
//	    total: 50
//	    numBatches: 8
//	  - policy: weighted
//	    total: 100
//	    weights: [10, 20, 30, 40]
//
// Parameters:
//   - path: Path to the YAML request file
//
// Returns:
//   - []Request: Parsed requests in file order
//   - error: Error if the file cannot be read or parsed, or holds no requests
func LoadRequests(path string) ([]Request, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file: %w", err)
	}

	var doc requestFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse request file: %w", err)
	}

	if len(doc.Requests) == 0 {
		return nil, fmt.Errorf("request file %s holds no requests", path)
	}

	return doc.Requests, nil
}
