// Package config loads mnp settings from defaults, an optional config file
// and MNP_* environment variables.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/mininumpy/mininumpy/internal/ndarray"
	"github.com/mininumpy/mininumpy/internal/parallel"
)

// EnvPrefix is prepended to environment variable names, so "parallel.workers"
// is read from MNP_PARALLEL_WORKERS.
const EnvPrefix = "MNP"

// ErrInvalid is returned when a loaded setting has an unusable value.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the CLI understands.
type Config struct {
	NumericPolicy string         `mapstructure:"numeric_policy"`
	Log           LogConfig      `mapstructure:"log"`
	Parallel      ParallelConfig `mapstructure:"parallel"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ParallelConfig configures element-wise kernels. Workers <= 0 means one
// worker per CPU.
type ParallelConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Workers  int  `mapstructure:"workers"`
	MinChunk int  `mapstructure:"min_chunk"`
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// ConfigFilePath is an optional file in any format viper reads
	// (YAML, JSON, TOML). Empty means defaults and environment only.
	ConfigFilePath string
}

// DefaultConfig returns the settings used when nothing overrides them.
func DefaultConfig() *Config {
	return &Config{
		NumericPolicy: ndarray.StrictNumeric.String(),
		Log:           LogConfig{Level: "warn"},
		Parallel: ParallelConfig{
			Enabled:  false,
			Workers:  0,
			MinChunk: parallel.DefaultConfig().MinChunkSize,
		},
	}
}

// Load reads the configuration and validates it.
func Load(opts LoadOptions) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault("numeric_policy", defaults.NumericPolicy)
	v.SetDefault("log.level", defaults.Log.Level)
	v.SetDefault("parallel.enabled", defaults.Parallel.Enabled)
	v.SetDefault("parallel.workers", defaults.Parallel.Workers)
	v.SetDefault("parallel.min_chunk", defaults.Parallel.MinChunk)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFilePath != "" {
		v.SetConfigFile(opts.ConfigFilePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", opts.ConfigFilePath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every setting without applying it.
func (c *Config) Validate() error {
	if _, err := c.Policy(); err != nil {
		return fmt.Errorf("%w: numeric_policy: %w", ErrInvalid, err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	if c.Parallel.MinChunk < 0 {
		return fmt.Errorf("%w: parallel.min_chunk must be >= 0, got %d", ErrInvalid, c.Parallel.MinChunk)
	}
	return nil
}

// Policy returns the numeric policy used when building arrays.
func (c *Config) Policy() (ndarray.NumericPolicy, error) {
	return ndarray.ParseNumericPolicy(c.NumericPolicy)
}

// LogLevel returns the parsed log level.
func (c *Config) LogLevel() (log.Level, error) {
	return log.ParseLevel(c.Log.Level)
}

// ParallelSettings converts the parallel section into the kernel configuration.
func (c *Config) ParallelSettings() parallel.Config {
	if !c.Parallel.Enabled {
		return parallel.Sequential()
	}
	workers := c.Parallel.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return parallel.Config{
		Enabled:      true,
		NumWorkers:   workers,
		MinChunkSize: c.Parallel.MinChunk,
	}
}
