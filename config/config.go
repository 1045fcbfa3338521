package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/krisalay/lfu-cache/eviction"
	"github.com/krisalay/lfu-cache/logging"
)

// ErrInvalidCapacity is returned for a negative capacity.
var ErrInvalidCapacity = errors.New("capacity must be zero or positive")

// Config is everything the command line tool can be told.
type Config struct {
	Capacity     int           `mapstructure:"capacity"`
	Policy       string        `mapstructure:"policy"`
	CountUpdates bool          `mapstructure:"count_updates"`
	Logging      LoggingConfig `mapstructure:"logging"`
	Bench        BenchConfig   `mapstructure:"bench"`
}

// LoggingConfig selects level and output format.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BenchConfig sizes the load generated by the bench command.
type BenchConfig struct {
	Goroutines int `mapstructure:"goroutines"`
	Ops        int `mapstructure:"ops"`
	Keys       int `mapstructure:"keys"`
}

// EnvPrefix prefixes every environment variable read, e.g. LFUCACHE_CAPACITY.
const EnvPrefix = "LFUCACHE"

// NewViper returns a viper instance with defaults and environment
// variables wired up. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("capacity", 128)
	v.SetDefault("policy", string(eviction.LFU))
	v.SetDefault("count_updates", true)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("bench.goroutines", 16)
	v.SetDefault("bench.ops", 100000)
	v.SetDefault("bench.keys", 1024)
}

// Load reads file, if given, on top of v's defaults, environment and
// bound flags, then validates the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file at %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	normalize(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func normalize(cfg *Config) {
	cfg.Policy = strings.ToUpper(strings.TrimSpace(cfg.Policy))
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
}

// Validate checks every field a cache or logger would reject.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCapacity, c.Capacity)
	}
	if _, err := eviction.ParsePolicyType(c.Policy); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return err
	}
	if c.Bench.Goroutines < 1 || c.Bench.Ops < 0 || c.Bench.Keys < 1 {
		return errors.New("bench: goroutines and keys must be positive, ops non-negative")
	}
	return nil
}

// PolicyType returns the validated eviction policy.
func (c *Config) PolicyType() eviction.PolicyType {
	t, _ := eviction.ParsePolicyType(c.Policy)
	return t
}

// LogConfig converts the logging section for logging.New.
func (c *Config) LogConfig() logging.Config {
	lc := logging.DefaultConfig()
	if lvl, err := logging.ParseLevel(c.Logging.Level); err == nil {
		lc.Level = lvl
	}
	if f, err := logging.ParseFormat(c.Logging.Format); err == nil {
		lc.Format = f
	}
	return lc
}
