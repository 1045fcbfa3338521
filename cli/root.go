// Package cli provides the command-line interface for lfucache.
package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krisalay/lfu-cache/config"
	"github.com/krisalay/lfu-cache/engine"
	"github.com/krisalay/lfu-cache/logging"
	"github.com/krisalay/lfu-cache/types"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     *config.Config
	log     zerolog.Logger
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"capacity":      "capacity",
	"policy":        "policy",
	"count-updates": "count_updates",
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"goroutines":    "bench.goroutines",
	"ops":           "bench.ops",
	"keys":          "bench.keys",
}

// NewRootCmd creates the root command for lfucache
func NewRootCmd(version string) *cobra.Command {
	a := &app{v: config.NewViper()}

	rootCmd := &cobra.Command{
		Use:          "lfucache",
		Short:        "Drive a priority-ordered in-memory cache",
		Long:         `Run, replay and load-test a fixed-capacity cache with LFU, LRU or FIFO eviction.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.cfgFile, "config", "", "config file (toml, yaml or json)")
	f.Int("capacity", 128, "maximum number of cached entries")
	f.String("policy", "LFU", "eviction policy: LFU, LRU or FIFO")
	f.Bool("count-updates", true, "count Put on an existing key as a frequency hit")
	f.String("log-level", "info", "log level: trace, debug, info, warn, error")
	f.String("log-format", "console", "log format: console or json")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lfucache %s\n", version)
		},
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newDemoCmd(a))
	rootCmd.AddCommand(newReplayCmd(a))
	rootCmd.AddCommand(newBenchCmd(a))

	return rootCmd
}

// load binds the parsed flags, reads configuration and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := a.v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", name, err)
		}
	}

	cfg, err := config.Load(a.v, a.cfgFile)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log = logging.NewWriter(cfg.LogConfig(), cmd.ErrOrStderr())
	cmd.SetContext(logging.WithContext(cmd.Context(), a.log))

	a.log.Debug().
		Int("capacity", cfg.Capacity).
		Str("policy", cfg.Policy).
		Bool("count_updates", cfg.CountUpdates).
		Msg("configuration loaded")
	return nil
}

// engine builds a cache engine from the loaded configuration.
func (a *app) engine(metrics types.Metrics) *engine.CacheEngine {
	logger := a.log.With().Str("component", "cache").Logger()
	return engine.NewCacheEngine(metrics, logger, a.cfg.CountUpdates)
}
