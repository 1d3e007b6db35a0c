// Package cli implements the dpkgview command-line interface.
//
// # Commands
//
//   - list: print every package name in the status file
//   - show: print one package's details, dependencies and dependents
//   - graph: export the whole dependency graph, or one package's neighborhood
//   - serve: run the HTTP API
//   - browse: interactive terminal browser
//   - cache: inspect and clear the parsed-records cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context so helpers can log without extra plumbing.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dpkgview/pkg/buildinfo"
	"github.com/matzehuels/dpkgview/pkg/cache"
	"github.com/matzehuels/dpkgview/pkg/config"
	"github.com/matzehuels/dpkgview/pkg/index"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// Output formats.
const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	statusPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "dpkgview",
		Short: "Inspect installed Debian packages and their dependencies",
		Long: `dpkgview reads the dpkg status database and shows each installed package
together with what it depends on and what depends on it.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/dpkgview/config.toml)")
	root.PersistentFlags().StringVar(&c.statusPath, "status", "", "dpkg status file (default "+config.Default().StatusPath+")")

	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Service Factory
// =============================================================================

// loadConfig reads the config file and applies flag overrides.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.statusPath != "" {
		cfg.StatusPath = c.statusPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newService builds a query service over the configured status file.
// The caller must Close the returned cache.
func (c *CLI) newService(ctx context.Context, cfg *config.Config) (*index.Service, cache.Cache, error) {
	ch, err := newCache(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return index.NewService(cfg.StatusPath, ch, cfg.Cache.TTL, c.Logger), ch, nil
}

// newCache opens the configured cache backend.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case config.BackendMemory:
		return cache.NewMemoryCache(cfg.Cache.Size, cfg.Cache.TTL), nil
	case config.BackendFile:
		dir, err := cfg.CacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
		return cache.NewFileCache(dir)
	case config.BackendRedis:
		return cache.NewRedisCache(ctx, cache.RedisConfig{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cache.DefaultRedisPrefix,
		})
	default:
		return cache.NewNullCache(), nil
	}
}
