// Package config loads dpkgview settings from a TOML file, the environment
// and defaults, in increasing order of precedence below CLI flags.
//
// A minimal file:
//
//	status_path = "/var/lib/dpkg/status"
//	watch = true
//
//	[server]
//	addr = "127.0.0.1:8080"
//
//	[cache]
//	backend = "redis"
//	ttl = "10m"
//
//	[cache.redis]
//	addr = "localhost:6379"
package config

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dpkgview/pkg/control"
	"github.com/matzehuels/dpkgview/pkg/errors"
)

const appName = "dpkgview"

// EnvStatusPath overrides Config.StatusPath when set.
const EnvStatusPath = "DPKGVIEW_STATUS"

// Cache backends.
const (
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

// Backends lists every accepted cache backend.
var Backends = []string{BackendNone, BackendMemory, BackendFile, BackendRedis}

// Config is the complete dpkgview configuration.
type Config struct {
	StatusPath string       `toml:"status_path"`
	Watch      bool         `toml:"watch"`
	Server     ServerConfig `toml:"server"`
	Cache      CacheConfig  `toml:"cache"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr         string        `toml:"addr"`
	ReadTimeout  time.Duration `toml:"read_timeout"`
	WriteTimeout time.Duration `toml:"write_timeout"`
}

// CacheConfig selects and sizes the parsed-records cache.
type CacheConfig struct {
	Backend string        `toml:"backend"`
	Size    int           `toml:"size"`
	TTL     time.Duration `toml:"ttl"`
	Dir     string        `toml:"dir"` // file backend only; defaults to the XDG cache dir
	Redis   RedisConfig   `toml:"redis"`
}

// RedisConfig holds connection settings for the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StatusPath: control.DefaultStatusPath,
		Server: ServerConfig{
			Addr:         "127.0.0.1:8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Cache: CacheConfig{
			Backend: BackendNone,
			Size:    256,
			TTL:     10 * time.Minute,
			Redis:   RedisConfig{Addr: "localhost:6379"},
		},
	}
}

// Load reads the config file at path on top of the defaults, then applies
// environment overrides and validates the result.
//
// An empty path means [DefaultPath]; a missing file there is not an error.
// An explicitly named file must exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path != "" {
		if err := cfg.decodeFile(path, explicit); err != nil {
			return nil, err
		}
	}
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvStatusPath); v != "" {
		c.StatusPath = v
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if err := errors.ValidateStatusPath(c.StatusPath); err != nil {
		return err
	}
	if strings.TrimSpace(c.Server.Addr) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "server.addr must not be empty")
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "server timeouts must not be negative")
	}
	if !slices.Contains(Backends, c.Cache.Backend) {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (want one of: %s)",
			c.Cache.Backend, strings.Join(Backends, ", "))
	}
	if c.Cache.Size < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.size must not be negative")
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Cache.Backend == BackendRedis && strings.TrimSpace(c.Cache.Redis.Addr) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.redis.addr must not be empty")
	}
	return nil
}

// DefaultPath returns $XDG_CONFIG_HOME/dpkgview/config.toml, falling back to
// ~/.config. It returns "" if no home directory can be determined.
func DefaultPath() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.toml")
}

// CacheDir returns the file cache directory: Cache.Dir if set, otherwise
// $XDG_CACHE_HOME/dpkgview or ~/.cache/dpkgview.
func (c *Config) CacheDir() (string, error) {
	if c.Cache.Dir != "" {
		return c.Cache.Dir, nil
	}
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
