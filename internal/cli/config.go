package cli

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/cache"
	"github.com/matzehuels/adventofcode/pkg/errors"
)

// Cache backends accepted by [CacheConfig.Backend].
const (
	backendFile  = "file"
	backendRedis = "redis"
	backendNone  = "none"
)

// Config is the effective CLI configuration: defaults, then the TOML file,
// then AOC_* environment variables, then flags.
type Config struct {
	InputDir    string      `toml:"input_dir"`
	DefaultYear int         `toml:"default_year,omitempty"`
	Concurrency int         `toml:"concurrency"`
	Cache       CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the answer cache.
type CacheConfig struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	TTL     duration    `toml:"ttl"`
	Redis   RedisConfig `toml:"redis"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password,omitempty"`
	DB       int    `toml:"db"`
	Prefix   string `toml:"prefix"`
}

// duration reads and writes TOML strings such as "24h".
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// defaultConfig returns the built-in configuration.
func defaultConfig() *Config {
	dir, err := cacheDir()
	if err != nil {
		dir = filepath.Join(os.TempDir(), appName)
	}
	return &Config{
		InputDir:    "data",
		Concurrency: runtime.NumCPU(),
		Cache: CacheConfig{
			Backend: backendFile,
			Dir:     dir,
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: cache.DefaultRedisPrefix,
			},
		},
	}
}

// loadConfig reads path into a copy of the defaults. A missing file is an
// error only when the caller asked for that file explicitly.
func loadConfig(path string, explicit bool, getenv func(string) (string, bool)) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		md, err := toml.DecodeFile(path, cfg)
		switch {
		case os.IsNotExist(err) && !explicit:
		case err != nil:
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
		default:
			if undecoded := md.Undecoded(); len(undecoded) > 0 {
				keys := make([]string, len(undecoded))
				for i, k := range undecoded {
					keys[i] = k.String()
				}
				return nil, errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys %s", path, strings.Join(keys, ", "))
			}
		}
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}

// applyEnv overrides cfg from AOC_* variables.
func (cfg *Config) applyEnv(getenv func(string) (string, bool)) error {
	if v, ok := getenv("AOC_INPUT_DIR"); ok && v != "" {
		cfg.InputDir = v
	}
	if v, ok := getenv("AOC_CACHE_BACKEND"); ok && v != "" {
		cfg.Cache.Backend = v
	}
	if v, ok := getenv("AOC_CACHE_DIR"); ok && v != "" {
		cfg.Cache.Dir = v
	}
	if v, ok := getenv("AOC_REDIS_ADDR"); ok && v != "" {
		cfg.Cache.Redis.Addr = v
	}
	if v, ok := getenv("AOC_REDIS_PASSWORD"); ok {
		cfg.Cache.Redis.Password = v
	}
	if v, ok := getenv("AOC_CONCURRENCY"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New(errors.ErrCodeInvalidConfig, "AOC_CONCURRENCY: %q is not a number", v)
		}
		cfg.Concurrency = n
	}
	return nil
}

// applyFlags overrides cfg from persistent flags the user set.
func (cfg *Config) applyFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	if flags.Changed("input-dir") {
		cfg.InputDir, _ = flags.GetString("input-dir")
	}
	if flags.Changed("cache-backend") {
		cfg.Cache.Backend, _ = flags.GetString("cache-backend")
	}
}

func (cfg *Config) validate() error {
	switch cfg.Cache.Backend {
	case backendFile, backendRedis, backendNone:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "cache backend %q is not one of file, redis, none", cfg.Cache.Backend)
	}
	if cfg.Concurrency < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "concurrency must be at least 1, got %d", cfg.Concurrency)
	}
	if cfg.DefaultYear != 0 && cfg.DefaultYear < errors.FirstYear {
		return errors.New(errors.ErrCodeInvalidConfig, "default_year %d is before %d", cfg.DefaultYear, errors.FirstYear)
	}
	if cfg.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache ttl must not be negative")
	}
	return nil
}

// encode renders cfg as TOML. The redis password is never written.
func (cfg *Config) encode() ([]byte, error) {
	out := *cfg
	out.Cache.Redis.Password = ""
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// openCache constructs the configured cache backend.
func (cfg *Config) openCache(ctx context.Context) (cache.Cache, error) {
	switch cfg.Cache.Backend {
	case backendNone:
		return cache.NewNullCache(), nil
	case backendRedis:
		rc, err := cache.ConnectRedis(ctx, cache.RedisOptions{
			Addr:     cfg.Cache.Redis.Addr,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Prefix:   cfg.Cache.Redis.Prefix,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open redis cache")
		}
		return rc, nil
	default:
		fc, err := cache.NewFileCache(cfg.Cache.Dir)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCache, err, "open file cache")
		}
		return fc, nil
	}
}

// configPath returns the default config file location
// ($XDG_CONFIG_HOME/adventofcode/config.toml).
func configPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// cacheDir returns the default cache directory ($XDG_CACHE_HOME/adventofcode).
func cacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// configCommand prints the effective configuration.
func (c *CLI) configCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after applying the config file, AOC_* environment
variables and flags. The output is valid TOML and can be saved as a starting
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.Config.encode()
			if err != nil {
				return err
			}
			if c.configFile != "" {
				fmt.Fprintln(stdout, StyleDim.Render("# "+c.configFile))
			}
			_, err = stdout.Write(data)
			return err
		},
	}
}
