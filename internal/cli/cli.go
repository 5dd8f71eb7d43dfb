package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/adventofcode/pkg/buildinfo"
	"github.com/matzehuels/adventofcode/pkg/observability"
	"github.com/matzehuels/adventofcode/pkg/runner"
)

// appName is the application name used for directories.
const appName = "adventofcode"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *Config

	configFile string
	stdin      io.Reader
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: defaultConfig(),
		stdin:  os.Stdin,
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "aoc",
		Short: "aoc solves Advent of Code puzzles",
		Long: `aoc solves Advent of Code puzzles from 2020 and 2021.

Inputs are read from <input_dir>/year<Y>/day<D>.txt unless --input is given.
Answers are cached per input, so solving the same file twice is instant.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())

	pf := root.PersistentFlags()
	pf.StringVar(&c.configFile, "config", "", "config file (default $XDG_CONFIG_HOME/adventofcode/config.toml)")
	pf.String("input-dir", "", "directory holding puzzle inputs")
	pf.String("cache-backend", "", "answer cache: file, redis or none")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.graphCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the configuration and wires the logger into the command
// context and the observability hooks.
func (c *CLI) setup(cmd *cobra.Command, args []string) error {
	path, explicit := c.configFile, c.configFile != ""
	if !explicit {
		if p, err := configPath(); err == nil {
			path = p
		}
	}
	cfg, err := loadConfig(path, explicit, os.LookupEnv)
	if err != nil {
		return err
	}
	cfg.applyFlags(cmd)
	if err := cfg.validate(); err != nil {
		return err
	}
	c.Config = cfg
	if explicit {
		c.configFile = path
	}

	c.Logger.Debug("loaded config", "file", path, "input_dir", cfg.InputDir, "cache", cfg.Cache.Backend)

	hooks := observability.NewLogHooks(c.Logger)
	observability.SetSolveHooks(hooks)
	observability.SetCacheHooks(hooks)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// newRunner creates a puzzle runner over the configured cache.
func (c *CLI) newRunner(cmd *cobra.Command) (*runner.Runner, error) {
	cc, err := c.Config.openCache(cmd.Context())
	if err != nil {
		return nil, err
	}
	r := runner.New(cc, loggerFromContext(cmd.Context()))
	r.TTL = c.Config.Cache.TTL.Duration
	return r, nil
}
