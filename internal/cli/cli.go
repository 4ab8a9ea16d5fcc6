// Package cli implements the pacmaze command-line interface.
//
// # Commands
//
//   - render: fetch a contribution calendar and write the themed graphs
//   - fetch: write the normalized calendar to a JSON or YAML file
//   - maze: print a bare maze as text, DOT or Graphviz SVG
//   - preview: animate the graph in the terminal
//   - themes: list the themes with their palettes
//   - serve: run the HTTP server
//   - cache: manage the local cache
//
// Settings come from pacmaze.toml and the environment (see package
// config); flags win over both.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pacmaze/pkg/buildinfo"
	"github.com/matzehuels/pacmaze/pkg/cache"
	"github.com/matzehuels/pacmaze/pkg/config"
	"github.com/matzehuels/pacmaze/pkg/integrations/github"
	"github.com/matzehuels/pacmaze/pkg/observability"
	"github.com/matzehuels/pacmaze/pkg/pipeline"
	"github.com/matzehuels/pacmaze/pkg/storage"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "pacmaze"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a CLI writing logs to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "pacmaze turns a GitHub contribution graph into a Pacman maze",
		Long: `pacmaze draws your GitHub contribution calendar as an animated SVG: the
activity cells become a maze, and Pacman runs through it chased by ghosts.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.Logger.SetLevel(log.DebugLevel)
				observability.SetAll(observability.NewLogHooks(c.Logger))
			}
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.cfg = cfg
			c.Logger.Debug("loaded config", "config", cfg)
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+config.DefaultFile+" if present)")

	root.AddCommand(c.renderCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.mazeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.themesCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// settings returns the loaded config. Commands run without the root
// pre-run (as in tests) get the defaults.
func (c *CLI) settings() *config.Config {
	if c.cfg == nil {
		c.cfg = config.Default()
	}
	return c.cfg
}

func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
		},
	}
}

// =============================================================================
// Runner Factory
// =============================================================================

// openCache opens the configured cache backend.
func (c *CLI) openCache(noCache bool) (cache.Cache, error) {
	cc := c.settings().Cache
	return cache.Open(cache.Options{
		Disabled: cc.Disabled || noCache,
		RedisURL: cc.RedisURL,
		Dir:      cc.Dir,
	})
}

// newRunner creates a pipeline runner. Without a token the runner only
// accepts calendar files.
func (c *CLI) newRunner(noCache bool, store storage.Store) (*pipeline.Runner, error) {
	cfg := c.settings()
	ch, err := c.openCache(noCache)
	if err != nil {
		return nil, err
	}

	var src pipeline.CalendarSource
	if cfg.Token != "" {
		src = github.NewClient(cfg.Token, ch, cfg.Cache.TTL)
	} else {
		c.Logger.Debug("GITHUB_TOKEN not set; calendar files only")
	}
	return pipeline.NewRunner(src, ch, store, c.Logger), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// splitList parses a comma-separated flag value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, strings.ToLower(item))
		}
	}
	return out
}
