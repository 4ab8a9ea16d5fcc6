package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pacmaze/pkg/errors"
	pkgio "github.com/matzehuels/pacmaze/pkg/io"
	"github.com/matzehuels/pacmaze/pkg/pipeline"
	"github.com/matzehuels/pacmaze/pkg/render"
)

// renderOpts holds the flags of the render command. Empty values fall back
// to the config file and environment.
type renderOpts struct {
	user       string
	input      string
	output     string
	themes     string
	formats    string
	title      string
	seed       uint64
	randomSeed bool
	hideTotal  bool
	refresh    bool
	noCache    bool
}

func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [user]",
		Short: "Render the contribution graph of a GitHub user",
		Long: `Render fetches the contribution calendar of a GitHub user (or reads one
with --input) and writes one animated SVG per theme:

  dist/pacman-contribution-graph.svg        dark theme
  dist/pacman-contribution-graph-light.svg  light theme

PNG and PDF output require rsvg-convert.`,
		Example: `  pacmaze render octocat
  pacmaze render octocat --theme light --format svg,png
  pacmaze render --input calendar.json --seed 42`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.user = args[0]
			}
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.user, "user", "u", "", "GitHub user name (default $GITHUB_USER_NAME)")
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read the calendar from a .json/.yaml file instead of GitHub")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default dist)")
	cmd.Flags().StringVarP(&opts.themes, "theme", "t", "", "theme(s): dark, light (comma-separated, default all)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, pdf (comma-separated)")
	cmd.Flags().StringVar(&opts.title, "title", "", "header label")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "maze seed (default derived from the calendar size)")
	cmd.Flags().BoolVar(&opts.randomSeed, "random", false, "draw a new maze on every run")
	cmd.Flags().BoolVar(&opts.hideTotal, "no-total", false, "hide the yearly contribution total")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "ignore the cached calendar")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.MarkFlagsMutuallyExclusive("seed", "random")
	cmd.MarkFlagsMutuallyExclusive("user", "input")

	return cmd
}

// pipelineOptions merges flags over the config.
func (c *CLI) pipelineOptions(opts renderOpts) pipeline.Options {
	cfg := c.settings()
	p := pipeline.Options{
		Login:      opts.user,
		Input:      opts.input,
		Refresh:    opts.refresh,
		Seed:       opts.seed,
		RandomSeed: opts.randomSeed,
		Themes:     splitList(opts.themes),
		Formats:    splitList(opts.formats),
		Title:      opts.title,
		HideTotal:  opts.hideTotal,
		Scale:      cfg.Scale,
		Logger:     c.Logger,
	}
	if p.Login == "" && p.Input == "" {
		p.Login = cfg.User
	}
	if len(p.Themes) == 0 {
		p.Themes = cfg.Themes
	}
	if len(p.Formats) == 0 {
		p.Formats = cfg.Formats
	}
	if p.Title == "" {
		p.Title = cfg.Title
	}
	return p
}

func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	popts := c.pipelineOptions(opts)
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	output := opts.output
	if output == "" {
		output = c.settings().OutputDir
	}
	if err := errors.ValidateOutputDir(output); err != nil {
		return err
	}
	for _, f := range popts.Formats {
		if f != "svg" && !render.Available() {
			return errors.New(errors.ErrCodeInvalidFormat,
				"%s output requires rsvg-convert (install librsvg, e.g. `brew install librsvg` or `apt install librsvg2-bin`)", f)
		}
	}

	runner, err := c.newRunner(opts.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinner(ctx, describeSource(popts))
	spinner.Start()
	result, err := runner.Execute(ctx, popts)
	spinner.Stop()
	if err != nil {
		return err
	}

	paths, err := pkgio.WriteArtifacts(output, result.Artifacts)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d file(s)", len(paths)))

	printSuccess("Rendered %s", StyleHighlight.Render(describeSource(popts)))
	printStats(result.Stats, result.CacheInfo)
	for i, p := range paths {
		printFile(p, len(result.Artifacts[i].Data))
	}
	if popts.RandomSeed {
		printDetail("reproduce this maze with --seed %d", result.Stats.Seed)
	}
	return nil
}

func describeSource(opts pipeline.Options) string {
	if opts.Input != "" {
		return opts.Input
	}
	return "@" + opts.Login
}
