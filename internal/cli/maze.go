package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/render/nodelink"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

const (
	mazeText = "text"
	mazeDOT  = "dot"
	mazeSVG  = "svg"
)

type mazeOpts struct {
	rows   int
	cols   int
	seed   uint64
	format string
	theme  string
	labels bool
	output string
}

func (c *CLI) mazeCommand() *cobra.Command {
	opts := mazeOpts{rows: activity.DaysPerWeek, cols: 53, format: mazeText}

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Generate a bare maze",
		Long: `Maze carves a maze without any contribution data and prints it as text,
as a Graphviz DOT graph of its passages, or as that graph laid out to SVG.`,
		Example: `  pacmaze maze --rows 7 --cols 20 --seed 42
  pacmaze maze --format svg --labels -o maze.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runMaze(cmd.Context(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.rows, "rows", opts.rows, "maze rows")
	cmd.Flags().IntVar(&opts.cols, "cols", opts.cols, "maze columns")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "maze seed (default derived from the size)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, dot, svg")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", string(theme.Default), "graph colors (dot, svg)")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "label graph nodes with row,col (dot, svg)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}

// buildMaze generates the maze and encodes it in the requested format.
func buildMaze(ctx context.Context, opts mazeOpts) ([]byte, *maze.Layout, error) {
	seed := opts.seed
	if seed == 0 {
		seed = maze.DefaultSeed(opts.rows, opts.cols)
	}
	l, err := maze.Generate(opts.rows, opts.cols, maze.WithSeed(seed))
	if err != nil {
		return nil, nil, err
	}

	switch opts.format {
	case mazeText:
		return []byte(l.String()), l, nil
	case mazeDOT, mazeSVG:
		th, err := theme.Lookup(opts.theme)
		if err != nil {
			return nil, nil, err
		}
		dot := nodelink.ToDOT(l, nodelink.Options{Theme: th, Labels: opts.labels})
		if opts.format == mazeDOT {
			return []byte(dot), l, nil
		}
		svg, err := nodelink.RenderSVG(ctx, dot)
		return svg, l, err
	}
	return nil, nil, errors.New(errors.ErrCodeInvalidFormat,
		"invalid maze format %q (must be one of: text, dot, svg)", opts.format)
}

func (c *CLI) runMaze(ctx context.Context, opts mazeOpts) error {
	data, l, err := buildMaze(ctx, opts)
	if err != nil {
		return err
	}
	c.Logger.Debug("generated maze", "rows", l.Rows, "cols", l.Cols, "seed", l.Seed(), "walls", l.WallCount())

	if opts.output == "" {
		_, err := out.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	printSuccess("Generated %dx%d maze (seed %d)", l.Rows, l.Cols, l.Seed())
	printFile(opts.output, len(data))
	return nil
}
