package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/pipeline"
	"github.com/matzehuels/pacmaze/pkg/scene"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

// cellPitch converts sprite offsets from pixels to cells.
const cellPitch = 18.0

func (c *CLI) previewCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "preview [user]",
		Short: "Animate the contribution maze in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				opts.user = args[0]
			}
			return c.runPreview(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "read the calendar from a file instead of GitHub")
	cmd.Flags().StringVarP(&opts.themes, "theme", "t", string(theme.Default), "theme")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "maze seed (default derived from the calendar size)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts renderOpts) error {
	popts := c.pipelineOptions(opts)
	if names := splitList(opts.themes); len(names) > 0 {
		popts.Themes = names[:1]
	}
	if err := popts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	th, err := theme.Lookup(popts.Themes[0])
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache, nil)
	if err != nil {
		return err
	}
	defer runner.Close()

	cal, err := runner.Load(ctx, popts)
	if err != nil {
		return err
	}
	grid, layout, err := pipeline.GenerateLayout(cal, popts)
	if err != nil {
		return err
	}

	title := popts.Title
	if title == "" {
		title = scene.DefaultTitle
	}
	m := newPreviewModel(grid, layout, th, title)
	_, err = tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// previewModel - Animated terminal maze
// =============================================================================

type tickMsg time.Time

// previewModel draws the maze with colored cells and moves the sprites one
// cell per tick along the middle row, like the SVG animation.
type previewModel struct {
	grid   *activity.Grid
	layout *maze.Layout
	theme  theme.Theme
	title  string
	cast   scene.Choreography

	counts map[maze.Cell]int
	lane   int
	pos    int // protagonist column, -1 is left of the maze
	paused bool
	step   time.Duration
}

func newPreviewModel(grid *activity.Grid, layout *maze.Layout, th theme.Theme, title string) previewModel {
	counts := make(map[maze.Cell]int, grid.Len())
	grid.Each(func(c activity.Cell) {
		counts[maze.Cell{Row: c.Row, Col: c.Col}] = c.Count
	})
	cast := scene.DefaultChoreography()
	return previewModel{
		grid:   grid,
		layout: layout,
		theme:  th,
		title:  title,
		cast:   cast,
		counts: counts,
		lane:   grid.Rows / 2,
		pos:    -1,
		step:   cast.Period / time.Duration(grid.Cols+2),
	}
}

func (m previewModel) tick() tea.Cmd {
	return tea.Tick(m.step, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m previewModel) Init() tea.Cmd {
	return m.tick()
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.paused = !m.paused
		}
	case tickMsg:
		if !m.paused {
			m.pos = m.advance()
		}
		return m, m.tick()
	}
	return m, nil
}

// advance moves the protagonist one column and wraps once the last pursuer
// has left the maze.
func (m previewModel) advance() int {
	trail := 0
	for _, s := range m.cast.Pursuers() {
		trail = max(trail, -m.cellOffset(s))
	}
	if m.pos+1 > m.grid.Cols+trail {
		return -1
	}
	return m.pos + 1
}

func (m previewModel) cellOffset(s scene.Sprite) int {
	return int(math.Round(s.Offset / cellPitch))
}

// spriteAt returns the sprite occupying cell, if any. The protagonist is
// listed first in the cast and wins over pursuers.
func (m previewModel) spriteAt(cell maze.Cell) (scene.Sprite, bool) {
	if cell.Row != m.lane {
		return scene.Sprite{}, false
	}
	for _, s := range m.cast.Sprites {
		if m.pos+m.cellOffset(s) == cell.Col {
			return s, true
		}
	}
	return scene.Sprite{}, false
}

func (m previewModel) fill(cell maze.Cell) string {
	if s, ok := m.spriteAt(cell); ok {
		glyph := "ᗣ"
		if s.Role == scene.Protagonist {
			glyph = "ᗧ"
		}
		return " " + lipgloss.NewStyle().Foreground(lipgloss.Color(s.Color)).Bold(true).Render(glyph) + " "
	}
	count, ok := m.counts[cell]
	if !ok {
		return "   "
	}
	color := m.theme.Color(activity.BucketFor(count))
	return " " + lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■") + " "
}

func (m previewModel) View() string {
	var b strings.Builder
	b.WriteString(StyleTitle.Render(m.title))
	b.WriteString("  ")
	b.WriteString(StyleDim.Render(fmt.Sprintf("%s contributions · seed %d",
		humanize.Comma(int64(m.grid.Total)), m.layout.Seed())))
	b.WriteString("\n\n")

	walls := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Wall))
	for _, line := range strings.Split(m.layout.Draw(m.fill), "\n") {
		b.WriteString(colorWalls(line, walls))
		b.WriteString("\n")
	}

	help := "space pause · q quit"
	if m.paused {
		help = "paused · " + help
	}
	b.WriteString(StyleDim.Render(help))
	return b.String()
}

// colorWalls styles the box-drawing runs of a maze line, leaving the
// already styled cell contents untouched.
func colorWalls(line string, style lipgloss.Style) string {
	var b, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(style.Render(run.String()))
			run.Reset()
		}
	}
	for _, r := range line {
		if r == '+' || r == '-' || r == '|' {
			run.WriteRune(r)
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}
