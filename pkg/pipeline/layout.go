package pipeline

import (
	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/maze"
)

// GenerateLayout builds the grid of cal and carves a maze of the same
// shape, seeded according to opts.
func GenerateLayout(cal *activity.Calendar, opts Options) (*activity.Grid, *maze.Layout, error) {
	grid, err := activity.NewGrid(*cal)
	if err != nil {
		return nil, nil, err
	}

	var mopts []maze.Option
	switch {
	case opts.RandomSeed:
	case opts.Seed != 0:
		mopts = append(mopts, maze.WithSeed(opts.Seed))
	default:
		mopts = append(mopts, maze.WithSeed(maze.DefaultSeed(grid.Rows, grid.Cols)))
	}

	layout, err := maze.Generate(grid.Rows, grid.Cols, mopts...)
	if err != nil {
		return nil, nil, err
	}
	return grid, layout, nil
}
