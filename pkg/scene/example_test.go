package scene_test

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/scene"
)

func ExampleCompose() {
	cal := activity.Calendar{
		Weeks: []activity.Week{
			{Days: []activity.Day{{Date: "2024-06-02", Weekday: 0, Count: 3}, {Date: "2024-06-03", Weekday: 1, Count: 12}}},
			{Days: []activity.Day{{Date: "2024-06-09", Weekday: 0, Count: 25}}},
		},
	}
	grid, _ := activity.NewGrid(cal)
	walls, _ := maze.Generate(grid.Rows, grid.Cols, maze.WithSeed(1))

	svg, err := scene.Compose(grid, walls, "dark")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("SVG starts with:", string(svg[:4]))
	fmt.Println("Cells:", bytes.Count(svg, []byte("data-count=")))
	fmt.Println("Wall paths:", bytes.Count(svg, []byte(`class="walls"`)))
	// Output:
	// SVG starts with: <svg
	// Cells: 3
	// Wall paths: 1
}

func ExampleCompose_unknownTheme() {
	grid, _ := activity.FromCells(1, 1, nil)
	walls, _ := maze.Generate(1, 1)

	_, err := scene.Compose(grid, walls, "neon")
	fmt.Println(err)
	// Output:
	// THEME_NOT_FOUND: unknown theme "neon" (must be one of: dark, light)
}
