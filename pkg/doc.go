// Package pkg holds the libraries behind pacmaze, which draws a GitHub
// contribution calendar as a Pacman maze.
//
// # Architecture
//
//	GitHub GraphQL API / calendar file
//	         ↓
//	    [integrations/github], [io]     (fetch or import the calendar)
//	         ↓
//	    [activity]                      (7-row grid of bucketed cells)
//	         ↓
//	    [maze]                          (perfect maze of the same shape)
//	         ↓
//	    [scene] + [theme]               (one SVG document per theme)
//	         ↓
//	    [render]                        (optional PNG/PDF)
//
// [pipeline] runs these stages for the CLI and the HTTP server with
// caching ([cache]) and an optional archive ([storage]).
//
// # Quick Start
//
//	grid, _ := activity.NewGrid(calendar)
//	walls, _ := maze.Generate(grid.Rows, grid.Cols, maze.WithSeed(maze.DefaultSeed(grid.Rows, grid.Cols)))
//	svg, err := scene.Compose(grid, walls, "dark")
//
// # Supporting Packages
//
// [errors] - coded errors shared by every layer.
//
// [config] - TOML file and environment settings.
//
// [httputil] - retry policy for outgoing requests.
//
// [observability] - hooks for pipeline, cache and HTTP events.
//
// [render/nodelink] - the maze's passage graph as DOT or Graphviz SVG.
//
// [buildinfo] - version stamped at link time.
//
// [activity]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/activity
// [maze]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/maze
// [scene]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/scene
// [theme]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/theme
// [render]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/render/nodelink
// [integrations/github]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/integrations/github
// [io]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/cache
// [storage]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/storage
// [errors]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/errors
// [config]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/config
// [httputil]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pacmaze/pkg/buildinfo
package pkg
