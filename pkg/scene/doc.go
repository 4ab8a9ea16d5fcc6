// Package scene composes an activity grid, a maze layout and a theme into a
// self-contained animated SVG document.
//
// # Layers
//
// [Compose] writes, in order:
//
//  1. the <svg> root with a viewBox sized from the grid and [Geometry]
//  2. a background rect in the theme background color
//  3. the title group (icon, label and, when known, the yearly total)
//  4. one rounded rect per activity cell, colored by bucket
//  5. a single stroked <path> holding every wall segment of the maze
//  6. the sprite groups, each with its own SMIL animations
//
// # Geometry
//
// Cell (row, col) has its top-left corner at
//
//	x = LeftPadding + col*(CellSize+Padding)
//	y = HeaderHeight + row*(CellSize+Padding)
//
// Wall segments sit half a padding before the cell they bound, so adjacent
// segments meet flush.
//
// # Sprites
//
// A [Choreography] places one protagonist and a few pursuers on the middle
// row. Every sprite slides from the left boundary to the right boundary with
// a shared period, pursuers trailing at fixed horizontal offsets. The
// protagonist's mouth rotates between two angles on a much shorter period.
// Sprites never interact with the maze.
//
// # Errors
//
// An unknown theme fails with THEME_NOT_FOUND and a layout whose matrices do
// not fit the grid fails with DIMENSION_MISMATCH. Both are checked before
// any output is written.
package scene
