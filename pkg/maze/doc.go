// Package maze generates perfect mazes over rectangular grids.
//
// # Overview
//
// A [Layout] records, for every edge between adjacent cells and every border
// edge, whether a wall blocks it. [Generate] carves a layout whose open
// interior edges form a spanning tree: exactly rows*cols-1 passages, no
// loops, and a single simple path between any two cells.
//
// # Walls
//
// Two boolean matrices describe the layout:
//
//   - Horizontal has (rows+1) x cols entries. Horizontal[r][c] blocks
//     movement between row r-1 and row r in column c; rows 0 and rows are
//     the top and bottom border.
//   - Vertical has rows x (cols+1) entries. Vertical[r][c] blocks movement
//     between column c-1 and column c in row r; columns 0 and cols are the
//     left and right border.
//
// The entrance (left border of row 0) and the exit (right border of the
// last row) are always open.
//
// # Algorithm
//
// Generation is a randomized depth-first traversal ("recursive
// backtracker") driven by an explicit stack, so grids with thousands of
// columns never grow the call stack:
//
//	layout, err := maze.Generate(7, 53, maze.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(layout.Edges())) // 7*53 - 1
//
// # Randomness
//
// Neighbor choice uses a PCG source from math/rand/v2. [WithSeed] makes the
// result reproducible; [DefaultSeed] derives a stable seed from the grid
// shape so the same calendar size always yields the same maze.
package maze
