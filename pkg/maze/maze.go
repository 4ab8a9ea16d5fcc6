package maze

// Cell identifies one grid cell by zero-indexed row and column.
type Cell struct {
	Row, Col int
}

// Direction is one of the four axis-aligned moves.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var directions = [...]Direction{Up, Down, Left, Right}

var deltas = [...]struct{ dr, dc int }{
	Up:    {-1, 0},
	Down:  {1, 0},
	Left:  {0, -1},
	Right: {0, 1},
}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Step returns the cell adjacent to c in direction d. The result may lie
// outside the grid.
func (c Cell) Step(d Direction) Cell {
	delta := deltas[d]
	return Cell{Row: c.Row + delta.dr, Col: c.Col + delta.dc}
}

// Edge is an open interior passage between two adjacent cells.
// A is always the upper or left cell of the pair.
type Edge struct {
	A, B Cell
}

// Layout is the wall state of every edge of a rows x cols grid.
// It is read-only once returned by [Generate].
type Layout struct {
	Rows, Cols int

	// Horizontal walls, (Rows+1) x Cols.
	Horizontal [][]bool
	// Vertical walls, Rows x (Cols+1).
	Vertical [][]bool

	seed uint64
}

func newLayout(rows, cols int) *Layout {
	l := &Layout{
		Rows:       rows,
		Cols:       cols,
		Horizontal: filled(rows+1, cols),
		Vertical:   filled(rows, cols+1),
	}
	return l
}

func filled(rows, cols int) [][]bool {
	backing := make([]bool, rows*cols)
	for i := range backing {
		backing[i] = true
	}
	m := make([][]bool, rows)
	for r := range m {
		m[r] = backing[r*cols : (r+1)*cols : (r+1)*cols]
	}
	return m
}

// Seed returns the seed the layout was generated with.
func (l *Layout) Seed() uint64 { return l.seed }

// Contains reports whether c lies inside the grid.
func (l *Layout) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < l.Rows && c.Col >= 0 && c.Col < l.Cols
}

// Entrance is the cell whose left border is forced open.
func (l *Layout) Entrance() Cell { return Cell{Row: 0, Col: 0} }

// Exit is the cell whose right border is forced open.
func (l *Layout) Exit() Cell { return Cell{Row: l.Rows - 1, Col: l.Cols - 1} }

// Open reports whether no wall blocks the edge on side d of cell c.
// Border edges are reported too, so Open(Entrance(), Left) is true.
func (l *Layout) Open(c Cell, d Direction) bool {
	r, col := c.Row, c.Col
	switch d {
	case Up:
		return !l.Horizontal[r][col]
	case Down:
		return !l.Horizontal[r+1][col]
	case Left:
		return !l.Vertical[r][col]
	case Right:
		return !l.Vertical[r][col+1]
	}
	return false
}

// Passages returns the in-grid neighbors of c reachable through an open edge.
func (l *Layout) Passages(c Cell) []Cell {
	var out []Cell
	for _, d := range directions {
		n := c.Step(d)
		if l.Contains(n) && l.Open(c, d) {
			out = append(out, n)
		}
	}
	return out
}

// Edges returns every open interior edge in row-major order.
func (l *Layout) Edges() []Edge {
	edges := make([]Edge, 0, l.Rows*l.Cols)
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			if c+1 < l.Cols && !l.Vertical[r][c+1] {
				edges = append(edges, Edge{A: cell, B: Cell{Row: r, Col: c + 1}})
			}
			if r+1 < l.Rows && !l.Horizontal[r+1][c] {
				edges = append(edges, Edge{A: cell, B: Cell{Row: r + 1, Col: c}})
			}
		}
	}
	return edges
}

// WallCount returns the number of closed edges, borders included.
func (l *Layout) WallCount() int {
	n := 0
	for _, row := range l.Horizontal {
		for _, w := range row {
			if w {
				n++
			}
		}
	}
	for _, row := range l.Vertical {
		for _, w := range row {
			if w {
				n++
			}
		}
	}
	return n
}

// Matches reports whether the wall matrices have the shape of a rows x cols
// grid.
func (l *Layout) Matches(rows, cols int) bool {
	if l == nil || l.Rows != rows || l.Cols != cols {
		return false
	}
	if len(l.Horizontal) != rows+1 || len(l.Vertical) != rows {
		return false
	}
	for _, row := range l.Horizontal {
		if len(row) != cols {
			return false
		}
	}
	for _, row := range l.Vertical {
		if len(row) != cols+1 {
			return false
		}
	}
	return true
}

// carve removes the wall on side d of cell c.
func (l *Layout) carve(c Cell, d Direction) {
	switch d {
	case Up:
		l.Horizontal[c.Row][c.Col] = false
	case Down:
		l.Horizontal[c.Row+1][c.Col] = false
	case Left:
		l.Vertical[c.Row][c.Col] = false
	case Right:
		l.Vertical[c.Row][c.Col+1] = false
	}
}
