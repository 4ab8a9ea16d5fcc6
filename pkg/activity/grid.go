package activity

import (
	"github.com/matzehuels/pacmaze/pkg/errors"
)

// DaysPerWeek is the fixed row count of every grid.
const DaysPerWeek = 7

// Cell is one day placed on the grid.
type Cell struct {
	Row, Col int
	Count    int
}

// Bucket returns the color bucket of the cell's count.
func (c Cell) Bucket() Bucket { return BucketFor(c.Count) }

// Grid is an immutable Rows x Cols rectangle of activity cells. Days missing
// from partial weeks have no cell.
type Grid struct {
	Rows, Cols int
	Total      int

	cells []Cell
}

// NewGrid places every day of cal on a 7-row grid with one column per week.
//
// It fails with INVALID_DIMENSIONS when the calendar has no weeks, and with
// INVALID_CALENDAR when a weekday lies outside 0..6, a count is negative, or
// two days claim the same cell.
func NewGrid(cal Calendar) (*Grid, error) {
	if len(cal.Weeks) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions, "calendar has no weeks")
	}

	g := &Grid{
		Rows:  DaysPerWeek,
		Cols:  len(cal.Weeks),
		cells: make([]Cell, 0, cal.DayCount()),
	}

	taken := make([]bool, g.Rows*g.Cols)
	for col, week := range cal.Weeks {
		for _, day := range week.Days {
			if day.Weekday < 0 || day.Weekday >= DaysPerWeek {
				return nil, errors.New(errors.ErrCodeInvalidCalendar,
					"week %d: weekday %d out of range (date %s)", col, day.Weekday, day.Date)
			}
			if day.Count < 0 {
				return nil, errors.New(errors.ErrCodeInvalidCalendar,
					"week %d: negative contribution count %d (date %s)", col, day.Count, day.Date)
			}
			i := day.Weekday*g.Cols + col
			if taken[i] {
				return nil, errors.New(errors.ErrCodeInvalidCalendar,
					"week %d: duplicate weekday %d (date %s)", col, day.Weekday, day.Date)
			}
			taken[i] = true
			g.cells = append(g.cells, Cell{Row: day.Weekday, Col: col, Count: day.Count})
		}
	}

	g.Total = cal.Total
	if g.Total == 0 {
		g.Total = cal.Sum()
	}
	return g, nil
}

// FromCells builds a grid of arbitrary shape from explicit cells. It is the
// entry point for data that does not come as a weekly calendar; NewGrid is
// the usual constructor.
func FromCells(rows, cols int, cells []Cell) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidDimensions,
			"grid dimensions must be positive, got %dx%d", rows, cols)
	}

	g := &Grid{Rows: rows, Cols: cols, cells: make([]Cell, 0, len(cells))}
	taken := make([]bool, rows*cols)
	for _, c := range cells {
		if c.Row < 0 || c.Row >= rows || c.Col < 0 || c.Col >= cols {
			return nil, errors.New(errors.ErrCodeInvalidCalendar,
				"cell (%d,%d) outside %dx%d grid", c.Row, c.Col, rows, cols)
		}
		if c.Count < 0 {
			return nil, errors.New(errors.ErrCodeInvalidCalendar,
				"cell (%d,%d): negative count %d", c.Row, c.Col, c.Count)
		}
		if taken[c.Row*cols+c.Col] {
			return nil, errors.New(errors.ErrCodeInvalidCalendar,
				"cell (%d,%d) given twice", c.Row, c.Col)
		}
		taken[c.Row*cols+c.Col] = true
		g.cells = append(g.cells, c)
		g.Total += c.Count
	}
	return g, nil
}

// Cells returns the grid cells in calendar order (week by week). The slice
// is a copy.
func (g *Grid) Cells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Each calls fn for every cell in calendar order without copying.
func (g *Grid) Each(fn func(Cell)) {
	for _, c := range g.cells {
		fn(c)
	}
}

// Histogram counts cells per bucket.
func (g *Grid) Histogram() [BucketCount]int {
	var h [BucketCount]int
	for _, c := range g.cells {
		h[c.Bucket()]++
	}
	return h
}
