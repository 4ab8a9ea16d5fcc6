package maze

import "strings"

// Draw renders the layout as box text, three columns per cell. fill
// returns the three-column content of a cell; nil leaves cells blank.
// Corners are '+', closed walls '-' and '|'.
func (l *Layout) Draw(fill func(Cell) string) string {
	if fill == nil {
		fill = func(Cell) string { return "   " }
	}

	var sb strings.Builder
	border := func(r int) {
		sb.WriteByte('+')
		for c := 0; c < l.Cols; c++ {
			if l.Horizontal[r][c] {
				sb.WriteString("---+")
			} else {
				sb.WriteString("   +")
			}
		}
		sb.WriteByte('\n')
	}
	wall := func(closed bool) {
		if closed {
			sb.WriteByte('|')
		} else {
			sb.WriteByte(' ')
		}
	}

	for r := 0; r < l.Rows; r++ {
		border(r)
		wall(l.Vertical[r][0])
		for c := 0; c < l.Cols; c++ {
			sb.WriteString(fill(Cell{Row: r, Col: c}))
			wall(l.Vertical[r][c+1])
		}
		sb.WriteByte('\n')
	}
	border(l.Rows)
	return sb.String()
}

// String draws the layout with blank cells.
func (l *Layout) String() string { return l.Draw(nil) }
