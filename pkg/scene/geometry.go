package scene

// Geometry holds the pixel constants of the layout.
type Geometry struct {
	CellSize     float64 // side of one activity cell
	Padding      float64 // gap between adjacent cells
	HeaderHeight float64 // space above row 0 for the title
	LeftPadding  float64 // space left of column 0 (mirrored on the right)
	FooterHeight float64 // space below the last row
}

// DefaultGeometry returns the standard layout constants.
func DefaultGeometry() Geometry {
	return Geometry{
		CellSize:     15,
		Padding:      3,
		HeaderHeight: 40,
		LeftPadding:  20,
		FooterHeight: 20,
	}
}

// pitch is the distance between the origins of adjacent cells.
func (g Geometry) pitch() float64 { return g.CellSize + g.Padding }

// CellOrigin returns the top-left corner of cell (row, col).
func (g Geometry) CellOrigin(row, col int) (x, y float64) {
	return g.LeftPadding + float64(col)*g.pitch(), g.HeaderHeight + float64(row)*g.pitch()
}

// CellCenter returns the center of cell (row, col).
func (g Geometry) CellCenter(row, col int) (x, y float64) {
	x, y = g.CellOrigin(row, col)
	return x + g.CellSize/2, y + g.CellSize/2
}

// Size returns the document width and height for a rows x cols grid.
func (g Geometry) Size(rows, cols int) (width, height float64) {
	width = float64(cols)*g.pitch() + 2*g.LeftPadding
	height = float64(rows)*g.pitch() + g.HeaderHeight + g.FooterHeight
	return width, height
}

// gridLine returns the coordinate of the wall line before index i along one
// axis starting at origin.
func (g Geometry) gridLine(origin float64, i int) float64 {
	return origin + float64(i)*g.pitch() - g.Padding/2
}
