package maze

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/pacmaze/pkg/errors"
)

// unionFind tracks connected components over row-major cell indexes.
type unionFind []int

func newUnionFind(n int) unionFind {
	uf := make(unionFind, n)
	for i := range uf {
		uf[i] = i
	}
	return uf
}

func (uf unionFind) find(i int) int {
	for uf[i] != i {
		uf[i] = uf[uf[i]]
		i = uf[i]
	}
	return i
}

// union returns false when a and b were already connected.
func (uf unionFind) union(a, b int) bool {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return false
	}
	uf[ra] = rb
	return true
}

func checkSpanningTree(t *testing.T, l *Layout) {
	t.Helper()

	edges := l.Edges()
	if want := l.Rows*l.Cols - 1; len(edges) != want {
		t.Fatalf("%dx%d: open interior edges = %d, want %d", l.Rows, l.Cols, len(edges), want)
	}

	uf := newUnionFind(l.Rows * l.Cols)
	idx := func(c Cell) int { return c.Row*l.Cols + c.Col }
	for _, e := range edges {
		if !uf.union(idx(e.A), idx(e.B)) {
			t.Fatalf("%dx%d: cycle through edge %v-%v", l.Rows, l.Cols, e.A, e.B)
		}
	}

	root := uf.find(0)
	for i := 1; i < l.Rows*l.Cols; i++ {
		if uf.find(i) != root {
			t.Fatalf("%dx%d: cell %d not connected to entrance", l.Rows, l.Cols, i)
		}
	}
}

func TestGenerate_SpanningTree(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"single cell", 1, 1},
		{"single row", 1, 20},
		{"single column", 20, 1},
		{"square", 5, 5},
		{"calendar", 7, 53},
		{"short calendar", 7, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for seed := uint64(0); seed < 20; seed++ {
				l, err := Generate(tt.rows, tt.cols, WithSeed(seed))
				if err != nil {
					t.Fatalf("Generate() error: %v", err)
				}
				checkSpanningTree(t, l)
			}
		})
	}
}

func TestGenerate_Shape(t *testing.T) {
	l, err := Generate(7, 52, WithSeed(1))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(l.Horizontal) != 8 || len(l.Horizontal[0]) != 52 {
		t.Errorf("horizontal walls = %dx%d, want 8x52", len(l.Horizontal), len(l.Horizontal[0]))
	}
	if len(l.Vertical) != 7 || len(l.Vertical[0]) != 53 {
		t.Errorf("vertical walls = %dx%d, want 7x53", len(l.Vertical), len(l.Vertical[0]))
	}
	if !l.Matches(7, 52) {
		t.Error("Matches(7, 52) = false, want true")
	}
	if l.Matches(7, 53) {
		t.Error("Matches(7, 53) = true, want false")
	}
}

func TestGenerate_Borders(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		l, err := Generate(7, 10, WithSeed(seed))
		if err != nil {
			t.Fatalf("Generate() error: %v", err)
		}
		if l.Vertical[0][0] {
			t.Errorf("seed %d: entrance is walled", seed)
		}
		if l.Vertical[6][10] {
			t.Errorf("seed %d: exit is walled", seed)
		}
		if !l.Open(l.Entrance(), Left) || !l.Open(l.Exit(), Right) {
			t.Errorf("seed %d: Open() disagrees with forced borders", seed)
		}

		// Every other border edge stays closed.
		for c := 0; c < l.Cols; c++ {
			if !l.Horizontal[0][c] || !l.Horizontal[l.Rows][c] {
				t.Fatalf("seed %d: top/bottom border open at column %d", seed, c)
			}
		}
		for r := 1; r < l.Rows; r++ {
			if !l.Vertical[r][0] {
				t.Fatalf("seed %d: left border open at row %d", seed, r)
			}
		}
		for r := 0; r < l.Rows-1; r++ {
			if !l.Vertical[r][l.Cols] {
				t.Fatalf("seed %d: right border open at row %d", seed, r)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := Generate(7, 53, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(7, 53, WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	if !equalWalls(a.Horizontal, b.Horizontal) || !equalWalls(a.Vertical, b.Vertical) {
		t.Error("same seed produced different layouts")
	}
	if a.Seed() != 42 {
		t.Errorf("Seed() = %d, want 42", a.Seed())
	}

	c, err := Generate(7, 53, WithSeed(43))
	if err != nil {
		t.Fatal(err)
	}
	if equalWalls(a.Horizontal, c.Horizontal) && equalWalls(a.Vertical, c.Vertical) {
		t.Error("different seeds produced identical 7x53 layouts")
	}
}

func equalWalls(a, b [][]bool) bool {
	return slices.EqualFunc(a, b, func(x, y []bool) bool { return slices.Equal(x, y) })
}

func TestGenerate_SingleCell(t *testing.T) {
	l, err := Generate(1, 1, WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(l.Edges()); n != 0 {
		t.Errorf("interior edges = %d, want 0", n)
	}
	if l.Vertical[0][0] || l.Vertical[0][1] {
		t.Error("entrance and exit must be open on a 1x1 grid")
	}
	if !l.Horizontal[0][0] || !l.Horizontal[1][0] {
		t.Error("top and bottom border must stay closed on a 1x1 grid")
	}
	if got := l.WallCount(); got != 2 {
		t.Errorf("WallCount() = %d, want 2", got)
	}
}

func TestGenerate_LargeGridIsIterative(t *testing.T) {
	l, err := Generate(7, 5000, WithSeed(3))
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if got, want := len(l.Edges()), 7*5000-1; got != want {
		t.Errorf("open edges = %d, want %d", got, want)
	}
}

func TestGenerate_InvalidDimensions(t *testing.T) {
	tests := []struct {
		name       string
		rows, cols int
	}{
		{"zero rows", 0, 5},
		{"zero cols", 7, 0},
		{"negative rows", -1, 5},
		{"negative cols", 7, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Generate(tt.rows, tt.cols)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidDimensions) {
				t.Errorf("error code = %v, want INVALID_DIMENSIONS", errors.GetCode(err))
			}
			if l != nil {
				t.Error("layout should be nil on error")
			}
		})
	}
}

func TestGenerate_RandomSeedWithoutOption(t *testing.T) {
	l, err := Generate(3, 3)
	if err != nil {
		t.Fatal(err)
	}
	checkSpanningTree(t, l)

	replay, err := Generate(3, 3, WithSeed(l.Seed()))
	if err != nil {
		t.Fatal(err)
	}
	if !equalWalls(l.Horizontal, replay.Horizontal) || !equalWalls(l.Vertical, replay.Vertical) {
		t.Error("replaying the reported seed produced a different layout")
	}
}

func TestDefaultSeed(t *testing.T) {
	if got := DefaultSeed(7, 53); got != 7053 {
		t.Errorf("DefaultSeed(7, 53) = %d, want 7053", got)
	}
	if DefaultSeed(7, 52) == DefaultSeed(7, 53) {
		t.Error("DefaultSeed should differ by column count")
	}
}

func TestLayout_Passages(t *testing.T) {
	l, err := Generate(4, 6, WithSeed(11))
	if err != nil {
		t.Fatal(err)
	}

	degree := 0
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			cell := Cell{Row: r, Col: c}
			for _, n := range l.Passages(cell) {
				if !l.Contains(n) {
					t.Fatalf("passage from %v leaves the grid: %v", cell, n)
				}
				if !slices.Contains(l.Passages(n), cell) {
					t.Fatalf("passage %v->%v is not symmetric", cell, n)
				}
				degree++
			}
		}
	}
	// Each tree edge is counted once from each end.
	if want := 2 * (l.Rows*l.Cols - 1); degree != want {
		t.Errorf("total degree = %d, want %d", degree, want)
	}
}

func TestDirection_String(t *testing.T) {
	tests := map[Direction]string{Up: "up", Down: "down", Left: "left", Right: "right", Direction(9): "unknown"}
	for d, want := range tests {
		if got := d.String(); got != want {
			t.Errorf("Direction(%d).String() = %q, want %q", int(d), got, want)
		}
	}
}

func TestDrawShape(t *testing.T) {
	l, err := Generate(3, 4, WithSeed(9))
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(l.String(), "\n"), "\n")
	if len(lines) != 2*3+1 {
		t.Fatalf("lines = %d, want 7", len(lines))
	}
	for i, line := range lines {
		if len(line) != 4*4+1 {
			t.Errorf("line %d has width %d, want 17: %q", i, len(line), line)
		}
	}
	if lines[1][0] != ' ' {
		t.Errorf("entrance not open: %q", lines[1])
	}
	if last := lines[5]; last[len(last)-1] != ' ' {
		t.Errorf("exit not open: %q", last)
	}

	marked := l.Draw(func(c Cell) string {
		if c == l.Exit() {
			return " x "
		}
		return "   "
	})
	if !strings.Contains(strings.Split(marked, "\n")[5], " x ") {
		t.Errorf("fill not applied to exit cell:\n%s", marked)
	}
}
