package scene

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/errors"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

// DefaultTitle is the label drawn in the header.
const DefaultTitle = "Pacman On Contributions"

const (
	wallStroke = 2.0
	cellRadius = 2.0
	fontFamily = "-apple-system, BlinkMacSystemFont, Segoe UI, Helvetica, Arial, sans-serif"
)

// titleIcon is a small ghost silhouette drawn left of the title.
const titleIcon = "M0,0 L2,0 L2,2 L4,2 L4,0 L6,0 L6,2 L8,2 L8,0 L10,0 L10,6 L8,6 L8,8 L10,8 L10,10 L0,10 L0,8 L2,8 L2,6 L0,6 Z"

// Option configures [Compose].
type Option func(*composer)

type composer struct {
	geom      Geometry
	cast      Choreography
	title     string
	showTotal bool
	printer   *message.Printer
}

// WithGeometry overrides the layout constants.
func WithGeometry(g Geometry) Option { return func(c *composer) { c.geom = g } }

// WithSprites sets the sprite choreography. An empty choreography renders no
// sprites.
func WithSprites(ch Choreography) Option { return func(c *composer) { c.cast = ch } }

// WithTitle replaces the header label.
func WithTitle(title string) Option { return func(c *composer) { c.title = title } }

// WithoutTotal hides the yearly total next to the title.
func WithoutTotal() Option { return func(c *composer) { c.showTotal = false } }

// WithLanguage formats the yearly total for the given language.
func WithLanguage(tag language.Tag) Option {
	return func(c *composer) { c.printer = message.NewPrinter(tag) }
}

func newComposer(opts ...Option) composer {
	c := composer{
		geom:      DefaultGeometry(),
		cast:      DefaultChoreography(),
		title:     DefaultTitle,
		showTotal: true,
		printer:   message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Compose renders grid and walls with the named theme into an SVG document.
//
// It fails with THEME_NOT_FOUND when themeName is not recognized and with
// DIMENSION_MISMATCH when the wall matrices do not match the grid's shape.
// No output is produced on failure.
func Compose(grid *activity.Grid, walls *maze.Layout, themeName string, opts ...Option) ([]byte, error) {
	th, err := theme.Lookup(themeName)
	if err != nil {
		return nil, err
	}
	if grid == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "activity grid is required")
	}
	if !walls.Matches(grid.Rows, grid.Cols) {
		return nil, errors.New(errors.ErrCodeDimensionMismatch,
			"wall layout %s does not match %dx%d activity grid", describe(walls), grid.Rows, grid.Cols)
	}

	c := newComposer(opts...)
	width, height := c.geom.Size(grid.Rows, grid.Cols)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %s %s" width="%s" height="%s">`+"\n",
		num(width), num(height), num(width), num(height))
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", th.Background)

	c.renderTitle(&buf, th, grid.Total, width)
	c.renderCells(&buf, th, grid)
	c.renderWalls(&buf, th, walls)
	c.renderSprites(&buf, th, grid.Rows, width)

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func describe(l *maze.Layout) string {
	if l == nil {
		return "<nil>"
	}
	h, v := 0, 0
	if len(l.Horizontal) > 0 {
		h = len(l.Horizontal[0])
	}
	if len(l.Vertical) > 0 {
		v = len(l.Vertical[0])
	}
	return fmt.Sprintf("(horizontal %dx%d, vertical %dx%d)", len(l.Horizontal), h, len(l.Vertical), v)
}

func (c *composer) renderTitle(buf *bytes.Buffer, th theme.Theme, total int, width float64) {
	fmt.Fprintf(buf, `  <g class="title" transform="translate(%s, 25)">`+"\n", num(c.geom.LeftPadding))
	fmt.Fprintf(buf, `    <path d="%s" fill="%s" transform="scale(1.5) translate(0, -5)"/>`+"\n",
		titleIcon, th.Color(activity.BucketLow))
	fmt.Fprintf(buf, `    <text x="25" y="5" fill="%s" font-family="%s" font-size="16" font-weight="bold">%s</text>`+"\n",
		th.Text, fontFamily, escape(c.title))
	buf.WriteString("  </g>\n")

	if !c.showTotal || total <= 0 {
		return
	}
	label := c.printer.Sprintf("%d contributions in the last year", total)
	if total == 1 {
		label = "1 contribution in the last year"
	}
	fmt.Fprintf(buf, `  <text class="total" x="%s" y="30" text-anchor="end" fill="%s" fill-opacity="0.7" font-family="%s" font-size="12">%s</text>`+"\n",
		num(width-c.geom.LeftPadding), th.Text, fontFamily, escape(label))
}

func (c *composer) renderCells(buf *bytes.Buffer, th theme.Theme, grid *activity.Grid) {
	buf.WriteString(`  <g class="cells">` + "\n")
	size := num(c.geom.CellSize)
	grid.Each(func(cell activity.Cell) {
		x, y := c.geom.CellOrigin(cell.Row, cell.Col)
		fmt.Fprintf(buf, `    <rect x="%s" y="%s" width="%s" height="%s" rx="%s" fill="%s" data-count="%d"/>`+"\n",
			num(x), num(y), size, size, num(cellRadius), th.Color(cell.Bucket()), cell.Count)
	})
	buf.WriteString("  </g>\n")
}

func (c *composer) renderWalls(buf *bytes.Buffer, th theme.Theme, walls *maze.Layout) {
	d := wallPath(c.geom, walls)
	if d == "" {
		return
	}
	fmt.Fprintf(buf, `  <path class="walls" d="%s" stroke="%s" stroke-width="%s" stroke-linecap="round" fill="none"/>`+"\n",
		d, th.Wall, num(wallStroke))
}

// wallPath concatenates one move-line pair per closed edge.
func wallPath(g Geometry, l *maze.Layout) string {
	var sb strings.Builder
	seg := func(x1, y1, x2, y2 float64) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "M%s,%s L%s,%s", num(x1), num(y1), num(x2), num(y2))
	}

	for r, row := range l.Horizontal {
		y := g.gridLine(g.HeaderHeight, r)
		for col, wall := range row {
			if wall {
				x := g.gridLine(g.LeftPadding, col)
				seg(x, y, x+g.pitch(), y)
			}
		}
	}
	for r, row := range l.Vertical {
		y := g.gridLine(g.HeaderHeight, r)
		for col, wall := range row {
			if wall {
				x := g.gridLine(g.LeftPadding, col)
				seg(x, y, x, y+g.pitch())
			}
		}
	}
	return sb.String()
}

func (c *composer) renderSprites(buf *bytes.Buffer, th theme.Theme, rows int, width float64) {
	if len(c.cast.Sprites) == 0 {
		return
	}
	y := num(lane(c.geom, rows))
	left, right := c.geom.LeftPadding, width-c.geom.LeftPadding
	dur := seconds(c.cast.Period)

	// Pursuers first so the protagonist is drawn on top.
	for _, s := range c.cast.Pursuers() {
		c.openSprite(buf, s, left, right, y, dur)
		fmt.Fprintf(buf, `    <path d="M-10,5 Q-10,-10 0,-10 Q10,-10 10,5 L10,8 L6,5 L2,8 L-2,5 L-6,8 L-10,5 Z" fill="%s"/>`+"\n", s.Color)
		buf.WriteString(`    <circle cx="-4" cy="-2" r="2" fill="#ffffff"/>` + "\n")
		buf.WriteString(`    <circle cx="4" cy="-2" r="2" fill="#ffffff"/>` + "\n")
		buf.WriteString(`    <circle cx="-4" cy="-2" r="1" fill="#0000ff"/>` + "\n")
		buf.WriteString(`    <circle cx="4" cy="-2" r="1" fill="#0000ff"/>` + "\n")
		buf.WriteString("  </g>\n")
	}

	radius := c.geom.CellSize/2 + 2
	a0, a1 := num(c.cast.MouthAngles[0]), num(c.cast.MouthAngles[1])
	for _, s := range c.cast.Protagonists() {
		c.openSprite(buf, s, left, right, y, dur)
		fmt.Fprintf(buf, `    <circle cx="0" cy="0" r="%s" fill="%s"/>`+"\n", num(radius), s.Color)
		fmt.Fprintf(buf, `    <path d="M0,0 L%s,%s L%s,%s Z" fill="%s">`+"\n",
			num(radius+1), num(-radius/2), num(radius+1), num(radius/2), th.Background)
		fmt.Fprintf(buf, `      <animateTransform attributeName="transform" type="rotate" values="%s 0 0;%s 0 0;%s 0 0" dur="%s" repeatCount="indefinite"/>`+"\n",
			a0, a1, a0, seconds(c.cast.MouthPeriod))
		buf.WriteString("    </path>\n")
		buf.WriteString("  </g>\n")
	}
}

// openSprite writes the group start and its looping translation.
func (c *composer) openSprite(buf *bytes.Buffer, s Sprite, left, right float64, y, dur string) {
	role := "pursuer"
	if s.Role == Protagonist {
		role = "protagonist"
	}
	fmt.Fprintf(buf, `  <g class="sprite %s" id="sprite-%s">`+"\n", role, escape(s.Name))
	fmt.Fprintf(buf, `    <animateTransform attributeName="transform" type="translate" from="%s %s" to="%s %s" dur="%s" repeatCount="indefinite"/>`+"\n",
		num(left+s.Offset), y, num(right+s.Offset), y, dur)
}

// num formats a coordinate without trailing zeros.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func seconds(d time.Duration) string {
	return num(d.Seconds()) + "s"
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}
