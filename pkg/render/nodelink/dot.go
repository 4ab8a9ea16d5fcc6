package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pacmaze/pkg/activity"
	"github.com/matzehuels/pacmaze/pkg/maze"
	"github.com/matzehuels/pacmaze/pkg/theme"
)

// Options configures the graph export.
type Options struct {
	// Theme colors the graph; the zero value uses the default theme.
	Theme theme.Theme
	// Labels prints "row,col" inside every node.
	Labels bool
}

// NodeID names the node of a cell.
func NodeID(c maze.Cell) string {
	return fmt.Sprintf("r%dc%d", c.Row, c.Col)
}

// ToDOT converts the passages of a maze into an undirected Graphviz graph:
// one node per cell, one edge per open interior edge. For a perfect maze
// the result is a spanning tree. The entrance and exit are filled with the
// strongest bucket color.
func ToDOT(l *maze.Layout, opts Options) string {
	th := opts.Theme
	if th.Name == "" {
		th, _ = theme.Lookup(string(theme.Default))
	}
	accent := th.Color(activity.BucketMax)

	var buf bytes.Buffer
	buf.WriteString("graph maze {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", th.Background)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled, fillcolor=%q, color=%q, fontcolor=%q, fontsize=10, width=0.4, fixedsize=true];\n",
		th.Color(activity.BucketNone), th.Wall, th.Text)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2];\n", th.Wall)
	buf.WriteString("\n")

	entrance, exit := l.Entrance(), l.Exit()
	for r := 0; r < l.Rows; r++ {
		for c := 0; c < l.Cols; c++ {
			cell := maze.Cell{Row: r, Col: c}
			label := ""
			if opts.Labels {
				label = fmt.Sprintf("%d,%d", r, c)
			}
			if cell == entrance || cell == exit {
				fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=%q];\n", NodeID(cell), label, accent)
				continue
			}
			fmt.Fprintf(&buf, "  %s [label=%q];\n", NodeID(cell), label)
		}
	}

	buf.WriteString("\n")
	for _, e := range l.Edges() {
		fmt.Fprintf(&buf, "  %s -- %s;\n", NodeID(e.A), NodeID(e.B))
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG lays out a DOT graph with Graphviz and returns SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's point-based root element with one
// whose width and height match the viewBox, so the graph scales like the
// contribution graph does.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}
	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}
	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}
