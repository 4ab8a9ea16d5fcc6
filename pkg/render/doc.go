// Package render converts composed SVG documents into other formats.
//
// The scene package produces SVG directly; PNG and PDF are produced by the
// external rsvg-convert tool (from librsvg):
//
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//	pdf, err := render.ToPDF(ctx, svg)
//
// [Convert] dispatches on a format name and is what the pipeline calls.
// Animations are not preserved in raster output; the first frame is drawn.
//
// The [nodelink] subpackage exports the maze itself as a Graphviz graph.
//
// [nodelink]: github.com/matzehuels/pacmaze/pkg/render/nodelink
package render
