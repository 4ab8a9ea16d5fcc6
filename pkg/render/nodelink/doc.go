// Package nodelink exports a maze as a node-link diagram.
//
// Every cell becomes a node named r{row}c{col} and every open passage an
// undirected edge, so a perfect maze shows up as a tree. This is useful to
// inspect the structure a seed produces, e.g. its longest corridors:
//
//	l, _ := maze.Generate(7, 53, maze.WithSeed(7053))
//	dot := nodelink.ToDOT(l, nodelink.Options{Labels: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// Rendering uses [github.com/goccy/go-graphviz] in-process; no Graphviz
// installation is needed. The DOT text can also be fed to external tools.
package nodelink
