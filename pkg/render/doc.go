// Package render turns DOT graphs into visual outputs.
//
// # Overview
//
// [SVG] renders a DOT string to SVG using the embedded Graphviz engine.
// [PDF] and [PNG] build on it by converting the SVG with the external
// rsvg-convert tool (from librsvg):
//
//	dot := graph.ToDOT(g, graph.DOTOptions{})
//	svg, err := render.SVG(ctx, dot)
//	pdf, err := render.PDF(ctx, dot)
//	png, err := render.PNG(ctx, dot, 2.0) // 2x scale
//
// The generic [ToPDF] and [ToPNG] helpers convert any SVG bytes directly
// when the SVG has already been produced.
package render
