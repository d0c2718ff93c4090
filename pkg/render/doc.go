// Package render turns outlines into pictures.
//
// The [nodelink] subpackage draws a document as a Graphviz tree, one box per
// value. [ToPDF] and [ToPNG] convert the resulting SVG with the external
// rsvg-convert tool (from librsvg).
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Name: "notes"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0) // 2x scale
//
// [nodelink]: github.com/matzehuels/outloud/pkg/render/nodelink
package render
