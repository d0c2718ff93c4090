// Package nodelink renders an outline as a node-link tree.
//
// Every value becomes a box labelled with its words. Edges run from a value
// to the values of its nested page, and from a synthetic root node to the
// values of the root page. Siblings keep their page order.
//
//	dot := nodelink.ToDOT(doc, nodelink.Options{Name: "notes"})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// The DOT source can also be saved and processed with external Graphviz
// tools. SVG rendering runs in process through [github.com/goccy/go-graphviz];
// PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
