package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/outloud/pkg/errors"
	"github.com/matzehuels/outloud/pkg/outline"
)

// Options configures tree rendering.
type Options struct {
	// Name labels the root node. Empty means "outline".
	Name string
	// Highlight marks one value, usually the cursor's. NoValue disables it.
	Highlight outline.ValueID
	// LeftToRight lays the tree out horizontally.
	LeftToRight bool
}

// DefaultOptions returns options with no highlight.
func DefaultOptions() Options {
	return Options{Highlight: outline.NoValue}
}

const rootID = "root"

// ToDOT converts a document to Graphviz DOT source.
func ToDOT(d *outline.Document, opts Options) string {
	name := opts.Name
	if name == "" {
		name = "outline"
	}
	rankdir := "TB"
	if opts.LeftToRight {
		rankdir = "LR"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")
	fmt.Fprintf(&buf, "  %q [label=%q, shape=plaintext, style=\"\"];\n", rootID, name)

	var edges []string
	var walk func(owner string, page outline.ValueID)
	walk = func(owner string, page outline.ValueID) {
		for _, v := range d.Values(page) {
			id := nodeID(v)
			fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(fmtAttrs(d, v, opts), ", "))
			edges = append(edges, fmt.Sprintf("  %q -> %q;\n", owner, id))
			if in := d.In(v); in != outline.NoValue {
				walk(id, in)
			}
		}
	}
	walk(rootID, d.Root())

	buf.WriteString("\n")
	for _, e := range edges {
		buf.WriteString(e)
	}
	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(v outline.ValueID) string {
	return "v" + strconv.Itoa(int(v))
}

func fmtLabel(d *outline.Document, v outline.ValueID) string {
	words := d.Words(v)
	if len(words) == 0 {
		return "(empty)"
	}
	return strings.Join(words, " ")
}

func fmtAttrs(d *outline.Document, v outline.ValueID, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(d, v))}
	if d.WordCount(v) == 0 {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	if v == opts.Highlight {
		attrs = append(attrs, "penwidth=3")
	}
	return attrs
}

// RenderSVG renders DOT source to SVG using Graphviz.
// The result can be converted further with render.ToPDF or render.ToPNG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFile, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodePrecondition, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeFile, err, "render SVG")
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
