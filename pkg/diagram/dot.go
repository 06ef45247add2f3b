package diagram

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts the diagram topology to Graphviz DOT. Positions are left to
// Graphviz; colors and labels match the raster diagram.
func ToDOT(d Diagram) string {
	var buf bytes.Buffer
	buf.WriteString("digraph flows {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", color=%q, penwidth=2, fontname=\"Helvetica-Bold\", margin=\"0.2,0.1\"];\n", HexBorder)
	fmt.Fprintf(&buf, "  edge [color=%q, penwidth=2, fontname=\"Helvetica\", fontsize=11];\n", HexInk)
	buf.WriteString("  ranksep=1.0;\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	for _, b := range d.Boxes {
		// %q escapes newlines as \n, which DOT renders as centered breaks.
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q, fontcolor=%q];\n",
			b.ID, b.Label, Hex(b.Fill), Hex(b.LabelColor()))
	}

	buf.WriteString("\n")
	for _, a := range d.Arrows {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", a.Source, a.Target, a.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG lays out the diagram topology with Graphviz and returns SVG bytes.
func RenderSVG(d Diagram) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(ToDOT(d)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
