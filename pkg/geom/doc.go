// Package geom provides the small, stateless geometry helpers used when
// drawing the flow diagram.
//
// # Text Centering
//
// [CenterLines] lays out a multi-line label inside a container. Each line is
// measured with a [Measurer], the line heights are summed, and the block is
// placed so that it is vertically centered while every line is individually
// centered on the horizontal axis:
//
//	lines := geom.CenterLines(m, "API Ampliación\nPOST /api/v1/migrar/ampliacion",
//	    geom.Rect{X: 550, Y: 470, W: 350, H: 100})
//	for _, ln := range lines {
//	    draw(ln.Text, ln.Origin)
//	}
//
// Measurement is injected so the layout can be tested without a font
// backend; [MeasureFunc] adapts a plain function.
//
// # Arrowheads
//
// [Arrowhead] returns the triangle for a filled arrowhead at the end of a
// segment. The tip is the segment's end point; the two back points sit one
// head length behind it and half a head length to either side.
//
// All functions are pure and safe for concurrent use.
package geom
