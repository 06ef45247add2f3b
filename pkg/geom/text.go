package geom

import "strings"

// Placeholder is measured in place of blank lines so they keep a
// non-degenerate height.
const Placeholder = "A"

// Measurer reports the rendered extent of a single line of text.
type Measurer interface {
	Measure(line string) Size
}

// MeasureFunc adapts an ordinary function to the [Measurer] interface.
type MeasureFunc func(line string) Size

// Measure calls f(line).
func (f MeasureFunc) Measure(line string) Size { return f(line) }

// Line is one laid-out line of a centered text block.
type Line struct {
	Text   string
	Size   Size
	Origin Point // top-left draw origin
}

// CenterLines splits text on newlines and returns a draw origin per line so
// that the stacked block is vertically centered in r and each line is
// horizontally centered in r.
//
// Lines are stacked using their measured heights with no extra gap. Blank
// lines are measured as [Placeholder]. Negative measurements are treated as
// zero; zero-height lines are valid and simply add no offset.
func CenterLines(m Measurer, text string, r Rect) []Line {
	parts := strings.Split(text, "\n")
	lines := make([]Line, len(parts))

	var total float64
	for i, p := range parts {
		probe := p
		if strings.TrimSpace(p) == "" {
			probe = Placeholder
		}
		sz := clampSize(m.Measure(probe))
		lines[i] = Line{Text: p, Size: sz}
		total += sz.H
	}

	startY := r.Y + (r.H-total)/2
	var offset float64
	for i := range lines {
		lines[i].Origin = Point{
			X: r.X + (r.W-lines[i].Size.W)/2,
			Y: startY + offset,
		}
		offset += lines[i].Size.H
	}
	return lines
}

// BlockHeight returns the summed height of lines.
func BlockHeight(lines []Line) float64 {
	var h float64
	for _, ln := range lines {
		h += ln.Size.H
	}
	return h
}

func clampSize(s Size) Size {
	if s.W < 0 {
		s.W = 0
	}
	if s.H < 0 {
		s.H = 0
	}
	return s
}
