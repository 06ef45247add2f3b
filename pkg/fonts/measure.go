package fonts

import (
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/matzehuels/flowdoc/pkg/geom"
)

// Normalize returns s in NFC form so that accented labels map to single
// precomposed glyphs.
func Normalize(s string) string {
	return norm.NFC.String(s)
}

// Bounds returns the ink bounding box of s rendered with face, relative to
// the baseline origin. Y is negative above the baseline.
func Bounds(face font.Face, s string) geom.Rect {
	b, _ := font.BoundString(face, Normalize(s))
	return geom.Rect{
		X: toFloat(b.Min.X),
		Y: toFloat(b.Min.Y),
		W: toFloat(b.Max.X - b.Min.X),
		H: toFloat(b.Max.Y - b.Min.Y),
	}
}

// Measurer returns a [geom.Measurer] reporting the ink extent of a line
// rendered with face.
func Measurer(face font.Face) geom.Measurer {
	return geom.MeasureFunc(func(line string) geom.Size {
		b := Bounds(face, line)
		return geom.Size{W: b.W, H: b.H}
	})
}

// Ascent returns the ascent of face in pixels. Adding it to a top-left
// origin gives the baseline.
func Ascent(face font.Face) float64 {
	return toFloat(face.Metrics().Ascent)
}

func toFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
