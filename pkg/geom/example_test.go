package geom_test

import (
	"fmt"

	"github.com/matzehuels/flowdoc/pkg/geom"
)

func ExampleCenterLines() {
	// 10px per character, 20px per line.
	m := geom.MeasureFunc(func(line string) geom.Size {
		return geom.Size{W: float64(len(line)) * 10, H: 20}
	})

	box := geom.Rect{X: 100, Y: 250, W: 350, H: 100}
	for _, ln := range geom.CenterLines(m, "Expedientes\nPOST", box) {
		fmt.Printf("%-11s at (%.0f, %.0f)\n", ln.Text, ln.Origin.X, ln.Origin.Y)
	}
	// Output:
	// Expedientes at (220, 280)
	// POST        at (255, 300)
}

func ExampleArrowhead() {
	tri := geom.Arrowhead(geom.Point{X: 0, Y: 0}, geom.Point{X: 100, Y: 0}, 14)
	for _, p := range tri {
		fmt.Printf("(%.0f, %.0f)\n", p.X, p.Y)
	}
	// Output:
	// (100, 0)
	// (86, -7)
	// (86, 7)
}
