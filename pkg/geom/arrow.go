package geom

import "math"

// DefaultHeadLength is the arrowhead length used by the diagram, in pixels.
const DefaultHeadLength = 14.0

// Arrowhead returns the three vertices of a filled arrowhead for the segment
// from -> to. The first vertex is to itself; the other two lie length behind
// it along the direction of travel, spread length/2 to either side.
//
// A zero-length segment yields a valid triangle pointing along +X.
func Arrowhead(from, to Point, length float64) [3]Point {
	angle := math.Atan2(to.Y-from.Y, to.X-from.X)
	sin, cos := math.Sincos(angle)
	half := length / 2

	left := Point{
		X: to.X - length*cos + half*sin,
		Y: to.Y - length*sin - half*cos,
	}
	right := Point{
		X: to.X - length*cos - half*sin,
		Y: to.Y - length*sin + half*cos,
	}
	return [3]Point{to, left, right}
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
