package geom

// Point is a position in pixel space. Y grows downwards.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is the measured extent of a piece of text.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Rect is an axis-aligned container with its origin at the top-left corner.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Right returns the midpoint of the right edge offset vertically by dy.
func (r Rect) Right(dy float64) Point {
	return Point{X: r.X + r.W, Y: r.Y + r.H/2 + dy}
}

// Left returns the midpoint of the left edge offset vertically by dy.
func (r Rect) Left(dy float64) Point {
	return Point{X: r.X, Y: r.Y + r.H/2 + dy}
}
