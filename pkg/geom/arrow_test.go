package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestArrowheadTip(t *testing.T) {
	from, to := Point{X: 450, Y: 300}, Point{X: 550, Y: 200}
	tri := Arrowhead(from, to, DefaultHeadLength)
	if tri[0] != to {
		t.Errorf("tip = %+v, want %+v", tri[0], to)
	}
}

func TestArrowheadHorizontal(t *testing.T) {
	tri := Arrowhead(Point{X: 0, Y: 0}, Point{X: 100, Y: 0}, 14)
	want := [3]Point{{100, 0}, {86, -7}, {86, 7}}
	for i := range tri {
		if math.Abs(tri[i].X-want[i].X) > eps || math.Abs(tri[i].Y-want[i].Y) > eps {
			t.Errorf("vertex %d = %+v, want %+v", i, tri[i], want[i])
		}
	}
}

func TestArrowheadGeometry(t *testing.T) {
	segments := []struct {
		name     string
		from, to Point
	}{
		{"gestor to primera", Point{450, 300}, Point{550, 200}},
		{"primera to expedientes", Point{900, 200}, Point{1050, 200}},
		{"primera to alumnos", Point{900, 210}, Point{1050, 330}},
		{"gestor to ampliacion", Point{450, 340}, Point{550, 520}},
		{"upwards", Point{10, 10}, Point{10, -50}},
		{"leftwards", Point{10, 10}, Point{-90, 3}},
	}
	const L = DefaultHeadLength

	for _, tt := range segments {
		t.Run(tt.name, func(t *testing.T) {
			tri := Arrowhead(tt.from, tt.to, L)
			dx, dy := tt.to.X-tt.from.X, tt.to.Y-tt.from.Y
			n := math.Hypot(dx, dy)
			ux, uy := dx/n, dy/n

			for i, b := range tri[1:] {
				bx, by := tt.to.X-b.X, tt.to.Y-b.Y
				if along := bx*ux + by*uy; math.Abs(along-L) > eps {
					t.Errorf("back %d: distance along segment = %v, want %v", i+1, along, L)
				}
				if d := math.Hypot(bx, by); math.Abs(d-L*math.Sqrt(1.25)) > eps {
					t.Errorf("back %d: distance from tip = %v, want %v", i+1, d, L*math.Sqrt(1.25))
				}
			}

			// Mirror images across the segment line: equal projection,
			// opposite perpendicular offset.
			p1 := cross(ux, uy, tri[1].X-tt.to.X, tri[1].Y-tt.to.Y)
			p2 := cross(ux, uy, tri[2].X-tt.to.X, tri[2].Y-tt.to.Y)
			if math.Abs(p1+p2) > eps {
				t.Errorf("perpendicular offsets %v and %v are not symmetric", p1, p2)
			}
			if math.Abs(math.Abs(p1)-L/2) > eps {
				t.Errorf("perpendicular spread = %v, want %v", math.Abs(p1), L/2)
			}
		})
	}
}

func TestArrowheadZeroLength(t *testing.T) {
	p := Point{X: 42, Y: 42}
	tri := Arrowhead(p, p, 14)
	for i, v := range tri {
		if math.IsNaN(v.X) || math.IsNaN(v.Y) {
			t.Fatalf("vertex %d is NaN", i)
		}
	}
	if tri[1] != (Point{X: 28, Y: 35}) || tri[2] != (Point{X: 28, Y: 49}) {
		t.Errorf("zero-length arrowhead = %+v, want +X orientation", tri)
	}
}

func TestMidpoint(t *testing.T) {
	if got := Midpoint(Point{0, 0}, Point{10, 20}); got != (Point{5, 10}) {
		t.Errorf("Midpoint = %+v", got)
	}
}

func cross(ax, ay, bx, by float64) float64 {
	return ax*by - ay*bx
}
