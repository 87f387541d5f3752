package field

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

func unitSquare() []Point {
	return []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
}

// lShape is a concave hexagon covering [0,2]×[0,2] minus [1,2]×[1,2].
func lShape() []Point {
	return []Point{Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2)}
}

// star is a concave ten-pointed star centered on the origin.
func star() []Point {
	var vs []Point
	for i := range 10 {
		r := 1.0
		if i%2 == 1 {
			r = 0.4
		}
		v := VecFromAngle(float64(i) * 2 * math.Pi / 10).Mul(r)
		vs = append(vs, Point(v))
	}
	return vs
}

// lattice returns points spaced step apart covering r, including its edges.
func lattice(r Rect, step float64) []Point {
	var pts []Point
	for y := r.Y0; y <= r.Y1; y += step {
		for x := r.X0; x <= r.X1; x += step {
			pts = append(pts, Pt(x, y))
		}
	}
	return pts
}
