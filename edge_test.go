package field

import (
	"math"
	"testing"
)

func TestEdgeNearest(t *testing.T) {
	e := Edge{Pt(0, 0), Pt(10, 0)}
	tests := []struct {
		pt     Point
		want   Point
		distSq float64
	}{
		{Pt(5, 3), Pt(5, 0), 9},
		{Pt(-2, 0), Pt(0, 0), 4},
		{Pt(13, 4), Pt(10, 0), 25},
		{Pt(7, 0), Pt(7, 0), 0},
	}
	for _, tt := range tests {
		d, _ := e.Nearest(tt.pt)
		if math.Abs(d-tt.distSq) > 1e-9 {
			t.Errorf("Nearest(%v): got distance² %v, want %v", tt.pt, d, tt.distSq)
		}
		diff(t, tt.want, e.ClosestPoint(tt.pt), approx)
	}
}

func TestEdgeIntersectsRect(t *testing.T) {
	r := Rect{0, 0, 1, 1}
	tests := []struct {
		name string
		e    Edge
		want bool
	}{
		{"crossing", Edge{Pt(-1, 0.5), Pt(2, 0.5)}, true},
		{"inside", Edge{Pt(0.2, 0.2), Pt(0.3, 0.4)}, true},
		{"touching edge", Edge{Pt(1, -1), Pt(1, 2)}, true},
		{"touching corner", Edge{Pt(2, 0), Pt(0, 2)}, true},
		{"diagonal miss", Edge{Pt(1.5, 0), Pt(3, 1.5)}, false},
		{"parallel miss", Edge{Pt(-1, 1.5), Pt(2, 1.5)}, false},
		{"short of rect", Edge{Pt(-3, 0.5), Pt(-0.1, 0.5)}, false},
		{"degenerate inside", Edge{Pt(0.5, 0.5), Pt(0.5, 0.5)}, true},
		{"degenerate outside", Edge{Pt(5, 5), Pt(5, 5)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.IntersectsRect(r); got != tt.want {
				t.Errorf("got %t, want %t", got, tt.want)
			}
		})
	}

	if (Edge{Pt(0, 0), Pt(1, 1)}).IntersectsRect(EmptyRect) {
		t.Error("an edge intersects the empty rectangle")
	}
}

func TestEdgeAngle(t *testing.T) {
	e := Edge{Pt(1, 0), Pt(0, 1)}
	if a := e.Angle(Pt(0, 0)); math.Abs(a-math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want π/2", a)
	}
	rev := Edge{e.V1, e.V0}
	if a := rev.Angle(Pt(0, 0)); math.Abs(a+math.Pi/2) > 1e-12 {
		t.Errorf("got angle %v, want -π/2", a)
	}
}
