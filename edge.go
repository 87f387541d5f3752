package field

// Edge is a directed polygon edge from V0 to V1 in layer space. Edges are
// derived from a polygon's vertices and never authored directly.
type Edge struct {
	V0 Point
	V1 Point
}

// Eval returns the point at parameter t, with t = 0 at V0 and t = 1 at V1.
func (e Edge) Eval(t float64) Point {
	return e.V0.Lerp(e.V1, t)
}

// Nearest projects pt onto the edge, clamped to its extent, and returns the
// squared distance to the projection and the projection's parameter.
func (e Edge) Nearest(pt Point) (distSq, t float64) {
	d := e.V1.Sub(e.V0)
	dotp := d.Dot(pt.Sub(e.V0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(e.V0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(e.V1).Hypot2(), 1.0
	}
	t = dotp / dSquared
	return pt.Sub(e.Eval(t)).Hypot2(), t
}

// ClosestPoint returns the point of the edge nearest to pt.
func (e Edge) ClosestPoint(pt Point) Point {
	_, t := e.Nearest(pt)
	switch t {
	case 0:
		return e.V0
	case 1:
		return e.V1
	default:
		return e.Eval(t)
	}
}

// Angle returns the signed angle the edge subtends as seen from pt, in
// radians. Summed over a closed loop it is 2π times the winding number of pt.
func (e Edge) Angle(pt Point) float64 {
	return e.V0.Sub(pt).AngleTo(e.V1.Sub(pt))
}

func (e Edge) BoundingBox() Rect {
	return NewRectFromPoints(e.V0, e.V1)
}

// IntersectsRect reports whether any point of the edge lies in the closed
// rectangle r. It clips the edge's parameter range against each side of r in
// turn (Liang–Barsky).
func (e Edge) IntersectsRect(r Rect) bool {
	if r.IsEmpty() {
		return false
	}
	t0, t1 := 0.0, 1.0
	clip := func(p, q float64) bool {
		if p == 0 {
			return q >= 0
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return false
			}
			t0 = max(t0, t)
		} else {
			if t < t0 {
				return false
			}
			t1 = min(t1, t)
		}
		return true
	}
	d := e.V1.Sub(e.V0)
	return clip(-d.X, e.V0.X-r.X0) &&
		clip(d.X, r.X1-e.V0.X) &&
		clip(-d.Y, e.V0.Y-r.Y0) &&
		clip(d.Y, r.Y1-e.V0.Y)
}
