package field

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle. Unless stated otherwise, methods assume
// X0 ≤ X1 and Y0 ≤ Y1.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect contains no points. It is the identity of [Rect.UnionPoint] and
// [Rect.Union], which makes it the starting value when accumulating bounds.
var EmptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1, ensuring that
// width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{p0.X, p0.Y, p1.X, p1.Y}.Abs()
}

// NewRectFromOrigin returns a rectangle with the given size extending from
// origin. Width and height are ensured to be non-negative.
func NewRectFromOrigin(origin Point, size Size) Rect {
	return NewRectFromPoints(origin, origin.Translate(size.AsVec2()))
}

// NewRectFromCenter returns a rectangle of the given size centered on center.
func NewRectFromCenter(center Point, size Size) Rect {
	hw, hh := 0.5*size.Width, 0.5*size.Height
	return Rect{
		X0: center.X - hw,
		Y0: center.Y - hh,
		X1: center.X + hw,
		Y1: center.Y + hh,
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g, %g)-(%g, %g)", r.X0, r.Y0, r.X1, r.Y1)
}

// Abs returns a new rectangle with the same extents as r, but ensuring that width and
// height are non-negative.
func (r Rect) Abs() Rect {
	return Rect{
		X0: min(r.X0, r.X1),
		Y0: min(r.Y0, r.Y1),
		X1: max(r.X0, r.X1),
		Y1: max(r.Y0, r.Y1),
	}
}

// IsEmpty reports whether r contains no points at all. A rectangle of zero
// width or height around a single point is not empty.
func (r Rect) IsEmpty() bool {
	return !(r.X0 <= r.X1) || !(r.Y0 <= r.Y1)
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() Point {
	return Point{X: r.X0, Y: r.Y0}
}

// Width returns the rectangle's width, defined as X1 − X0.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

func (r Rect) Center() Point {
	return Point{
		X: 0.5 * (r.X0 + r.X1),
		Y: 0.5 * (r.Y0 + r.Y1),
	}
}

// Contains reports whether pt lies in the half-open rectangle [X0, X1) × [Y0, Y1).
// Points on the minimum edges are inside, points on the maximum edges are not.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X < r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y < r.Y1
}

// Overlaps reports whether the closed rectangles r and o share at least one
// point.
func (r Rect) Overlaps(o Rect) bool {
	return r.X0 <= o.X1 && o.X0 <= r.X1 &&
		r.Y0 <= o.Y1 && o.Y0 <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// Starting from [EmptyRect], a succession of UnionPoint operations on a series
// of points yields their tight bounding box.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate expands a rectangle by a constant amount in both directions.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}

func (r Rect) Area() float64 {
	return r.Width() * r.Height()
}

// Clamp returns the point of the closed rectangle nearest to pt. Points inside
// the rectangle are returned unchanged.
func (r Rect) Clamp(pt Point) Point {
	return Point{
		X: min(max(pt.X, r.X0), r.X1),
		Y: min(max(pt.Y, r.Y0), r.Y1),
	}
}

// ClosestPoint returns the point on the perimeter of r nearest to pt. Unlike
// [Rect.Clamp], a point strictly inside the rectangle is moved to its nearest
// side.
func (r Rect) ClosestPoint(pt Point) Point {
	c := r.Clamp(pt)
	if c != pt {
		return c
	}

	dl := pt.X - r.X0
	dr := r.X1 - pt.X
	db := pt.Y - r.Y0
	dt := r.Y1 - pt.Y
	switch min(dl, dr, db, dt) {
	case dl:
		c.X = r.X0
	case dr:
		c.X = r.X1
	case db:
		c.Y = r.Y0
	default:
		c.Y = r.Y1
	}
	return c
}
