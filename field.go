package field

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by vertex accessors given an index outside
// the vertex list.
var ErrIndexOutOfRange = errors.New("field: index out of range")

// Side classifies a point against a field.
type Side uint8

const (
	Outside Side = iota
	Border
	Inside
	// Unknown is only stored in grid cells that straddle a boundary. No
	// query returns it.
	Unknown
)

func (s Side) String() string {
	switch s {
	case Outside:
		return "outside"
	case Border:
		return "border"
	case Inside:
		return "inside"
	case Unknown:
		return "unknown"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// BoundaryMode names the boundary a containment test was made against.
type BoundaryMode uint8

const (
	UnknownBoundary BoundaryMode = iota
	InnerBoundary
	OuterBoundary
)

func (b BoundaryMode) String() string {
	switch b {
	case InnerBoundary:
		return "inner"
	case OuterBoundary:
		return "outer"
	default:
		return "unknown"
	}
}

// Locator is implemented by fields to let a [ContainsResult] map its point
// back into local or world space.
type Locator interface {
	// LocalToLayer is the field's composed local→layer transform.
	LocalToLayer() *DeferredTransform
	// Layer returns the frame the field lives in, or nil if it has none.
	Layer() Frame
}

// Field is the set of boundary queries every region shape answers. All
// points are in layer space.
//
// A field has an outer and an inner boundary. Points inside the inner one are
// [Inside], points between the two are on the [Border], and the rest are
// [Outside]. Shapes without a border have coinciding boundaries.
type Field interface {
	Locator

	// Side classifies p. Implementations return SideOf(f, p).
	Side(p Point) Side
	ContainsOuter(p Point) ContainsResult
	ContainsInner(p Point) ContainsResult
	// ClosestPoint returns the point nearest to p on the inner boundary, or
	// on the outer boundary if side is Outside. It reports false if the
	// field currently has no boundary.
	ClosestPoint(p Point, side Side) (Point, bool)
	// Rebuild recomputes all derived geometry, valid or not.
	Rebuild()
}

// SideOf classifies p from f's two containment tests: outside the outer
// boundary is Outside, inside the inner boundary is Inside, and anything else
// is Border.
func SideOf(f Field, p Point) Side {
	if !f.ContainsOuter(p).Contained {
		return Outside
	}
	if f.ContainsInner(p).Contained {
		return Inside
	}
	return Border
}

// ContainsResult is the outcome of a containment test. It keeps the field
// and the tested point so callers can recover the point in other spaces.
type ContainsResult struct {
	Field      Locator
	Boundary   BoundaryMode
	Contained  bool
	LayerPoint Point
}

// LocalPoint returns the tested point in the field's local space.
func (r ContainsResult) LocalPoint() Point {
	if r.Field == nil {
		return r.LayerPoint
	}
	return r.Field.LocalToLayer().InverseTransformPoint(r.LayerPoint)
}

// WorldPoint returns the tested point in world space.
func (r ContainsResult) WorldPoint() Point {
	if r.Field == nil || r.Field.Layer() == nil {
		return r.LayerPoint
	}
	return r.LayerPoint.Transform(r.Field.Layer().LayerToWorld())
}

func (r ContainsResult) String() string {
	return fmt.Sprintf("<ContainsResult %s contained=%t local=%s layer=%s>",
		r.Boundary, r.Contained, r.LocalPoint(), r.LayerPoint)
}

// Listener is notified after a field rebuilt its geometry.
type Listener interface {
	FieldChanged(f Field)
}

// ListenerFunc adapts a function to [Listener].
type ListenerFunc func(f Field)

func (fn ListenerFunc) FieldChanged(f Field) { fn(f) }

// listeners is embedded by fields. Notification is synchronous and in
// registration order. A listener must not call Rebuild on the field that is
// notifying it.
type listeners struct {
	nextID int
	ls     []listenerEntry
}

type listenerEntry struct {
	id int
	l  Listener
}

// AddListener registers l to be notified after every rebuild. The returned
// function unregisters it; calling it more than once is harmless.
func (n *listeners) AddListener(l Listener) (remove func()) {
	n.nextID++
	id := n.nextID
	n.ls = append(n.ls, listenerEntry{id: id, l: l})
	return func() {
		for i, e := range n.ls {
			if e.id == id {
				n.ls = append(n.ls[:i], n.ls[i+1:]...)
				return
			}
		}
	}
}

func (n *listeners) notify(f Field) {
	for _, e := range n.ls {
		e.l.FieldChanged(f)
	}
}
