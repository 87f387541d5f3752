package field

import (
	"fmt"
	"iter"
	"math"

	"github.com/sirupsen/logrus"
)

// Polygon is a field bounded by a closed polygon.
//
// Vertices are authored in the polygon's local space and mapped into layer
// space through the polygon's own transform and its layer's local→layer
// matrix. The layer space vertices, edges and bounds are derived lazily: every
// mutation only marks them stale, and the next query recomputes them once.
//
// A polygon has no border; its inner and outer boundaries coincide, so Side
// reports Inside or Outside only. Polygons with fewer than three vertices, or
// without a layer, have no boundary: every point is Outside and there is no
// closest point.
//
// A Polygon is not safe for concurrent use, queries included.
type Polygon struct {
	listeners

	// Name identifies the polygon in log output.
	Name string

	layer    Frame
	local    Affine
	vertices []Point

	localToLayer DeferredTransform
	validator    Validator

	layerVertices []Point
	layerEdges    []Edge
	layerBounds   Rect
}

var _ Field = (*Polygon)(nil)

// NewPolygon returns a polygon in layer with the given local space vertices
// and an identity local transform.
func NewPolygon(layer Frame, vertices ...Point) *Polygon {
	return &Polygon{
		layer:       layer,
		local:       Identity,
		vertices:    append([]Point(nil), vertices...),
		layerBounds: EmptyRect,
	}
}

func (p *Polygon) Layer() Frame { return p.layer }

// SetLayer moves the polygon into another frame. A nil frame disables the
// polygon until a frame is set again.
func (p *Polygon) SetLayer(f Frame) {
	p.layer = f
	p.validator.Invalidate()
}

// Transform returns the polygon's local→parent matrix.
func (p *Polygon) Transform() Affine { return p.local }

// SetTransform sets the polygon's local→parent matrix.
func (p *Polygon) SetTransform(m Affine) {
	p.local = m
	p.validator.Invalidate()
}

// LocalToLayer returns the composed local→layer transform.
func (p *Polygon) LocalToLayer() *DeferredTransform {
	p.validate()
	return &p.localToLayer
}

// VertexCount returns the number of authored vertices.
func (p *Polygon) VertexCount() int {
	return len(p.vertices)
}

// Vertices returns a copy of the authored vertices.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

func (p *Polygon) checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("field: vertex %d of %d: %w", i, n, ErrIndexOutOfRange)
	}
	return nil
}

// Vertex returns the i-th authored vertex in local space.
func (p *Polygon) Vertex(i int) (Point, error) {
	if err := p.checkIndex(i, len(p.vertices)); err != nil {
		return Point{}, err
	}
	return p.vertices[i], nil
}

// SetVertex replaces the i-th vertex.
func (p *Polygon) SetVertex(i int, v Point) error {
	if err := p.checkIndex(i, len(p.vertices)); err != nil {
		return err
	}
	p.vertices[i] = v
	p.validator.Invalidate()
	return nil
}

// AddVertex appends v and returns its index.
func (p *Polygon) AddVertex(v Point) int {
	p.vertices = append(p.vertices, v)
	p.validator.Invalidate()
	return len(p.vertices) - 1
}

// InsertVertex inserts v before index i. An index equal to VertexCount
// appends.
func (p *Polygon) InsertVertex(i int, v Point) error {
	if err := p.checkIndex(i, len(p.vertices)+1); err != nil {
		return err
	}
	p.vertices = append(p.vertices, Point{})
	copy(p.vertices[i+1:], p.vertices[i:])
	p.vertices[i] = v
	p.validator.Invalidate()
	return nil
}

// RemoveVertex deletes the i-th vertex.
func (p *Polygon) RemoveVertex(i int) error {
	if err := p.checkIndex(i, len(p.vertices)); err != nil {
		return err
	}
	p.vertices = append(p.vertices[:i], p.vertices[i+1:]...)
	p.validator.Invalidate()
	return nil
}

func (p *Polygon) layerGeneration() uint64 {
	if p.layer == nil {
		return 0
	}
	return p.layer.Generation()
}

func (p *Polygon) validate() {
	if p.validator.IsValid(p.layerGeneration()) {
		return
	}
	p.generateLayerData()
}

// Rebuild recomputes the layer space geometry.
func (p *Polygon) Rebuild() {
	p.generateLayerData()
}

// Generation advances every time the layer space geometry is recomputed.
func (p *Polygon) Generation() uint64 {
	p.validate()
	return p.validator.Generation()
}

func (p *Polygon) generateLayerData() {
	p.layerVertices = p.layerVertices[:0]
	p.layerEdges = p.layerEdges[:0]
	p.layerBounds = EmptyRect

	log := Logger().WithField("polygon", p.Name)
	if p.layer == nil {
		p.localToLayer.Reset(p.local)
		p.validator.Validated(0)
		log.Warn("polygon has no layer, disabled")
		return
	}

	p.localToLayer.Reset(p.layer.LocalToLayer(), p.local)
	m := p.localToLayer.Matrix()

	n := len(p.vertices)
	for i := range n {
		j := (i + 1) % n
		v0 := p.vertices[i].Transform(m)
		v1 := p.vertices[j].Transform(m)
		p.layerVertices = append(p.layerVertices, v0)
		p.layerEdges = append(p.layerEdges, Edge{V0: v0, V1: v1})
		p.layerBounds = p.layerBounds.UnionPoint(v0)
	}
	p.validator.Validated(p.layer.Generation())

	log = log.WithFields(logrus.Fields{
		"vertices": n,
		"bounds":   p.layerBounds,
	})
	if n < 3 {
		log.Debug("degenerate polygon rebuilt")
	} else {
		log.Debug("polygon rebuilt")
	}
	p.notify(p)
}

// hasBoundary reports whether the cached geometry describes a closed
// boundary. It assumes the cache is valid.
func (p *Polygon) hasBoundary() bool {
	return len(p.layerEdges) >= 3
}

// LayerVertices iterates over the vertices in layer space. The sequence
// revalidates when iteration starts, so it always yields the current
// geometry. The polygon must not be changed during iteration.
func (p *Polygon) LayerVertices() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		p.validate()
		for _, v := range p.layerVertices {
			if !yield(v) {
				return
			}
		}
	}
}

// LayerEdges iterates over the closed loop of edges in layer space. Edge i
// runs from vertex i to vertex (i+1) mod n. Like [Polygon.LayerVertices],
// the sequence reads the geometry current when iteration starts.
func (p *Polygon) LayerEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		p.validate()
		for _, e := range p.layerEdges {
			if !yield(e) {
				return
			}
		}
	}
}

// LayerBounds returns the tight bounding box of the layer space vertices, or
// [EmptyRect] if there are none.
func (p *Polygon) LayerBounds() Rect {
	p.validate()
	return p.layerBounds
}

// Side classifies pt as Inside or Outside.
func (p *Polygon) Side(pt Point) Side {
	return SideOf(p, pt)
}

func (p *Polygon) ContainsOuter(pt Point) ContainsResult {
	return ContainsResult{
		Field:      p,
		Boundary:   OuterBoundary,
		Contained:  p.crossingSide(pt) == Inside,
		LayerPoint: pt,
	}
}

func (p *Polygon) ContainsInner(pt Point) ContainsResult {
	return ContainsResult{
		Field:      p,
		Boundary:   InnerBoundary,
		Contained:  p.crossingSide(pt) == Inside,
		LayerPoint: pt,
	}
}

// crossingSide is the exact even-odd test. It counts the edges whose
// half-open y span [min, max) contains pt.Y and whose x-intercept at pt.Y is
// at or left of pt.X. The half-open span counts a vertex lying on the
// scanline once, for the edge that starts or ends above it. Points on a left
// or bottom edge are therefore Inside and points on a right or top edge are
// Outside; the grid accelerator relies on exactly this tie-break.
func (p *Polygon) crossingSide(pt Point) Side {
	p.validate()
	if !p.hasBoundary() {
		return Outside
	}

	c := 0
	xp, yp := pt.X, pt.Y
	for _, e := range p.layerEdges {
		x0, y0 := e.V0.X, e.V0.Y
		x1, y1 := e.V1.X, e.V1.Y
		if (y0 <= yp && yp < y1) || (y1 <= yp && yp < y0) {
			t := (yp - y0) / (y1 - y0)
			xt := x0 + t*(x1-x0)
			if xt <= xp {
				c++
			}
		}
	}
	if c%2 == 0 {
		return Outside
	}
	return Inside
}

// Winding returns the winding number of pt, computed from the angles the
// edges subtend. It agrees with Side on simple polygons for points off the
// boundary and is not used by any query.
func (p *Polygon) Winding(pt Point) int {
	p.validate()
	if !p.hasBoundary() {
		return 0
	}
	var total float64
	for _, e := range p.layerEdges {
		total += e.Angle(pt)
	}
	return int(math.Round(total / (2 * math.Pi)))
}

// Area returns the signed area of the layer space polygon. It is positive
// when the vertices wind counterclockwise in a y-up space.
func (p *Polygon) Area() float64 {
	p.validate()
	if !p.hasBoundary() {
		return 0
	}
	var a float64
	for _, e := range p.layerEdges {
		a += Vec2(e.V0).Cross(Vec2(e.V1))
	}
	return 0.5 * a
}

// ClosestPoint returns the point on the polygon's boundary nearest to pt.
// Both boundaries coincide, so side is ignored.
func (p *Polygon) ClosestPoint(pt Point, side Side) (Point, bool) {
	p.validate()
	if !p.hasBoundary() {
		return Point{}, false
	}

	var result Point
	minSqDist := math.Inf(1)
	for _, e := range p.layerEdges {
		v := e.ClosestPoint(pt)
		if d := v.DistanceSquared(pt); d < minSqDist {
			minSqDist = d
			result = v
		}
	}
	return result, true
}

// ClosestVertexIndex returns the index of the layer space vertex nearest to
// pt, preferring the lowest index on ties, or -1 if there are no vertices.
func (p *Polygon) ClosestVertexIndex(pt Point) int {
	p.validate()
	index := -1
	minSqDist := math.Inf(1)
	for i, v := range p.layerVertices {
		if d := v.DistanceSquared(pt); d < minSqDist {
			minSqDist = d
			index = i
		}
	}
	return index
}
