package field

import (
	"github.com/sirupsen/logrus"
)

// DefaultSubdivision is the grid subdivision used when none is given.
const DefaultSubdivision = 10

// minSubdivision leaves room for one margin cell on each side of the
// boundary and at least one cell in between.
const minSubdivision = 3

// boundsInflation enlarges the inner cells slightly beyond the fringe bounds
// so the boundary never lands exactly on the margin ring.
const boundsInflation = 1.01

// GridAccelerator answers Side queries for a [Polygon] from a precomputed
// uniform grid.
//
// Each cell that does not touch the polygon's fringe is classified once, at
// its center, when the grid is built. A query then costs one cell lookup.
// Only points in cells that straddle the boundary fall back to the exact
// polygon test, so results always agree with [Polygon.Side].
//
// The grid is rebuilt lazily after the polygon changes or after the
// accelerator's own parameters change. A GridAccelerator is not safe for
// concurrent use.
type GridAccelerator struct {
	listeners

	polygon     *Polygon
	subdivision int
	fringeWidth float64

	fringe    Fringe
	grid      Grid
	validator Validator
}

var _ Field = (*GridAccelerator)(nil)

// NewGridAccelerator wraps p with an accelerator of the given subdivision.
// Subdivisions below 3 are raised to 3 when the grid is built.
func NewGridAccelerator(p *Polygon, subdivision int) *GridAccelerator {
	return &GridAccelerator{
		polygon:     p,
		subdivision: subdivision,
		fringeWidth: DefaultFringeWidth,
	}
}

// Polygon returns the wrapped polygon. Edits made through it are picked up
// on the next query.
func (a *GridAccelerator) Polygon() *Polygon { return a.polygon }

func (a *GridAccelerator) Layer() Frame { return a.polygon.Layer() }

func (a *GridAccelerator) LocalToLayer() *DeferredTransform {
	return a.polygon.LocalToLayer()
}

// Subdivision returns the number of cells along each axis of the grid.
func (a *GridAccelerator) Subdivision() int { return a.subdivision }

func (a *GridAccelerator) SetSubdivision(n int) {
	a.subdivision = n
	a.validator.Invalidate()
}

// FringeWidth returns the half-width of the boundary region whose cells are
// left unclassified.
func (a *GridAccelerator) FringeWidth() float64 { return a.fringeWidth }

// SetFringeWidth sets the fringe half-width in layer units. Negative widths
// are treated as zero.
func (a *GridAccelerator) SetFringeWidth(w float64) {
	a.fringeWidth = max(0, w)
	a.validator.Invalidate()
}

// Fringe returns the current fringe.
func (a *GridAccelerator) Fringe() *Fringe {
	a.validate()
	return &a.fringe
}

// Grid returns the current grid.
func (a *GridAccelerator) Grid() *Grid {
	a.validate()
	return &a.grid
}

func (a *GridAccelerator) validate() {
	// Generation revalidates the polygon first.
	if a.validator.IsValid(a.polygon.Generation()) {
		return
	}
	a.generate()
}

// Rebuild recomputes the polygon, the fringe and the grid.
func (a *GridAccelerator) Rebuild() {
	a.polygon.Rebuild()
	a.generate()
}

func (a *GridAccelerator) generate() {
	a.fringe.Generate(a.polygon.LayerEdges(), a.polygon.LayerBounds(), a.fringeWidth)
	a.generateGrid()
	a.validator.Validated(a.polygon.Generation())

	Logger().WithFields(logrus.Fields{
		"polygon":     a.polygon.Name,
		"subdivision": a.grid.Subdivision(),
		"inside":      a.grid.Count(Inside),
		"outside":     a.grid.Count(Outside),
		"unknown":     a.grid.Count(Unknown),
	}).Debug("grid rebuilt")
	a.notify(a)
}

func (a *GridAccelerator) generateGrid() {
	a.subdivision = max(minSubdivision, a.subdivision)
	n := a.subdivision

	bounds := a.fringe.Bounds()
	if !a.polygon.hasBoundary() || bounds.IsEmpty() {
		a.grid.reset(0, Point{}, Size{})
		return
	}

	innerCellCount := n - 2
	size := bounds.Size().Scale(boundsInflation * float64(n) / float64(innerCellCount))
	if size.IsZero() {
		a.grid.reset(0, Point{}, Size{})
		return
	}
	origin := bounds.Center().Translate(size.AsVec2().Mul(-0.5))
	cellSize := size.Div(float64(n))
	a.grid.reset(n, origin, cellSize)

	// Point lookups divide by the cell size and may land in a neighbouring
	// cell by a rounding error; test a slightly larger rectangle so such a
	// neighbour is never classified on the wrong side of an edge.
	slack := 1e-9 * max(cellSize.Width, cellSize.Height)
	for y := range n {
		for x := range n {
			c := a.grid.At(x, y)
			if !a.fringe.Overlaps(c.Area.Inflate(slack, slack)) {
				c.Side = a.polygon.Side(c.Area.Center())
			}
			a.grid.set(x, y, c)
		}
	}
}

// side is the accelerated equivalent of the polygon's crossing test.
func (a *GridAccelerator) side(pt Point) Side {
	a.validate()
	if !a.grid.Bounds().Contains(pt) {
		return Outside
	}
	if c, ok := a.grid.CellAt(pt); ok && c.Side != Unknown {
		return c.Side
	}
	return a.polygon.Side(pt)
}

// Side classifies pt as Inside or Outside of the wrapped polygon. Like every
// field it composes both containment tests, so a point inside the polygon is
// looked up twice, and a point in an Unknown cell runs the exact test twice.
func (a *GridAccelerator) Side(pt Point) Side {
	return SideOf(a, pt)
}

func (a *GridAccelerator) ContainsOuter(pt Point) ContainsResult {
	return ContainsResult{
		Field:      a,
		Boundary:   OuterBoundary,
		Contained:  a.side(pt) == Inside,
		LayerPoint: pt,
	}
}

func (a *GridAccelerator) ContainsInner(pt Point) ContainsResult {
	return ContainsResult{
		Field:      a,
		Boundary:   InnerBoundary,
		Contained:  a.side(pt) == Inside,
		LayerPoint: pt,
	}
}

// ClosestPoint delegates to the wrapped polygon; the grid does not speed it
// up.
func (a *GridAccelerator) ClosestPoint(pt Point, side Side) (Point, bool) {
	return a.polygon.ClosestPoint(pt, side)
}
