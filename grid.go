package field

import (
	"iter"
	"math"
)

// Cell is one cell of a [Grid]. Side is the classification shared by every
// point of Area, or Unknown if the cell straddles the boundary.
type Cell struct {
	Side Side
	Area Rect
}

// Grid is a uniform N×N table of cells anchored at an origin. Cells are
// stored row-major: cell (x, y) is at y*N + x.
//
// The zero Grid is empty; it has no cells and its bounds contain no points.
type Grid struct {
	n        int
	origin   Point
	cellSize Size
	cells    []Cell
}

// reset lays out an n×n grid of cells, all Unknown. n == 0 empties the grid.
func (g *Grid) reset(n int, origin Point, cellSize Size) {
	g.n = n
	g.origin = origin
	g.cellSize = cellSize
	if cap(g.cells) < n*n {
		g.cells = make([]Cell, n*n)
	}
	g.cells = g.cells[:n*n]
	for i := range g.cells {
		x, y := i%n, i/n
		g.cells[i] = Cell{
			Side: Unknown,
			Area: NewRectFromOrigin(g.cellOrigin(x, y), cellSize),
		}
	}
}

func (g *Grid) cellOrigin(x, y int) Point {
	return Point{
		X: g.origin.X + float64(x)*g.cellSize.Width,
		Y: g.origin.Y + float64(y)*g.cellSize.Height,
	}
}

// Subdivision returns the number of cells along each axis.
func (g *Grid) Subdivision() int { return g.n }

func (g *Grid) Origin() Point { return g.origin }

func (g *Grid) CellSize() Size { return g.cellSize }

// IsEmpty reports whether the grid has no cells.
func (g *Grid) IsEmpty() bool { return g.n == 0 }

// Bounds returns the rectangle covered by all cells, or [EmptyRect] for an
// empty grid.
func (g *Grid) Bounds() Rect {
	if g.IsEmpty() {
		return EmptyRect
	}
	return NewRectFromOrigin(g.origin, g.cellSize.Scale(float64(g.n)))
}

// At returns cell (x, y). Like slice indexing, it panics if either index is
// outside [0, Subdivision()).
func (g *Grid) At(x, y int) Cell {
	if x < 0 || x >= g.n || y < 0 || y >= g.n {
		panic("field: grid index out of range")
	}
	return g.cells[y*g.n+x]
}

func (g *Grid) set(x, y int, c Cell) {
	g.cells[y*g.n+x] = c
}

// Index returns the indices of the cell containing p.
func (g *Grid) Index(p Point) (x, y int, ok bool) {
	if g.IsEmpty() {
		return 0, 0, false
	}
	fx := math.Floor((p.X - g.origin.X) / g.cellSize.Width)
	fy := math.Floor((p.Y - g.origin.Y) / g.cellSize.Height)
	n := float64(g.n)
	// The negated comparisons also reject NaN.
	if !(fx >= 0 && fx < n && fy >= 0 && fy < n) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// CellAt returns the cell containing p.
func (g *Grid) CellAt(p Point) (Cell, bool) {
	x, y, ok := g.Index(p)
	if !ok {
		return Cell{}, false
	}
	return g.cells[y*g.n+x], true
}

// Cells iterates over all cells in row-major order, yielding each cell's
// flat index.
func (g *Grid) Cells() iter.Seq2[int, Cell] {
	return func(yield func(int, Cell) bool) {
		for i, c := range g.cells {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Count returns the number of cells classified as s.
func (g *Grid) Count(s Side) int {
	n := 0
	for _, c := range g.cells {
		if c.Side == s {
			n++
		}
	}
	return n
}
