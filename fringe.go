package field

import "iter"

// DefaultFringeWidth is the default half-width of a [Fringe], in layer units.
const DefaultFringeWidth = 1e-3

// Fringe is a polygon's boundary thickened by a width on both sides. Grid
// cells that overlap it cannot be classified ahead of time.
type Fringe struct {
	width  float64
	edges  []Edge
	bounds Rect
}

// Generate rebuilds the fringe around edges, whose bounding box is bounds.
// Negative widths are treated as zero.
func (f *Fringe) Generate(edges iter.Seq[Edge], bounds Rect, width float64) {
	f.width = max(0, width)
	f.edges = f.edges[:0]
	for e := range edges {
		f.edges = append(f.edges, e)
	}
	if len(f.edges) == 0 || bounds.IsEmpty() {
		f.bounds = EmptyRect
		return
	}
	f.bounds = bounds.Inflate(f.width, f.width)
}

// Width returns the half-width the fringe was generated with.
func (f *Fringe) Width() float64 { return f.width }

// Bounds returns the fringe's bounding box, or [EmptyRect] if there is no
// boundary.
func (f *Fringe) Bounds() Rect { return f.bounds }

// Overlaps reports whether any boundary edge comes within the fringe width of
// the closed rectangle r. The width is applied as a square rather than a
// disc around r, so a few cells near corners are reported that a true offset
// curve would miss; they only cost a fallback to the exact test.
func (f *Fringe) Overlaps(r Rect) bool {
	if !f.bounds.Overlaps(r) {
		return false
	}
	probe := r.Inflate(f.width, f.width)
	for _, e := range f.edges {
		if e.BoundingBox().Overlaps(probe) && e.IntersectsRect(probe) {
			return true
		}
	}
	return false
}
