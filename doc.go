// Package field classifies 2D points against regions ("fields") placed in a
// parent coordinate space ("layer"). It was written for level design and zone
// authoring tools, which need to know whether a point is inside a region, on
// its border, or outside it, and where the region's boundary is closest.
//
// # Fields
//
// [Field] is the set of queries every region shape answers. A field has an
// inner and an outer boundary; [SideOf] derives [Inside], [Border] and
// [Outside] from the two containment tests, and every shape's Side method is
// defined in terms of it.
//
// This package includes the following fields:
//   - [Polygon], an arbitrary polygon classified with the even-odd rule
//   - [GridAccelerator], a Polygon with a precomputed grid for fast queries
//   - [AxisAlignedField], a rectangle with a border of fixed thickness
//
// # Spaces
//
// Fields are authored in their own local space. A [Frame], usually a [Layer],
// supplies the local→layer matrix, and each field adds its own local
// transform. All queries take and return layer space points.
// [ContainsResult] can map the tested point back to local or world space.
//
// # Lazy rebuilds
//
// Derived geometry is recomputed on the first query after a change, never on
// the change itself. Each component carries a [Validator] recording the
// generations of its inputs: a field rebuilds when its layer's generation
// moves, and a GridAccelerator rebuilds when its polygon's generation moves.
// Editing vertices in a loop is therefore cheap, and the cost lands on the
// next query.
//
// # The crossing rule
//
// Polygon classification counts edge crossings on a horizontal scanline,
// using a half-open [min, max) y span per edge and counting intercepts at or
// left of the point. Points on left and bottom edges are Inside; points on
// right and top edges are Outside. The same half-open convention is used for
// rectangles, so the two shapes agree on their boundaries.
//
// # Concurrency
//
// Fields are not safe for concurrent use. Queries mutate caches, so even
// concurrent reads of one field must be serialized by the caller.
package field
