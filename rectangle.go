package field

import (
	"github.com/sirupsen/logrus"
)

// DefaultLocalRect is the unit square centered on the local origin.
var DefaultLocalRect = Rect{X0: -0.5, Y0: -0.5, X1: 0.5, Y1: 0.5}

// DefaultBorderThickness is the border thickness of a new rectangle field,
// in layer units.
const DefaultBorderThickness = 0.1

// AxisAlignedField is a rectangular field with a border.
//
// The inner boundary is the bounding box of the local rectangle mapped into
// layer space. The outer boundary is the inner one grown by the border
// thickness on every side. The thickness is measured in layer units, so it
// does not scale with the field's own transform.
//
// Containment uses half-open rectangles: points on the minimum edges are
// contained, points on the maximum edges are not.
type AxisAlignedField struct {
	listeners

	// Name identifies the field in log output.
	Name string

	layer           Frame
	local           Affine
	localRect       Rect
	borderThickness float64

	localToLayer DeferredTransform
	validator    Validator
	enabled      bool
	inner        Rect
	outer        Rect
}

var _ Field = (*AxisAlignedField)(nil)

// NewAxisAlignedField returns a rectangle field in layer covering local, in
// local space, with the given border thickness.
func NewAxisAlignedField(layer Frame, local Rect, border float64) *AxisAlignedField {
	return &AxisAlignedField{
		layer:           layer,
		local:           Identity,
		localRect:       local.Abs(),
		borderThickness: max(0, border),
		inner:           EmptyRect,
		outer:           EmptyRect,
	}
}

func (f *AxisAlignedField) Layer() Frame { return f.layer }

// SetLayer moves the field into another frame. A nil frame disables the
// field until a frame is set again.
func (f *AxisAlignedField) SetLayer(l Frame) {
	f.layer = l
	f.validator.Invalidate()
}

// Transform returns the field's local→parent matrix.
func (f *AxisAlignedField) Transform() Affine { return f.local }

func (f *AxisAlignedField) SetTransform(m Affine) {
	f.local = m
	f.validator.Invalidate()
}

func (f *AxisAlignedField) LocalRect() Rect { return f.localRect }

func (f *AxisAlignedField) SetLocalRect(r Rect) {
	f.localRect = r.Abs()
	f.validator.Invalidate()
}

func (f *AxisAlignedField) BorderThickness() float64 { return f.borderThickness }

// SetBorderThickness sets the border thickness. Negative values are treated
// as zero.
func (f *AxisAlignedField) SetBorderThickness(t float64) {
	f.borderThickness = max(0, t)
	f.validator.Invalidate()
}

func (f *AxisAlignedField) LocalToLayer() *DeferredTransform {
	f.validate()
	return &f.localToLayer
}

// InnerBounds returns the inner rectangle in layer space.
func (f *AxisAlignedField) InnerBounds() Rect {
	f.validate()
	return f.inner
}

// OuterBounds returns the outer rectangle in layer space.
func (f *AxisAlignedField) OuterBounds() Rect {
	f.validate()
	return f.outer
}

func (f *AxisAlignedField) layerGeneration() uint64 {
	if f.layer == nil {
		return 0
	}
	return f.layer.Generation()
}

func (f *AxisAlignedField) validate() {
	if f.validator.IsValid(f.layerGeneration()) {
		return
	}
	f.Rebuild()
}

// Rebuild recomputes the inner and outer rectangles.
func (f *AxisAlignedField) Rebuild() {
	log := Logger().WithField("rectangle", f.Name)
	if f.layer == nil {
		f.enabled = false
		f.inner, f.outer = EmptyRect, EmptyRect
		f.localToLayer.Reset(f.local)
		f.validator.Validated(0)
		log.Warn("rectangle has no layer, disabled")
		return
	}

	f.localToLayer.Reset(f.layer.LocalToLayer(), f.local)
	f.inner = f.localToLayer.Matrix().TransformRectBoundingBox(f.localRect)
	f.outer = f.inner.Inflate(f.borderThickness, f.borderThickness)
	f.enabled = true
	f.validator.Validated(f.layer.Generation())

	log.WithFields(logrus.Fields{
		"inner": f.inner,
		"outer": f.outer,
	}).Debug("rectangle rebuilt")
	f.notify(f)
}

func (f *AxisAlignedField) Side(pt Point) Side {
	return SideOf(f, pt)
}

func (f *AxisAlignedField) ContainsOuter(pt Point) ContainsResult {
	f.validate()
	return ContainsResult{
		Field:      f,
		Boundary:   OuterBoundary,
		Contained:  f.enabled && f.outer.Contains(pt),
		LayerPoint: pt,
	}
}

func (f *AxisAlignedField) ContainsInner(pt Point) ContainsResult {
	f.validate()
	return ContainsResult{
		Field:      f,
		Boundary:   InnerBoundary,
		Contained:  f.enabled && f.inner.Contains(pt),
		LayerPoint: pt,
	}
}

// ClosestPoint returns the point on the perimeter of the outer rectangle if
// side is Outside, and on the inner rectangle otherwise.
func (f *AxisAlignedField) ClosestPoint(pt Point, side Side) (Point, bool) {
	f.validate()
	if !f.enabled {
		return Point{}, false
	}
	if side == Outside {
		return f.outer.ClosestPoint(pt), true
	}
	return f.inner.ClosestPoint(pt), true
}
