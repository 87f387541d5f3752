package field

// DeferredTransform composes a chain of affine matrices on demand. Reset only
// records its inputs; the product and its inverse are computed on the first
// read after a change, so a frame that is reset many times between queries
// pays for a single composition.
//
// The zero value is the identity transform.
type DeferredTransform struct {
	inputs   []Affine
	composed Affine
	inverse  Affine
	valid    bool
}

// NewDeferredTransform returns a transform composed from ms, see
// [DeferredTransform.Reset].
func NewDeferredTransform(ms ...Affine) *DeferredTransform {
	t := &DeferredTransform{}
	t.Reset(ms...)
	return t
}

// Reset replaces the chain with ms. The composed matrix is ms[0] * ms[1] * …,
// so the last matrix is applied to a point first.
func (t *DeferredTransform) Reset(ms ...Affine) {
	t.inputs = append(t.inputs[:0], ms...)
	t.valid = false
}

func (t *DeferredTransform) compose() {
	if t.valid {
		return
	}
	m := Identity
	for _, in := range t.inputs {
		m = m.Mul(in)
	}
	t.composed = m
	t.inverse = m.Invert()
	t.valid = true
}

// Matrix returns the composed matrix.
func (t *DeferredTransform) Matrix() Affine {
	t.compose()
	return t.composed
}

// Inverse returns the inverse of the composed matrix. It holds NaN or
// infinite coefficients when the matrix is singular.
func (t *DeferredTransform) Inverse() Affine {
	t.compose()
	return t.inverse
}

func (t *DeferredTransform) TransformPoint(p Point) Point {
	return p.Transform(t.Matrix())
}

func (t *DeferredTransform) TransformVector(v Vec2) Vec2 {
	return v.Transform(t.Matrix())
}

func (t *DeferredTransform) InverseTransformPoint(p Point) Point {
	return p.Transform(t.Inverse())
}

func (t *DeferredTransform) InverseTransformVector(v Vec2) Vec2 {
	return v.Transform(t.Inverse())
}
