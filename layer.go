package field

// Frame is the parent coordinate space ("layer") that fields are placed in.
//
// Fields poll Generation on every query; any change to either matrix must
// advance it.
type Frame interface {
	// LocalToLayer maps the frame's local space into layer space.
	LocalToLayer() Affine
	// LayerToWorld maps layer space into world space.
	LayerToWorld() Affine
	Generation() uint64
}

// Layer is a concrete [Frame] whose matrices are set directly by its owner.
type Layer struct {
	localToLayer Affine
	layerToWorld Affine
	generation   uint64
}

var _ Frame = (*Layer)(nil)

// NewLayer returns a layer with the given matrices.
func NewLayer(localToLayer, layerToWorld Affine) *Layer {
	return &Layer{
		localToLayer: localToLayer,
		layerToWorld: layerToWorld,
		generation:   1,
	}
}

// NewIdentityLayer returns a layer whose layer space is world space.
func NewIdentityLayer() *Layer {
	return NewLayer(Identity, Identity)
}

func (l *Layer) LocalToLayer() Affine { return l.localToLayer }
func (l *Layer) LayerToWorld() Affine { return l.layerToWorld }
func (l *Layer) Generation() uint64   { return l.generation }

func (l *Layer) SetLocalToLayer(m Affine) {
	l.localToLayer = m
	l.generation++
}

func (l *Layer) SetLayerToWorld(m Affine) {
	l.layerToWorld = m
	l.generation++
}
