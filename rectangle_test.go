package field

import (
	"math"
	"testing"
)

func TestAxisAlignedFieldSide(t *testing.T) {
	f := NewAxisAlignedField(NewIdentityLayer(), DefaultLocalRect, DefaultBorderThickness)
	tests := []struct {
		name string
		pt   Point
		want Side
	}{
		{"center", Pt(0, 0), Inside},
		{"inner min edge", Pt(-0.5, 0), Inside},
		{"inner max edge", Pt(0.5, 0), Border},
		{"border", Pt(0.55, 0), Border},
		{"border below", Pt(0, -0.55), Border},
		{"border corner", Pt(-0.55, 0.55), Border},
		{"outside", Pt(0.7, 0), Outside},
		{"outside corner", Pt(0.7, 0.7), Outside},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.Side(tt.pt); got != tt.want {
				t.Errorf("Side(%v) = %s, want %s", tt.pt, got, tt.want)
			}
		})
	}
	diff(t, Rect{-0.6, -0.6, 0.6, 0.6}, f.OuterBounds(), approx)
}

func TestAxisAlignedFieldClosestPoint(t *testing.T) {
	f := NewAxisAlignedField(NewIdentityLayer(), DefaultLocalRect, DefaultBorderThickness)

	got, ok := f.ClosestPoint(Pt(2, 0), Outside)
	if !ok {
		t.Fatal("no closest point")
	}
	diff(t, Pt(0.6, 0), got, approx)

	got, _ = f.ClosestPoint(Pt(0.2, 0.1), Inside)
	diff(t, Pt(0.5, 0.1), got, approx)

	got, _ = f.ClosestPoint(Pt(0.55, 0), Border)
	diff(t, Pt(0.5, 0), got, approx)
}

func TestAxisAlignedFieldBorder(t *testing.T) {
	f := NewAxisAlignedField(NewIdentityLayer(), DefaultLocalRect, DefaultBorderThickness)
	f.SetBorderThickness(-1)
	if b := f.BorderThickness(); b != 0 {
		t.Errorf("got border %v, want 0", b)
	}
	if got := f.Side(Pt(0.55, 0)); got != Outside {
		t.Errorf("without border: got %s, want outside", got)
	}

	f.SetBorderThickness(1)
	if got := f.Side(Pt(1.2, 0)); got != Border {
		t.Errorf("thick border: got %s, want border", got)
	}
}

func TestAxisAlignedFieldTransform(t *testing.T) {
	layer := NewLayer(Translate(Vec(5, 5)), Identity)
	f := NewAxisAlignedField(layer, Rect{1, 1, -1, -1}, 0.1)
	diff(t, Rect{-1, -1, 1, 1}, f.LocalRect())

	diff(t, Rect{4, 4, 6, 6}, f.InnerBounds(), approx)

	f.SetTransform(Rotate(math.Pi / 4))
	s := math.Sqrt2
	diff(t, Rect{5 - s, 5 - s, 5 + s, 5 + s}, f.InnerBounds(), approx)
	if got := f.Side(Pt(5+1.3, 5)); got != Inside {
		t.Errorf("rotated corner region: got %s, want inside", got)
	}

	layer.SetLocalToLayer(Identity)
	if got := f.Side(Pt(0, 0)); got != Inside {
		t.Errorf("after layer change: got %s, want inside", got)
	}

	f.SetLocalRect(Rect{0, 0, 10, 1})
	f.SetTransform(Identity)
	if got := f.Side(Pt(9, 0.5)); got != Inside {
		t.Errorf("after SetLocalRect: got %s, want inside", got)
	}
}

func TestAxisAlignedFieldDisabled(t *testing.T) {
	f := NewAxisAlignedField(nil, DefaultLocalRect, DefaultBorderThickness)
	rebuilds := 0
	f.AddListener(ListenerFunc(func(Field) { rebuilds++ }))

	if got := f.Side(Pt(0, 0)); got != Outside {
		t.Errorf("got %s, want outside", got)
	}
	if _, ok := f.ClosestPoint(Pt(0, 0), Inside); ok {
		t.Error("disabled field has a closest point")
	}
	if rebuilds != 0 {
		t.Errorf("disabled field notified %d times", rebuilds)
	}

	f.SetLayer(NewIdentityLayer())
	if got := f.Side(Pt(0, 0)); got != Inside {
		t.Errorf("after SetLayer: got %s, want inside", got)
	}
	if rebuilds != 1 {
		t.Errorf("got %d notifications, want 1", rebuilds)
	}
}
