package field

import "fmt"

// Size is the extent of a rectangle or a grid cell.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

func (sz Size) AsVec2() Vec2 {
	return Vec2{
		X: sz.Width,
		Y: sz.Height,
	}
}

// Scale multiplies both dimensions by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Div divides both dimensions by f.
func (sz Size) Div(f float64) Size {
	return Size{
		Width:  sz.Width / f,
		Height: sz.Height / f,
	}
}

// IsZero reports whether either dimension is zero or negative. A grid cannot
// be laid out over a zero size.
func (sz Size) IsZero() bool {
	return !(sz.Width > 0) || !(sz.Height > 0)
}
