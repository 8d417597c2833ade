package geom

// Rect2i is an axis-aligned rectangle over integer pixel coordinates.
// Min is inclusive and Max is exclusive, so a full 100x100 buffer is
// R2i(0, 0, 100, 100).
type Rect2i struct {
	Min, Max Vec2i
}

// R2i creates a new Rect2i from edge coordinates.
func R2i(x0, y0, x1, y1 int) Rect2i {
	return Rect2i{Vec2i{x0, y0}, Vec2i{x1, y1}}
}

// Width returns the horizontal pixel count.
func (r Rect2i) Width() int {
	return r.Max.X - r.Min.X
}

// Height returns the vertical pixel count.
func (r Rect2i) Height() int {
	return r.Max.Y - r.Min.Y
}

// IsEmpty reports whether the rect covers no pixels.
func (r Rect2i) IsEmpty() bool {
	return r.Max.X <= r.Min.X || r.Max.Y <= r.Min.Y
}

// Range2 converts the pixel rect to float coordinates.
func (r Rect2i) Range2() Range2 {
	return Range2{r.Min.Vec2(), r.Max.Vec2()}
}
