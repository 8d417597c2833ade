package geom

// Range2 is an axis-aligned rectangle over float coordinates, stored as
// min and max corners. A camera screen window and a display window are both
// Range2 values. A range with Max < Min on either axis reports IsEmpty.
type Range2 struct {
	Min, Max Vec2
}

// R2 creates a new Range2 from two corners.
func R2(min, max Vec2) Range2 {
	return Range2{min, max}
}

// Size returns the extent Max - Min.
func (r Range2) Size() Vec2 {
	return r.Max.Sub(r.Min)
}

// Center returns the midpoint of the range.
func (r Range2) Center() Vec2 {
	return r.Min.Add(r.Max).Scale(0.5)
}

// IsEmpty reports whether the range is inverted on either axis.
func (r Range2) IsEmpty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// Div returns the range with both corners divided by s. Scaling a filmback
// window by a focal length is the one place the pipeline uses this.
func (r Range2) Div(s float64) Range2 {
	return Range2{r.Min.Div(s), r.Max.Div(s)}
}

// Contains reports whether b lies entirely within r, boundaries included.
func (r Range2) Contains(b Range2) bool {
	return b.Min.X >= r.Min.X && b.Max.X <= r.Max.X &&
		b.Min.Y >= r.Min.Y && b.Max.Y <= r.Max.Y
}
