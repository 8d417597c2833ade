package camera

import "github.com/renderloop/viewfinder/pkg/geom"

// cropRoundingBias is the fraction of a pixel subtracted from crop window
// edges before normalization. The engine converts a crop fraction back to
// a pixel edge with ceil(fraction * size); biasing the fraction 1/128 of a
// pixel low makes that ceil land on the intended integer without letting
// float error spill into the neighboring pixel.
const cropRoundingBias = 0.0078125

// divRoundDown normalizes one pixel edge against a buffer dimension,
// clamped to [0, 1]. Arithmetic stays in float32, the precision the
// engine applies its ceil in.
func divRoundDown(a, b int) float32 {
	return clamp32((float32(a)-cropRoundingBias)/float32(b), 0, 1)
}

func clamp32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// computeCropWindow produces the cropWindow parameter payload in engine
// order (xmin, xmax, ymin, ymax): the data window edges as fractions of
// the render buffer. The data window's exclusive max edges already address
// the pixel after the last covered one, which is what the engine's crop
// contract expects.
func computeCropWindow(dataWindow geom.Rect2i, bufSize geom.Vec2i) [4]float32 {
	return [4]float32{
		divRoundDown(dataWindow.Min.X, bufSize.X),
		divRoundDown(dataWindow.Max.X, bufSize.X),
		divRoundDown(dataWindow.Min.Y, bufSize.Y),
		divRoundDown(dataWindow.Max.Y, bufSize.Y),
	}
}
