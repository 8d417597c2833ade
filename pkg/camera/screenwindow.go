package camera

import (
	"github.com/renderloop/viewfinder/pkg/framing"
	"github.com/renderloop/viewfinder/pkg/geom"
	"github.com/renderloop/viewfinder/pkg/scene"
)

// ScreenWindow returns the camera's window on the image plane: the
// filmback rectangle with the off-axis aperture offsets applied, divided
// by the focal length for perspective projections. A zero focal length
// leaves the filmback unscaled.
func ScreenWindow(cam *scene.Camera) geom.Range2 {
	size := geom.V2(float64(cam.HorizontalAperture), float64(cam.VerticalAperture))
	offset := geom.V2(float64(cam.HorizontalApertureOffset), float64(cam.VerticalApertureOffset))
	filmback := geom.R2(size.Scale(-0.5).Add(offset), size.Scale(0.5).Add(offset))

	if cam.Projection == scene.Orthographic || cam.FocalLength == 0 {
		return filmback
	}
	return filmback.Div(float64(cam.FocalLength))
}

// displayWindowAspect returns the target aspect ratio of the framing's
// display window, the pixel aspect ratio times width over height.
func displayWindowAspect(f framing.Framing) float64 {
	size := f.DisplayWindow.Size()
	return f.PixelAspectRatio * safeDiv(size.X, size.Y)
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		Logger().Warn("invalid display window dimensions", "num", a)
		return 1
	}
	return a / b
}

// screenWindowForRenderBuffer maps a screen window given relative to the
// display window onto the full render buffer. The two rectangles disagree
// about handedness, image space grows downwards and screen space upwards,
// so the buffer's y extent anchors at the display window's top edge.
func screenWindowForRenderBuffer(screenWindow, displayWindow geom.Range2, bufSize geom.Vec2i) geom.Range2 {
	widthPerPixel := screenWindow.Size().X / displayWindow.Size().X
	heightPerPixel := screenWindow.Size().Y / displayWindow.Size().Y

	min := geom.V2(
		screenWindow.Min.X-widthPerPixel*displayWindow.Min.X,
		screenWindow.Max.Y+heightPerPixel*(displayWindow.Min.Y-float64(bufSize.Y)))
	size := geom.V2(widthPerPixel, heightPerPixel).Mul(bufSize.Vec2())

	return geom.R2(min, min.Add(size))
}

// computeScreenWindow chains the camera window, the conform step and the
// render buffer mapping into the screenWindow parameter payload, in
// engine order (xmin, xmax, ymin, ymax).
func computeScreenWindow(cam *scene.Camera, f framing.Framing, policy framing.Policy, bufSize geom.Vec2i) [4]float32 {
	window := ScreenWindow(cam)
	conformed := framing.ConformedWindow(window, policy, displayWindowAspect(f))
	buffer := screenWindowForRenderBuffer(conformed, f.DisplayWindow, bufSize)
	return toVec4(buffer)
}

func toVec4(r geom.Range2) [4]float32 {
	return [4]float32{
		float32(r.Min.X), float32(r.Max.X),
		float32(r.Min.Y), float32(r.Max.Y),
	}
}
