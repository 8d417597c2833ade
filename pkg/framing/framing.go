// Package framing describes how a rendered image is framed. A Framing pairs
// the display window on the image plane with the data window of pixels
// actually rendered; a Policy says how a window conforms to a target aspect
// ratio.
package framing

import "github.com/renderloop/viewfinder/pkg/geom"

// Framing ties a display window, a data window and a pixel aspect ratio
// together. Framing values are plain data compared with ==; change
// detection in the camera context relies on that.
type Framing struct {
	// DisplayWindow is the framed region of the image plane in continuous
	// pixel coordinates, y growing downwards.
	DisplayWindow geom.Range2
	// DataWindow is the pixel region of the render buffer that receives
	// data. Exclusive max, y growing downwards.
	DataWindow geom.Rect2i
	// PixelAspectRatio is the width of a pixel divided by its height.
	PixelAspectRatio float64
}

// FromDataWindow creates the common whole-buffer framing: the display window
// spans the data window exactly and pixels are square.
func FromDataWindow(dataWindow geom.Rect2i) Framing {
	return Framing{
		DisplayWindow:    dataWindow.Range2(),
		DataWindow:       dataWindow,
		PixelAspectRatio: 1,
	}
}

// IsValid reports whether the framing can drive a render: both windows
// non-degenerate and a non-zero pixel aspect ratio.
func (f Framing) IsValid() bool {
	return f.DataWindow.Width() > 0 && f.DataWindow.Height() > 0 &&
		f.DisplayWindow.Size().X > 0 && f.DisplayWindow.Size().Y > 0 &&
		f.PixelAspectRatio != 0
}
