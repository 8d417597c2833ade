// Package scene provides the logical camera description consumed by the
// camera pipeline, together with a glTF-backed source of such cameras.
package scene

import "github.com/renderloop/viewfinder/pkg/geom"

// Film-standard default filmback dimensions, in millimeters.
const (
	DefaultHorizontalAperture = 20.955
	DefaultVerticalAperture   = 15.2908
)

// Projection selects the camera projection model.
type Projection int

const (
	// Perspective projects through a focal point.
	Perspective Projection = iota
	// Orthographic projects along parallel rays.
	Orthographic
)

// String returns the projection name.
func (p Projection) String() string {
	if p == Orthographic {
		return "orthographic"
	}
	return "perspective"
}

// XformSample is one time sample of a camera-to-world transform.
type XformSample struct {
	Time  float32
	Value geom.Mat4
}

// ClippingRange bounds the renderable depth interval. It only takes effect
// when Near < Far strictly; any other combination means "unset".
type ClippingRange struct {
	Near, Far float32
}

// IsValid reports whether the range bounds anything.
func (r ClippingRange) IsValid() bool {
	return r.Near < r.Far
}

// Camera is a logical camera snapshot. The scene layer fills it in and the
// camera pipeline reads it; treat it as read-only once handed to a context.
// Degenerate scalar values (zero focal length, non-positive fStop) mean the
// corresponding property is unset.
type Camera struct {
	// Path is the stable identity of the camera within the scene. Contexts
	// compare paths, not pointers, to detect camera switches.
	Path string

	Projection Projection

	// Filmback geometry in millimeters. The offsets shift the filmback
	// window off the lens axis.
	HorizontalAperture       float32
	VerticalAperture         float32
	HorizontalApertureOffset float32
	VerticalApertureOffset   float32

	// FocalLength in millimeters; zero leaves the filmback window
	// unscaled.
	FocalLength float32

	// FStop of zero or less means a pinhole with everything in focus.
	FStop         float32
	FocusDistance float32

	ClippingRange ClippingRange

	// TimeSampleXforms holds the camera-to-world transform over the open
	// shutter, ordered by time.
	TimeSampleXforms []XformSample

	// ClipPlanes are additional plane equations (a, b, c, d) in camera
	// space satisfying ax + by + cz + d = 0 on the plane.
	ClipPlanes []geom.Vec4
}

// NewCamera creates a perspective camera at path with the film-standard
// filmback, no depth of field and an identity transform at time zero.
func NewCamera(path string) *Camera {
	return &Camera{
		Path:               path,
		HorizontalAperture: DefaultHorizontalAperture,
		VerticalAperture:   DefaultVerticalAperture,
		TimeSampleXforms:   []XformSample{{Time: 0, Value: geom.Identity()}},
	}
}
