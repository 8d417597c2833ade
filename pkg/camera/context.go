// Package camera keeps a render engine's camera in sync with a logical
// scene camera and the active render buffer framing. Context owns one
// engine camera and tracks when the next resync is due.
package camera

import (
	"github.com/renderloop/viewfinder/pkg/engine"
	"github.com/renderloop/viewfinder/pkg/framing"
	"github.com/renderloop/viewfinder/pkg/geom"
	"github.com/renderloop/viewfinder/pkg/scene"
)

// Names of the session camera and its projection node handle. One context
// owns exactly one engine camera for its whole life.
const (
	cameraName       = "main_cam"
	projectionHandle = "main_cam_projection"
)

// defaultShutterCurve parameterizes the shutter while no scene camera has
// been synchronized: the open and close times followed by the eight
// opening curve control values.
var defaultShutterCurve = [10]float32{0, 0.05, 0, 0, 0, 0, 0.05, 1.0, 0.35, 0}

// Context owns the engine-side camera state for one render session.
//
// A Context is a state machine around a single dirty flag: setters compare
// incoming values against current state and mark the context invalid on
// real changes. The consumer polls IsInvalid, runs
// UpdateCameraAndClipPlanes and SetOptions, then acknowledges with
// MarkValid. Not safe for concurrent use.
type Context struct {
	camera     *scene.Camera
	cameraPath string
	framing    framing.Framing
	policy     framing.Policy
	invalid    bool

	cameraID engine.CameraID
	planeIDs []engine.ClippingPlaneID
}

// New creates a Context with no camera, an empty framing and the Fit
// conform policy.
func New() *Context {
	return &Context{policy: framing.Fit}
}

// Begin creates the context's engine camera and registers it as the
// default dicing camera. Call it exactly once per session, before the
// first UpdateCameraAndClipPlanes. The camera starts as a neutral
// 60 degree perspective five units back from the origin and is only ever
// modified afterwards, never recreated.
func (c *Context) Begin(s engine.Session) {
	var nodeParams engine.ParamList
	nodeParams.SetFloat(engine.ParamFOV, 60)

	node := engine.ShadingNode{
		Type:   engine.ProjectionNode,
		Name:   engine.PerspectiveProjection,
		Handle: projectionHandle,
		Params: nodeParams,
	}

	var params engine.ParamList
	params.SetFloat(engine.ParamShutterOpenTime, defaultShutterCurve[0])
	params.SetFloat(engine.ParamShutterCloseTime, defaultShutterCurve[1])
	params.SetFloatArray(engine.ParamShutterOpening, defaultShutterCurve[2:10])

	xform := engine.Transform{
		Matrices: []engine.Matrix{engine.MatrixFrom(geom.Translate(geom.V3(0, 0, -5)))},
		Times:    []float32{0},
	}

	c.cameraID = s.CreateCamera(cameraName, node, xform, params)
	s.SetDefaultDicingCamera(c.cameraID)
}

// SetCamera points the context at a logical camera, which may be nil.
// Switching identity (a camera with a different path) or dropping the
// camera marks the context invalid; handing over the same camera again
// does not.
func (c *Context) SetCamera(cam *scene.Camera) {
	if cam != nil {
		if c.cameraPath != cam.Path {
			c.invalid = true
			c.cameraPath = cam.Path
		}
	} else if c.camera != nil {
		c.invalid = true
	}
	c.camera = cam
}

// MarkCameraInvalid flags the context when the camera it currently tracks
// changed in place. Changes to other cameras are ignored.
func (c *Context) MarkCameraInvalid(cam *scene.Camera) {
	if cam != nil && cam.Path == c.cameraPath {
		c.invalid = true
	}
}

// SetFraming updates the render framing.
func (c *Context) SetFraming(f framing.Framing) {
	if c.framing != f {
		c.framing = f
		c.invalid = true
	}
}

// SetWindowPolicy updates the conform policy.
func (c *Context) SetWindowPolicy(p framing.Policy) {
	if c.policy != p {
		c.policy = p
		c.invalid = true
	}
}

// IsInvalid reports whether engine state is stale against the inputs.
func (c *Context) IsInvalid() bool {
	return c.invalid
}

// MarkValid acknowledges that the consumer finished resynchronizing. The
// context never clears the flag on its own.
func (c *Context) MarkValid() {
	c.invalid = false
}

// Camera returns the logical camera the context tracks, possibly nil.
func (c *Context) Camera() *scene.Camera {
	return c.camera
}

// CameraID returns the engine camera created by Begin. Render calls aim
// at this id.
func (c *Context) CameraID() engine.CameraID {
	return c.cameraID
}

// UpdateCameraAndClipPlanes pushes the tracked camera and its clipping
// planes to the session. Without a camera it is a no-op; with a
// degenerate framing or buffer size it logs and leaves the previous
// engine state in place. It does not touch the dirty flag, callers decide
// when to MarkValid.
func (c *Context) UpdateCameraAndClipPlanes(s engine.Session, bufSize geom.Vec2i) {
	if c.camera == nil {
		// No camera to sync from; keep whatever the engine has.
		return
	}
	if bufSize.X <= 0 || bufSize.Y <= 0 || !c.framing.IsValid() {
		Logger().Warn("degenerate framing, skipping camera sync",
			"camera", c.cameraPath, "width", bufSize.X, "height", bufSize.Y)
		return
	}

	c.updateCamera(s, bufSize)
	c.updateClipPlanes(s)
}

func (c *Context) updateCamera(s engine.Session, bufSize geom.Vec2i) {
	node := engine.ShadingNode{
		Type:   engine.ProjectionNode,
		Name:   projectionShader(c.camera.Projection),
		Handle: projectionHandle,
		Params: projectionNodeParams(c.camera),
	}
	xform := transformFromSamples(c.camera.TimeSampleXforms, true)
	params := cameraParams(c.camera, c.framing, c.policy, bufSize)

	s.ModifyCamera(c.cameraID, &node, &xform, &params)
}

func (c *Context) updateClipPlanes(s engine.Session) {
	for _, id := range c.planeIDs {
		s.DeleteClippingPlane(id)
	}
	c.planeIDs = nil

	if len(c.camera.ClipPlanes) == 0 {
		return
	}

	// Clipping planes ride the camera transform without the handedness
	// flip.
	xform := transformFromSamples(c.camera.TimeSampleXforms, false)

	ids := make([]engine.ClippingPlaneID, 0, len(c.camera.ClipPlanes))
	for _, plane := range c.camera.ClipPlanes {
		if params, ok := clipPlaneParams(plane); ok {
			ids = append(ids, s.CreateClippingPlane(xform, params))
		}
	}
	c.planeIDs = ids
}

// SetOptions writes the context's contribution to the session options:
// the crop window for the current data window and render buffer size. An
// invalid framing falls back to the full image.
func (c *Context) SetOptions(options *engine.ParamList, bufSize geom.Vec2i) {
	crop := [4]float32{0, 1, 0, 1}
	if c.framing.IsValid() {
		crop = computeCropWindow(c.framing.DataWindow, bufSize)
	}
	options.SetFloatArray(engine.ParamCropWindow, crop[:])
}
