package camera

import (
	"github.com/renderloop/viewfinder/pkg/engine"
	"github.com/renderloop/viewfinder/pkg/framing"
	"github.com/renderloop/viewfinder/pkg/geom"
	"github.com/renderloop/viewfinder/pkg/scene"
)

func projectionShader(p scene.Projection) string {
	if p == scene.Orthographic {
		return engine.OrthographicProjection
	}
	return engine.PerspectiveProjection
}

// projectionNodeParams synthesizes the projection node parameters.
// Non-positive values count as unset: the fStop then falls back to the
// engine's infinity (a pinhole), focal length and focus distance are left
// out entirely. The field of view is pinned to 90 degrees because the
// screen window already encodes the frustum shape.
func projectionNodeParams(cam *scene.Camera) engine.ParamList {
	var params engine.ParamList

	fStop := engine.Infinity
	if cam.FStop > 0 {
		fStop = cam.FStop
	}
	params.SetFloat(engine.ParamFStop, fStop)

	if cam.FocalLength > 0 {
		params.SetFloat(engine.ParamFocalLength, cam.FocalLength)
	}
	if cam.FocusDistance > 0 {
		params.SetFloat(engine.ParamFocalDistance, cam.FocusDistance)
	}

	if cam.Projection == scene.Perspective {
		params.SetFloat(engine.ParamFOV, 90)
	}
	return params
}

// cameraParams synthesizes the camera resource parameters: the clipping
// range when it bounds anything, and the screen window mapped to the
// render buffer.
func cameraParams(cam *scene.Camera, f framing.Framing, policy framing.Policy, bufSize geom.Vec2i) engine.ParamList {
	var params engine.ParamList

	if cam.ClippingRange.IsValid() {
		params.SetFloat(engine.ParamNearClip, cam.ClippingRange.Near)
		params.SetFloat(engine.ParamFarClip, cam.ClippingRange.Far)
	}

	sw := computeScreenWindow(cam, f, policy, bufSize)
	params.SetFloatArray(engine.ParamScreenWindow, sw[:])
	return params
}
