// Package engine defines the contract between the camera pipeline and a
// rendering backend. Session is the narrow mutating surface a backend
// exposes; Recorder is an in-memory Session for tests and tooling.
package engine

import "github.com/renderloop/viewfinder/pkg/geom"

// Infinity is the backend representation of an unbounded float parameter,
// for example the fStop of a perfect pinhole camera.
const Infinity float32 = 1e38

// CameraID identifies a camera resource held by a Session. Zero is never a
// live resource.
type CameraID uint32

// ClippingPlaneID identifies a clipping plane resource held by a Session.
// Zero is never a live resource.
type ClippingPlaneID uint32

// NodeType classifies a shading node.
type NodeType int

const (
	// InvalidNode is the zero NodeType.
	InvalidNode NodeType = iota
	// ProjectionNode computes the camera projection.
	ProjectionNode
)

// Names of the built-in projection shaders.
const (
	PerspectiveProjection  = "perspective"
	OrthographicProjection = "orthographic"
)

// ShadingNode describes a shader instance: its type, the shader it selects,
// the handle identifying the instance within its owner, and its parameters.
type ShadingNode struct {
	Type   NodeType
	Name   string
	Handle string
	Params ParamList
}

// Matrix is a 4x4 float32 matrix in row-major order applied to row vectors,
// the wire format for transforms handed to a Session.
type Matrix [16]float32

// MatrixFrom narrows a geometry matrix to the wire format.
func MatrixFrom(m geom.Mat4) Matrix {
	var out Matrix
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Transform is a time-sampled transform; Matrices[i] applies at shutter
// time Times[i]. The slices always have equal length.
type Transform struct {
	Matrices []Matrix
	Times    []float32
}

// Session is the mutating surface of a rendering backend. Implementations
// assign opaque ids and are assumed to succeed; failures surface through
// backend diagnostics, not return values. A Session is driven from a single
// goroutine.
type Session interface {
	// CreateCamera creates a camera rendering through the given projection
	// node.
	CreateCamera(name string, projection ShadingNode, xform Transform, params ParamList) CameraID
	// ModifyCamera replaces the non-nil parts of an existing camera.
	ModifyCamera(id CameraID, projection *ShadingNode, xform *Transform, params *ParamList)
	// CreateClippingPlane adds a user clipping plane.
	CreateClippingPlane(xform Transform, params ParamList) ClippingPlaneID
	// DeleteClippingPlane removes a clipping plane created earlier.
	DeleteClippingPlane(id ClippingPlaneID)
	// SetDefaultDicingCamera selects the camera used to dice geometry when
	// a render call does not name one.
	SetDefaultDicingCamera(id CameraID)
}
