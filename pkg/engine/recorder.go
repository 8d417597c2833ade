package engine

import (
	"fmt"
	"maps"
	"slices"
)

// CameraRecord is the latest payload a Recorder holds for a camera.
type CameraRecord struct {
	Name       string
	Projection ShadingNode
	Xform      Transform
	Params     ParamList
	// Modified counts the ModifyCamera calls applied to this camera.
	Modified int
}

// ClippingPlaneRecord is the payload a Recorder holds for a live clipping
// plane.
type ClippingPlaneRecord struct {
	Xform  Transform
	Params ParamList
}

// Recorder is an in-memory Session. It assigns sequential ids (unique
// across resource kinds), keeps the latest payload per resource and appends
// one line per call to an operation log that tests and tooling inspect for
// ordering.
type Recorder struct {
	nextID  uint32
	cameras map[CameraID]*CameraRecord
	planes  map[ClippingPlaneID]ClippingPlaneRecord
	dicing  CameraID
	ops     []string
}

var _ Session = (*Recorder)(nil)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		cameras: make(map[CameraID]*CameraRecord),
		planes:  make(map[ClippingPlaneID]ClippingPlaneRecord),
	}
}

// CreateCamera implements Session.
func (r *Recorder) CreateCamera(name string, projection ShadingNode, xform Transform, params ParamList) CameraID {
	r.nextID++
	id := CameraID(r.nextID)
	r.cameras[id] = &CameraRecord{
		Name:       name,
		Projection: projection,
		Xform:      xform,
		Params:     params.Clone(),
	}
	r.logf("CreateCamera %s -> %d", name, id)
	return id
}

// ModifyCamera implements Session. Unknown ids are tolerated and logged.
func (r *Recorder) ModifyCamera(id CameraID, projection *ShadingNode, xform *Transform, params *ParamList) {
	cam, ok := r.cameras[id]
	if !ok {
		r.logf("ModifyCamera %d (unknown)", id)
		return
	}
	if projection != nil {
		cam.Projection = *projection
	}
	if xform != nil {
		cam.Xform = *xform
	}
	if params != nil {
		cam.Params = params.Clone()
	}
	cam.Modified++
	r.logf("ModifyCamera %d", id)
}

// CreateClippingPlane implements Session.
func (r *Recorder) CreateClippingPlane(xform Transform, params ParamList) ClippingPlaneID {
	r.nextID++
	id := ClippingPlaneID(r.nextID)
	r.planes[id] = ClippingPlaneRecord{Xform: xform, Params: params.Clone()}
	r.logf("CreateClippingPlane -> %d", id)
	return id
}

// DeleteClippingPlane implements Session. Unknown ids are tolerated.
func (r *Recorder) DeleteClippingPlane(id ClippingPlaneID) {
	delete(r.planes, id)
	r.logf("DeleteClippingPlane %d", id)
}

// SetDefaultDicingCamera implements Session.
func (r *Recorder) SetDefaultDicingCamera(id CameraID) {
	r.dicing = id
	r.logf("SetDefaultDicingCamera %d", id)
}

// Camera returns a copy of the stored record for id.
func (r *Recorder) Camera(id CameraID) (CameraRecord, bool) {
	cam, ok := r.cameras[id]
	if !ok {
		return CameraRecord{}, false
	}
	return *cam, true
}

// CameraCount returns the number of cameras ever created.
func (r *Recorder) CameraCount() int {
	return len(r.cameras)
}

// ClippingPlane returns the stored record for a live plane.
func (r *Recorder) ClippingPlane(id ClippingPlaneID) (ClippingPlaneRecord, bool) {
	p, ok := r.planes[id]
	return p, ok
}

// ClippingPlaneIDs returns the live plane ids in ascending order.
func (r *Recorder) ClippingPlaneIDs() []ClippingPlaneID {
	return slices.Sorted(maps.Keys(r.planes))
}

// DefaultDicingCamera returns the camera last registered for dicing.
func (r *Recorder) DefaultDicingCamera() CameraID {
	return r.dicing
}

// Ops returns the operation log, one line per Session call. Callers must
// not modify the returned slice.
func (r *Recorder) Ops() []string {
	return r.ops
}

func (r *Recorder) logf(format string, args ...any) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}
