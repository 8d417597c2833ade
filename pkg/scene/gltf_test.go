package scene

import (
	"math"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/renderloop/viewfinder/pkg/geom"
)

func idx(i int) *int {
	return &i
}

func f64(v float64) *float64 {
	return &v
}

func TestCamerasFromDocumentPerspective(t *testing.T) {
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{
				AspectRatio: f64(2.0),
				Yfov:        math.Pi / 2,
				Znear:       0.1,
			}},
		},
		Nodes: []*gltf.Node{
			{Name: "cam", Camera: idx(0), Translation: [3]float64{1, 2, 3}},
		},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}
	cam := cams[0]

	if cam.Path != "/cam" {
		t.Errorf("Path = %q, want /cam", cam.Path)
	}
	if cam.Projection != Perspective {
		t.Error("projection should be perspective")
	}

	// tan(yfov/2) = 1, so the focal length equals half the vertical
	// aperture.
	if math.Abs(float64(cam.FocalLength)-DefaultVerticalAperture/2) > 1e-4 {
		t.Errorf("focal length = %v, want %v", cam.FocalLength, DefaultVerticalAperture/2)
	}
	if math.Abs(float64(cam.HorizontalAperture)-2*DefaultVerticalAperture) > 1e-4 {
		t.Errorf("horizontal aperture = %v, want %v", cam.HorizontalAperture, 2*DefaultVerticalAperture)
	}

	// The mapping must round-trip the field of view.
	yfov := 2 * math.Atan(float64(cam.VerticalAperture)/2/float64(cam.FocalLength))
	if math.Abs(yfov-math.Pi/2) > 1e-5 {
		t.Errorf("yfov round-trips to %v, want %v", yfov, math.Pi/2)
	}

	if math.Abs(float64(cam.ClippingRange.Near)-0.1) > 1e-7 {
		t.Errorf("near = %v, want 0.1", cam.ClippingRange.Near)
	}
	if cam.ClippingRange.Far != math.MaxFloat32 {
		t.Errorf("far = %v, want unbounded", cam.ClippingRange.Far)
	}

	if len(cam.TimeSampleXforms) != 1 {
		t.Fatalf("xform samples = %d, want 1", len(cam.TimeSampleXforms))
	}
	if tr := cam.TimeSampleXforms[0].Value.Translation(); tr != geom.V3(1, 2, 3) {
		t.Errorf("world translation = %v, want (1, 2, 3)", tr)
	}
}

func TestCamerasFromDocumentOrthographic(t *testing.T) {
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Orthographic: &gltf.Orthographic{Xmag: 2, Ymag: 1.5, Znear: 1, Zfar: 100}},
		},
		Nodes:  []*gltf.Node{{Name: "ortho", Camera: idx(0)}},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}
	cam := cams[0]

	if cam.Projection != Orthographic {
		t.Error("projection should be orthographic")
	}
	if cam.HorizontalAperture != 4 || cam.VerticalAperture != 3 {
		t.Errorf("aperture = %v x %v, want 4 x 3", cam.HorizontalAperture, cam.VerticalAperture)
	}
	if cam.ClippingRange != (ClippingRange{1, 100}) {
		t.Errorf("clipping range = %v", cam.ClippingRange)
	}
	if cam.FocalLength != 0 {
		t.Error("orthographic cameras have no focal length")
	}
}

func TestCamerasFromDocumentHierarchy(t *testing.T) {
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{Yfov: 1, Znear: 0.1}},
		},
		Nodes: []*gltf.Node{
			{Name: "rig", Children: []int{1}, Translation: [3]float64{10, 0, 0}},
			{Name: "cam", Camera: idx(0), Translation: [3]float64{0, 5, 0}},
		},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}
	if cams[0].Path != "/rig/cam" {
		t.Errorf("Path = %q, want /rig/cam", cams[0].Path)
	}
	if tr := cams[0].TimeSampleXforms[0].Value.Translation(); tr != geom.V3(10, 5, 0) {
		t.Errorf("world translation = %v, want (10, 5, 0)", tr)
	}
}

func TestCamerasFromDocumentTRS(t *testing.T) {
	s := math.Sin(math.Pi / 4)
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{Yfov: 1, Znear: 0.1}},
		},
		Nodes: []*gltf.Node{
			{
				Name:        "cam",
				Camera:      idx(0),
				Scale:       [3]float64{2, 2, 2},
				Rotation:    [4]float64{0, s, 0, s}, // 90 degrees about Y
				Translation: [3]float64{0, 0, -10},
			},
		},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}

	// Scale, then rotate, then translate: (1,0,0) -> (2,0,0) -> (0,0,-2)
	// -> (0,0,-12).
	got := cams[0].TimeSampleXforms[0].Value.MulVec3(geom.V3(1, 0, 0))
	want := geom.V3(0, 0, -12)
	if math.Abs(got.X-want.X) > 1e-9 || math.Abs(got.Y-want.Y) > 1e-9 || math.Abs(got.Z-want.Z) > 1e-9 {
		t.Errorf("transformed point = %v, want %v", got, want)
	}
}

func TestCamerasFromDocumentMatrixNode(t *testing.T) {
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{Yfov: 1, Znear: 0.1}},
		},
		Nodes: []*gltf.Node{
			{
				Camera: idx(0),
				Matrix: [16]float64{
					1, 0, 0, 0,
					0, 1, 0, 0,
					0, 0, 1, 0,
					1, 2, 3, 1,
				},
			},
		},
		Scenes: []*gltf.Scene{{Nodes: []int{0}}},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}
	if cams[0].Path != "/node0" {
		t.Errorf("Path = %q, want fallback /node0", cams[0].Path)
	}
	if tr := cams[0].TimeSampleXforms[0].Value.Translation(); tr != geom.V3(1, 2, 3) {
		t.Errorf("world translation = %v, want (1, 2, 3)", tr)
	}
}

func TestCamerasFromDocumentSkipsBrokenReferences(t *testing.T) {
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{}, // neither perspective nor orthographic
		},
		Nodes: []*gltf.Node{
			{Name: "empty", Camera: idx(0)},
			{Name: "dangling", Camera: idx(7)},
			{Name: "plain"},
		},
		Scenes: []*gltf.Scene{{Nodes: []int{0, 1, 2}}},
	}

	if cams := CamerasFromDocument(doc); len(cams) != 0 {
		t.Errorf("got %d cameras, want 0", len(cams))
	}
}

func TestCamerasFromDocumentWithoutScenes(t *testing.T) {
	// Without scenes, traversal starts at nodes that are no node's child,
	// so the camera is found exactly once.
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{Yfov: 1, Znear: 0.1}},
		},
		Nodes: []*gltf.Node{
			{Name: "rig", Children: []int{1}},
			{Name: "cam", Camera: idx(0)},
		},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 {
		t.Fatalf("got %d cameras, want 1", len(cams))
	}
	if cams[0].Path != "/rig/cam" {
		t.Errorf("Path = %q, want /rig/cam", cams[0].Path)
	}
}

func TestCamerasFromDocumentDefaultScene(t *testing.T) {
	doc := &gltf.Document{
		Cameras: []*gltf.Camera{
			{Perspective: &gltf.Perspective{Yfov: 1, Znear: 0.1}},
		},
		Nodes: []*gltf.Node{
			{Name: "a", Camera: idx(0)},
			{Name: "b", Camera: idx(0)},
		},
		Scene: idx(1),
		Scenes: []*gltf.Scene{
			{Nodes: []int{0}},
			{Nodes: []int{1}},
		},
	}

	cams := CamerasFromDocument(doc)
	if len(cams) != 1 || cams[0].Path != "/b" {
		t.Fatalf("default scene not honored: %v", cams)
	}
}

func TestLoadCamerasInvalidPath(t *testing.T) {
	_, err := LoadCameras("/nonexistent/scene.gltf")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}
