package scene

import (
	"fmt"
	"math"

	"github.com/qmuntal/gltf"
	"github.com/renderloop/viewfinder/pkg/geom"
)

// LoadCameras reads a glTF or GLB file and returns a logical camera for
// every camera instanced by a node. Cameras no node references carry no
// transform and are skipped.
func LoadCameras(path string) ([]*Camera, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf: %w", err)
	}
	return CamerasFromDocument(doc), nil
}

// CamerasFromDocument resolves the cameras of an in-memory glTF document.
// Node transforms compose down the scene hierarchy, starting from the
// default scene (the first one when none is marked default) or, in
// documents without scenes, from every node that is no node's child.
func CamerasFromDocument(doc *gltf.Document) []*Camera {
	var cams []*Camera

	var walk func(idx int, parentPath string, parentWorld geom.Mat4)
	walk = func(idx int, parentPath string, parentWorld geom.Mat4) {
		if idx < 0 || idx >= len(doc.Nodes) {
			return
		}
		node := doc.Nodes[idx]
		path := parentPath + "/" + nodeName(node, idx)
		world := nodeLocal(node).Mul(parentWorld)

		if node.Camera != nil && *node.Camera >= 0 && *node.Camera < len(doc.Cameras) {
			if cam := cameraFromGLTF(doc.Cameras[*node.Camera], path, world); cam != nil {
				cams = append(cams, cam)
			}
		}
		for _, child := range node.Children {
			walk(child, path, world)
		}
	}

	for _, root := range rootNodes(doc) {
		walk(root, "", geom.Identity())
	}
	return cams
}

// rootNodes returns the node indices traversal starts from.
func rootNodes(doc *gltf.Document) []int {
	if len(doc.Scenes) > 0 {
		s := 0
		if doc.Scene != nil && *doc.Scene >= 0 && *doc.Scene < len(doc.Scenes) {
			s = *doc.Scene
		}
		return doc.Scenes[s].Nodes
	}

	referenced := make(map[int]bool)
	for _, n := range doc.Nodes {
		for _, c := range n.Children {
			referenced[c] = true
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !referenced[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

func nodeName(n *gltf.Node, idx int) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("node%d", idx)
}

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// nodeLocal returns the node's local transform. glTF stores column-major
// matrices applied to column vectors; that memory layout is element-for-
// element identical to our row-major row-vector layout, so the array
// converts directly. Zero-value fields count as unset, which covers both
// decoded documents and documents built in memory.
func nodeLocal(n *gltf.Node) geom.Mat4 {
	if n.Matrix != ([16]float64{}) && n.Matrix != identityMatrix {
		return geom.Mat4(n.Matrix)
	}

	local := geom.Identity()
	if n.Scale != ([3]float64{}) && n.Scale != ([3]float64{1, 1, 1}) {
		local = local.Mul(geom.Scale(geom.V3(n.Scale[0], n.Scale[1], n.Scale[2])))
	}
	if n.Rotation != ([4]float64{}) && n.Rotation != ([4]float64{0, 0, 0, 1}) {
		local = local.Mul(geom.RotateQuat(n.Rotation[0], n.Rotation[1], n.Rotation[2], n.Rotation[3]))
	}
	if n.Translation != ([3]float64{}) {
		local = local.Mul(geom.Translate(geom.V3(n.Translation[0], n.Translation[1], n.Translation[2])))
	}
	return local
}

// cameraFromGLTF maps a glTF camera onto the filmback model. A perspective
// yfov becomes the focal length that reproduces it on the film-standard
// vertical aperture, tan(yfov/2) = (aperture/2) / focalLength; the
// horizontal aperture follows the declared aspect ratio.
func cameraFromGLTF(g *gltf.Camera, path string, world geom.Mat4) *Camera {
	cam := NewCamera(path)
	cam.TimeSampleXforms = []XformSample{{Time: 0, Value: world}}

	switch {
	case g.Perspective != nil:
		p := g.Perspective
		aspect := 1.0
		if p.AspectRatio != nil && *p.AspectRatio > 0 {
			aspect = *p.AspectRatio
		}
		cam.Projection = Perspective
		cam.VerticalAperture = DefaultVerticalAperture
		cam.HorizontalAperture = float32(DefaultVerticalAperture * aspect)
		if t := math.Tan(p.Yfov / 2); t > 0 {
			cam.FocalLength = float32(DefaultVerticalAperture / 2 / t)
		}
		far := float32(math.MaxFloat32) // glTF allows an infinite far plane
		if p.Zfar != nil {
			far = float32(*p.Zfar)
		}
		cam.ClippingRange = ClippingRange{Near: float32(p.Znear), Far: far}
	case g.Orthographic != nil:
		o := g.Orthographic
		cam.Projection = Orthographic
		cam.HorizontalAperture = float32(2 * o.Xmag)
		cam.VerticalAperture = float32(2 * o.Ymag)
		cam.ClippingRange = ClippingRange{Near: float32(o.Znear), Far: float32(o.Zfar)}
	default:
		// A camera with no projection at all; nothing to render with.
		return nil
	}
	return cam
}
