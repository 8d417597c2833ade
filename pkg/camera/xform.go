package camera

import (
	"github.com/renderloop/viewfinder/pkg/engine"
	"github.com/renderloop/viewfinder/pkg/geom"
	"github.com/renderloop/viewfinder/pkg/scene"
)

// handednessFlip converts the camera's right-handed view space, looking
// down -Z, to the engine's left-handed one looking down +Z.
var handednessFlip = geom.Scale(geom.V3(1, 1, -1))

// transformFromSamples converts time-sampled scene transforms to the wire
// transform. flipHandedness premultiplies the view-space flip, which
// camera transforms need and clipping plane transforms must not get.
func transformFromSamples(samples []scene.XformSample, flipHandedness bool) engine.Transform {
	matrices := make([]engine.Matrix, len(samples))
	times := make([]float32, len(samples))
	for i, s := range samples {
		m := s.Value
		if flipHandedness {
			m = handednessFlip.Mul(m)
		}
		matrices[i] = engine.MatrixFrom(m)
		times[i] = s.Time
	}
	return engine.Transform{Matrices: matrices, Times: times}
}
