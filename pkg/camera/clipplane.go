package camera

import (
	"github.com/chewxy/math32"

	"github.com/renderloop/viewfinder/pkg/engine"
	"github.com/renderloop/viewfinder/pkg/geom"
)

// clipPlaneParams converts a plane equation (a, b, c, d) into the engine's
// normal-and-origin form. Planes whose direction vanishes are reported as
// degenerate and skipped by the caller. The math narrows to float32 first,
// matching the precision the parameters ship in.
func clipPlaneParams(plane geom.Vec4) (engine.ParamList, bool) {
	dx := float32(plane.X)
	dy := float32(plane.Y)
	dz := float32(plane.Z)

	length := math32.Sqrt(dx*dx + dy*dy + dz*dz)
	if length == 0 {
		return engine.ParamList{}, false
	}

	nx, ny, nz := dx/length, dy/length, dz/length
	distance := -float32(plane.W) / length

	var params engine.ParamList
	params.SetNormal(engine.ParamPlaneNormal, engine.Normal3{X: nx, Y: ny, Z: nz})
	params.SetPoint(engine.ParamPlaneOrigin, engine.Point3{X: nx * distance, Y: ny * distance, Z: nz * distance})
	return params, true
}
