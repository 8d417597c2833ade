package camera

import (
	"testing"

	"github.com/renderloop/viewfinder/pkg/framing"
	"github.com/renderloop/viewfinder/pkg/geom"
	"github.com/renderloop/viewfinder/pkg/scene"
)

func BenchmarkComputeScreenWindow(b *testing.B) {
	cam := scene.NewCamera("/bench/cam")
	cam.FocalLength = 50
	f := framing.FromDataWindow(geom.R2i(0, 0, 1920, 1080))
	bufSize := geom.V2i(1920, 1080)

	for b.Loop() {
		computeScreenWindow(cam, f, framing.Fit, bufSize)
	}
}

func BenchmarkComputeCropWindow(b *testing.B) {
	dataWindow := geom.R2i(128, 72, 1792, 1008)
	bufSize := geom.V2i(1920, 1080)

	for b.Loop() {
		computeCropWindow(dataWindow, bufSize)
	}
}

func BenchmarkClipPlaneParams(b *testing.B) {
	plane := geom.V4(0.3, 0.5, 0.9, -12)

	for b.Loop() {
		clipPlaneParams(plane)
	}
}
