package framing

import "github.com/renderloop/viewfinder/pkg/geom"

// Policy selects how a window is adjusted when its aspect ratio does not
// match a target aspect ratio.
type Policy int

const (
	// Fit expands the window to the smallest window with the target aspect
	// ratio that contains it. Nothing is cropped away.
	Fit Policy = iota
	// Crop shrinks the window to the largest window with the target aspect
	// ratio contained in it.
	Crop
	// MatchVertically keeps the window height and adjusts the width.
	MatchVertically
	// MatchHorizontally keeps the window width and adjusts the height.
	MatchHorizontally
	// DontConform leaves the window untouched.
	DontConform
)

// String returns the policy name.
func (p Policy) String() string {
	switch p {
	case Fit:
		return "fit"
	case Crop:
		return "crop"
	case MatchVertically:
		return "matchVertically"
	case MatchHorizontally:
		return "matchHorizontally"
	case DontConform:
		return "dontConform"
	}
	return "unknown"
}

// ConformedWindow adjusts window to the target aspect ratio according to
// policy. Every adjustment preserves the window center. Fit and Crop pick
// the axis to adjust from the relation between the window aspect and the
// target aspect; at equal aspects the window passes through unchanged up
// to rounding.
func ConformedWindow(window geom.Range2, policy Policy, targetAspect float64) geom.Range2 {
	switch policy {
	case MatchVertically:
		return conformVertically(window, targetAspect)
	case MatchHorizontally:
		return conformHorizontally(window, targetAspect)
	case DontConform:
		return window
	}

	size := window.Size()
	aspect := safeDiv(size.X, size.Y)
	if (aspect < targetAspect) == (policy == Fit) {
		// Fitting a narrower window or cropping a wider one changes the
		// width; the height is already right.
		return conformVertically(window, targetAspect)
	}
	return conformHorizontally(window, targetAspect)
}

// conformVertically keeps the height and recenters a width of
// height * targetAspect.
func conformVertically(window geom.Range2, targetAspect float64) geom.Range2 {
	halfWidth := 0.5 * window.Size().Y * targetAspect
	centerX := window.Center().X
	return geom.R2(
		geom.V2(centerX-halfWidth, window.Min.Y),
		geom.V2(centerX+halfWidth, window.Max.Y))
}

// conformHorizontally keeps the width and recenters a height of
// width / targetAspect.
func conformHorizontally(window geom.Range2, targetAspect float64) geom.Range2 {
	halfHeight := 0.5 * safeDiv(window.Size().X, targetAspect)
	centerY := window.Center().Y
	return geom.R2(
		geom.V2(window.Min.X, centerY-halfHeight),
		geom.V2(window.Max.X, centerY+halfHeight))
}

// safeDiv divides a by b, logging and falling back to 1 when b is zero.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		Logger().Warn("invalid window dimensions", "num", a)
		return 1
	}
	return a / b
}
