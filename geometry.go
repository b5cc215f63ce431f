package facefilter

import "math"

// Size holds pixel dimensions of a frame or asset.
type Size struct {
	Width, Height int
}

// LandmarkNotDetected is the sentinel reported by detectors for a landmark
// they could not resolve in the current frame.
var LandmarkNotDetected = Point{X: -1, Y: -1}

// validLandmark reports whether a landmark point is usable: finite,
// non-negative coordinates that are not the not-detected sentinel.
func validLandmark(p Point) bool {
	if p == LandmarkNotDetected {
		return false
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
		return false
	}
	return p.X >= 0 && p.Y >= 0
}

// validatePosition reports whether the rectangle
// [x, x+asset.Width) x [y, y+asset.Height) has a nonempty intersection with
// the frame. Full containment is not required; partially on-screen overlays
// are composited with clipping. This only rejects placements that are
// entirely off-frame.
func validatePosition(x, y int, asset, frame Size) bool {
	if asset.Width <= 0 || asset.Height <= 0 {
		return false
	}
	return x < frame.Width && y < frame.Height && x+asset.Width > 0 && y+asset.Height > 0
}
