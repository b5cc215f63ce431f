package facefilter

// FaceMask covers the whole face, anchored to the widest points of the
// face oval.
type FaceMask struct{}

// LandmarkIndices implements Policy.
func (FaceMask) LandmarkIndices() (int, int) { return meshFaceOvalLeft, meshFaceOvalRight }

// Params implements Policy.
func (FaceMask) Params() FilterParams {
	return FilterParams{
		MinDistance:  40,
		MaxDistance:  500,
		WidthFactor:  1.3,
		HeightFactor: 1.7,
		MinWidth:     60,
		MaxWidth:     700,
		MinHeight:    80,
		MaxHeight:    900,
	}
}

// Position implements Policy: centered on the face-oval midpoint.
func (FaceMask) Position(asset *Image, landmarks []Point) (int, int) {
	m := landmarks[meshFaceOvalLeft].Midpoint(landmarks[meshFaceOvalRight])
	return int(m.X) - asset.Width()/2, int(m.Y) - asset.Height()/2
}
