package facefilter

// Glasses centers its asset on the line between the outer eye corners.
type Glasses struct{}

// LandmarkIndices implements Policy.
func (Glasses) LandmarkIndices() (int, int) { return meshEyeOuterLeft, meshEyeOuterRight }

// Params implements Policy.
func (Glasses) Params() FilterParams {
	return FilterParams{
		MinDistance:  25,
		MaxDistance:  400,
		WidthFactor:  1.5,
		HeightFactor: 0.6,
		MinWidth:     40,
		MaxWidth:     600,
		MinHeight:    20,
		MaxHeight:    250,
	}
}

// Position implements Policy: centered on the eye-line midpoint.
func (Glasses) Position(asset *Image, landmarks []Point) (int, int) {
	m := landmarks[meshEyeOuterLeft].Midpoint(landmarks[meshEyeOuterRight])
	return int(m.X) - asset.Width()/2, int(m.Y) - asset.Height()/2
}
