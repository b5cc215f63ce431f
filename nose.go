package facefilter

// Nose centers its asset between the nostril wings.
type Nose struct{}

// LandmarkIndices implements Policy.
func (Nose) LandmarkIndices() (int, int) { return meshNoseWingLeft, meshNoseWingRight }

// Params implements Policy.
func (Nose) Params() FilterParams {
	return FilterParams{
		MinDistance:  10,
		MaxDistance:  200,
		WidthFactor:  2.2,
		HeightFactor: 2.0,
		MinWidth:     25,
		MaxWidth:     300,
		MinHeight:    25,
		MaxHeight:    300,
	}
}

// Position implements Policy: centered on the nostril midpoint.
func (Nose) Position(asset *Image, landmarks []Point) (int, int) {
	m := landmarks[meshNoseWingLeft].Midpoint(landmarks[meshNoseWingRight])
	return int(m.X) - asset.Width()/2, int(m.Y) - asset.Height()/2
}
