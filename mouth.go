package facefilter

// Mouth centers its asset on the line between the mouth corners.
type Mouth struct{}

// LandmarkIndices implements Policy.
func (Mouth) LandmarkIndices() (int, int) { return meshMouthLeft, meshMouthRight }

// Params implements Policy.
func (Mouth) Params() FilterParams {
	return FilterParams{
		MinDistance:  15,
		MaxDistance:  250,
		WidthFactor:  1.8,
		HeightFactor: 1.2,
		MinWidth:     30,
		MaxWidth:     400,
		MinHeight:    20,
		MaxHeight:    300,
	}
}

// Position implements Policy: centered on the mouth-corner midpoint.
func (Mouth) Position(asset *Image, landmarks []Point) (int, int) {
	m := landmarks[meshMouthLeft].Midpoint(landmarks[meshMouthRight])
	return int(m.X) - asset.Width()/2, int(m.Y) - asset.Height()/2
}
