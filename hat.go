package facefilter

// Hat places its asset above the head, anchored to the temples so the hat
// width tracks the head width and its tilt tracks the head roll.
type Hat struct{}

// LandmarkIndices implements Policy.
func (Hat) LandmarkIndices() (int, int) { return meshTempleLeft, meshTempleRight }

// Params implements Policy.
func (Hat) Params() FilterParams {
	return FilterParams{
		MinDistance:  30,
		MaxDistance:  450,
		WidthFactor:  1.6,
		HeightFactor: 1.1,
		MinWidth:     50,
		MaxWidth:     650,
		MinHeight:    35,
		MaxHeight:    500,
	}
}

// Position implements Policy: centered horizontally on the temple midpoint,
// lifted so roughly three quarters of the hat sits above the temple line.
func (Hat) Position(asset *Image, landmarks []Point) (int, int) {
	m := landmarks[meshTempleLeft].Midpoint(landmarks[meshTempleRight])
	w := asset.Width()
	h := asset.Height()
	return int(m.X) - w/2, int(m.Y) - h + h/4
}
