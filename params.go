package facefilter

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned when a FilterParams value violates its
// invariants. Parameter problems are configuration errors surfaced at
// construction time, never during per-frame processing.
var ErrInvalidParams = errors.New("facefilter: invalid filter params")

// FilterParams tunes how a filter variant scales with the detected face.
//
// MinDistance and MaxDistance bound the anchor landmark separation (in
// pixels) that the variant trusts for its scale estimate; distances outside
// the range skip the frame. WidthFactor and HeightFactor multiply the
// anchor distance to produce the target asset size, which is then clamped
// to the absolute pixel bounds.
type FilterParams struct {
	MinDistance float64
	MaxDistance float64

	WidthFactor  float64
	HeightFactor float64

	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Validate checks the parameter invariants: every min must not exceed its
// max, and both scale factors must be positive.
func (p FilterParams) Validate() error {
	switch {
	case p.MinDistance > p.MaxDistance:
		return fmt.Errorf("%w: distance range [%g, %g]", ErrInvalidParams, p.MinDistance, p.MaxDistance)
	case p.MinWidth > p.MaxWidth:
		return fmt.Errorf("%w: width clamp [%d, %d]", ErrInvalidParams, p.MinWidth, p.MaxWidth)
	case p.MinHeight > p.MaxHeight:
		return fmt.Errorf("%w: height clamp [%d, %d]", ErrInvalidParams, p.MinHeight, p.MaxHeight)
	case p.WidthFactor <= 0:
		return fmt.Errorf("%w: width factor %g", ErrInvalidParams, p.WidthFactor)
	case p.HeightFactor <= 0:
		return fmt.Errorf("%w: height factor %g", ErrInvalidParams, p.HeightFactor)
	}
	return nil
}

// targetSize converts an anchor distance into the asset dimensions to
// render. Width and height are derived independently from their factors;
// HeightFactor always wins over aspect-ratio preservation.
func (p FilterParams) targetSize(distance float64) Size {
	return Size{
		Width:  clampInt(int(distance*p.WidthFactor+0.5), p.MinWidth, p.MaxWidth),
		Height: clampInt(int(distance*p.HeightFactor+0.5), p.MinHeight, p.MaxHeight),
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
