package facefilter

import "fmt"

// MediaPipe face mesh indices used by the built-in variants. Coordinates
// are in image space: "left" means image-left (the subject's right side).
const (
	meshTempleLeft    = 127
	meshTempleRight   = 356
	meshEyeOuterLeft  = 33
	meshEyeOuterRight = 263
	meshNoseWingLeft  = 98
	meshNoseWingRight = 327
	meshMouthLeft     = 61
	meshMouthRight    = 291
	meshFaceOvalLeft  = 234
	meshFaceOvalRight = 454
)

// Policy supplies the per-variant behavior composed into the shared filter
// pipeline: which two landmarks anchor the effect, how the asset scales
// with the anchor distance, and where the rendered asset is placed.
//
// Implementations must be pure: deterministic, depending only on their
// inputs, with no hidden mutable state.
type Policy interface {
	// LandmarkIndices returns the two indices into the landmark sequence
	// that anchor this variant. Their distance drives the asset scale and
	// their angle drives the asset rotation.
	LandmarkIndices() (int, int)

	// Params returns the scaling and clamping parameters for this variant.
	Params() FilterParams

	// Position returns the top-left frame coordinate at which to place the
	// scaled and rotated asset. The pipeline guarantees that landmarks
	// contains valid points at both anchor indices before calling.
	Position(asset *Image, landmarks []Point) (x, y int)
}

// paramsOverride wraps a policy with replacement parameters, keeping its
// anchor selection and placement rule.
type paramsOverride struct {
	Policy
	params FilterParams
}

func (o paramsOverride) Params() FilterParams { return o.params }

// WithParams returns a copy of policy with its parameters replaced.
// The replacement is validated; inverted bounds fail here, at configuration
// time, rather than during per-frame processing.
func WithParams(policy Policy, params FilterParams) (Policy, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: nil policy", ErrInvalidParams)
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return paramsOverride{Policy: policy, params: params}, nil
}
