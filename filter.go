package facefilter

import (
	"errors"
	"fmt"
	"image"

	intimage "github.com/gogpu/facefilter/internal/image"
)

// Image is the pixel buffer type used for frames and assets: straight-alpha
// RGBA, mutable, owned by the caller for frames and by the filter for
// assets.
type Image = intimage.Buffer

// Construction errors.
var (
	// ErrNoAssets is returned when the assets directory yields no
	// decodable images. A filter without assets is unusable.
	ErrNoAssets = errors.New("facefilter: no assets loaded")

	// ErrNilPolicy is returned when a filter is constructed without a
	// placement policy.
	ErrNilPolicy = errors.New("facefilter: nil policy")
)

// NewImage creates a transparent Image with the given dimensions.
func NewImage(width, height int) (*Image, error) {
	return intimage.New(width, height)
}

// LoadImage loads an image file (PNG, JPEG, GIF, WebP, BMP) into an Image.
func LoadImage(path string) (*Image, error) {
	return intimage.Load(path)
}

// ImageFromStdImage converts a standard library image.Image into an Image.
func ImageFromStdImage(img image.Image) *Image {
	return intimage.FromStdImage(img)
}

// FlipHorizontal returns a mirrored copy of img (selfie view).
func FlipHorizontal(img *Image) *Image {
	return intimage.FlipHorizontal(img)
}

// FaceFilter overlays one asset collection onto frames using a placement
// policy. The asset collection and policy are fixed at construction; the
// current-asset cursor is the only mutable state.
//
// A FaceFilter performs no internal locking. Callers applying the same
// instance from multiple goroutines must serialize access themselves.
type FaceFilter struct {
	policy Policy
	assets []*Image
	cursor int
}

// New creates a filter that loads every decodable image under assetsPath
// (lexical filename order) as its asset collection. It fails if the
// directory yields no assets or the policy parameters are invalid.
func New(assetsPath string, policy Policy) (*FaceFilter, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if err := policy.Params().Validate(); err != nil {
		return nil, err
	}
	assets, err := intimage.LoadDir(assetsPath)
	if err != nil {
		if errors.Is(err, intimage.ErrNoAssets) {
			return nil, fmt.Errorf("%w: %q", ErrNoAssets, assetsPath)
		}
		return nil, fmt.Errorf("facefilter: load assets: %w", err)
	}
	Logger().Info("assets loaded", "path", assetsPath, "count", len(assets))
	return &FaceFilter{policy: policy, assets: assets}, nil
}

// NewFromImages creates a filter from an already-decoded asset collection.
func NewFromImages(assets []*Image, policy Policy) (*FaceFilter, error) {
	if policy == nil {
		return nil, ErrNilPolicy
	}
	if err := policy.Params().Validate(); err != nil {
		return nil, err
	}
	if len(assets) == 0 {
		return nil, ErrNoAssets
	}
	return &FaceFilter{policy: policy, assets: assets}, nil
}

// Convenience constructors for the built-in variants.

// NewHat creates a hat filter from the given assets directory.
func NewHat(assetsPath string) (*FaceFilter, error) { return New(assetsPath, Hat{}) }

// NewGlasses creates a glasses filter from the given assets directory.
func NewGlasses(assetsPath string) (*FaceFilter, error) { return New(assetsPath, Glasses{}) }

// NewNose creates a nose filter from the given assets directory.
func NewNose(assetsPath string) (*FaceFilter, error) { return New(assetsPath, Nose{}) }

// NewMouth creates a mouth filter from the given assets directory.
func NewMouth(assetsPath string) (*FaceFilter, error) { return New(assetsPath, Mouth{}) }

// NewFaceMask creates a full-face mask filter from the given assets directory.
func NewFaceMask(assetsPath string) (*FaceFilter, error) { return New(assetsPath, FaceMask{}) }

// Policy returns the placement policy this filter was built with.
func (f *FaceFilter) Policy() Policy { return f.policy }

// AssetsSize returns the number of assets in the collection.
func (f *FaceFilter) AssetsSize() int { return len(f.assets) }

// CurrentIndex returns the index of the active asset.
func (f *FaceFilter) CurrentIndex() int { return f.cursor }

// SetCurrentIndex selects the active asset as idx modulo the asset count.
// Any integer is accepted; negative values wrap from the end.
func (f *FaceFilter) SetCurrentIndex(idx int) {
	n := len(f.assets)
	f.cursor = ((idx % n) + n) % n
}

// IncrementIndex advances the active asset, wrapping past the end.
func (f *FaceFilter) IncrementIndex() { f.SetCurrentIndex(f.cursor + 1) }

// DecrementIndex steps the active asset back, wrapping past the start.
func (f *FaceFilter) DecrementIndex() { f.SetCurrentIndex(f.cursor - 1) }

// CurrentAsset returns the active asset image.
func (f *FaceFilter) CurrentAsset() *Image { return f.assets[f.cursor] }

// ApplyFilter composites the active asset onto frame, anchored to the
// policy's landmark pair, and returns the frame.
//
// The frame is modified in place only when every pipeline gate passes;
// any miss (anchor index out of range, invalid landmark, distance outside
// the trusted range, placement entirely off-frame) returns the frame
// byte-for-byte unchanged. Misses are expected transient conditions in a
// live stream, not errors.
func (f *FaceFilter) ApplyFilter(frame *Image, landmarks []Point, frameSize Size) *Image {
	if frame == nil || len(f.assets) == 0 {
		return frame
	}

	i1, i2 := f.policy.LandmarkIndices()
	if i1 < 0 || i2 < 0 || i1 >= len(landmarks) || i2 >= len(landmarks) {
		Logger().Debug("skip: anchor index out of range", "i1", i1, "i2", i2, "landmarks", len(landmarks))
		return frame
	}
	p1, p2 := landmarks[i1], landmarks[i2]
	if !validLandmark(p1) || !validLandmark(p2) {
		Logger().Debug("skip: anchor landmark not detected", "p1", p1, "p2", p2)
		return frame
	}

	d := p1.Distance(p2)
	params := f.policy.Params()
	if d < params.MinDistance || d > params.MaxDistance {
		Logger().Debug("skip: anchor distance out of trusted range",
			"distance", d, "min", params.MinDistance, "max", params.MaxDistance)
		return frame
	}

	target := params.targetSize(d)
	scaled := intimage.Resize(f.assets[f.cursor], target.Width, target.Height)
	if scaled == nil {
		return frame
	}
	rotated := intimage.Rotate(scaled, p1.Angle(p2))

	x, y := f.policy.Position(rotated, landmarks)
	if !validatePosition(x, y, Size{Width: rotated.Width(), Height: rotated.Height()}, frameSize) {
		Logger().Debug("skip: placement entirely off-frame", "x", x, "y", y)
		return frame
	}

	intimage.Overlay(frame, rotated, x, y)
	return frame
}
