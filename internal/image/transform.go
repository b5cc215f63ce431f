package image

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Resize returns src scaled to width x height using bilinear interpolation.
// Returns nil for non-positive target dimensions.
func Resize(src *Buffer, width, height int) *Buffer {
	if src == nil || width <= 0 || height <= 0 {
		return nil
	}
	if width == src.width && height == src.height {
		return src.Clone()
	}
	dst, _ := New(width, height)
	draw.BiLinear.Scale(dst.ToNRGBA(), image.Rect(0, 0, width, height), src.ToNRGBA(), src.ToNRGBA().Rect, draw.Src, nil)
	return dst
}

// Rotate returns src rotated about its own center by angle degrees.
// Positive angles rotate clockwise in screen coordinates (y down). The
// output canvas is expanded, never cropped, to contain the rotated content;
// uncovered pixels are transparent. The alpha channel goes through the same
// bilinear transform as the color channels.
//
// A zero angle returns a pixel-identical copy.
func Rotate(src *Buffer, angle float64) *Buffer {
	if src == nil {
		return nil
	}
	if angle == 0 {
		return src.Clone()
	}

	rad := angle * math.Pi / 180
	sin, cos := math.Sincos(rad)
	w := float64(src.width)
	h := float64(src.height)

	// Expanded canvas: projections of the rotated rectangle.
	nw := int(math.Ceil(math.Abs(w*cos) + math.Abs(h*sin)))
	nh := int(math.Ceil(math.Abs(w*sin) + math.Abs(h*cos)))
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}

	dst, _ := New(nw, nh)

	// Source-to-destination matrix: translate source center to origin,
	// rotate, translate to destination center.
	cx, cy := w/2, h/2
	dcx, dcy := float64(nw)/2, float64(nh)/2
	m := f64.Aff3{
		cos, -sin, dcx - cos*cx + sin*cy,
		sin, cos, dcy - sin*cx - cos*cy,
	}
	draw.BiLinear.Transform(dst.ToNRGBA(), m, src.ToNRGBA(), src.ToNRGBA().Rect, draw.Over, nil)
	return dst
}

// FlipHorizontal returns a mirrored copy of src (selfie view).
func FlipHorizontal(src *Buffer) *Buffer {
	if src == nil {
		return nil
	}
	dst, _ := New(src.width, src.height)
	for y := 0; y < src.height; y++ {
		row := y * src.width * 4
		for x := 0; x < src.width; x++ {
			si := row + x*4
			di := row + (src.width-1-x)*4
			copy(dst.data[di:di+4], src.data[si:si+4])
		}
	}
	return dst
}
