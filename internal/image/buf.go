// Package image provides the pixel buffer and raster operations for
// github.com/gogpu/facefilter.
package image

import (
	"errors"
	"image"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// Buffer is a straight-alpha RGBA pixel buffer, 4 bytes per pixel.
//
// The data layout matches image.NRGBA (non-premultiplied), which lets the
// transform functions wrap a Buffer for golang.org/x/image/draw without
// copying. Buffer is safe for concurrent reads; writes require external
// synchronization.
type Buffer struct {
	width  int
	height int
	data   []uint8
}

// New creates a fully transparent buffer with the given dimensions.
func New(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}, nil
}

// FromRaw wraps an existing RGBA byte slice without copying.
// The slice must hold at least width*height*4 bytes.
func FromRaw(data []uint8, width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(data) < width*height*4 {
		return nil, ErrDataTooSmall
	}
	return &Buffer{width: width, height: height, data: data}, nil
}

// Width returns the width of the buffer in pixels.
func (b *Buffer) Width() int { return b.width }

// Height returns the height of the buffer in pixels.
func (b *Buffer) Height() int { return b.height }

// Data returns the raw pixel data (straight-alpha RGBA, row-major).
func (b *Buffer) Data() []uint8 { return b.data }

// SetRGBA sets a single pixel. Out-of-bounds coordinates are ignored.
func (b *Buffer) SetRGBA(x, y int, r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.data[i+0] = r
	b.data[i+1] = g
	b.data[i+2] = bl
	b.data[i+3] = a
}

// GetRGBA returns a single pixel. Out-of-bounds coordinates read as
// transparent black.
func (b *Buffer) GetRGBA(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return 0, 0, 0, 0
	}
	i := (y*b.width + x) * 4
	return b.data[i+0], b.data[i+1], b.data[i+2], b.data[i+3]
}

// Fill sets every pixel to the given color.
func (b *Buffer) Fill(r, g, bl, a uint8) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i+0] = r
		b.data[i+1] = g
		b.data[i+2] = bl
		b.data[i+3] = a
	}
}

// Clone returns a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]uint8, len(b.data))
	copy(data, b.data)
	return &Buffer{width: b.width, height: b.height, data: data}
}

// ToNRGBA wraps the buffer as an *image.NRGBA sharing the same pixel data.
// Mutating the returned image mutates the buffer.
func (b *Buffer) ToNRGBA() *image.NRGBA {
	return &image.NRGBA{
		Pix:    b.data,
		Stride: b.width * 4,
		Rect:   image.Rect(0, 0, b.width, b.height),
	}
}

// FromStdImage creates a Buffer from a standard library image.Image.
func FromStdImage(img image.Image) *Buffer {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	buf := &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}

	// Fast path for NRGBA: same layout, straight alpha.
	if nrgba, ok := img.(*image.NRGBA); ok {
		rowLen := width * 4
		for y := 0; y < height; y++ {
			srcStart := (bounds.Min.Y+y-nrgba.Rect.Min.Y)*nrgba.Stride + (bounds.Min.X-nrgba.Rect.Min.X)*4
			copy(buf.data[y*rowLen:(y+1)*rowLen], nrgba.Pix[srcStart:srcStart+rowLen])
		}
		return buf
	}

	// Generic path for any image type. RGBA() returns 16-bit premultiplied
	// values; un-premultiply so the buffer keeps straight alpha.
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			r, g, bl, a := c.RGBA()
			i := (y*width + x) * 4
			if a == 0 {
				continue
			}
			buf.data[i+0] = uint8((r * 0xffff / a) >> 8)
			buf.data[i+1] = uint8((g * 0xffff / a) >> 8)
			buf.data[i+2] = uint8((bl * 0xffff / a) >> 8)
			buf.data[i+3] = uint8(a >> 8)
		}
	}
	return buf
}
