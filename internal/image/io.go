package image

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	// Registered decoders for Decode's format sniffing.
	_ "image/gif"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNoAssets is returned when a directory contains no decodable images.
var ErrNoAssets = errors.New("image: no decodable images in directory")

// Load loads an image from the given file path, auto-detecting the format.
// Supported formats: PNG, JPEG, GIF, WebP, BMP.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img), nil
}

// LoadDir loads every decodable image in dir, in lexical filename order.
// Files that fail to decode are skipped. Returns ErrNoAssets if nothing
// in the directory decodes.
func LoadDir(dir string) ([]*Buffer, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("image: read directory: %w", err)
	}

	var bufs []*Buffer
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		buf, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			continue
		}
		bufs = append(bufs, buf)
	}
	if len(bufs) == 0 {
		return nil, fmt.Errorf("image: %q: %w", dir, ErrNoAssets)
	}
	return bufs, nil
}

// SavePNG saves the buffer to a PNG file.
func (b *Buffer) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := png.Encode(f, b.ToNRGBA()); err != nil {
		_ = f.Close()
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return f.Close()
}

// SaveJPEG saves the buffer to a JPEG file with the given quality (1-100).
func (b *Buffer) SaveJPEG(path string, quality int) error {
	if quality < 1 {
		quality = 1
	}
	if quality > 100 {
		quality = 100
	}
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := jpeg.Encode(f, b.ToNRGBA(), &jpeg.Options{Quality: quality}); err != nil {
		_ = f.Close()
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return f.Close()
}

// Save writes the buffer to path, choosing the encoder from the extension.
// ".jpg"/".jpeg" encode as JPEG (quality 92), everything else as PNG.
func (b *Buffer) Save(path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return b.SaveJPEG(path, 92)
	default:
		return b.SavePNG(path)
	}
}
