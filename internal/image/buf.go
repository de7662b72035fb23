// Package image holds the row-major pixel buffer built from a primality
// classification.
package image

import (
	"errors"
	"fmt"
	stdimage "image"
	stdcolor "image/color"

	"github.com/gogpu/primebmp/internal/color"
)

// Common errors for buffer operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrSizeMismatch is returned when the input length is not width*height.
	ErrSizeMismatch = errors.New("image: length does not match width*height")
)

// RGBBuf is a width x height grid of RGB8 pixels in row-major order.
// Row 0 is the first row computed; on-disk ordering is the encoder's concern.
//
// RGBBuf implements image.Image so it can be handed to any standard encoder
// or compared against a decoded file.
type RGBBuf struct {
	width  int
	height int
	pix    []color.RGB8
}

// NewRGBBuf returns a buffer of the given size filled with black.
func NewRGBBuf(width, height int) (*RGBBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &RGBBuf{
		width:  width,
		height: height,
		pix:    make([]color.RGB8, width*height),
	}, nil
}

// FromPixels wraps pix without copying. len(pix) must equal width*height.
func FromPixels(pix []color.RGB8, width, height int) (*RGBBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("%w: got %d pixels for %dx%d", ErrSizeMismatch, len(pix), width, height)
	}
	return &RGBBuf{width: width, height: height, pix: pix}, nil
}

// Width returns the width in pixels.
func (b *RGBBuf) Width() int { return b.width }

// Height returns the height in pixels.
func (b *RGBBuf) Height() int { return b.height }

// Pixels returns the backing slice in row-major order.
func (b *RGBBuf) Pixels() []color.RGB8 { return b.pix }

// Row returns the pixels of row y.
func (b *RGBBuf) Row(y int) []color.RGB8 {
	return b.pix[y*b.width : (y+1)*b.width]
}

// RGB returns the pixel at (x, y). Out-of-range coordinates return black.
func (b *RGBBuf) RGB(x, y int) color.RGB8 {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return color.Black
	}
	return b.pix[y*b.width+x]
}

// Set stores c at (x, y). Out-of-range coordinates are ignored.
func (b *RGBBuf) Set(x, y int, c color.RGB8) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	b.pix[y*b.width+x] = c
}

// ColorModel implements image.Image.
func (b *RGBBuf) ColorModel() stdcolor.Model { return stdcolor.NRGBAModel }

// Bounds implements image.Image.
func (b *RGBBuf) Bounds() stdimage.Rectangle {
	return stdimage.Rect(0, 0, b.width, b.height)
}

// At implements image.Image.
func (b *RGBBuf) At(x, y int) stdcolor.Color { return b.RGB(x, y) }
