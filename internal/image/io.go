package image

import (
	"bytes"
	"errors"
	"fmt"
	stdimage "image"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"github.com/gogpu/primebmp/internal/color"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("image: empty data")

// LoadBMP loads a BMP file into an RGBBuf.
func LoadBMP(path string) (*RGBBuf, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeBMP(f)
}

// DecodeBMPBytes decodes a BMP held in memory.
func DecodeBMPBytes(data []byte) (*RGBBuf, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return DecodeBMP(bytes.NewReader(data))
}

// DecodeBMP decodes a BMP from r. Decoding is independent of the encoder in
// internal/bmp, so it doubles as a conformance check for written files.
func DecodeBMP(r io.Reader) (*RGBBuf, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode BMP: %w", err)
	}
	return FromStdImage(img)
}

// FromStdImage copies a standard library image into an RGBBuf, dropping alpha.
func FromStdImage(img stdimage.Image) (*RGBBuf, error) {
	bounds := img.Bounds()
	buf, err := NewRGBBuf(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	// Fast path for the RGBA images produced by the BMP decoder.
	if rgba, ok := img.(*stdimage.RGBA); ok {
		for y := 0; y < buf.height; y++ {
			src := rgba.Pix[y*rgba.Stride:]
			row := buf.Row(y)
			for x := range row {
				row[x] = color.RGB8{R: src[x*4], G: src[x*4+1], B: src[x*4+2]}
			}
		}
		return buf, nil
	}

	for y := 0; y < buf.height; y++ {
		for x := 0; x < buf.width; x++ {
			buf.pix[y*buf.width+x] = color.FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
		}
	}
	return buf, nil
}
