package bmp

import (
	"fmt"
	"io"

	"github.com/gogpu/primebmp/internal/color"
	"github.com/gogpu/primebmp/internal/image"
)

// Encode writes pixels as a 24-bit bitmap to w.
//
// pixels is row-major with row 0 at the top of the picture. Rows are written
// bottom-up (row height-1 first) because the format's origin is the
// bottom-left corner. Within a row, pixels go left to right as B, G, R bytes,
// followed by RowPadding(width) zero bytes.
//
// Dimensions and pixel count are validated before the first byte is written.
// Write errors are returned wrapped.
func Encode(w io.Writer, pixels []color.RGB8, width, height int) error {
	size, err := EncodedSize(width, height)
	if err != nil {
		return err
	}
	if len(pixels) != width*height {
		return fmt.Errorf("%w: got %d pixels for %dx%d", ErrPixelCount, len(pixels), width, height)
	}

	hdr, err := newHeader(width, height, size).MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("bmp: write header: %w", err)
	}

	// Padding bytes at the end of row stay zero across iterations.
	row := make([]byte, RowSize(width))
	for y := height - 1; y >= 0; y-- {
		src := pixels[y*width : (y+1)*width]
		for x, c := range src {
			o := x * BytesPerPixel
			row[o+0] = c.B
			row[o+1] = c.G
			row[o+2] = c.R
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("bmp: write row %d: %w", y, err)
		}
	}
	return nil
}

// EncodeBuf writes buf as a 24-bit bitmap to w.
func EncodeBuf(w io.Writer, buf *image.RGBBuf) error {
	return Encode(w, buf.Pixels(), buf.Width(), buf.Height())
}
