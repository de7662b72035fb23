// Package bmp writes and reads 24-bit uncompressed Windows bitmaps.
//
// The layout is fixed: a 14-byte file header, a 40-byte BITMAPINFOHEADER and
// bottom-up pixel rows in BGR order, each row zero-padded to a multiple of
// four bytes. All multi-byte fields are little-endian.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// Layout constants.
const (
	FileHeaderSize = 14
	InfoHeaderSize = 40
	PixelOffset    = FileHeaderSize + InfoHeaderSize
	BytesPerPixel  = 3
	BitsPerPixel   = BytesPerPixel * 8
	Planes         = 1
)

// Signature is the two-byte magic at offset 0 ("BM").
var Signature = [2]byte{'B', 'M'}

// Errors returned by the encoder and header reader.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("bmp: invalid dimensions")

	// ErrPixelCount is returned when len(pixels) != width*height.
	ErrPixelCount = errors.New("bmp: pixel count does not match width*height")

	// ErrTooLarge is returned when a dimension or the file size does not fit
	// the 32-bit header fields.
	ErrTooLarge = errors.New("bmp: image too large")

	// ErrBadSignature is returned when a file does not start with "BM".
	ErrBadSignature = errors.New("bmp: bad signature")

	// ErrUnsupported is returned for headers other than 24-bit uncompressed.
	ErrUnsupported = errors.New("bmp: unsupported format")
)

// Header is the decoded content of the file and info headers.
type Header struct {
	FileSize    uint32
	DataOffset  uint32
	InfoSize    uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
}

// RowPadding returns the number of zero bytes appended to each row of an
// image of the given width.
func RowPadding(width int) int {
	return (4 - (width*BytesPerPixel)%4) % 4
}

// RowSize returns the on-disk length of one row, padding included.
func RowSize(width int) int {
	return width*BytesPerPixel + RowPadding(width)
}

// EncodedSize returns the total file size for a width x height image.
func EncodedSize(width, height int) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	size := uint64(PixelOffset) + uint64(height)*(uint64(width)*BytesPerPixel+uint64(RowPadding(width)))
	if size > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d bytes", ErrTooLarge, size)
	}
	return uint32(size), nil
}

// newHeader builds the header for a width x height image. Dimensions must
// already be validated by EncodedSize.
func newHeader(width, height int, fileSize uint32) Header {
	return Header{
		FileSize:   fileSize,
		DataOffset: PixelOffset,
		InfoSize:   InfoHeaderSize,
		Width:      int32(width),
		Height:     int32(height),
		Planes:     Planes,
		BitCount:   BitsPerPixel,
	}
}

// MarshalBinary returns the 54 header bytes. Fields not present in Header
// (reserved words, image size, resolution, palette counts) are zero.
func (h Header) MarshalBinary() ([]byte, error) {
	b := make([]byte, PixelOffset)
	le := binary.LittleEndian

	// File header.
	b[0], b[1] = Signature[0], Signature[1]
	le.PutUint32(b[2:], h.FileSize)
	le.PutUint32(b[10:], h.DataOffset)

	// Info header.
	info := b[FileHeaderSize:]
	le.PutUint32(info[0:], h.InfoSize)
	le.PutUint32(info[4:], uint32(h.Width))
	le.PutUint32(info[8:], uint32(h.Height))
	le.PutUint16(info[12:], h.Planes)
	le.PutUint16(info[14:], h.BitCount)
	le.PutUint32(info[16:], h.Compression)

	return b, nil
}

// UnmarshalBinary decodes the first 54 bytes of b.
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) < PixelOffset {
		return fmt.Errorf("bmp: header needs %d bytes, got %d", PixelOffset, len(b))
	}
	if b[0] != Signature[0] || b[1] != Signature[1] {
		return fmt.Errorf("%w: %q", ErrBadSignature, b[:2])
	}

	le := binary.LittleEndian
	info := b[FileHeaderSize:]
	*h = Header{
		FileSize:    le.Uint32(b[2:]),
		DataOffset:  le.Uint32(b[10:]),
		InfoSize:    le.Uint32(info[0:]),
		Width:       int32(le.Uint32(info[4:])),
		Height:      int32(le.Uint32(info[8:])),
		Planes:      le.Uint16(info[12:]),
		BitCount:    le.Uint16(info[14:]),
		Compression: le.Uint32(info[16:]),
	}
	return nil
}
