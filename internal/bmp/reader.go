package bmp

import (
	"fmt"
	"io"
)

// ReadHeader reads and validates the 54-byte header at the start of r.
// Only 24-bit uncompressed bitmaps with a 40-byte info header are accepted.
func ReadHeader(r io.Reader) (*Header, error) {
	b := make([]byte, PixelOffset)
	if _, err := io.ReadFull(r, b); err != nil {
		return nil, fmt.Errorf("bmp: read header: %w", err)
	}

	var h Header
	if err := h.UnmarshalBinary(b); err != nil {
		return nil, err
	}

	switch {
	case h.InfoSize != InfoHeaderSize:
		return nil, fmt.Errorf("%w: info header size %d", ErrUnsupported, h.InfoSize)
	case h.BitCount != BitsPerPixel:
		return nil, fmt.Errorf("%w: %d bits per pixel", ErrUnsupported, h.BitCount)
	case h.Compression != 0:
		return nil, fmt.Errorf("%w: compression %d", ErrUnsupported, h.Compression)
	}
	return &h, nil
}
