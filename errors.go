package primebmp

import (
	"github.com/gogpu/primebmp/internal/bmp"
	"github.com/gogpu/primebmp/internal/image"
	"github.com/gogpu/primebmp/internal/parallel"
)

// Errors reported by New and the render methods. Use errors.Is to match.
var (
	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = bmp.ErrInvalidDimensions

	// ErrTooLarge is returned when width*height does not fit in 32 bits or
	// the encoded file would exceed the 32-bit size field.
	ErrTooLarge = bmp.ErrTooLarge

	// ErrPixelCount is returned by the encoder for a buffer whose length is
	// not width*height.
	ErrPixelCount = bmp.ErrPixelCount

	// ErrSizeMismatch is returned when a classification does not cover the
	// image exactly.
	ErrSizeMismatch = image.ErrSizeMismatch

	// ErrInvalidWorkers is returned for a non-positive worker count.
	ErrInvalidWorkers = parallel.ErrInvalidWorkers
)
