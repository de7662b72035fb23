package image

import (
	"fmt"

	"github.com/gogpu/primebmp/internal/color"
	"github.com/gogpu/primebmp/internal/prime"
)

// MapClasses paints one pixel per classification entry: entry i becomes
// primeColor if it is prime and compositeColor otherwise. Entries fill the
// buffer in row-major order, so len(classes) must equal width*height.
func MapClasses(classes []prime.Class, width, height int, primeColor, compositeColor color.RGB8) (*RGBBuf, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if len(classes) != width*height {
		return nil, fmt.Errorf("%w: got %d classes for %dx%d", ErrSizeMismatch, len(classes), width, height)
	}

	pix := make([]color.RGB8, len(classes))
	for i, c := range classes {
		if c == prime.Prime {
			pix[i] = primeColor
		} else {
			pix[i] = compositeColor
		}
	}
	return &RGBBuf{width: width, height: height, pix: pix}, nil
}

// MapBools is MapClasses for a boolean classification.
func MapBools(isPrime []bool, primeColor, compositeColor color.RGB8) []color.RGB8 {
	pix := make([]color.RGB8, len(isPrime))
	for i, p := range isPrime {
		if p {
			pix[i] = primeColor
		} else {
			pix[i] = compositeColor
		}
	}
	return pix
}
