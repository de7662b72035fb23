// Package color provides the 24-bit RGB color used for prime and composite
// pixels.
package color

import (
	"fmt"
	stdcolor "image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB8 is an opaque color with 8-bit red, green and blue channels.
// It is a value type; copies never alias.
type RGB8 struct {
	R, G, B uint8
}

// Common colors. White and Black are the default prime and composite colors.
var (
	Black = RGB8{0, 0, 0}
	White = RGB8{255, 255, 255}
)

// RGBA implements image/color.Color. Alpha is always fully opaque.
func (c RGB8) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// BGR returns the channels in blue, green, red order.
func (c RGB8) BGR() [3]byte {
	return [3]byte{c.B, c.G, c.R}
}

// Hex formats c as "#rrggbb".
func (c RGB8) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB8) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// ParseHex parses "#rgb" or "#rrggbb" (the leading '#' is optional).
func ParseHex(s string) (RGB8, error) {
	if s != "" && s[0] != '#' {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB8{}, fmt.Errorf("color: parse %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB8{R: r, G: g, B: b}, nil
}

// FromColor converts any image/color.Color to RGB8, dropping alpha.
func FromColor(c stdcolor.Color) RGB8 {
	n := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	return RGB8{R: n.R, G: n.G, B: n.B}
}
