// SPDX-License-Identifier: MIT
package primebmp

import "github.com/gogpu/primebmp/internal/color"

// Color is an opaque 24-bit RGB color.
type Color = color.RGB8

// RGB creates a Color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex parses a color written as "#rgb" or "#rrggbb".
func Hex(s string) (Color, error) {
	return color.ParseHex(s)
}

// Default colors.
var (
	White = color.White
	Black = color.Black
)
