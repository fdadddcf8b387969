package common

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HexToRGB converts a packed 0xRRGGBB value into normalized RGB components.
//
// Parameters:
//   - hex: the packed colour, e.g. 0x84f7fd
//
// Returns:
//   - [3]float32: red, green and blue in [0, 1]
func HexToRGB(hex uint32) [3]float32 {
	c, err := colorful.Hex(fmt.Sprintf("#%06x", hex&0xffffff))
	if err != nil {
		// unreachable for a masked 24-bit value
		return [3]float32{1, 1, 1}
	}
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}

// HSLToRGB converts a hue/saturation/lightness triple into normalized RGB.
// The hue is a turn fraction and wraps, so 1.25 is the same as 0.25.
//
// Parameters:
//   - h: hue as a fraction of a full turn
//   - s: saturation in [0, 1]
//   - l: lightness in [0, 1]
//
// Returns:
//   - [3]float32: red, green and blue in [0, 1]
func HSLToRGB(h, s, l float64) [3]float32 {
	c := colorful.Hsl(Fract(h)*360, s, l).Clamped()
	return [3]float32{float32(c.R), float32(c.G), float32(c.B)}
}
