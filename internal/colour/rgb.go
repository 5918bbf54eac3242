// Package colour provides the perceptual colour machinery for ColorPaps:
// sRGB to CIELAB conversion, the CIEDE2000 difference formula, HSV
// conversion and perceptual region classification.
package colour

import (
	"fmt"
)

// RGB represents an 8-bit-per-channel colour, no alpha.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Quantize rounds each channel down to a multiple of step. Colours that
// quantize to the same value are indistinguishable at the given step size;
// step 2 matches the "discriminable nuance" reduction used before layout.
func (c RGB) Quantize(step uint8) RGB {
	if step <= 1 {
		return c
	}
	return RGB{
		R: c.R / step * step,
		G: c.G / step * step,
		B: c.B / step * step,
	}
}
