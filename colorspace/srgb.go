// Package colorspace converts CIE XYZ tristimulus values to 8-bit
// sRGB and xy chromaticity coordinates.
package colorspace

import (
	"fmt"
	"math"
)

// XYZ holds raw (un-normalized) CIE 1931 tristimulus values.
type XYZ struct {
	X, Y, Z float64
}

// Chromaticity holds CIE 1931 xy coordinates.
type Chromaticity struct {
	X, Y float64
}

// RGB is a gamma-encoded sRGB color with 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// IEC 61966-2-1 XYZ to linear sRGB (D65)
var srgbMatrix = [3][3]float64{
	{3.2406, -1.5372, -0.4986},
	{-0.9689, 1.8758, 0.0415},
	{0.0557, -0.2040, 1.0570},
}

// Chromaticity projects the tristimulus values to xy coordinates.
// ok is false when X+Y+Z is zero (pure darkness), where chromaticity
// is undefined.
func (c XYZ) Chromaticity() (Chromaticity, bool) {
	sum := c.X + c.Y + c.Z
	if sum <= 0 {
		return Chromaticity{}, false
	}
	return Chromaticity{X: c.X / sum, Y: c.Y / sum}, true
}

// ToSRGB converts tristimulus values to 8-bit sRGB.
//
// The conversion is relative colorimetry: XYZ is scaled so
// max(X, Y, Z) is 1 before the matrix, and the linear result is
// rescaled so its brightest channel is 1, so the output is invariant
// under scaling of the input spectrum's intensity. Negative linear
// channels (out-of-gamut colors) are clipped to 0 rather than
// gamut-mapped, a known limitation of the clamping approach.
// XYZ (0, 0, 0) maps to black.
func ToSRGB(c XYZ) RGB {
	m := math.Max(c.X, math.Max(c.Y, c.Z))
	if m <= 0 {
		return RGB{}
	}
	x, y, z := c.X/m, c.Y/m, c.Z/m

	r := srgbMatrix[0][0]*x + srgbMatrix[0][1]*y + srgbMatrix[0][2]*z
	g := srgbMatrix[1][0]*x + srgbMatrix[1][1]*y + srgbMatrix[1][2]*z
	b := srgbMatrix[2][0]*x + srgbMatrix[2][1]*y + srgbMatrix[2][2]*z

	r, g, b = math.Max(r, 0), math.Max(g, 0), math.Max(b, 0)

	// normalize to the brightest channel
	if mc := math.Max(r, math.Max(g, b)); mc > 0 {
		r, g, b = r/mc, g/mc, b/mc
	}

	return RGB{
		R: uint8(math.Round(clamp01(gamma(r)) * 255)),
		G: uint8(math.Round(clamp01(gamma(g)) * 255)),
		B: uint8(math.Round(clamp01(gamma(b)) * 255)),
	}
}

// gamma applies the sRGB piecewise transfer curve to a linear value.
func gamma(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
