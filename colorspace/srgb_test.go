package colorspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSRGBBlack(t *testing.T) {
	assert.Equal(t, RGB{}, ToSRGB(XYZ{}))
}

func TestToSRGBEqualEnergyWhite(t *testing.T) {
	// equal tristimulus values come out near-neutral under the
	// brightest-channel normalization
	rgb := ToSRGB(XYZ{X: 1, Y: 1, Z: 1})
	assert.Equal(t, RGB{R: 255, G: 229, B: 225}, rgb)
}

func TestToSRGBD65IsWhite(t *testing.T) {
	// the D65 white point maps to equal linear channels by
	// construction of the sRGB matrix
	rgb := ToSRGB(XYZ{X: 0.95047, Y: 1.0, Z: 1.08883})
	assert.Equal(t, RGB{R: 255, G: 255, B: 255}, rgb)
}

func TestToSRGBScaleInvariance(t *testing.T) {
	a := ToSRGB(XYZ{X: 0.3, Y: 0.5, Z: 0.2})
	b := ToSRGB(XYZ{X: 300, Y: 500, Z: 200})
	assert.Equal(t, a, b)
}

func TestToSRGBOutOfGamutClamps(t *testing.T) {
	// monochromatic stimuli lie outside the sRGB gamut; negative
	// linear channels are clipped, never wrapped or panicked on
	cases := []XYZ{
		{X: 1.0, Y: 0.2, Z: 0.0},              // deep red
		{X: 0.06327, Y: 0.71, Z: 0.07825},     // 520 nm green
		{X: 0.001368, Y: 0.000039, Z: 0.0064}, // 380 nm violet
	}
	for _, c := range cases {
		assert.NotPanics(t, func() { ToSRGB(c) })
	}

	assert.Equal(t, RGB{R: 255, G: 0, B: 16}, ToSRGB(cases[0]))
	assert.Equal(t, RGB{R: 0, G: 255, B: 0}, ToSRGB(cases[1]))
}

func TestChromaticity(t *testing.T) {
	xy, ok := XYZ{X: 1, Y: 1, Z: 2}.Chromaticity()
	assert.True(t, ok)
	assert.InDelta(t, 0.25, xy.X, 1e-12)
	assert.InDelta(t, 0.25, xy.Y, 1e-12)

	_, ok = XYZ{}.Chromaticity()
	assert.False(t, ok)
}

func TestGammaCurve(t *testing.T) {
	// linear segment below the threshold
	assert.InDelta(t, 12.92*0.001, gamma(0.001), 1e-12)
	// continuous at the threshold
	assert.InDelta(t, gamma(0.0031308), gamma(0.0031309), 1e-5)
	// identity at the extremes
	assert.Equal(t, 0.0, gamma(0))
	assert.InDelta(t, 1.0, gamma(1), 1e-12)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#000000", RGB{}.Hex())
	assert.Equal(t, "#ff7f01", RGB{R: 255, G: 127, B: 1}.Hex())
}
