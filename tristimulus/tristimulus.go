// Package tristimulus integrates a resampled spectrum against the
// standard observer's color-matching functions to obtain CIE XYZ.
package tristimulus

import (
	"errors"

	"github.com/spectronaut/spdrgb/cmf"
	"github.com/spectronaut/spdrgb/colorspace"
)

// ErrGridMismatch reports intensity samples that are not aligned
// one-to-one with the observer table's wavelength grid.
var ErrGridMismatch = errors.New("tristimulus: intensity length does not match observer grid")

// Integrate computes the XYZ tristimulus values of intensity samples
// aligned with the table's wavelength grid, using the trapezoidal
// rule. The step width comes from the grid itself, so any observer
// resolution works; the grid need not even be uniform. An all-zero
// spectrum integrates to XYZ (0, 0, 0), a valid degenerate result.
func Integrate(intensity []float64, t *cmf.Table) (colorspace.XYZ, error) {
	if len(intensity) != t.Len() {
		return colorspace.XYZ{}, ErrGridMismatch
	}

	var x, y, z float64
	for i := 0; i+1 < t.Len(); i++ {
		dw := t.Wavelengths[i+1] - t.Wavelengths[i]
		x += 0.5 * dw * (intensity[i]*t.X[i] + intensity[i+1]*t.X[i+1])
		y += 0.5 * dw * (intensity[i]*t.Y[i] + intensity[i+1]*t.Y[i+1])
		z += 0.5 * dw * (intensity[i]*t.Z[i] + intensity[i+1]*t.Z[i+1])
	}

	return colorspace.XYZ{X: x, Y: y, Z: z}, nil
}
