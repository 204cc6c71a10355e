// Package resample maps a spectrum's samples onto a target wavelength
// grid by linear interpolation.
package resample

import (
	"errors"
	"sort"

	"github.com/spectronaut/spdrgb/spectrum"
)

// ErrInsufficientData reports a spectrum with fewer than two distinct
// wavelength samples, for which interpolation is undefined.
var ErrInsufficientData = errors.New("resample: need at least 2 distinct wavelengths")

// Linear evaluates the spectrum at each wavelength of grid using
// linear interpolation between adjacent samples. Grid points outside
// the spectrum's measured range get intensity 0: extrapolating beyond
// measured data produces physically meaningless values, so none is
// attempted. Interpolation is exact at the spectrum's own sample
// points, and the result is a pure function of the inputs.
func Linear(s spectrum.Spectrum, grid []float64) ([]float64, error) {
	if s.Len() < 2 {
		return nil, ErrInsufficientData
	}

	wls := s.Wavelengths
	lo, hi := wls[0], wls[len(wls)-1]
	if hi <= lo {
		return nil, ErrInsufficientData
	}

	out := make([]float64, len(grid))
	for i, w := range grid {
		if w < lo || w > hi {
			continue // out of range, stays 0
		}

		j := sort.SearchFloat64s(wls, w)
		if j < len(wls) && wls[j] == w {
			out[i] = s.Intensities[j]
			continue
		}

		t := (w - wls[j-1]) / (wls[j] - wls[j-1])
		out[i] = s.Intensities[j-1] + t*(s.Intensities[j]-s.Intensities[j-1])
	}

	return out, nil
}
