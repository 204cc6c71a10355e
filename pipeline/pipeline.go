// Package pipeline wires the full SPD-to-sRGB conversion: load,
// resample onto the observer grid, integrate, convert.
package pipeline

import (
	"github.com/spectronaut/spdrgb/cmf"
	"github.com/spectronaut/spdrgb/colorspace"
	"github.com/spectronaut/spdrgb/resample"
	"github.com/spectronaut/spdrgb/spectrum"
	"github.com/spectronaut/spdrgb/tristimulus"
)

// Converter converts spectrum files against one loaded observer
// table. The table is never mutated, so a single Converter may be
// shared by concurrent conversions.
type Converter struct {
	Table  *cmf.Table
	Policy spectrum.Policy
}

// New returns a Converter for the given observer table.
func New(t *cmf.Table, p spectrum.Policy) *Converter {
	return &Converter{Table: t, Policy: p}
}

// Result is the outcome of one conversion.
type Result struct {
	RGB colorspace.RGB
	XYZ colorspace.XYZ

	// Chromaticity is only meaningful when Defined is true; it is
	// undefined for an all-dark spectrum.
	Chromaticity colorspace.Chromaticity
	Defined      bool
}

// Convert runs the pipeline on the spectrum file at path. Intensities
// are normalized to their peak before integration, so the result
// depends only on the spectrum's shape, not its absolute scale.
func (c *Converter) Convert(path string) (Result, error) {
	s, e := spectrum.Load(path, c.Policy)
	if e != nil {
		return Result{}, e
	}

	vals, e := resample.Linear(s.Normalized(), c.Table.Wavelengths)
	if e != nil {
		return Result{}, e
	}

	xyz, e := tristimulus.Integrate(vals, c.Table)
	if e != nil {
		return Result{}, e
	}

	xy, ok := xyz.Chromaticity()
	return Result{
		RGB:          colorspace.ToSRGB(xyz),
		XYZ:          xyz,
		Chromaticity: xy,
		Defined:      ok,
	}, nil
}
