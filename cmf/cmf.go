// Package cmf loads the CIE 1931 2° standard observer color-matching
// functions. The bundled table covers 380-780 nm at a 5 nm step; an
// alternative observer table can be supplied from a file.
package cmf

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed cie_xyz_1931_2deg.csv
var bundled string

// ErrMalformed reports an observer table that cannot be parsed.
var ErrMalformed = errors.New("malformed observer table")

// Table holds the standard observer data over a fixed wavelength grid.
// All four slices have the same length and the grid is strictly
// ascending. A Table is read-only after Load; sharing one Table across
// concurrent conversions is safe.
type Table struct {
	Wavelengths []float64
	X           []float64
	Y           []float64
	Z           []float64
}

// Load parses the bundled CIE 1931 2° observer table. Loading is
// deterministic: every call yields an identical table.
func Load() (*Table, error) {
	return parse(strings.NewReader(bundled), "bundled CIE 1931 2deg table")
}

// LoadFile parses an observer table from a CSV file with columns
// wavelength, x̄, ȳ, z̄.
func LoadFile(path string) (*Table, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, fmt.Errorf("cmf: %w", e)
	}
	defer f.Close()

	return parse(f, path)
}

func parse(r io.Reader, name string) (*Table, error) {
	raw, e := io.ReadAll(r)
	if e != nil {
		return nil, fmt.Errorf("cmf: %s: %w", name, e)
	}

	t := &Table{}
	for i, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		fields := strings.Split(line, ",")
		if len(fields) != 4 {
			return nil, fmt.Errorf("cmf: %s line %d: expected 4 columns, got %d: %w",
				name, i+1, len(fields), ErrMalformed)
		}

		var row [4]float64
		for j, field := range fields {
			v, e := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if e != nil {
				return nil, fmt.Errorf("cmf: %s line %d: %q is not numeric: %w",
					name, i+1, field, ErrMalformed)
			}
			row[j] = v
		}

		if n := len(t.Wavelengths); n > 0 && row[0] <= t.Wavelengths[n-1] {
			return nil, fmt.Errorf("cmf: %s line %d: wavelength grid not ascending: %w",
				name, i+1, ErrMalformed)
		}

		t.Wavelengths = append(t.Wavelengths, row[0])
		t.X = append(t.X, row[1])
		t.Y = append(t.Y, row[2])
		t.Z = append(t.Z, row[3])
	}

	if len(t.Wavelengths) < 2 {
		return nil, fmt.Errorf("cmf: %s: need at least 2 rows: %w", name, ErrMalformed)
	}

	return t, nil
}

// Len returns the number of grid points.
func (t *Table) Len() int {
	return len(t.Wavelengths)
}

// Locus returns the (x, y) chromaticity coordinates of the spectral
// locus, one point per grid wavelength. Grid points where all three
// matching functions are zero are skipped.
func (t *Table) Locus() (xs, ys []float64) {
	for i := range t.Wavelengths {
		sum := t.X[i] + t.Y[i] + t.Z[i]
		if sum <= 0 {
			continue
		}
		xs = append(xs, t.X[i]/sum)
		ys = append(ys, t.Y[i]/sum)
	}
	return xs, ys
}
