package spectrum

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelimiterInvariance(t *testing.T) {
	// same data written with each supported delimiter must parse
	// to the same spectrum
	variants := map[string]string{
		"comma":      "400,0.5\n500,1.0\n600,0.25\n",
		"tab":        "400\t0.5\n500\t1.0\n600\t0.25\n",
		"whitespace": "400 0.5\n500 1.0\n600 0.25\n",
	}

	want := Spectrum{
		Wavelengths: []float64{400, 500, 600},
		Intensities: []float64{0.5, 1.0, 0.25},
	}
	for name, input := range variants {
		s, e := Parse(strings.NewReader(input), name, Strict)
		require.NoError(t, e, name)
		assert.Equal(t, want, s, name)
	}
}

func TestHeaderRowSkipped(t *testing.T) {
	s, e := Parse(strings.NewReader("wavelength,intensity\n400,0.5\n500,1.0\n"), "t", Strict)
	require.NoError(t, e)
	assert.Equal(t, []float64{400, 500}, s.Wavelengths)
}

func TestSingleTokenHeaderSkipped(t *testing.T) {
	// a one-word header carries no delimiter at all; it must still
	// be skipped, in either policy
	for _, policy := range []Policy{Lenient, Strict} {
		s, e := Parse(strings.NewReader("wavelength\n400,0.5\n500,1.0\n"), "t", policy)
		require.NoError(t, e)
		assert.Equal(t, []float64{400, 500}, s.Wavelengths)
		assert.Equal(t, []float64{0.5, 1.0}, s.Intensities)
	}
}

func TestHeaderWithDifferentDelimiter(t *testing.T) {
	// whitespace header over comma-separated data: the delimiter
	// must be re-detected on the first data line
	s, e := Parse(strings.NewReader("wavelength intensity\n400,0.5\n500,1.0\n"), "t", Strict)
	require.NoError(t, e)
	assert.Equal(t, []float64{400, 500}, s.Wavelengths)
}

func TestUnsortedInputIsSorted(t *testing.T) {
	s, e := Parse(strings.NewReader("600,0.25\n400,0.5\n500,1.0\n"), "t", Strict)
	require.NoError(t, e)
	assert.Equal(t, []float64{400, 500, 600}, s.Wavelengths)
	assert.Equal(t, []float64{0.5, 1.0, 0.25}, s.Intensities)
}

func TestDuplicateWavelengthsAveraged(t *testing.T) {
	s, e := Parse(strings.NewReader("400,0.2\n500,1.0\n400,0.4\n"), "t", Strict)
	require.NoError(t, e)
	assert.Equal(t, []float64{400, 500}, s.Wavelengths)
	assert.InDelta(t, 0.3, s.Intensities[0], 1e-12)
	assert.Equal(t, 1.0, s.Intensities[1])
}

func TestLenientSkipsBadRows(t *testing.T) {
	input := "400,0.5\nnot,numeric\n500\n600,-1e99,extra\n700,0.25\n-5,1.0\n"
	s, e := Parse(strings.NewReader(input), "t", Lenient)
	require.NoError(t, e)
	assert.Equal(t, []float64{400, 700}, s.Wavelengths)
}

func TestStrictFailsOnBadRow(t *testing.T) {
	_, e := Parse(strings.NewReader("400,0.5\nnot,numeric\n500,1.0\n"), "bad.csv", Strict)
	require.Error(t, e)

	var pe *ParseError
	require.True(t, errors.As(e, &pe))
	assert.Equal(t, "bad.csv", pe.Path)
	assert.Equal(t, 2, pe.Line)
}

func TestCommentsAndBlankLines(t *testing.T) {
	input := "# measured 2025-11-02\n\n400,0.5\n\n500,1.0\n"
	s, e := Parse(strings.NewReader(input), "t", Strict)
	require.NoError(t, e)
	assert.Equal(t, 2, s.Len())
}

func TestEmptyInput(t *testing.T) {
	for name, input := range map[string]string{
		"no rows":      "",
		"only header":  "wavelength,intensity\n",
		"only invalid": "a,b\nc,d\n",
	} {
		_, e := Parse(strings.NewReader(input), "t", Lenient)
		assert.ErrorIs(t, e, ErrEmpty, name)
	}
}

func TestNonFiniteValuesRejected(t *testing.T) {
	_, e := Parse(strings.NewReader("400,NaN\nInf,1.0\n"), "t", Lenient)
	assert.ErrorIs(t, e, ErrEmpty)
}

func TestNormalized(t *testing.T) {
	s := Spectrum{
		Wavelengths: []float64{400, 500},
		Intensities: []float64{2, 8},
	}
	n := s.Normalized()
	assert.Equal(t, []float64{0.25, 1.0}, n.Intensities)
	// original untouched
	assert.Equal(t, []float64{2.0, 8.0}, s.Intensities)

	zero := Spectrum{
		Wavelengths: []float64{400, 500},
		Intensities: []float64{0, 0},
	}
	assert.Equal(t, []float64{0, 0}, zero.Normalized().Intensities)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spd.csv")
	require.NoError(t, os.WriteFile(path, []byte("400,0.5\n500,1.0\n"), 0644))

	s, e := Load(path, Strict)
	require.NoError(t, e)
	assert.Equal(t, 2, s.Len())

	_, e = Load(filepath.Join(t.TempDir(), "missing.csv"), Strict)
	require.Error(t, e)

	var pe *ParseError
	assert.True(t, errors.As(e, &pe))
}
