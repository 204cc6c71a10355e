// Package spectrum loads spectral power distributions from delimited
// text files. Input is two numeric columns, wavelength in nm and
// intensity in arbitrary units; the delimiter is detected
// automatically among comma, tab and whitespace.
package spectrum

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
)

// ErrEmpty reports a file with no valid data rows after validation.
var ErrEmpty = errors.New("no valid data rows")

// Policy controls how malformed rows are handled.
type Policy int

const (
	// Lenient skips malformed rows with a logged warning.
	Lenient Policy = iota
	// Strict fails on the first malformed row.
	Strict
)

// ParseError reports a failure to load a spectrum file, with enough
// context to find the offending line. Line is 0 when the failure is
// not tied to a particular row.
type ParseError struct {
	Path string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("spectrum: %s line %d: %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("spectrum: %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Spectrum is a sampled spectral power distribution. After Load the
// wavelengths are strictly ascending with duplicates averaged away.
type Spectrum struct {
	Wavelengths []float64
	Intensities []float64
}

// Len returns the number of samples.
func (s Spectrum) Len() int { return len(s.Wavelengths) }

// Normalized returns a copy of the spectrum scaled so the peak
// intensity is 1. An all-zero spectrum is returned unchanged.
func (s Spectrum) Normalized() Spectrum {
	max := 0.0
	for _, v := range s.Intensities {
		if v > max {
			max = v
		}
	}

	out := Spectrum{
		Wavelengths: append([]float64(nil), s.Wavelengths...),
		Intensities: append([]float64(nil), s.Intensities...),
	}
	if max > 0 {
		for i := range out.Intensities {
			out.Intensities[i] /= max
		}
	}
	return out
}

// Load reads a spectrum from the file at path.
func Load(path string, policy Policy) (Spectrum, error) {
	f, e := os.Open(path)
	if e != nil {
		return Spectrum{}, &ParseError{Path: path, Err: e}
	}
	defer f.Close()

	return Parse(f, path, policy)
}

// Parse reads a spectrum from r. The name is used in errors and
// warnings in place of a file path.
func Parse(r io.Reader, name string, policy Policy) (Spectrum, error) {
	var (
		wls, ins []float64
		delim    delimiter
		detected bool
		first    = true
	)

	scanner := bufio.NewScanner(r)
	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if !detected {
			d, ok := detect(line)
			if !ok {
				if first {
					// single-token header, skipped
					first = false
					continue
				}
				return Spectrum{}, &ParseError{Path: name, Line: n,
					Err: fmt.Errorf("cannot detect delimiter in %q", line)}
			}
			delim = d
			detected = true
		}

		wl, in, e := parseRow(line, delim)
		if e != nil {
			if first {
				// header row: skip it and re-detect the
				// delimiter on the first real data line
				first = false
				detected = false
				continue
			}
			if policy == Strict {
				return Spectrum{}, &ParseError{Path: name, Line: n, Err: e}
			}
			log.Printf("spectrum: %s line %d: %v (skipped)", name, n, e)
			continue
		}
		first = false

		wls = append(wls, wl)
		ins = append(ins, in)
	}
	if e := scanner.Err(); e != nil {
		return Spectrum{}, &ParseError{Path: name, Err: e}
	}

	if len(wls) == 0 {
		return Spectrum{}, &ParseError{Path: name, Err: ErrEmpty}
	}

	sortByWavelength(wls, ins)
	wls, ins = mergeDuplicates(wls, ins)

	return Spectrum{Wavelengths: wls, Intensities: ins}, nil
}

// delimiter is the outcome of delimiter detection on the first
// non-empty data line: candidates are tried in priority order and the
// first match wins.
type delimiter int

const (
	comma delimiter = iota
	tab
	whitespace
)

func detect(line string) (delimiter, bool) {
	switch {
	case strings.ContainsRune(line, ','):
		return comma, true
	case strings.ContainsRune(line, '\t'):
		return tab, true
	case len(strings.Fields(line)) > 1:
		return whitespace, true
	}
	return 0, false
}

func split(line string, d delimiter) []string {
	switch d {
	case comma:
		return strings.Split(line, ",")
	case tab:
		return strings.Split(line, "\t")
	default:
		return strings.Fields(line)
	}
}

func parseRow(line string, d delimiter) (wl, in float64, err error) {
	fields := split(line, d)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected 2 columns, got %d", len(fields))
	}

	wl, e := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if e != nil {
		return 0, 0, fmt.Errorf("wavelength %q is not numeric", fields[0])
	}
	in, e = strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if e != nil {
		return 0, 0, fmt.Errorf("intensity %q is not numeric", fields[1])
	}

	if math.IsNaN(wl) || math.IsInf(wl, 0) || math.IsNaN(in) || math.IsInf(in, 0) {
		return 0, 0, fmt.Errorf("non-finite value in %q", line)
	}
	if wl < 0 {
		return 0, 0, fmt.Errorf("negative wavelength %v", wl)
	}

	return wl, in, nil
}

func sortByWavelength(wls, ins []float64) {
	sort.Sort(&byWavelength{wls, ins})
}

type byWavelength struct {
	wls, ins []float64
}

func (s *byWavelength) Len() int           { return len(s.wls) }
func (s *byWavelength) Less(i, j int) bool { return s.wls[i] < s.wls[j] }
func (s *byWavelength) Swap(i, j int) {
	s.wls[i], s.wls[j] = s.wls[j], s.wls[i]
	s.ins[i], s.ins[j] = s.ins[j], s.ins[i]
}

// mergeDuplicates averages the intensities of runs of equal
// wavelengths so no measurement is silently discarded. Input must be
// sorted.
func mergeDuplicates(wls, ins []float64) ([]float64, []float64) {
	outW := wls[:0]
	outI := ins[:0]

	for i := 0; i < len(wls); {
		j := i + 1
		sum := ins[i]
		for j < len(wls) && wls[j] == wls[i] {
			sum += ins[j]
			j++
		}
		outW = append(outW, wls[i])
		outI = append(outI, sum/float64(j-i))
		i = j
	}
	return outW, outI
}
