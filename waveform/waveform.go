// Package waveform prepares a measured incident waveform for the junction
// model: it drops incomplete samples and normalizes the amplitude to unit
// peak magnitude.
package waveform

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/SubhashUFlorida/millipede-bar/dsp/core"
)

// Errors returned by signal preparation.
var (
	ErrInvalidFormat    = errors.New("waveform: invalid format")
	ErrDegenerateSignal = errors.New("waveform: degenerate signal")
)

// Series is an incident waveform: amplitudes indexed by strictly increasing
// time stamps in seconds. After [Prepare] the amplitudes have
// max(|Amplitude|) == 1.
type Series struct {
	Time      []float64
	Amplitude []float64

	// Scale is the peak magnitude the raw amplitudes were divided by.
	Scale float64
}

// Len returns the number of samples.
func (s Series) Len() int {
	return len(s.Time)
}

// Clone returns a deep copy of s.
func (s Series) Clone() Series {
	return Series{
		Time:      append([]float64(nil), s.Time...),
		Amplitude: append([]float64(nil), s.Amplitude...),
		Scale:     s.Scale,
	}
}

// Prepare builds a normalized Series from raw time and amplitude columns.
//
// Samples where either value is NaN are dropped. The caller guarantees that
// time is sorted and free of duplicates; this is not checked here. The input
// slices are not modified.
func Prepare(time, amplitude []float64) (Series, error) {
	if len(time) != len(amplitude) {
		return Series{}, fmt.Errorf("%w: %d time values but %d amplitudes",
			ErrInvalidFormat, len(time), len(amplitude))
	}

	s := Series{
		Time:      make([]float64, 0, len(time)),
		Amplitude: make([]float64, 0, len(amplitude)),
	}
	for i := range time {
		if math.IsNaN(time[i]) || math.IsNaN(amplitude[i]) {
			continue
		}
		if !core.IsFinite(time[i]) || !core.IsFinite(amplitude[i]) {
			return Series{}, fmt.Errorf("%w: infinite value at sample %d", ErrInvalidFormat, i)
		}
		s.Time = append(s.Time, time[i])
		s.Amplitude = append(s.Amplitude, amplitude[i])
	}

	if len(s.Time) < 2 {
		return Series{}, fmt.Errorf("%w: %d numeric samples, need at least 2",
			ErrInvalidFormat, len(s.Time))
	}

	peak := peakMagnitude(s.Amplitude)
	if peak == 0 {
		return Series{}, fmt.Errorf("%w: all %d samples are zero", ErrDegenerateSignal, len(s.Amplitude))
	}

	// Divide rather than scale by 1/peak so the peak sample lands on exactly 1.
	for i := range s.Amplitude {
		s.Amplitude[i] /= peak
	}
	s.Scale = peak
	return s, nil
}

// PrepareRows parses table rows into a normalized Series. The first cell of
// each row is the time, the second the raw amplitude; further cells are
// ignored.
//
// Empty cells and the literal NaN count as missing and drop the row. A row
// with fewer than two cells, or a non-empty cell that is not a number, is
// an ErrInvalidFormat.
func PrepareRows(rows [][]string) (Series, error) {
	time := make([]float64, 0, len(rows))
	amplitude := make([]float64, 0, len(rows))

	for i, row := range rows {
		if len(row) < 2 {
			return Series{}, fmt.Errorf("%w: row %d has %d columns, need 2", ErrInvalidFormat, i+1, len(row))
		}
		t, err := parseCell(row[0])
		if err != nil {
			return Series{}, fmt.Errorf("%w: row %d time: %v", ErrInvalidFormat, i+1, err)
		}
		a, err := parseCell(row[1])
		if err != nil {
			return Series{}, fmt.Errorf("%w: row %d amplitude: %v", ErrInvalidFormat, i+1, err)
		}
		time = append(time, t)
		amplitude = append(amplitude, a)
	}

	return Prepare(time, amplitude)
}

// parseCell converts a table cell to a float. Missing cells become NaN.
func parseCell(cell string) (float64, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", cell)
	}
	return v, nil
}

func peakMagnitude(x []float64) float64 {
	return math.Max(math.Abs(floats.Max(x)), math.Abs(floats.Min(x)))
}
