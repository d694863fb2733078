// Package sampling derives the sample interval of a time axis, checks that
// the axis is uniformly sampled and quantizes delays to whole samples.
//
// All quantities are in seconds. Comparisons go through the nanosecond
// keys of [core.TimeKey] so float jitter in the time stamps does not leak
// into the result.
package sampling

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/SubhashUFlorida/millipede-bar/dsp/core"
)

// ErrNonUniformSampling is returned when the time axis is not sampled at an
// approximately constant rate.
var ErrNonUniformSampling = errors.New("sampling: non-uniform sampling")

// ErrTooShort is returned when fewer than two samples are available.
var ErrTooShort = errors.New("sampling: need at least two samples")

// DefaultTolerance is the relative deviation of a single step from the
// median step that is still accepted as uniform.
const DefaultTolerance = 1e-3

// Interval returns the sample interval of time: the median of consecutive
// differences rounded to 9 decimal places. A non-positive result is
// reported as ErrNonUniformSampling.
func Interval(time []float64) (float64, error) {
	if len(time) < 2 {
		return 0, ErrTooShort
	}

	diffs := make([]float64, len(time)-1)
	for i := range diffs {
		diffs[i] = time[i+1] - time[i]
	}

	dt := core.Round(median(diffs), core.TimeDecimals)
	if !(dt > 0) {
		return 0, fmt.Errorf("%w: median step %g s is below 1 ns", ErrNonUniformSampling, dt)
	}
	return dt, nil
}

// CheckUniform verifies that every step of time is within tol (relative)
// of dt. Steps are compared on the nanosecond grid, so a deviation of one
// nanosecond or less is always accepted. tol <= 0 selects DefaultTolerance.
func CheckUniform(time []float64, dt, tol float64) error {
	if len(time) < 2 {
		return ErrTooShort
	}
	if tol <= 0 {
		tol = DefaultTolerance
	}
	dtKey := core.TimeKey(dt)
	if dtKey <= 0 {
		return fmt.Errorf("%w: interval %g s is below 1 ns", ErrNonUniformSampling, dt)
	}

	limit := max(tol*float64(dtKey), 1)
	prev := core.TimeKey(time[0])
	for i := 1; i < len(time); i++ {
		k := core.TimeKey(time[i])
		step := k - prev
		if math.Abs(float64(step-dtKey)) > limit {
			return fmt.Errorf("%w: step %d at t=%g s is %g s, expected %g s",
				ErrNonUniformSampling, i, time[i], core.KeyTime(step), dt)
		}
		prev = k
	}
	return nil
}

// DelaySteps floor-quantizes delay to a whole number of sample intervals.
// Both values are rounded to 9 decimal places first. Negative delays
// return 0.
func DelaySteps(delay, dt float64) int64 {
	delayKey := core.TimeKey(delay)
	dtKey := core.TimeKey(dt)
	if delayKey <= 0 || dtKey <= 0 {
		return 0
	}
	return delayKey / dtKey
}

// median returns the median of x, averaging the middle pair for even
// lengths. x is reordered.
func median(x []float64) float64 {
	sort.Float64s(x)
	n := len(x)
	if n%2 == 1 {
		return x[n/2]
	}
	return (x[n/2-1] + x[n/2]) / 2
}
