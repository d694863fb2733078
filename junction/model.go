package junction

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/SubhashUFlorida/millipede-bar/dsp/conv"
	"github.com/SubhashUFlorida/millipede-bar/dsp/core"
	"github.com/SubhashUFlorida/millipede-bar/dsp/sampling"
	"github.com/SubhashUFlorida/millipede-bar/waveform"
)

// Result is the outcome of one model evaluation.
//
// Incident, Transmitted and Reflected share the index of the input series;
// Time is the delayed axis they belong to. Rows is the outer join of the
// input series with the delayed waves.
type Result struct {
	Constants Constants

	Time        []float64
	Incident    []float64 // sign-corrected incident used in the convolution
	Transmitted []float64
	Reflected   []float64

	Rows []Row
}

// Evaluate splits the incident series into transmitted and reflected waves.
//
// Parameters are validated before any signal work. The series must hold at
// least two uniformly sampled points; see [sampling.CheckUniform].
func Evaluate(series waveform.Series, params Parameters, opts ...Option) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(series.Time) != len(series.Amplitude) {
		return nil, fmt.Errorf("%w: %d time values but %d amplitudes",
			waveform.ErrInvalidFormat, len(series.Time), len(series.Amplitude))
	}

	cfg := ApplyOptions(opts...)

	dt, err := sampling.Interval(series.Time)
	if err != nil {
		return nil, err
	}
	if err := sampling.CheckUniform(series.Time, dt, cfg.UniformityTolerance); err != nil {
		return nil, err
	}

	consts, err := Derive(params, dt)
	if err != nil {
		return nil, err
	}

	incident := ClampCompressive(series.Amplitude)

	transmitted, err := Transmit(series.Time, incident, consts.CharacteristicTime, cfg.DirectThreshold)
	if err != nil {
		return nil, err
	}

	reflected := make([]float64, len(incident))
	for i := range incident {
		reflected[i] = -(incident[i] + transmitted[i])
	}

	keys := shiftedKeys(series.Time, consts.delayKey())
	times := make([]float64, len(keys))
	for i, k := range keys {
		times[i] = core.KeyTime(k)
	}

	return &Result{
		Constants:   consts,
		Time:        times,
		Incident:    incident,
		Transmitted: transmitted,
		Reflected:   reflected,
		Rows:        Merge(series, keys, reflected, transmitted),
	}, nil
}

// ClampCompressive returns a copy of x with positive samples set to zero.
func ClampCompressive(x []float64) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = min(v, 0)
	}
	return out
}

// Transmit computes the transmitted wave for a sign-corrected incident
// signal sampled at time: the causal part of -(kernel * incident), divided by
// the kernel sum. The result has len(incident) samples.
func Transmit(time, incident []float64, tch float64, directThreshold int) ([]float64, error) {
	kernel := Kernel(time, tch)
	sum := floats.Sum(kernel)

	out, err := conv.AutoMode(incident, kernel, conv.ModeCausal, directThreshold)
	if err != nil {
		return nil, fmt.Errorf("junction: transmitted wave: %w", err)
	}

	floats.Scale(-1/sum, out)
	return out, nil
}

func shiftedKeys(time []float64, shift int64) []int64 {
	keys := make([]int64, len(time))
	for i, t := range time {
		keys[i] = core.TimeKey(t) + shift
	}
	return keys
}
