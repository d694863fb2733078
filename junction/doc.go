// Package junction implements the one-dimensional analytical model of a
// wave crossing a material junction.
//
// A normalized incident waveform is split into a transmitted and a
// reflected wave:
//
//  1. positive (tensile) incident samples are clamped to zero
//  2. an exponential relaxation kernel exp(-t/Tch)/Tch is built on the
//     sample time offsets, with Tch = junction length / wave speed
//  3. the transmitted wave is the negated linear convolution of kernel and
//     clamped incident, divided by the kernel sum and cut to the incident
//     length
//  4. the reflected wave is -(incident + transmitted)
//  5. both are shifted by the gage-to-junction travel time, floor-quantized
//     to whole samples
//  6. the shifted waves are outer-joined with the incident series on
//     nanosecond time keys
//
// Basic usage:
//
//	series, err := waveform.Prepare(time, raw)
//	res, err := junction.Evaluate(series, params)
//	for _, row := range res.Rows { ... }
//
// Every call is a pure function of its inputs; concurrent calls on
// different inputs are safe.
package junction
