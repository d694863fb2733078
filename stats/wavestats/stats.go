// Package wavestats summarizes the incident, reflected and transmitted
// waveforms of a junction evaluation.
package wavestats

import (
	"math"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Summary holds time-domain statistics of one waveform.
type Summary struct {
	Length  int
	Max     float64
	MaxPos  int
	Min     float64
	MinPos  int
	Peak    float64 // max(|max|, |min|)
	PeakPos int
	DC      float64 // mean
	RMS     float64
	Energy  float64 // sum of squares
}

// Calculate computes the summary of signal. An empty signal yields a zero
// Summary.
func Calculate(signal []float64) Summary {
	n := len(signal)
	if n == 0 {
		return Summary{}
	}

	energy := Energy(signal)

	s := Summary{
		Length: n,
		MaxPos: floats.MaxIdx(signal),
		MinPos: floats.MinIdx(signal),
		DC:     floats.Sum(signal) / float64(n),
		RMS:    math.Sqrt(energy / float64(n)),
		Energy: energy,
	}
	s.Max = signal[s.MaxPos]
	s.Min = signal[s.MinPos]

	s.Peak, s.PeakPos = math.Abs(s.Max), s.MaxPos
	if math.Abs(s.Min) > s.Peak {
		s.Peak, s.PeakPos = math.Abs(s.Min), s.MinPos
	}
	return s
}

// Energy returns the sum of squares of signal.
func Energy(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	sq := make([]float64, len(signal))
	vecmath.MulBlock(sq, signal, signal)
	return floats.Sum(sq)
}

// Balance compares the split waves against the incident wave.
type Balance struct {
	Incident    Summary
	Reflected   Summary
	Transmitted Summary

	// Peak ratios relative to the incident peak.
	ReflectionRatio   float64
	TransmissionRatio float64

	// Energy ratios relative to the incident energy.
	ReflectedEnergy   float64
	TransmittedEnergy float64
}

// Compare summarizes the three waves and forms their ratios to the
// incident wave. Ratios are 0 when the incident wave is all zero.
func Compare(incident, reflected, transmitted []float64) Balance {
	b := Balance{
		Incident:    Calculate(incident),
		Reflected:   Calculate(reflected),
		Transmitted: Calculate(transmitted),
	}
	if b.Incident.Peak > 0 {
		b.ReflectionRatio = b.Reflected.Peak / b.Incident.Peak
		b.TransmissionRatio = b.Transmitted.Peak / b.Incident.Peak
	}
	if b.Incident.Energy > 0 {
		b.ReflectedEnergy = b.Reflected.Energy / b.Incident.Energy
		b.TransmittedEnergy = b.Transmitted.Energy / b.Incident.Energy
	}
	return b
}
