package testutil

import (
	"math"
	"math/rand"
)

// UniformTime returns n time stamps t0, t0+dt, ... computed as t0+i*dt so
// that no rounding error accumulates along the axis.
func UniformTime(t0, dt float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = t0 + float64(i)*dt
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// CompressivePulse generates a half-sine pulse of the given (negative for
// compression) amplitude that starts at sample start and lasts width samples.
// Samples outside the pulse are zero.
func CompressivePulse(amplitude float64, length, start, width int) []float64 {
	out := make([]float64, length)
	if width <= 0 {
		return out
	}
	for i := 0; i < width; i++ {
		pos := start + i
		if pos < 0 || pos >= length {
			continue
		}
		out[pos] = amplitude * math.Sin(math.Pi*float64(i)/float64(width))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}
