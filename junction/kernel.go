package junction

import "math"

// Kernel evaluates the causal relaxation kernel exp(-t/tch)/tch at the
// offsets t = time[i]-time[0].
func Kernel(time []float64, tch float64) []float64 {
	kernel := make([]float64, len(time))
	if len(time) == 0 {
		return kernel
	}
	t0 := time[0]
	for i, t := range time {
		kernel[i] = math.Exp(-(t-t0)/tch) / tch
	}
	return kernel
}
