package junction

import (
	"fmt"

	"github.com/SubhashUFlorida/millipede-bar/dsp/core"
	"github.com/SubhashUFlorida/millipede-bar/dsp/sampling"
)

// Constants are the per-run quantities derived from the parameters and the
// sample interval.
type Constants struct {
	WaveSpeed          float64 // c = sqrt(E/rho), m/s
	CharacteristicTime float64 // Tch = junction length / c, s
	Interval           float64 // dt, s

	// TravelTime is (2*gage_distance + junction_length)/c rounded to
	// 9 decimal places, or 0 without a gage distance.
	TravelTime float64

	// DelaySteps is TravelTime floor-quantized to whole samples.
	DelaySteps int64
}

// Delay returns the applied time shift, DelaySteps*Interval.
func (c Constants) Delay() float64 {
	return float64(c.DelaySteps) * c.Interval
}

// delayKey returns the shift in nanosecond time keys.
func (c Constants) delayKey() int64 {
	return c.DelaySteps * core.TimeKey(c.Interval)
}

// Derive computes the model constants for p at sample interval dt.
func Derive(p Parameters, dt float64) (Constants, error) {
	if err := p.Validate(); err != nil {
		return Constants{}, err
	}
	if !(dt > 0) {
		return Constants{}, fmt.Errorf("%w: sample interval %g s", sampling.ErrNonUniformSampling, dt)
	}

	c := p.WaveSpeed()
	k := Constants{
		WaveSpeed:          c,
		CharacteristicTime: p.JunctionLength / c,
		Interval:           dt,
	}

	gage := p.GageDistance.Or(DefaultGageDistance)
	if gage == 0 {
		return k, nil
	}

	k.TravelTime = core.Round((2*gage+p.JunctionLength)/c, core.TimeDecimals)
	k.DelaySteps = sampling.DelaySteps(k.TravelTime, dt)
	return k, nil
}
