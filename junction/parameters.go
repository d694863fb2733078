package junction

import (
	"errors"
	"fmt"
	"math"
)

// Parameter errors.
var (
	ErrMissingParameter = errors.New("junction: missing parameter")
	ErrInvalidParameter = errors.New("junction: invalid parameter")
)

// DefaultGageDistance is used when no gage distance is given.
const DefaultGageDistance = 0.0

// Optional is a float that may be unset.
type Optional struct {
	value float64
	set   bool
}

// Some returns a set Optional holding v.
func Some(v float64) Optional {
	return Optional{value: v, set: true}
}

// Get returns the value and whether it is set.
func (o Optional) Get() (float64, bool) {
	return o.value, o.set
}

// Or returns the value, or def when unset.
func (o Optional) Or(def float64) float64 {
	if !o.set {
		return def
	}
	return o.value
}

// IsSet reports whether the value is set.
func (o Optional) IsSet() bool {
	return o.set
}

// String formats the value, or "unset".
func (o Optional) String() string {
	if !o.set {
		return "unset"
	}
	return fmt.Sprintf("%g", o.value)
}

// Parameters are the material and geometry inputs of the model.
// A zero field counts as absent.
type Parameters struct {
	ElasticModulus float64  // Pa
	Density        float64  // kg/m^3
	JunctionLength float64  // m
	GageDistance   Optional // m, defaults to DefaultGageDistance
}

// Validate checks that the required fields are present and positive and
// that the gage distance, if set, is not negative.
func (p Parameters) Validate() error {
	required := []struct {
		name  string
		value float64
	}{
		{"material_properties.elastic_modulus", p.ElasticModulus},
		{"material_properties.density", p.Density},
		{"geometric_parameters.junction_length", p.JunctionLength},
	}
	for _, r := range required {
		if !(r.value > 0) || math.IsInf(r.value, 0) {
			return fmt.Errorf("%w: %s must be a positive number, got %g", ErrMissingParameter, r.name, r.value)
		}
	}

	if g := p.GageDistance.Or(DefaultGageDistance); !(g >= 0) || math.IsInf(g, 0) {
		return fmt.Errorf("%w: geometric_parameters.gage_distance must be >= 0, got %g", ErrInvalidParameter, g)
	}
	return nil
}

// WaveSpeed returns sqrt(E/rho) in m/s. Only meaningful for valid parameters.
func (p Parameters) WaveSpeed() float64 {
	return math.Sqrt(p.ElasticModulus / p.Density)
}
