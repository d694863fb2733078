package junction

import (
	"github.com/SubhashUFlorida/millipede-bar/dsp/conv"
	"github.com/SubhashUFlorida/millipede-bar/dsp/sampling"
)

// Config holds evaluation settings.
type Config struct {
	// UniformityTolerance is the relative deviation of a time step from the
	// sample interval that is still accepted.
	UniformityTolerance float64

	// DirectThreshold is the kernel length up to which direct convolution
	// is used instead of FFT overlap-add.
	DirectThreshold int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the default evaluation settings.
func DefaultConfig() Config {
	return Config{
		UniformityTolerance: sampling.DefaultTolerance,
		DirectThreshold:     conv.DefaultDirectThreshold,
	}
}

// WithUniformityTolerance sets the relative time-step tolerance.
func WithUniformityTolerance(tol float64) Option {
	return func(cfg *Config) {
		if tol > 0 {
			cfg.UniformityTolerance = tol
		}
	}
}

// WithDirectThreshold sets the direct/FFT convolution crossover.
func WithDirectThreshold(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.DirectThreshold = n
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
