package conv

import (
	"errors"

	vecmath "github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
)

// DefaultDirectThreshold is the kernel length up to which [Convolve] uses
// direct convolution.
const DefaultDirectThreshold = 64

// Mode specifies the output mode for convolution.
type Mode int

const (
	// ModeFull returns the full convolution result with length len(a)+len(b)-1.
	ModeFull Mode = iota

	// ModeCausal returns the first len(a) samples of the full result.
	ModeCausal
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeFull:
		return "full"
	case ModeCausal:
		return "causal"
	default:
		return "unknown"
	}
}

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	for i := range dst {
		dst[i] = 0
	}

	if len(b) < 4 {
		directToScalar(dst, a, b)
		return
	}

	directToSIMD(dst, a, b)
}

// directToScalar handles kernels too short for block operations.
func directToScalar(dst, a, b []float64) {
	for i, x := range a {
		if x == 0 {
			continue
		}
		for j, y := range b {
			dst[i+j] += x * y
		}
	}
}

// directToSIMD accumulates one scaled copy of the kernel per input sample.
func directToSIMD(dst, a, b []float64) {
	m := len(b)
	temp := make([]float64, m)

	for i, x := range a {
		if x == 0 {
			continue
		}
		vecmath.ScaleBlock(temp, b, x)
		vecmath.AddBlockInPlace(dst[i:i+m], temp)
	}
}

// Convolve performs linear convolution with automatic algorithm selection,
// using [DefaultDirectThreshold].
func Convolve(a, b []float64) ([]float64, error) {
	return Auto(a, b, DefaultDirectThreshold)
}

// Auto performs linear convolution, choosing direct convolution when the
// shorter input has at most directThreshold samples and overlap-add otherwise.
// A non-positive threshold selects the default.
func Auto(a, b []float64, directThreshold int) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}
	if directThreshold <= 0 {
		directThreshold = DefaultDirectThreshold
	}

	// Convolution is commutative; segment the longer input.
	if len(b) > len(a) {
		a, b = b, a
	}

	if len(b) <= directThreshold {
		return Direct(a, b)
	}

	return OverlapAddConvolve(a, b)
}

// ConvolveMode performs convolution with the specified output mode.
func ConvolveMode(a, b []float64, mode Mode) ([]float64, error) {
	full, err := Convolve(a, b)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), mode), nil
}

// AutoMode is [ConvolveMode] with an explicit direct-convolution threshold.
func AutoMode(a, b []float64, mode Mode, directThreshold int) ([]float64, error) {
	full, err := Auto(a, b, directThreshold)
	if err != nil {
		return nil, err
	}

	return trimToMode(full, len(a), mode), nil
}

// trimToMode extracts the requested portion of a full convolution result.
func trimToMode(full []float64, lenA int, mode Mode) []float64 {
	switch mode {
	case ModeCausal:
		return full[:lenA:lenA]
	default:
		return full
	}
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
