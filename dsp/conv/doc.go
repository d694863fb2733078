// Package conv provides linear (non-circular) convolution.
//
// Two strategies are available:
//
//   - Direct convolution: O(N*M) time-domain convolution, best for short kernels
//   - Overlap-add (OLA): FFT-based block convolution for long kernels
//
// # Usage
//
// For one-shot convolution, use the simple functions:
//
//	result, err := conv.Convolve(signal, kernel)  // Auto-selects the algorithm
//	result, err := conv.Direct(signal, kernel)    // Force direct convolution
//
// The output mode decides how much of the full result is returned:
//
//	full, err := conv.ConvolveMode(signal, kernel, conv.ModeFull)
//	head, err := conv.ConvolveMode(signal, kernel, conv.ModeCausal)
//
// ModeCausal keeps the first len(signal) samples and drops the tail that the
// kernel's support adds, so the result stays aligned to the signal's own
// time axis.
//
// # Algorithm Selection
//
// [Convolve] uses direct convolution when the shorter input has at most
// [DefaultDirectThreshold] samples and FFT-based overlap-add otherwise.
// [Auto] takes the threshold explicitly.
package conv
