package conv

import (
	"errors"
	"math"
	"testing"

	"github.com/SubhashUFlorida/millipede-bar/internal/testutil"
)

func TestDirect(t *testing.T) {
	tests := []struct {
		name     string
		a        []float64
		b        []float64
		expected []float64
	}{
		{
			name:     "simple 3x3",
			a:        []float64{1, 2, 3},
			b:        []float64{1, 1, 1},
			expected: []float64{1, 3, 6, 5, 3},
		},
		{
			name:     "impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{1},
			expected: []float64{1, 2, 3, 4, 5},
		},
		{
			name:     "delayed impulse",
			a:        []float64{1, 2, 3, 4, 5},
			b:        []float64{0, 0, 1},
			expected: []float64{0, 0, 1, 2, 3, 4, 5},
		},
		{
			name:     "symmetric",
			a:        []float64{1, 2, 1},
			b:        []float64{1, 2, 1},
			expected: []float64{1, 4, 6, 4, 1},
		},
		{
			name:     "zeros in signal",
			a:        []float64{0, -1, 0},
			b:        []float64{2, 1},
			expected: []float64{0, -2, -1, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Direct(tt.a, tt.b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			testutil.RequireSliceNearlyEqual(t, result, tt.expected, 1e-12)
		})
	}
}

func TestDirectErrors(t *testing.T) {
	_, err := Direct([]float64{}, []float64{1, 2})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}

	_, err = Direct([]float64{1, 2}, []float64{})
	if !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}

	_, err = Convolve(nil, []float64{1})
	if !errors.Is(err, ErrEmptyInput) {
		t.Errorf("expected ErrEmptyInput, got %v", err)
	}
}

func TestDirectToKernelLengths(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1, 50)
	for i := 0; i < len(signal); i += 3 {
		signal[i] = 0
	}

	// Lengths on both sides of the block-operation cutoff.
	for m := 1; m <= 9; m++ {
		kernel := decayKernel(m, 2)

		want := make([]float64, len(signal)+m-1)
		for i, x := range signal {
			for j, y := range kernel {
				want[i+j] += x * y
			}
		}

		got := make([]float64, len(want))
		for i := range got {
			got[i] = math.NaN()
		}
		DirectTo(got, signal, kernel)

		diff, err := testutil.MaxAbsDiff(got, want)
		if err != nil {
			t.Fatal(err)
		}
		if diff > 1e-12 {
			t.Errorf("kernel length %d: max diff %g", m, diff)
		}
	}
}

func TestOverlapAddMatchesDirect(t *testing.T) {
	signal := testutil.DeterministicNoise(7, 1, 1000)

	kernels := map[string][]float64{
		"short":  {0.25, 0.5, 0.25},
		"decay":  decayKernel(300, 40),
		"equal":  decayKernel(1000, 98),
		"longer": decayKernel(1500, 200),
	}

	for name, kernel := range kernels {
		t.Run(name, func(t *testing.T) {
			want, err := Direct(signal, kernel)
			if err != nil {
				t.Fatalf("direct convolution failed: %v", err)
			}

			got, err := OverlapAddConvolve(signal, kernel)
			if err != nil {
				t.Fatalf("overlap-add convolution failed: %v", err)
			}

			testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
		})
	}
}

func TestConvolveAutoSelection(t *testing.T) {
	signal := make([]float64, 1000)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	shortKernel := []float64{1, 2, 1}
	got, err := Convolve(signal, shortKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	want, _ := Direct(signal, shortKernel)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-10)

	longKernel := decayKernel(100, 20)
	got, err = Convolve(signal, longKernel)
	if err != nil {
		t.Fatalf("convolution failed: %v", err)
	}
	want, _ = Direct(signal, longKernel)
	testutil.RequireSliceNearlyEqual(t, got, want, 1e-8)
}

func TestAutoThreshold(t *testing.T) {
	signal := testutil.DeterministicNoise(3, 1, 200)
	kernel := decayKernel(200, 10)

	viaFFT, err := Auto(signal, kernel, 1)
	if err != nil {
		t.Fatalf("Auto(fft) failed: %v", err)
	}
	viaDirect, err := Auto(signal, kernel, 1000)
	if err != nil {
		t.Fatalf("Auto(direct) failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, viaFFT, viaDirect, 1e-10)

	viaDefault, err := Auto(signal, kernel, 0)
	if err != nil {
		t.Fatalf("Auto(default) failed: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, viaDefault, viaDirect, 1e-10)
}

func TestConvolveMode(t *testing.T) {
	a := []float64{1, 2, 3, 4, 5}
	b := []float64{1, 2, 3}

	full, err := ConvolveMode(a, b, ModeFull)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(full) != len(a)+len(b)-1 {
		t.Errorf("full mode length: got %d, expected %d", len(full), len(a)+len(b)-1)
	}

	causal, err := ConvolveMode(a, b, ModeCausal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, causal, full[:len(a)], 0)

	// Appending to the causal head must not overwrite the dropped tail.
	if cap(causal) != len(a) {
		t.Errorf("causal capacity = %d, want %d", cap(causal), len(a))
	}
}

func TestCausalLengthIndependentOfKernel(t *testing.T) {
	signal := testutil.DC(-1, 50)
	for _, n := range []int{1, 10, 50, 80, 400} {
		out, err := AutoMode(signal, decayKernel(n, 5), ModeCausal, 16)
		if err != nil {
			t.Fatalf("kernel %d: %v", n, err)
		}
		if len(out) != len(signal) {
			t.Fatalf("kernel %d: causal length = %d, want %d", n, len(out), len(signal))
		}
	}
}

func TestOverlapAddProcessTo(t *testing.T) {
	kernel := []float64{0.25, 0.5, 0.25}

	signal := make([]float64, 100)
	for i := range signal {
		signal[i] = float64(i % 10)
	}

	oa, err := NewOverlapAdd(kernel, 32)
	if err != nil {
		t.Fatalf("failed to create overlap-add: %v", err)
	}
	if oa.BlockSize() != 32 || oa.KernelLen() != 3 || oa.FFTSize() != 64 {
		t.Fatalf("unexpected geometry: block=%d kernel=%d fft=%d", oa.BlockSize(), oa.KernelLen(), oa.FFTSize())
	}

	output := make([]float64, len(signal)+oa.KernelLen()-1)
	if err := oa.ProcessTo(output, signal); err != nil {
		t.Fatalf("ProcessTo failed: %v", err)
	}

	expected, _ := Direct(signal, kernel)
	testutil.RequireSliceNearlyEqual(t, output, expected, 1e-10)

	err = oa.ProcessTo(make([]float64, 5), signal)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
}

func TestOverlapAddReuse(t *testing.T) {
	kernel := decayKernel(128, 16)
	oa, err := NewOverlapAdd(kernel, 0)
	if err != nil {
		t.Fatalf("failed to create overlap-add: %v", err)
	}

	for seed := int64(1); seed <= 3; seed++ {
		signal := testutil.DeterministicNoise(seed, 1, 700)
		got, err := oa.Process(signal)
		if err != nil {
			t.Fatalf("Process failed: %v", err)
		}
		want, _ := Direct(signal, kernel)
		testutil.RequireSliceNearlyEqual(t, got, want, 1e-9)
	}

	if _, err := NewOverlapAdd(nil, 0); !errors.Is(err, ErrEmptyKernel) {
		t.Errorf("expected ErrEmptyKernel, got %v", err)
	}
}

func TestConvolveCommutative(t *testing.T) {
	a := []float64{1, 2, 3}
	b := []float64{4, 5}

	ab, _ := Convolve(a, b)
	ba, _ := Convolve(b, a)
	testutil.RequireSliceNearlyEqual(t, ab, ba, 1e-10)
}

func TestModeString(t *testing.T) {
	if ModeFull.String() != "full" || ModeCausal.String() != "causal" || Mode(9).String() != "unknown" {
		t.Fatal("unexpected mode names")
	}
}

func decayKernel(n int, tau float64) []float64 {
	k := make([]float64, n)
	for i := range k {
		k[i] = math.Exp(-float64(i) / tau)
	}
	return k
}
