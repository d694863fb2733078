package core

import (
	"math"
	"testing"
)

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
	if !NearlyEqual(0, 0, 0) {
		t.Fatal("expected zeros to be equal with default epsilon")
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		decimals int
		expected float64
	}{
		{name: "nano jitter", value: 1.0000000000004e-6, decimals: 9, expected: 1e-6},
		{name: "round up", value: 2.6e-9, decimals: 9, expected: 3e-9},
		{name: "negative", value: -0.1234, decimals: 2, expected: -0.12},
		{name: "integer", value: 7, decimals: 0, expected: 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Round(tt.value, tt.decimals)
			if !NearlyEqual(got, tt.expected, 1e-15) {
				t.Fatalf("Round(%v, %d) = %v, want %v", tt.value, tt.decimals, got, tt.expected)
			}
		})
	}

	if !math.IsNaN(Round(math.NaN(), 3)) {
		t.Fatal("expected NaN to pass through")
	}
}

func TestTimeKey(t *testing.T) {
	for i := 0; i < 5000; i++ {
		tm := float64(i) * 1e-6
		if got, want := TimeKey(tm), int64(i)*1000; got != want {
			t.Fatalf("TimeKey(%v) = %d, want %d", tm, got, want)
		}
	}

	// Sums that differ by float jitter collapse onto the same key.
	a := 0.1 + 0.2
	b := 0.3
	if TimeKey(a) != TimeKey(b) {
		t.Fatalf("TimeKey(%v) != TimeKey(%v)", a, b)
	}

	if got := KeyTime(TimeKey(1.5e-3)); got != 1.5e-3 {
		t.Fatalf("KeyTime round trip = %v, want 1.5e-3", got)
	}
}

func TestIsFinite(t *testing.T) {
	if IsFinite(math.NaN()) || IsFinite(math.Inf(1)) || IsFinite(math.Inf(-1)) {
		t.Fatal("expected non-finite values to be rejected")
	}
	if !IsFinite(-3.5) {
		t.Fatal("expected -3.5 to be finite")
	}
}
