package analysis

import (
	"math"
	"testing"
)

func TestPowerSpectrum_PeakLocation(t *testing.T) {
	// 1024 samples at dt = 0.01 puts bin 25 at exactly 2.44140625 Hz.
	n := 1024
	dt := 0.01
	freq := 25.0 / (float64(n) * dt)

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	ps := PowerSpectrum(data)
	if len(ps) != n/2 {
		t.Fatalf("expected %d bins, got %d", n/2, len(ps))
	}

	maxIdx := 0
	for i := 1; i < len(ps); i++ {
		if ps[i] > ps[maxIdx] {
			maxIdx = i
		}
	}
	if maxIdx != 25 {
		t.Errorf("expected peak at bin 25, got %d", maxIdx)
	}
}

func TestDominantFrequency(t *testing.T) {
	n := 1024
	dt := 0.01
	freq := 25.0 / (float64(n) * dt)

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * freq * float64(i) * dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 1e-9 {
		t.Errorf("expected %f hz, got %f", freq, got)
	}
}

func TestDominantFrequency_IgnoresOffset(t *testing.T) {
	// Oscillation around a large static value, like a position trace
	// around a nonzero equilibrium.
	n := 1024
	dt := 0.01
	freq := 25.0 / (float64(n) * dt)

	data := make([]float64, n)
	for i := range data {
		data[i] = 5.0 + 0.05*math.Sin(2*math.Pi*freq*float64(i)*dt)
	}

	got := DominantFrequency(data, dt)
	if math.Abs(got-freq) > 1e-9 {
		t.Errorf("expected %f hz, got %f", freq, got)
	}
}

func TestDominantFrequency_Degenerate(t *testing.T) {
	if got := DominantFrequency(nil, 0.01); got != 0 {
		t.Errorf("expected 0 for empty data, got %f", got)
	}
	if got := DominantFrequency([]float64{1, 2, 3}, 0); got != 0 {
		t.Errorf("expected 0 for zero dt, got %f", got)
	}
}

func TestPadPow2(t *testing.T) {
	padded := PadPow2([]float64{1, 2, 3, 4, 5})
	if len(padded) != 8 {
		t.Errorf("expected length 8, got %d", len(padded))
	}
	if padded[4] != 5 || padded[7] != 0 {
		t.Errorf("unexpected padding: %v", padded)
	}
}
