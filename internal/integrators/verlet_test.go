package integrators

import (
	"math"
	"testing"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
)

// Two uncoupled unit oscillators in interleaved layout, the second with
// spring constant 4 so its period is half the first's.
type twoOscillators struct{}

func (o *twoOscillators) StateDim() int { return 4 }

func (o *twoOscillators) Derive(x ode.State, t float64) ode.State {
	return ode.State{x[1], -x[0], x[3], -4 * x[2]}
}

func TestVerletAccuracy(t *testing.T) {
	dyn := &harmonicOscillator{}
	integ := NewVerlet()

	x := ode.State{1.0, 0.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
}

func TestVerletEnergyBounded(t *testing.T) {
	dyn := &harmonicOscillator{}

	tests := []struct {
		name  string
		integ ode.Integrator
	}{
		{"verlet", NewVerlet()},
		{"leapfrog", NewLeapfrog()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := ode.State{1.0, 0.0}
			e0 := dyn.Energy(x)
			dt := 0.01
			steps := 10000

			for i := 0; i < steps; i++ {
				x = tt.integ.Step(dyn, x, float64(i)*dt, dt)
				drift := math.Abs(dyn.Energy(x)-e0) / e0
				if drift > 1e-4 {
					t.Fatalf("energy drift %e at step %d exceeds symplectic bound", drift, i)
				}
			}
		})
	}
}

func TestVerletInterleavedLayout(t *testing.T) {
	dyn := &twoOscillators{}
	integ := NewVerlet()

	x := ode.State{1.0, 0.0, 1.0, 0.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	tFinal := float64(steps) * dt
	if math.Abs(x[0]-math.Cos(tFinal)) > 1e-4 {
		t.Errorf("first oscillator position: got %.6f, expected %.6f", x[0], math.Cos(tFinal))
	}
	if math.Abs(x[2]-math.Cos(2*tFinal)) > 1e-3 {
		t.Errorf("second oscillator position: got %.6f, expected %.6f", x[2], math.Cos(2*tFinal))
	}
}

func TestLeapfrogAccuracy(t *testing.T) {
	dyn := &harmonicOscillator{}
	integ := NewLeapfrog()

	x := ode.State{1.0, 0.0}
	dt := 0.001
	steps := 1000

	for i := 0; i < steps; i++ {
		x = integ.Step(dyn, x, float64(i)*dt, dt)
	}

	expectedX := math.Cos(float64(steps) * dt)
	if math.Abs(x[0]-expectedX) > 1e-4 {
		t.Errorf("position error too large: got %.6f, expected %.6f", x[0], expectedX)
	}
}
