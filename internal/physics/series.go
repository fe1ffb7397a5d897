package physics

import (
	"fmt"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
)

// Series is a sampled trajectory of the chain split into named component
// sequences. All five slices have the same length and share indices with
// the sample times.
type Series struct {
	Times []float64
	X1    []float64
	V1    []float64
	X2    []float64
	V2    []float64
}

// NewSeries reshapes raw integrator output (one state per sample time,
// columns in the fixed order x1, v1, x2, v2) into named sequences.
func NewSeries(times []float64, states []ode.State) (*Series, error) {
	if len(times) != len(states) {
		return nil, fmt.Errorf("%w: %d times for %d states", ode.ErrDimensionMismatch, len(times), len(states))
	}
	n := len(times)
	s := &Series{
		Times: make([]float64, n),
		X1:    make([]float64, n),
		V1:    make([]float64, n),
		X2:    make([]float64, n),
		V2:    make([]float64, n),
	}
	copy(s.Times, times)
	for i, st := range states {
		if len(st) != 4 {
			return nil, fmt.Errorf("%w: state %d has dimension %d, want 4", ode.ErrDimensionMismatch, i, len(st))
		}
		s.X1[i] = st[0]
		s.V1[i] = st[1]
		s.X2[i] = st[2]
		s.V2[i] = st[3]
	}
	return s, nil
}

func (s *Series) Len() int { return len(s.Times) }

// State returns the i-th sample as a state vector.
func (s *Series) State(i int) ode.State {
	return ode.State{s.X1[i], s.V1[i], s.X2[i], s.V2[i]}
}
