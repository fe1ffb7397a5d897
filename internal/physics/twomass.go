package physics

import (
	"fmt"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
)

const DefaultGravity = 9.8

// Params holds the six scalars defining a two-mass spring chain.
type Params struct {
	M1 float64 `json:"m1"` // mass 1 (kg)
	M2 float64 `json:"m2"` // mass 2 (kg)
	K1 float64 `json:"k1"` // spring 1 stiffness (N/m)
	K2 float64 `json:"k2"` // spring 2 stiffness (N/m)
	L1 float64 `json:"l1"` // spring 1 natural length (m)
	L2 float64 `json:"l2"` // spring 2 natural length (m)
	G  float64 `json:"g"`  // gravitational acceleration (m/s²)
}

// TwoMassChain is the vertical two-mass, two-spring system.
// State order is (x1, v1, x2, v2).
type TwoMassChain struct {
	m1, m2 float64
	k1, k2 float64
	l1, l2 float64
	g      float64
}

// New validates the parameters and builds the chain. A zero G defaults to
// [DefaultGravity]. Non-positive masses are rejected: the force law divides
// by them.
func New(p Params) (*TwoMassChain, error) {
	if p.M1 <= 0 {
		return nil, fmt.Errorf("%w: m1 must be positive, got %g", ode.ErrInvalidParameter, p.M1)
	}
	if p.M2 <= 0 {
		return nil, fmt.Errorf("%w: m2 must be positive, got %g", ode.ErrInvalidParameter, p.M2)
	}
	g := p.G
	if g == 0 {
		g = DefaultGravity
	}
	return &TwoMassChain{
		m1: p.M1, m2: p.M2,
		k1: p.K1, k2: p.K2,
		l1: p.L1, l2: p.L2,
		g: g,
	}, nil
}

// Params returns a copy of the chain's parameters.
func (c *TwoMassChain) Params() Params {
	return Params{M1: c.m1, M2: c.m2, K1: c.k1, K2: c.k2, L1: c.l1, L2: c.l2, G: c.g}
}

func (c *TwoMassChain) StateDim() int { return 4 }

// Derive returns (v1, a1, v2, a2) for the state (x1, v1, x2, v2).
//
// Spring 1 connects the anchor at position 0 to mass 1, spring 2 connects
// mass 1 to mass 2; both are linear with their natural length subtracted
// from the current extension.
func (c *TwoMassChain) Derive(x ode.State, t float64) ode.State {
	x1, v1, x2, v2 := x[0], x[1], x[2], x[3]

	// Forces on mass 1: spring 1 restoring, spring 2 pulling down when
	// stretched, gravity.
	fSpring1 := -c.k1 * (x1 - c.l1)
	fSpring2 := c.k2 * (x2 - x1 - c.l2)
	a1 := (fSpring1 + fSpring2 + c.m1*c.g) / c.m1

	// Mass 2 sees the equal and opposite end of spring 2.
	fSpring2m2 := -c.k2 * (x2 - x1 - c.l2)
	a2 := (fSpring2m2 + c.m2*c.g) / c.m2

	return ode.State{v1, a1, v2, a2}
}

// Equilibrium returns the unique static configuration where both
// accelerations vanish:
//
//	x1_eq = l1 + (m1+m2)·g/k1
//	x2_eq = x1_eq + l2 + m2·g/k2
//
// The solution is exact up to floating-point rounding. A zero stiffness
// makes the equilibrium undefined and returns [ode.ErrInvalidParameter]
// rather than an infinity.
func (c *TwoMassChain) Equilibrium() (x1, x2 float64, err error) {
	if c.k1 == 0 {
		return 0, 0, fmt.Errorf("%w: equilibrium undefined for k1 = 0", ode.ErrInvalidParameter)
	}
	if c.k2 == 0 {
		return 0, 0, fmt.Errorf("%w: equilibrium undefined for k2 = 0", ode.ErrInvalidParameter)
	}
	x1 = c.l1 + (c.m1+c.m2)*c.g/c.k1
	x2 = x1 + c.l2 + c.m2*c.g/c.k2
	return x1, x2, nil
}

// Energy returns the total mechanical energy of a state: kinetic plus
// elastic potential minus gravitational potential (x is downward-positive,
// so gravity lowers the potential as x grows). Conserved by the undamped
// dynamics, which makes it the drift reference during integration.
func (c *TwoMassChain) Energy(x ode.State) float64 {
	x1, v1, x2, v2 := x[0], x[1], x[2], x[3]

	ke := 0.5*c.m1*v1*v1 + 0.5*c.m2*v2*v2

	s1 := x1 - c.l1
	s2 := x2 - x1 - c.l2
	pe := 0.5*c.k1*s1*s1 + 0.5*c.k2*s2*s2

	pg := -c.m1*c.g*x1 - c.m2*c.g*x2

	return ke + pe + pg
}
