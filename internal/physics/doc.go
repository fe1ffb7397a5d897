// Package physics models a vertically hanging chain of two masses and two
// linear springs:
//
//	anchor (x=0) → spring 1 → mass 1 → spring 2 → mass 2
//
// Positions are measured downward-positive along the vertical axis, so
// gravity contributes positively to both accelerations. The model
// implements [ode.System] for time integration and exposes the closed-form
// static equilibrium of the chain.
//
// [TwoMassChain] is immutable after construction and safe to share across
// goroutines.
package physics
