// Package ode provides the core primitives for numerical simulation of
// ordinary differential equations.
//
// The package defines the fundamental interfaces and types shared by the
// rest of the repository:
//
//   - [State]: vector representing system state
//   - [System]: interface for autonomous ODE systems (dX/dt = f(X, t))
//   - [Integrator]: numerical integration step
//   - [AdaptiveIntegrator]: step with error-controlled dt adjustment
//
// # Thread Safety
//
// State values are plain slices and follow the usual Go aliasing rules.
// System implementations in this repository are immutable after
// construction and safe to share across goroutines.
package ode
