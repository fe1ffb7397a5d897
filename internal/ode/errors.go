package ode

import (
	"errors"
	"fmt"
)

// Domain errors for model construction and integration.
var (
	// ErrInvalidParameter indicates a physically meaningless model
	// parameter (non-positive mass, zero stiffness for an equilibrium
	// solve).
	ErrInvalidParameter = errors.New("ode: invalid parameter")

	// ErrIntegrationFailure indicates the numerical solver could not
	// produce a solution within its tolerances.
	ErrIntegrationFailure = errors.New("ode: integration failure")

	// ErrUnstable indicates the state diverged to NaN or Inf.
	ErrUnstable = errors.New("ode: simulation unstable (state diverged)")

	// ErrStepTooSmall indicates the adaptive timestep collapsed below
	// its minimum.
	ErrStepTooSmall = errors.New("ode: adaptive timestep below minimum")

	// ErrDimensionMismatch indicates mismatched state/system dimensions.
	ErrDimensionMismatch = errors.New("ode: dimension mismatch between state and system")
)

// SimulationError wraps an error with the step and time at which it occurred.
type SimulationError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *SimulationError) Unwrap() error {
	return e.Wrapped
}
