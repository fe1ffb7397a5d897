package integrators

import (
	"fmt"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
)

// New returns the integrator registered under name.
func New(name string) (ode.Integrator, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "rk4":
		return NewRK4(), nil
	case "rk45":
		return NewRK45(), nil
	case "verlet":
		return NewVerlet(), nil
	case "leapfrog":
		return NewLeapfrog(), nil
	default:
		return nil, fmt.Errorf("unknown integrator: %s (available: %v)", name, Names())
	}
}

// Names lists the available integrators.
func Names() []string {
	return []string{"euler", "rk4", "rk45", "verlet", "leapfrog"}
}
