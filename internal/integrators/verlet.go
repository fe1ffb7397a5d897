package integrators

import "github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"

// Verlet is velocity Verlet for second-order systems in interleaved
// layout: positions at even state indices, velocities at odd. Symplectic,
// so the energy error stays bounded instead of drifting.
type Verlet struct {
	scratch ode.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) ensureScratch(n int) {
	if len(v.scratch) != n {
		v.scratch = make(ode.State, n)
	}
}

func (v *Verlet) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	n := len(x)
	v.ensureScratch(n)

	result := make(ode.State, n)
	dx := sys.Derive(x, t)
	dt2 := dt * dt

	for i := 0; i+1 < n; i += 2 {
		result[i] = x[i] + x[i+1]*dt + 0.5*dx[i+1]*dt2
	}

	// Accelerations at the new positions, old velocities.
	for i := 0; i+1 < n; i += 2 {
		v.scratch[i] = result[i]
		v.scratch[i+1] = x[i+1]
	}

	dxNew := sys.Derive(v.scratch, t+dt)

	halfDt := 0.5 * dt
	for i := 0; i+1 < n; i += 2 {
		result[i+1] = x[i+1] + (dx[i+1]+dxNew[i+1])*halfDt
	}

	return result
}

// Leapfrog is the kick-drift-kick variant.
type Leapfrog struct {
	scratch ode.State
}

func NewLeapfrog() *Leapfrog {
	return &Leapfrog{}
}

func (l *Leapfrog) Step(sys ode.System, x ode.State, t, dt float64) ode.State {
	n := len(x)

	if len(l.scratch) != n {
		l.scratch = make(ode.State, n)
	}

	result := make(ode.State, n)
	dx := sys.Derive(x, t)
	halfDt := dt * 0.5

	for i := 0; i+1 < n; i += 2 {
		l.scratch[i+1] = x[i+1] + dx[i+1]*halfDt
	}

	for i := 0; i+1 < n; i += 2 {
		result[i] = x[i] + l.scratch[i+1]*dt
		l.scratch[i] = result[i]
	}

	dxNew := sys.Derive(l.scratch, t+dt)

	for i := 0; i+1 < n; i += 2 {
		result[i+1] = l.scratch[i+1] + dxNew[i+1]*halfDt
	}

	return result
}
