package sim

import (
	"context"
	"fmt"
	"math"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
)

type Config struct {
	TStart        float64
	TEnd          float64
	Samples       int
	Tolerance     float64
	MaxSubDt      float64
	MinSubDt      float64
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		TStart:        0,
		TEnd:          10.0,
		Samples:       1000,
		Tolerance:     1e-6,
		MaxSubDt:      0.01,
		MinSubDt:      1e-8,
		ValidateState: true,
	}
}

// Trajectory is the raw result of one integration run: one state per sample
// time, times evenly spaced and inclusive of both endpoints.
type Trajectory struct {
	Times       []float64
	States      []ode.State
	StepsTaken  int
	EnergyDrift float64
}

func (tr *Trajectory) Len() int { return len(tr.Times) }

// Simulator drives an integrator over a fixed sample grid. The grid times
// are computed directly from the span, never by accumulating dt, so the
// last sample lands exactly on TEnd.
type Simulator struct {
	sys        ode.System
	integrator ode.Integrator
}

func New(sys ode.System, integrator ode.Integrator) *Simulator {
	return &Simulator{sys: sys, integrator: integrator}
}

// Run integrates from x0 over [cfg.TStart, cfg.TEnd], returning exactly
// cfg.Samples samples. Between sample times the integrator advances with
// sub-steps no larger than cfg.MaxSubDt (error-controlled when the
// integrator is adaptive). Failures are never retried: a diverged state or
// a collapsed adaptive step surfaces as a typed error to the caller.
func (s *Simulator) Run(ctx context.Context, x0 ode.State, cfg Config) (*Trajectory, error) {
	if err := s.validateConfig(cfg); err != nil {
		return nil, err
	}
	if len(x0) != s.sys.StateDim() {
		return nil, fmt.Errorf("%w: initial state has dimension %d, system wants %d",
			ode.ErrDimensionMismatch, len(x0), s.sys.StateDim())
	}

	n := cfg.Samples
	span := cfg.TEnd - cfg.TStart
	tr := &Trajectory{
		Times:  make([]float64, n),
		States: make([]ode.State, n),
	}
	for i := 0; i < n; i++ {
		tr.Times[i] = cfg.TStart + span*float64(i)/float64(n-1)
	}
	tr.Times[n-1] = cfg.TEnd

	x := x0.Clone()
	tr.States[0] = x.Clone()

	initialEnergy := s.computeEnergy(x)

	adaptive, isAdaptive := s.integrator.(ode.AdaptiveIntegrator)

	for i := 1; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		var err error
		if isAdaptive {
			x, err = s.advanceAdaptive(adaptive, x, tr.Times[i-1], tr.Times[i], cfg, tr)
		} else {
			x = s.advanceFixed(x, tr.Times[i-1], tr.Times[i], cfg, tr)
		}
		if err != nil {
			return nil, &ode.SimulationError{Step: i, Time: tr.Times[i], Wrapped: err}
		}

		if cfg.ValidateState && !x.IsValid() {
			return nil, &ode.SimulationError{
				Step:    i,
				Time:    tr.Times[i],
				Wrapped: fmt.Errorf("%w: state diverged to NaN/Inf", ode.ErrIntegrationFailure),
			}
		}

		tr.States[i] = x.Clone()
	}

	finalEnergy := s.computeEnergy(x)
	if initialEnergy != 0 {
		tr.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	return tr, nil
}

func (s *Simulator) validateConfig(cfg Config) error {
	if cfg.Samples < 2 {
		return fmt.Errorf("%w: need at least 2 samples, got %d", ode.ErrInvalidParameter, cfg.Samples)
	}
	if cfg.TEnd < cfg.TStart {
		return fmt.Errorf("%w: t_end %g before t_start %g", ode.ErrInvalidParameter, cfg.TEnd, cfg.TStart)
	}
	if cfg.MaxSubDt <= 0 {
		return fmt.Errorf("%w: max sub-step must be positive, got %g", ode.ErrInvalidParameter, cfg.MaxSubDt)
	}
	if cfg.Tolerance <= 0 {
		if _, ok := s.integrator.(ode.AdaptiveIntegrator); ok {
			return fmt.Errorf("%w: tolerance must be positive for adaptive stepping", ode.ErrInvalidParameter)
		}
	}
	return nil
}

// advanceFixed covers [t0, t1] with equal sub-steps no larger than MaxSubDt.
func (s *Simulator) advanceFixed(x ode.State, t0, t1 float64, cfg Config, tr *Trajectory) ode.State {
	span := t1 - t0
	nsub := int(math.Ceil(span / cfg.MaxSubDt))
	if nsub < 1 {
		nsub = 1
	}
	dt := span / float64(nsub)
	for j := 0; j < nsub; j++ {
		x = s.integrator.Step(s.sys, x, t0+dt*float64(j), dt)
		tr.StepsTaken++
	}
	return x
}

// advanceAdaptive covers [t0, t1] letting the integrator pick its own
// step, clamped to MaxSubDt and to the remaining span.
func (s *Simulator) advanceAdaptive(integ ode.AdaptiveIntegrator, x ode.State, t0, t1 float64, cfg Config, tr *Trajectory) (ode.State, error) {
	t := t0
	dt := math.Min(cfg.MaxSubDt, t1-t0)
	for t < t1 {
		if t+dt > t1 {
			dt = t1 - t
		}
		newX, nextDt, err := integ.StepAdaptive(s.sys, x, t, dt, cfg.Tolerance)
		if err != nil {
			return x, fmt.Errorf("%w: %v", ode.ErrIntegrationFailure, err)
		}
		x = newX
		t += dt
		tr.StepsTaken++

		// A collapsed suggestion only matters while integration remains;
		// the clamped landing step at t1 legitimately produces tiny dts.
		if nextDt < cfg.MinSubDt && t1-t > cfg.MinSubDt {
			return x, fmt.Errorf("%w: suggested dt %g below %g", ode.ErrStepTooSmall, nextDt, cfg.MinSubDt)
		}
		dt = math.Min(nextDt, cfg.MaxSubDt)
	}
	return x, nil
}

func (s *Simulator) computeEnergy(x ode.State) float64 {
	if h, ok := s.sys.(ode.Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}
