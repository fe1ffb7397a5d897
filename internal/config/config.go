package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/ode"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/physics"
)

// Textbook parameters of the example system.
const (
	DefaultM1       = 1.0
	DefaultM2       = 2.0
	DefaultK1       = 100.0
	DefaultK2       = 50.0
	DefaultL1       = 0.1
	DefaultL2       = 0.15
	DefaultTEnd     = 10.0
	DefaultSamples  = 1000
	DefaultOffset1  = 0.05
	DefaultOffset2  = 0.03
	DefaultTol      = 1e-6
	DefaultMaxSubDt = 0.01
)

type Config struct {
	System     SystemConfig    `yaml:"system"`
	InitState  InitStateConfig `yaml:"init_state"`
	TStart     float64         `yaml:"t_start"`
	TEnd       float64         `yaml:"t_end"`
	Samples    int             `yaml:"samples"`
	Integrator string          `yaml:"integrator"`
	Tolerance  float64         `yaml:"tolerance"`
	MaxSubDt   float64         `yaml:"max_sub_dt"`
}

type SystemConfig struct {
	M1 float64 `yaml:"m1"`
	M2 float64 `yaml:"m2"`
	K1 float64 `yaml:"k1"`
	K2 float64 `yaml:"k2"`
	L1 float64 `yaml:"l1"`
	L2 float64 `yaml:"l2"`
	G  float64 `yaml:"g"`
}

// InitStateConfig describes the initial condition. With FromEquilibrium
// set, the four values are offsets from the static equilibrium; otherwise
// they are absolute positions and velocities.
type InitStateConfig struct {
	FromEquilibrium bool    `yaml:"from_equilibrium"`
	X1              float64 `yaml:"x1"`
	V1              float64 `yaml:"v1"`
	X2              float64 `yaml:"x2"`
	V2              float64 `yaml:"v2"`
}

// Default mirrors the example driver: the textbook system, perturbed
// +5 cm / +3 cm from equilibrium, simulated for 10 s at 1000 samples.
func Default() *Config {
	return &Config{
		System: SystemConfig{
			M1: DefaultM1,
			M2: DefaultM2,
			K1: DefaultK1,
			K2: DefaultK2,
			L1: DefaultL1,
			L2: DefaultL2,
			G:  physics.DefaultGravity,
		},
		InitState: InitStateConfig{
			FromEquilibrium: true,
			X1:              DefaultOffset1,
			X2:              DefaultOffset2,
		},
		TStart:     0,
		TEnd:       DefaultTEnd,
		Samples:    DefaultSamples,
		Integrator: "rk4",
		Tolerance:  DefaultTol,
		MaxSubDt:   DefaultMaxSubDt,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildChain constructs the physical model from the config.
func (c *Config) BuildChain() (*physics.TwoMassChain, error) {
	return physics.New(physics.Params{
		M1: c.System.M1,
		M2: c.System.M2,
		K1: c.System.K1,
		K2: c.System.K2,
		L1: c.System.L1,
		L2: c.System.L2,
		G:  c.System.G,
	})
}

// BuildInitState resolves the configured initial condition against the
// chain, solving the equilibrium when offsets are requested.
func (c *Config) BuildInitState(chain *physics.TwoMassChain) (ode.State, error) {
	if !c.InitState.FromEquilibrium {
		return ode.State{c.InitState.X1, c.InitState.V1, c.InitState.X2, c.InitState.V2}, nil
	}
	x1eq, x2eq, err := chain.Equilibrium()
	if err != nil {
		return nil, err
	}
	return ode.State{
		x1eq + c.InitState.X1,
		c.InitState.V1,
		x2eq + c.InitState.X2,
		c.InitState.V2,
	}, nil
}
