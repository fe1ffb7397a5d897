package config

var Presets = map[string]*Config{
	// The worked example: small perturbation around equilibrium.
	"textbook": Default(),

	// Stiff springs, tiny displacement, fast oscillation.
	"stiff": {
		System:     SystemConfig{M1: 1.0, M2: 1.0, K1: 1000.0, K2: 800.0, L1: 0.1, L2: 0.1, G: 9.8},
		InitState:  InitStateConfig{FromEquilibrium: true, X1: 0.01, X2: 0.005},
		TEnd:       5.0,
		Samples:    2000,
		Integrator: "rk45",
		Tolerance:  1e-8,
		MaxSubDt:   0.001,
	},

	// Soft springs stretch far under gravity and swing slowly.
	"soft": {
		System:     SystemConfig{M1: 1.0, M2: 2.0, K1: 10.0, K2: 5.0, L1: 0.1, L2: 0.15, G: 9.8},
		InitState:  InitStateConfig{FromEquilibrium: true, X1: 0.2, X2: 0.1},
		TEnd:       30.0,
		Samples:    1500,
		Integrator: "rk4",
		Tolerance:  1e-6,
		MaxSubDt:   0.01,
	},

	// Masses released at the springs' natural lengths and dropped.
	"dropped": {
		System:     SystemConfig{M1: 1.0, M2: 2.0, K1: 100.0, K2: 50.0, L1: 0.1, L2: 0.15, G: 9.8},
		InitState:  InitStateConfig{FromEquilibrium: false, X1: 0.1, X2: 0.25},
		TEnd:       10.0,
		Samples:    1000,
		Integrator: "rk4",
		Tolerance:  1e-6,
		MaxSubDt:   0.01,
	},
}

// GetPreset returns a copy of the named preset, so callers can layer
// overrides on top without mutating the shared table.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
