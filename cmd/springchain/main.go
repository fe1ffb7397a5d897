package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/analysis"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/config"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/integrators"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/physics"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/report"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/sim"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/storage"
	"github.com/Ricardo-B04/Sistema-masa-resorte/internal/viz"
)

var (
	dataDir string

	m1, m2     float64
	k1, k2     float64
	l1, l2     float64
	gravity    float64
	tStart     float64
	tEnd       float64
	samples    int
	integrator string
	tolerance  float64
	maxSubDt   float64

	x1Init, v1Init float64
	x2Init, v2Init float64
	absolute       bool

	configFile string
	preset     string
	showPlots  bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "springchain",
		Short: "vertical two-mass spring chain simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".springchain", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation",
		RunE:  runSimulation,
	}
	addSystemFlags(runCmd)
	runCmd.Flags().Float64Var(&tStart, "t-start", 0, "start time (s)")
	runCmd.Flags().Float64Var(&tEnd, "t-end", config.DefaultTEnd, "end time (s)")
	runCmd.Flags().IntVar(&samples, "samples", config.DefaultSamples, "number of samples")
	runCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4, rk45, verlet, leapfrog)")
	runCmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTol, "adaptive error tolerance")
	runCmd.Flags().Float64Var(&maxSubDt, "max-dt", config.DefaultMaxSubDt, "largest internal sub-step (s)")
	runCmd.Flags().Float64Var(&x1Init, "x1", config.DefaultOffset1, "initial x1 (offset from equilibrium, or absolute with --absolute)")
	runCmd.Flags().Float64Var(&v1Init, "v1", 0, "initial v1")
	runCmd.Flags().Float64Var(&x2Init, "x2", config.DefaultOffset2, "initial x2 (offset from equilibrium, or absolute with --absolute)")
	runCmd.Flags().Float64Var(&v2Init, "v2", 0, "initial v2")
	runCmd.Flags().BoolVar(&absolute, "absolute", false, "treat initial positions as absolute")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	runCmd.Flags().BoolVar(&showPlots, "plot", false, "print trajectory plots after the run")

	eqCmd := &cobra.Command{
		Use:   "equilibrium",
		Short: "print the static equilibrium positions",
		RunE:  printEquilibrium,
	}
	addSystemFlags(eqCmd)

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "dominant oscillation frequency of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a run as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the chain oscillate in the terminal",
		RunE:  runLive,
	}
	addSystemFlags(liveCmd)
	liveCmd.Flags().Float64Var(&x1Init, "x1", config.DefaultOffset1, "initial x1 offset from equilibrium")
	liveCmd.Flags().Float64Var(&x2Init, "x2", config.DefaultOffset2, "initial x2 offset from equilibrium")
	liveCmd.Flags().StringVar(&integrator, "integrator", "rk4", "integrator (euler, rk4, rk45, verlet, leapfrog)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, eqCmd, listCmd, plotCmd, analyzeCmd, exportCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSystemFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&m1, "m1", config.DefaultM1, "mass 1 (kg)")
	cmd.Flags().Float64Var(&m2, "m2", config.DefaultM2, "mass 2 (kg)")
	cmd.Flags().Float64Var(&k1, "k1", config.DefaultK1, "spring 1 stiffness (N/m)")
	cmd.Flags().Float64Var(&k2, "k2", config.DefaultK2, "spring 2 stiffness (N/m)")
	cmd.Flags().Float64Var(&l1, "l1", config.DefaultL1, "spring 1 natural length (m)")
	cmd.Flags().Float64Var(&l2, "l2", config.DefaultL2, "spring 2 natural length (m)")
	cmd.Flags().Float64Var(&gravity, "g", physics.DefaultGravity, "gravitational acceleration (m/s²)")
}

// resolveConfig merges preset < config file < explicit flags, the flag
// winning whenever the user set it.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		*cfg = *p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flagOverrides := map[string]func(){
		"m1":         func() { cfg.System.M1 = m1 },
		"m2":         func() { cfg.System.M2 = m2 },
		"k1":         func() { cfg.System.K1 = k1 },
		"k2":         func() { cfg.System.K2 = k2 },
		"l1":         func() { cfg.System.L1 = l1 },
		"l2":         func() { cfg.System.L2 = l2 },
		"g":          func() { cfg.System.G = gravity },
		"t-start":    func() { cfg.TStart = tStart },
		"t-end":      func() { cfg.TEnd = tEnd },
		"samples":    func() { cfg.Samples = samples },
		"integrator": func() { cfg.Integrator = integrator },
		"tolerance":  func() { cfg.Tolerance = tolerance },
		"max-dt":     func() { cfg.MaxSubDt = maxSubDt },
		"x1":         func() { cfg.InitState.X1 = x1Init },
		"v1":         func() { cfg.InitState.V1 = v1Init },
		"x2":         func() { cfg.InitState.X2 = x2Init },
		"v2":         func() { cfg.InitState.V2 = v2Init },
		"absolute":   func() { cfg.InitState.FromEquilibrium = !absolute },
	}
	for name, apply := range flagOverrides {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	chain, err := cfg.BuildChain()
	if err != nil {
		return err
	}

	x0, err := cfg.BuildInitState(chain)
	if err != nil {
		return err
	}

	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}

	fmt.Print(report.Summary(chain))
	fmt.Printf("\ninitial state: x1=%.4f v1=%.4f x2=%.4f v2=%.4f\n", x0[0], x0[1], x0[2], x0[3])
	fmt.Printf("simulating [%g, %g] s with %d samples (%s)...\n", cfg.TStart, cfg.TEnd, cfg.Samples, cfg.Integrator)

	simCfg := sim.Config{
		TStart:        cfg.TStart,
		TEnd:          cfg.TEnd,
		Samples:       cfg.Samples,
		Tolerance:     cfg.Tolerance,
		MaxSubDt:      cfg.MaxSubDt,
		MinSubDt:      1e-8,
		ValidateState: true,
	}

	start := time.Now()
	tr, err := sim.New(chain, integ).Run(context.Background(), x0, simCfg)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	series, err := physics.NewSeries(tr.Times, tr.States)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	meta := storage.RunMetadata{
		Params:      chain.Params(),
		TStart:      cfg.TStart,
		TEnd:        cfg.TEnd,
		Samples:     cfg.Samples,
		Integrator:  cfg.Integrator,
		EnergyDrift: tr.EnergyDrift,
		StepsTaken:  tr.StepsTaken,
	}
	if x1eq, x2eq, eqErr := chain.Equilibrium(); eqErr == nil {
		meta.X1Eq = x1eq
		meta.X2Eq = x2eq
	}

	runID, err := st.Save(meta, series)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v (%d integrator steps)\n", elapsed, tr.StepsTaken)
	fmt.Printf("energy drift: %.3e\n", tr.EnergyDrift)
	fmt.Printf("run id: %s\n", runID)

	if showPlots {
		fmt.Println()
		fmt.Print(report.PlotSeries(chain, series))
	}

	return nil
}

func printEquilibrium(cmd *cobra.Command, args []string) error {
	chain, err := physics.New(physics.Params{M1: m1, M2: m2, K1: k1, K2: k2, L1: l1, L2: l2, G: gravity})
	if err != nil {
		return err
	}
	fmt.Print(report.Summary(chain))
	if _, _, err := chain.Equilibrium(); err != nil {
		return err
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tSPAN\tSAMPLES\tINTEG\tDRIFT")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t[%g, %g]s\t%d\t%s\t%.2e\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.TStart,
			run.TEnd,
			run.Samples,
			run.Integrator,
			run.EnergyDrift,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if series.Len() == 0 {
		return fmt.Errorf("no data to plot")
	}

	chain, err := physics.New(meta.Params)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", series.Len())
	fmt.Print(report.PlotSeries(chain, series))

	return nil
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}
	if series.Len() < 2 {
		return fmt.Errorf("no data")
	}

	dt := (meta.TEnd - meta.TStart) / float64(meta.Samples-1)

	fmt.Printf("frequency analysis: %s\n\n", meta.ID)
	for _, c := range []struct {
		name string
		data []float64
	}{
		{"x1", series.X1},
		{"x2", series.X2},
	} {
		freq := analysis.DominantFrequency(c.data, dt)
		fmt.Printf("%s dominant frequency: %.3f hz", c.name, freq)
		if freq > 0 {
			fmt.Printf(" (period %.3f s)", 1.0/freq)
		}
		fmt.Println()
	}

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)

	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	series, err := st.LoadSeries(args[0])
	if err != nil {
		return err
	}

	return storage.ExportJSON(os.Stdout, *meta, series)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	chain, err := cfg.BuildChain()
	if err != nil {
		return err
	}

	x0, err := cfg.BuildInitState(chain)
	if err != nil {
		return err
	}

	integ, err := integrators.New(cfg.Integrator)
	if err != nil {
		return err
	}

	return viz.Run(chain, integ, x0)
}
