package main

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"fluidlab/internal/config"
	"fluidlab/internal/metrics"
	"fluidlab/internal/sim"
	"fluidlab/internal/storage"
	"fluidlab/internal/viz"
)

var (
	dataDir    string
	width      int
	height     int
	dt         float64
	duration   float64
	rate       float64
	sweeps     int
	substeps   int
	seed       int64
	initMode   string
	gain       float64
	frameRate  int
	pattern    bool
	numRuns    int
	configFile string
	preset     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "fluidlab",
		Short: "toy stable-fluid grid simulation lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".fluidlab", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless simulation and save the result",
		RunE:  runSimulation,
	}
	addGridFlags(runCmd)
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run the simulation with a live terminal view",
		RunE:  runLive,
	}
	addGridFlags(liveCmd)
	liveCmd.Flags().Float64Var(&gain, "gain", config.DefaultGain, "injection gain")
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")
	liveCmd.Flags().BoolVar(&pattern, "pattern", false, "run the oscillator debug pattern instead of the solver")
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run randomized grids across consecutive seeds",
		RunE:  runSweep,
	}
	addGridFlags(sweepCmd)
	sweepCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration")
	sweepCmd.Flags().IntVar(&numRuns, "runs", 4, "number of seeds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export a run's frame series to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportCSVStdout(args[0])
		},
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return storage.New(dataDir).ExportJSONStdout(args[0])
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				p := config.GetPreset(name)
				fmt.Printf("%-8s %dx%d init=%s rate=%g\n", name, p.Width, p.Height, p.Init, p.Rate)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, sweepCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addGridFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "grid width")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "grid height")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&rate, "rate", config.DefaultRate, "diffusion rate")
	cmd.Flags().IntVar(&sweeps, "sweeps", 5, "diffusion relaxation sweeps")
	cmd.Flags().IntVar(&substeps, "substeps", 5, "advection sub-steps")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().StringVar(&initMode, "init", "spike", "initial grid mode (zero|spike|random)")
}

// resolveConfig layers preset, then config file, then explicit flags, so a
// flag the user set always wins.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		tmp := *p
		cfg = &tmp
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("dt") {
		cfg.Dt = dt
	}
	if flags.Changed("time") {
		cfg.Duration = duration
	}
	if flags.Changed("rate") {
		cfg.Rate = rate
	}
	if flags.Changed("sweeps") {
		cfg.Sweeps = sweeps
	}
	if flags.Changed("substeps") {
		cfg.Substeps = substeps
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("init") {
		cfg.Init = initMode
	}
	if flags.Changed("gain") {
		cfg.Gain = gain
	}
	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	runner := sim.New(g)
	for _, m := range metrics.Default() {
		runner.AddMetric(m)
	}

	fmt.Printf("running %s simulation on %dx%d grid...\n", cfg.Init, cfg.Width, cfg.Height)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Init, cfg.Width, cfg.Height, cfg.Dt, cfg.Duration, cfg.Seed, result, g)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.Frames)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	g, err := cfg.NewGrid()
	if err != nil {
		return err
	}

	m := viz.NewModel(g, cfg.Dt, cfg.Gain, frameRate)
	m.Pattern = pattern

	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Init = "random"

	build := func(seed int64) *sim.Runner {
		c := *cfg
		c.Seed = seed
		g, _ := c.NewGrid()
		r := sim.New(g)
		for _, m := range metrics.Default() {
			r.AddMetric(m)
		}
		return r
	}

	ensemble := sim.NewEnsemble(build, numRuns, cfg.Seed)

	fmt.Printf("sweeping %d seeds from %d...\n\n", numRuns, cfg.Seed)
	results, err := ensemble.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tMASS\tDRIFT\tMAX_SPEED")
	for i, res := range results {
		fmt.Fprintf(w, "%d\t%.4f\t%.2e\t%.3f\n",
			cfg.Seed+int64(i),
			res.Metrics["total_density"],
			res.Metrics["mass_drift"],
			res.Metrics["max_speed"],
		)
	}
	return w.Flush()
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
	fmt.Fprintln(w, "ID\tGRID\tINIT\tTIME\tDURATION\tDT\tFRAMES")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%dx%d\t%s\t%s\t%.2fs\t%.4fs\t%d\n",
			run.ID,
			run.Width, run.Height,
			run.Init,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Duration,
			run.Dt,
			run.Frames,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	_, series, err := st.LoadFrames(runID)
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("grid: %dx%d init=%s\n", meta.Width, meta.Height, meta.Init)
	fmt.Printf("frames: %d\n\n", meta.Frames)

	names := make([]string, 0, len(series))
	for name := range series {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		data := series[name]
		if len(data) < 2 {
			continue
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	rows, err := st.LoadGrid(runID)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	fmt.Println("final density:")
	for _, row := range rows {
		for _, d := range row {
			fmt.Printf("%c ", viz.DensityShade(d))
		}
		fmt.Println()
	}
	return nil
}
