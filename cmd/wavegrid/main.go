package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavegrid/internal/anim"
	"github.com/san-kum/wavegrid/internal/automation"
	"github.com/san-kum/wavegrid/internal/config"
	"github.com/san-kum/wavegrid/internal/export"
	"github.com/san-kum/wavegrid/internal/gui"
	"github.com/san-kum/wavegrid/internal/viz"
)

var (
	configFile string
	preset     string
	theme      string
	logFile    string
	rows       int
	cols       int
	speed      int
	// trace / snapshot
	traceTicks int
	snapTicks  int
	plot       bool
	scriptPath string
	format     string
	outPath    string
	cellSize   float64
	savePath   string

	logOut *os.File
)

// main registers the wavegrid commands and runs the interactive TUI when no
// subcommand is given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:          "wavegrid",
		Short:        "bouncing color wave on a terminal grid",
		SilenceUsage: true,
		RunE:         runTUI,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logFile == "" {
				return nil
			}
			f, err := tea.LogToFile(logFile, "wavegrid")
			if err != nil {
				return err
			}
			logOut = f
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logOut != nil {
				logOut.Close()
			}
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.IntVar(&rows, "rows", anim.DefaultRows, "grid rows (5-30)")
	pf.IntVar(&cols, "cols", anim.DefaultCols, "grid columns (5-30)")
	pf.IntVar(&speed, "speed", anim.DefaultSpeed, "milliseconds per tick (50-500)")
	pf.StringVar(&theme, "theme", "", "panel theme")
	pf.StringVar(&logFile, "log", "", "write debug log to file")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run the wave in a desktop window",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			gui.Run(cfg)
			return nil
		},
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print wave state tick by tick",
		RunE:  runTrace,
	}
	traceCmd.Flags().IntVar(&traceTicks, "ticks", 40, "number of ticks")
	traceCmd.Flags().BoolVar(&plot, "plot", false, "plot wave position")
	traceCmd.Flags().StringVar(&scriptPath, "script", "", "scenario file (yaml) to replay instead of plain ticks")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render a single frame",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapTicks, "ticks", 0, "ticks to advance before rendering")
	snapshotCmd.Flags().StringVar(&format, "format", "svg", "output format (svg, ansi)")
	snapshotCmd.Flags().StringVarP(&outPath, "out", "o", "-", "output file, - for stdout")
	snapshotCmd.Flags().Float64Var(&cellSize, "cell-size", 16, "svg cell size in pixels")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROWS\tCOLS\tSPEED\tPLAYING")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%dms\t%v\n", name, p.Rows, p.Cols, p.SpeedMs, p.Playing)
			}
			return w.Flush()
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "print the effective configuration",
		RunE:  runConfig,
	}
	configCmd.Flags().StringVar(&savePath, "save", "", "also write the configuration to this file")

	rootCmd.AddCommand(guiCmd, traceCmd, snapshotCmd, presetsCmd, configCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

// loadConfig layers defaults, the config file, a preset and explicit flags,
// in that order.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
		log.Printf("using preset %s", preset)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("speed") {
		cfg.SpeedMs = speed
	}
	if theme != "" {
		cfg.Theme = theme
	}
	if _, ok := viz.GetTheme(cfg.Theme); !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", config.ErrUnknownTheme, cfg.Theme, viz.ThemeNames())
	}

	cfg.Normalize()
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	// the alt screen owns the terminal
	if logOut == nil {
		log.SetOutput(io.Discard)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewModel(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	scenario := &automation.Scenario{
		Name:  "ticks",
		Steps: []automation.Step{{Action: "tick", Count: traceTicks}},
	}
	if scriptPath != "" {
		scenario, err = automation.LoadScenario(scriptPath)
		if err != nil {
			return err
		}
		log.Printf("running scenario %q (%d steps)", scenario.Name, len(scenario.Steps))
	}

	initial := cfg.InitialState()
	if scriptPath == "" {
		initial.Playing = true
	}
	w := anim.NewWidget(initial)
	defer w.Close()
	w.Start()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STEP\tACTION\tPOS\tDIR\tPHASE\tBAND\tNEXT\tGRID\tSPEED")
	var positions []float64
	err = automation.RunScenario(cmd.Context(), scenario, w, func(e automation.Event) {
		stats := e.State.Stats()
		action := e.Action
		if e.Action == "tick" && !e.Ticked {
			action = "tick (paused)"
		}
		if e.Ticked {
			positions = append(positions, float64(e.State.Position))
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%d\t%d\t%ds\t%dx%d\t%dms\n",
			e.Step, action, e.State.Position, stats.Direction, e.State.Phase,
			stats.Band, stats.SecondsToNextBand, e.State.Rows, e.State.Cols, stats.SpeedMs)
	})
	if ferr := tw.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return err
	}

	if plot && len(positions) > 1 {
		graph := asciigraph.Plot(positions,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("wave position per tick"),
		)
		fmt.Println()
		fmt.Println(graph)
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s := cfg.InitialState()
	for i := 0; i < snapTicks; i++ {
		s.Tick()
	}
	frame := s.Frame()

	out := io.Writer(os.Stdout)
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "svg":
		err = export.WriteSVG(out, frame, s.Phase, cellSize)
	case "ansi":
		_, err = fmt.Fprintln(out, viz.RenderGrid(frame, s.Phase))
	default:
		return fmt.Errorf("unknown format %q (available: svg, ansi)", format)
	}
	if err != nil {
		return err
	}
	if outPath != "-" {
		log.Printf("wrote %s frame at tick %d to %s", format, snapTicks, outPath)
	}
	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := cfg.Marshal()
	if err != nil {
		return err
	}
	if _, err := os.Stdout.Write(data); err != nil {
		return err
	}
	if savePath != "" {
		return config.Save(savePath, cfg)
	}
	return nil
}
