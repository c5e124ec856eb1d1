package main

import (
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"text/tabwriter"
	"time"

	"go-decryptviz/internal/app"
	"go-decryptviz/internal/component"
	"go-decryptviz/internal/config"
	"go-decryptviz/internal/host"
	"go-decryptviz/internal/system"
	"go-decryptviz/internal/utils"
	"go-decryptviz/pkg/render"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
)

var (
	configFile string
	seed       int64
	width      int
	height     int
	mode       string
	progress   float64
	pprofAddr  string
	samples    int
	frames     int

	traceWidth  int
	traceHeight int
)

var (
	heading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	dim     = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
)

func main() {
	log.SetFlags(log.Ltime)

	rootCmd := &cobra.Command{
		Use:           "decryptviz",
		Short:         "procedural decryption-in-progress animation",
		RunE:          runWindow,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addSceneFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "open the animation window (space: decrypt, f: fail, esc: quit)",
		RunE:  runWindow,
	}
	addSceneFlags(runCmd)
	runCmd.Flags().StringVar(&pprofAddr, "pprof", "", "serve net/http/pprof on this address")

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print the tracer marker position against progress",
		RunE:  traceMarker,
	}
	traceCmd.Flags().IntVar(&traceWidth, "width", config.ScreenWidth, "viewport width")
	traceCmd.Flags().IntVar(&traceHeight, "height", config.ScreenHeight, "viewport height")
	traceCmd.Flags().IntVar(&samples, "samples", 11, "number of progress samples")

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "render frames headlessly and count draw calls per surface",
		RunE:  frameStats,
	}
	addSceneFlags(statsCmd)
	statsCmd.Flags().IntVar(&frames, "frames", 1, "frames to render")

	configCmd := &cobra.Command{
		Use:   "config [path]",
		Short: "write the default configuration as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  writeConfig,
	}

	rootCmd.AddCommand(runCmd, traceCmd, statsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0: time based)")
	cmd.Flags().IntVar(&width, "width", 0, "window width (overrides config)")
	cmd.Flags().IntVar(&height, "height", 0, "window height (overrides config)")
	cmd.Flags().StringVar(&mode, "mode", "idle", "initial mode: idle or active")
	cmd.Flags().Float64Var(&progress, "progress", 0, "initial progress 0..100")
}

// loadScene resolves the config file and the command line overrides.
func loadScene(cmd *cobra.Command) (*config.Config, component.Inputs, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, component.Inputs{}, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return nil, component.Inputs{}, fmt.Errorf("invalid flags: %w", err)
	}

	m, err := component.ParseMode(mode)
	if err != nil {
		return nil, component.Inputs{}, err
	}
	return cfg, component.Inputs{Mode: m, Progress: component.ClampProgress(progress)}, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, in, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(pprofAddr, nil))
		}()
	}
	log.Printf("[main] %dx%d, mode %v, progress %.0f", cfg.Window.Width, cfg.Window.Height, in.Mode, in.Progress)
	return host.Run(cfg, in)
}

func traceMarker(cmd *cobra.Command, args []string) error {
	if traceWidth <= 0 || traceHeight <= 0 {
		return fmt.Errorf("viewport must be positive, got %dx%d", traceWidth, traceHeight)
	}
	if samples < 2 {
		return fmt.Errorf("need at least 2 samples, got %d", samples)
	}
	path := system.PathFor(float64(traceWidth), float64(traceHeight))
	if err := path.Validate(); err != nil {
		return err
	}

	fmt.Println(heading.Render(fmt.Sprintf("tracer path %dx%d", traceWidth, traceHeight)))
	fmt.Println(dim.Render(fmt.Sprintf("length %.1f px, %d waypoints", path.Length(), len(path.Waypoints))))
	fmt.Println()

	xs := make([]float64, samples)
	ys := make([]float64, samples)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROGRESS\tX\tY")
	for i := 0; i < samples; i++ {
		p := 100 * float64(i) / float64(samples-1)
		pt := path.PointAt(p / 100)
		xs[i], ys[i] = pt.X, pt.Y
		fmt.Fprintf(w, "%.1f\t%.1f\t%.1f\n", p, pt.X, pt.Y)
	}
	w.Flush()
	fmt.Println()

	fmt.Println(asciigraph.Plot(xs, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("marker x vs progress")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys, asciigraph.Height(10), asciigraph.Width(60), asciigraph.Caption("marker y vs progress")))
	return nil
}

func frameStats(cmd *cobra.Command, args []string) error {
	cfg, in, err := loadScene(cmd)
	if err != nil {
		return err
	}
	if frames < 1 {
		return fmt.Errorf("frames must be positive, got %d", frames)
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	bg := render.NewRecorder(w, h)
	fg := render.NewRecorder(w, h)
	sched := app.NewManualScheduler()
	rng := utils.NewPRNGService(cfg.Seed)
	ctrl := app.NewController(cfg, rng, sched, nil, app.NewStaticSurface(bg, w, h), app.NewStaticSurface(fg, w, h))
	ctrl.SetMode(in.Mode)
	ctrl.SetProgress(in.Progress)
	ctrl.Mount()
	defer ctrl.Unmount()

	now := time.Now()
	for i := 0; i < frames; i++ {
		bg.Reset()
		fg.Reset()
		sched.Advance(now)
		now = now.Add(16 * time.Millisecond)
	}

	fmt.Println(heading.Render(fmt.Sprintf("last of %d frames, %dx%d, %v, progress %.0f", frames, w, h, in.Mode, in.Progress)))
	fmt.Println(dim.Render(fmt.Sprintf("seed %d: %d hex cells, %d particles, %d nodes",
		rng.Seed(), len(ctrl.HexField().Cells()), len(ctrl.Particles().Particles()), len(ctrl.Circuit().Nodes()))))
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SURFACE\tOP\tCOUNT")
	for _, s := range []struct {
		name string
		rec  *render.Recorder
	}{{app.BackgroundSurface, bg}, {app.ForegroundSurface, fg}} {
		kinds, counts := s.rec.Histogram()
		for _, k := range kinds {
			fmt.Fprintf(tw, "%s\t%s\t%d\n", s.name, k, counts[k])
		}
	}
	return tw.Flush()
}

func writeConfig(cmd *cobra.Command, args []string) error {
	path := "decryptviz.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}
