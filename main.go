package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"moto-hud.klederson.com/internal/app"
	"moto-hud.klederson.com/internal/board"
	"moto-hud.klederson.com/internal/config"
	"moto-hud.klederson.com/internal/display"
	"moto-hud.klederson.com/internal/distance"
	"moto-hud.klederson.com/internal/mpu6050"
	"moto-hud.klederson.com/internal/ranging"
	"moto-hud.klederson.com/internal/raster"
	"moto-hud.klederson.com/internal/sim"
	"moto-hud.klederson.com/internal/tui"
	"moto-hud.klederson.com/internal/ui"
)

var (
	flagDemo     bool
	flagBoard    string
	flagLogFile  string
	flagVerbose  bool
	flagScheme   string
	flagBLELeft  string
	flagBLERight string

	flagRoll   float64
	flagLeft   int
	flagRight  int
	flagScreen string
	flagOut    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "moto-hud",
		Short: "MOTO-HUD - Handlebar lean and proximity display",
		Long: `MOTO-HUD drives a 480x272 handlebar display: a lean needle from the
accelerometer with a tip-over alert, chevron gauges for the distance to
riders on either side and a temperature readout.

On a Linux board the wiring comes from --board (YAML). Use --demo to run
the instrument against simulated hardware in the terminal.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVar(&flagScheme, "scheme", "day", "Color scheme: day, night, funky or evil")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log at debug level")
	rootCmd.Flags().BoolVar(&flagDemo, "demo", false, "Run against simulated hardware in the terminal")
	rootCmd.Flags().StringVar(&flagBoard, "board", "", "Board wiring file (YAML); defaults to the reference wiring")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (demo mode discards logs otherwise)")
	rootCmd.Flags().StringVar(&flagBLELeft, "ble-left", "", "Beacon address or name that ranges the left side")
	rootCmd.Flags().StringVar(&flagBLERight, "ble-right", "", "Beacon address or name that ranges the right side")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render one screen to a PNG without hardware",
		Args:  cobra.NoArgs,
		RunE:  renderPNG,
	}
	renderCmd.Flags().Float64Var(&flagRoll, "roll", 0, "Lean angle in degrees")
	renderCmd.Flags().IntVar(&flagLeft, "left", config.DistanceLimit+1, "Left distance in meters")
	renderCmd.Flags().IntVar(&flagRight, "right", config.DistanceLimit+1, "Right distance in meters")
	renderCmd.Flags().StringVar(&flagScreen, "screen", "main", "Screen to render: main or settings")
	renderCmd.Flags().StringVarP(&flagOut, "output", "o", "moto-hud.png", "Output PNG path")
	rootCmd.AddCommand(renderCmd)
	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	scheme, err := ui.ParseScheme(flagScheme)
	if err != nil {
		return err
	}
	if flagDemo {
		return runDemo(scheme)
	}

	log := newLogger(os.Stderr)
	cfg := config.DefaultBoard()
	if flagBoard != "" {
		if cfg, err = config.LoadBoard(flagBoard); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	hw, err := board.Open(cfg, log)
	if err != nil {
		return err
	}
	defer hw.Close()

	ahw := hw.App()
	if flagBLELeft != "" || flagBLERight != "" {
		store := ranging.NewStore()
		scanner := ranging.NewScanner(store, log)
		if err := scanner.Start(ctx); err != nil {
			return err
		}
		defer scanner.Stop()
		ahw.Ranger = ranging.NewSource(store, flagBLELeft, flagBLERight)
		log.Info("ranging by beacon", "left", flagBLELeft, "right", flagBLERight)
	}

	a := app.New(ahw, log)
	a.Interval = cfg.Interval
	a.State().Prefs.Scheme = scheme
	return a.Run(ctx)
}

func runDemo(scheme ui.Scheme) error {
	out := io.Discard
	if flagLogFile != "" {
		f, err := os.Create(flagLogFile)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	log := newLogger(out)

	hw := sim.NewHardware()
	hw.IMU.SetSweep(true)
	panel := display.NewPanel()
	a := app.New(simHardware(hw, panel), log)
	a.State().Prefs.Scheme = scheme

	model := tui.New(panel, hw, a)
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithFPS(30),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		p.Send(tui.LoopDoneMsg{Err: a.Run(ctx)})
	}()

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(tui.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// renderPNG draws one screen headlessly. The Main screen goes through one
// step of the display loop with fixed distances on both sides.
func renderPNG(cmd *cobra.Command, args []string) error {
	scheme, err := ui.ParseScheme(flagScheme)
	if err != nil {
		return err
	}
	panel := display.NewPanel()
	prefs := ui.DefaultPreferences()
	prefs.Scheme = scheme

	switch flagScreen {
	case "settings":
		ui.DrawSettings(raster.New(panel), prefs)
	case "main":
		hw := sim.NewHardware()
		hw.IMU.SetRoll(flagRoll)
		ahw := simHardware(hw, panel)
		ahw.Ranger = fixedRange{uint16(max(flagLeft, 0)), uint16(max(flagRight, 0))}
		a := app.New(ahw, newLogger(io.Discard))
		a.State().Prefs = prefs
		if err := a.Start(); err != nil {
			return err
		}
		if err := a.Step(cmd.Context()); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown screen %q (want main or settings)", flagScreen)
	}

	f, err := os.Create(flagOut)
	if err != nil {
		return err
	}
	if err := panel.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", flagOut, err)
	}
	return f.Close()
}

type fixedRange [2]uint16

func (f fixedRange) Distance(side distance.Side) (uint16, bool) {
	return f[side], true
}

func simHardware(hw *sim.Hardware, panel *display.Framebuffer) app.Hardware {
	return app.Hardware{
		Display: panel,
		Sensor:  mpu6050.New(hw.IMU),
		Touch:   hw.Touch,
		Left:    app.DialLines{A: hw.Left.A(), B: hw.Left.B(), Active: hw.Left.Active()},
		Right:   app.DialLines{A: hw.Right.A(), B: hw.Right.B(), Active: hw.Right.Active()},
		Alert:   hw.Alert,
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if flagVerbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
